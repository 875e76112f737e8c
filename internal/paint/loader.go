package paint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/paintapp/paintapp/internal/infrastructure/cache"
	"github.com/paintapp/paintapp/pkg/logger"
)

// Bundled configuration documents, relative to the asset root.
const (
	PaintConfigFile = "data/content/paint_config.json"
	UtilityFile     = "data/content/global_paint_utility.json"
)

const (
	// cacheTTL keeps fetched documents warm for repeated loads.
	cacheTTL = 10 * time.Minute

	// maxRetries caps re-fetch attempts per document after the first
	// failure.
	maxRetries = 2
)

// ErrNotLoaded rejects state access before the initial load resolves.
var ErrNotLoaded = errors.New("paint: configuration not loaded")

// Fetcher reads one named document. The production fetcher reads the
// embedded asset tree; tests substitute their own.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// FSFetcher reads documents from a file system (the embedded assets).
type FSFetcher struct {
	FS fs.FS
}

func (f FSFetcher) Fetch(_ context.Context, name string) ([]byte, error) {
	return fs.ReadFile(f.FS, name)
}

// Result is what a completed load yields: the frozen configuration, the
// raw utility document, and the initialized session state. Concurrent
// loaders observe the identical Result value.
type Result struct {
	Config  *Config
	Utility map[string]interface{}
	State   *GlobalState
}

// Loader performs the one-time configuration bootstrap. Concurrent Load
// calls while a load is in flight share that load; a failed load clears
// the in-flight handle so a later call can retry.
type Loader struct {
	fetcher Fetcher
	docs    *cache.Cache
	dpr     float64

	mu       sync.Mutex
	result   *Result
	inflight *loadCall
}

type loadCall struct {
	done   chan struct{}
	result *Result
	err    error
}

// NewLoader builds a loader. dpr seeds the session's devicePixelRatio.
func NewLoader(fetcher Fetcher, dpr float64) *Loader {
	return &Loader{
		fetcher: fetcher,
		docs:    cache.New(),
		dpr:     dpr,
	}
}

// Load fetches both configuration documents concurrently, freezes the
// paint config, and initializes the global state. Exactly one load runs
// at a time; every caller gets the same Result.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	l.mu.Lock()
	if l.result != nil {
		result := l.result
		l.mu.Unlock()
		return result, nil
	}
	if l.inflight != nil {
		call := l.inflight
		l.mu.Unlock()
		<-call.done
		return call.result, call.err
	}
	call := &loadCall{done: make(chan struct{})}
	l.inflight = call
	l.mu.Unlock()

	call.result, call.err = l.load(ctx)
	close(call.done)

	l.mu.Lock()
	if call.err == nil {
		l.result = call.result
	}
	// Clear the handle either way: on failure so a later call retries,
	// on success because l.result now answers directly.
	l.inflight = nil
	l.mu.Unlock()

	return call.result, call.err
}

func (l *Loader) load(ctx context.Context) (*Result, error) {
	var (
		wg         sync.WaitGroup
		configRaw  []byte
		utilityRaw []byte
		configErr  error
		utilityErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		configRaw, configErr = l.fetchDoc(ctx, PaintConfigFile)
	}()
	go func() {
		defer wg.Done()
		utilityRaw, utilityErr = l.fetchDoc(ctx, UtilityFile)
	}()
	wg.Wait()

	if configErr != nil {
		return nil, fmt.Errorf("load %s: %w", PaintConfigFile, configErr)
	}
	if utilityErr != nil {
		return nil, fmt.Errorf("load %s: %w", UtilityFile, utilityErr)
	}

	cfg, err := newConfig(configRaw)
	if err != nil {
		return nil, err
	}
	var utility map[string]interface{}
	if err := json.Unmarshal(utilityRaw, &utility); err != nil {
		return nil, fmt.Errorf("parse %s: %w", UtilityFile, err)
	}

	result := &Result{
		Config:  cfg,
		Utility: utility,
		State:   newGlobalState(l.dpr),
	}
	logger.Info("paint configuration loaded", logger.Attrs{
		"historyCapacity": HistoryCapacity,
		"stickyCapacity":  StickyNoteCapacity,
	})
	return result, nil
}

// fetchDoc reads one document through the TTL cache, retrying up to
// maxRetries times on failure.
func (l *Loader) fetchDoc(ctx context.Context, name string) ([]byte, error) {
	if cached, ok := l.docs.Get(name); ok {
		return cached.([]byte), nil
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := l.fetcher.Fetch(ctx, name)
		if err == nil {
			l.docs.Set(name, data, cacheTTL)
			return data, nil
		}
		lastErr = err
		logger.Warn("document fetch failed", logger.Attrs{
			"name":    name,
			"attempt": attempt + 1,
			"error":   err.Error(),
		})
	}
	return nil, lastErr
}

// UpdateState shallow-merges a partial update into the session state.
// Fails with ErrNotLoaded before the initial load resolves.
func (l *Loader) UpdateState(partial map[string]interface{}) error {
	l.mu.Lock()
	result := l.result
	l.mu.Unlock()
	if result == nil {
		return ErrNotLoaded
	}
	result.State.ApplyPartial(partial)
	return nil
}

// State returns the session state, or ErrNotLoaded before the load.
func (l *Loader) State() (*GlobalState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.result == nil {
		return nil, ErrNotLoaded
	}
	return l.result.State, nil
}

// Loaded reports whether the bootstrap has completed.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.result != nil
}
