package paint

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher serves documents from a map and counts fetches; names in
// failures fail the given number of times before succeeding.
type fakeFetcher struct {
	mu       sync.Mutex
	docs     map[string][]byte
	failures map[string]int
	calls    map[string]int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		docs: map[string][]byte{
			PaintConfigFile: []byte(validConfigDoc),
			UtilityFile:     []byte(`{"history": {"capacity": 100}}`),
		},
		failures: map[string]int{},
		calls:    map[string]int{},
	}
}

func (f *fakeFetcher) Fetch(_ context.Context, name string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	if f.failures[name] > 0 {
		f.failures[name]--
		return nil, errors.New("transient fetch failure")
	}
	doc, ok := f.docs[name]
	if !ok {
		return nil, errors.New("no such document")
	}
	return doc, nil
}

func (f *fakeFetcher) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func TestLoaderLoad(t *testing.T) {
	loader := NewLoader(newFakeFetcher(), 2.0)
	assert.False(t, loader.Loaded())

	result, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result.Config)
	require.NotNil(t, result.State)
	assert.Equal(t, 2.0, result.State.DPR())
	assert.Contains(t, result.Utility, "history")
	assert.True(t, loader.Loaded())
}

func TestLoaderConcurrentLoadsShareOneResult(t *testing.T) {
	fetcher := newFakeFetcher()
	loader := NewLoader(fetcher, 1.0)

	const callers = 16
	results := make([]*Result, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			result, err := loader.Load(context.Background())
			assert.NoError(t, err)
			results[i] = result
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		assert.Same(t, results[0], results[i], "caller %d got a different result", i)
	}
	assert.Equal(t, 1, fetcher.callCount(PaintConfigFile), "config fetched more than once")
	assert.Equal(t, 1, fetcher.callCount(UtilityFile), "utility fetched more than once")
}

func TestLoaderRetriesAreCapped(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.failures[PaintConfigFile] = 10

	loader := NewLoader(fetcher, 1.0)
	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, maxRetries+1, fetcher.callCount(PaintConfigFile))
}

func TestLoaderFailureAllowsRetry(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.failures[UtilityFile] = maxRetries + 1

	loader := NewLoader(fetcher, 1.0)
	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.False(t, loader.Loaded())

	// The failed load must not wedge the loader; the next call retries
	// and succeeds.
	result, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, loader.Loaded())
}

func TestLoaderRejectsInvalidConfig(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.docs[PaintConfigFile] = []byte(`{"brushes": {}}`)

	loader := NewLoader(fetcher, 1.0)
	_, err := loader.Load(context.Background())
	assert.Error(t, err)
}

func TestLoaderStateBeforeLoad(t *testing.T) {
	loader := NewLoader(newFakeFetcher(), 1.0)

	_, err := loader.State()
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.ErrorIs(t, loader.UpdateState(map[string]interface{}{"scale": 2.0}), ErrNotLoaded)
}

func TestLoaderUpdateState(t *testing.T) {
	loader := NewLoader(newFakeFetcher(), 1.0)
	_, err := loader.Load(context.Background())
	require.NoError(t, err)

	require.NoError(t, loader.UpdateState(map[string]interface{}{"scale": 2.5}))
	state, err := loader.State()
	require.NoError(t, err)
	assert.Equal(t, 2.5, state.View().Scale)
}

func TestLoaderCancelledContext(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.failures[PaintConfigFile] = 1

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewLoader(fetcher, 1.0)
	_, err := loader.Load(ctx)
	assert.Error(t, err)
}
