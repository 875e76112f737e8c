package paint

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/paintapp/paintapp/pkg/logger"
)

const (
	// HistoryCapacity bounds the undo stack. When exceeded, the oldest
	// entry is evicted and its buffers released.
	HistoryCapacity = 100

	// StickyNoteCapacity bounds the number of live sticky notes.
	StickyNoteCapacity = 50
)

// ErrStickyNotesFull rejects note creation past the capacity.
var ErrStickyNotesFull = errors.New("paint: sticky note limit reached")

// ErrNoSuchNote reports an unknown sticky note id.
var ErrNoSuchNote = errors.New("paint: no such sticky note")

// StickyNote is one draggable note on the canvas.
type StickyNote struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Content string  `json:"content"`
	Color   string  `json:"color"`
}

// HistoryState is one undo entry: the committed pixel buffer plus a
// snapshot of the notes. Never mutated after creation.
type HistoryState struct {
	ImageData   []byte       `json:"imageData"`
	StickyNotes []StickyNote `json:"stickyNotes"`
	Timestamp   time.Time    `json:"timestamp"`
}

// ViewTransform is the canvas pan/zoom state.
type ViewTransform struct {
	Scale float64 `json:"scale"`
	PanX  float64 `json:"panX"`
	PanY  float64 `json:"panY"`
}

// GlobalState is the mutable renderer session state. The history and
// sticky-note buffers are preallocated at their capacities with logical
// lengths tracked separately, so steady-state drawing never reallocates.
type GlobalState struct {
	mu sync.Mutex

	devicePixelRatio float64

	history      []HistoryState
	historyLen   int
	historyIndex int

	stickyNotes []StickyNote

	view ViewTransform

	isInitialized    bool
	isDrawing        bool
	isShiftDown      bool
	isDraggingSticky bool

	// activeTab is an opaque handle owned by the toolbar.
	activeTab interface{}
}

// newGlobalState initializes session state: empty history (index -1),
// empty notes, identity view transform, all mode flags false.
func newGlobalState(dpr float64) *GlobalState {
	return &GlobalState{
		devicePixelRatio: dpr,
		history:          make([]HistoryState, HistoryCapacity),
		historyLen:       0,
		historyIndex:     -1,
		stickyNotes:      make([]StickyNote, 0, StickyNoteCapacity),
		view:             ViewTransform{Scale: 1},
		isInitialized:    true,
	}
}

// DPR is the read-only view of devicePixelRatio.
func (s *GlobalState) DPR() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.devicePixelRatio
}

// SetDevicePixelRatio updates the ratio; DPR tracks it by definition.
func (s *GlobalState) SetDevicePixelRatio(dpr float64) {
	s.mu.Lock()
	s.devicePixelRatio = dpr
	s.mu.Unlock()
}

// RecordHistory commits a stroke: it truncates any redo branch, evicts
// the oldest entry when full (releasing its buffers), and appends the new
// state. The index always lands on the new entry.
func (s *GlobalState) RecordHistory(imageData []byte, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A new commit after undo discards the redo branch; null the
	// abandoned slots so their buffers can be collected.
	for i := s.historyIndex + 1; i < s.historyLen; i++ {
		s.history[i] = HistoryState{}
	}
	s.historyLen = s.historyIndex + 1

	if s.historyLen == HistoryCapacity {
		// Oldest-first eviction.
		copy(s.history[0:], s.history[1:s.historyLen])
		s.history[s.historyLen-1] = HistoryState{}
		s.historyLen--
	}

	s.history[s.historyLen] = HistoryState{
		ImageData:   imageData,
		StickyNotes: append([]StickyNote(nil), s.stickyNotes...),
		Timestamp:   now,
	}
	s.historyLen++
	s.historyIndex = s.historyLen - 1
}

// Undo steps back one history entry. Returns false at the bottom.
func (s *GlobalState) Undo() (HistoryState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.historyIndex <= 0 {
		return HistoryState{}, false
	}
	s.historyIndex--
	return s.history[s.historyIndex], true
}

// Redo steps forward one history entry. Returns false at the top.
func (s *GlobalState) Redo() (HistoryState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.historyIndex >= s.historyLen-1 {
		return HistoryState{}, false
	}
	s.historyIndex++
	return s.history[s.historyIndex], true
}

// HistoryLen is the logical length of the undo stack.
func (s *GlobalState) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyLen
}

// HistoryIndex is the current position, -1 when empty.
func (s *GlobalState) HistoryIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyIndex
}

// AddStickyNote creates a note with a fresh id. Fails when the buffer is
// at capacity.
func (s *GlobalState) AddStickyNote(x, y float64, content, color string) (StickyNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.stickyNotes) >= StickyNoteCapacity {
		return StickyNote{}, ErrStickyNotesFull
	}
	note := StickyNote{
		ID:      uuid.NewString(),
		X:       x,
		Y:       y,
		Content: content,
		Color:   color,
	}
	s.stickyNotes = append(s.stickyNotes, note)
	return note, nil
}

// MoveStickyNote repositions a note (drag).
func (s *GlobalState) MoveStickyNote(id string, x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stickyNotes {
		if s.stickyNotes[i].ID == id {
			s.stickyNotes[i].X = x
			s.stickyNotes[i].Y = y
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNoSuchNote, id)
}

// EditStickyNote replaces a note's content and color.
func (s *GlobalState) EditStickyNote(id, content, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stickyNotes {
		if s.stickyNotes[i].ID == id {
			s.stickyNotes[i].Content = content
			s.stickyNotes[i].Color = color
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNoSuchNote, id)
}

// DeleteStickyNote removes a note.
func (s *GlobalState) DeleteStickyNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stickyNotes {
		if s.stickyNotes[i].ID == id {
			s.stickyNotes = append(s.stickyNotes[:i], s.stickyNotes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNoSuchNote, id)
}

// StickyNotes returns a snapshot of the live notes.
func (s *GlobalState) StickyNotes() []StickyNote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]StickyNote(nil), s.stickyNotes...)
}

// View returns the current transform.
func (s *GlobalState) View() ViewTransform {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SetView replaces the transform.
func (s *GlobalState) SetView(v ViewTransform) {
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
}

// Flags is the mode-flag record.
type Flags struct {
	IsInitialized    bool `json:"isInitialized"`
	IsDrawing        bool `json:"isDrawing"`
	IsShiftDown      bool `json:"isShiftDown"`
	IsDraggingSticky bool `json:"isDraggingSticky"`
}

// GetFlags returns the current mode flags.
func (s *GlobalState) GetFlags() Flags {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Flags{
		IsInitialized:    s.isInitialized,
		IsDrawing:        s.isDrawing,
		IsShiftDown:      s.isShiftDown,
		IsDraggingSticky: s.isDraggingSticky,
	}
}

// ApplyPartial shallow-merges a partial update into the state. Unknown
// keys are logged and skipped.
func (s *GlobalState) ApplyPartial(partial map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range partial {
		switch key {
		case "devicePixelRatio":
			if f, ok := toFloat(value); ok {
				s.devicePixelRatio = f
			}
		case "scale":
			if f, ok := toFloat(value); ok {
				s.view.Scale = f
			}
		case "panX":
			if f, ok := toFloat(value); ok {
				s.view.PanX = f
			}
		case "panY":
			if f, ok := toFloat(value); ok {
				s.view.PanY = f
			}
		case "isDrawing":
			if b, ok := value.(bool); ok {
				s.isDrawing = b
			}
		case "isShiftDown":
			if b, ok := value.(bool); ok {
				s.isShiftDown = b
			}
		case "isDraggingSticky":
			if b, ok := value.(bool); ok {
				s.isDraggingSticky = b
			}
		case "activeTab":
			s.activeTab = value
		default:
			logger.Warn("ignoring unknown state key", logger.Attrs{"key": key})
		}
	}
}

// ActiveTab returns the opaque toolbar handle.
func (s *GlobalState) ActiveTab() interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTab
}

// Cleanup resets the session: logical lengths to zero and every slot
// nulled so referenced buffers are released.
func (s *GlobalState) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < s.historyLen; i++ {
		s.history[i] = HistoryState{}
	}
	s.historyLen = 0
	s.historyIndex = -1
	s.stickyNotes = s.stickyNotes[:0]
	s.view = ViewTransform{Scale: 1}
	s.isDrawing = false
	s.isShiftDown = false
	s.isDraggingSticky = false
	s.activeTab = nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
