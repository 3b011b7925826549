// Package control implements the editing side of the overlay system: it
// assembles form state into save payloads, auto-saves with a debounce for
// flood-prone fields, and refreshes the display preview after each save.
package control

import (
	"context"
	"sync"
	"time"

	"github.com/zearom/caster/internal/logger"
	"github.com/zearom/caster/internal/timing"
)

const (
	// DefaultDebounceWindow is how long text/select input must be idle
	// before an auto-save fires
	DefaultDebounceWindow = 500 * time.Millisecond

	// previewRefreshDelay gives the store time to commit before the
	// preview frame reloads
	previewRefreshDelay = 250 * time.Millisecond
)

// FieldKind classifies a form field for auto-save behavior
type FieldKind int

// Form field kinds
const (
	FieldText FieldKind = iota
	FieldSelect
	FieldColor
	FieldRange
	FieldCheckbox
	FieldFile
)

// savesImmediately reports whether edits to this kind of field save on
// change rather than waiting out the debounce window. Color pickers,
// sliders, and checkboxes emit one final value per gesture; text fields
// emit one event per keystroke.
func (k FieldKind) savesImmediately() bool {
	switch k {
	case FieldColor, FieldRange, FieldCheckbox:
		return true
	default:
		return false
	}
}

// FormField is one control-panel input with its current value
type FormField struct {
	Name  string
	Kind  FieldKind
	Value string
	// Checked is meaningful only for FieldCheckbox
	Checked bool
}

// Saver persists a partial settings payload for a category. Values are
// strings as gathered from the form; checkbox fields arrive as explicit
// "true"/"false".
type Saver interface {
	Save(ctx context.Context, category string, payload map[string]string) error
}

// PreviewRefresher reloads the embedded display preview
type PreviewRefresher interface {
	Refresh()
}

// Controller drives auto-save for one category's control panel. Edits to
// debounced fields accumulate and flush after the input goes idle; edits to
// immediate fields flush at once, carrying any accumulated edits with them.
type Controller struct {
	saver    Saver
	preview  PreviewRefresher
	category string
	window   time.Duration

	// debounce and previewTimer are single-task schedulers with
	// cancel-and-reschedule semantics
	debounce     *timing.TimerSet
	previewTimer *timing.TimerSet

	mu      sync.Mutex
	pending map[string]string
}

// NewController creates a controller for one category. preview may be nil.
func NewController(saver Saver, preview PreviewRefresher, category string, clock timing.Clock, window time.Duration) *Controller {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Controller{
		saver:        saver,
		preview:      preview,
		category:     category,
		window:       window,
		debounce:     timing.NewTimerSet(clock),
		previewTimer: timing.NewTimerSet(clock),
		pending:      make(map[string]string),
	}
}

// FieldChanged records an edit. File inputs never join the payload; they
// upload through their own endpoint.
func (c *Controller) FieldChanged(ctx context.Context, field FormField) {
	if field.Kind == FieldFile {
		return
	}

	value := fieldValue(field)

	c.mu.Lock()
	c.pending[field.Name] = value
	c.mu.Unlock()

	if field.Kind.savesImmediately() {
		c.debounce.CancelAll()
		c.flush(ctx)
		return
	}

	// Cancel-and-reschedule: the save fires once input has been idle for
	// the full window.
	c.debounce.CancelAll()
	c.debounce.Schedule(c.window, func() {
		c.flush(ctx)
	})
}

// SaveForm gathers a full form snapshot (including collapsed accordion
// sections) into one payload and saves it immediately.
func (c *Controller) SaveForm(ctx context.Context, fields []FormField) {
	payload := GatherPayload(fields)

	c.mu.Lock()
	for name, value := range payload {
		c.pending[name] = value
	}
	c.mu.Unlock()

	c.debounce.CancelAll()
	c.flush(ctx)
}

// Flush forces any accumulated edits out now
func (c *Controller) Flush(ctx context.Context) {
	c.debounce.CancelAll()
	c.flush(ctx)
}

// PendingCount returns the number of accumulated unsaved edits
func (c *Controller) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// flush saves accumulated edits. A failed save is logged and dropped; the
// next edit carries fresh values and retries naturally.
func (c *Controller) flush(ctx context.Context) {
	c.mu.Lock()
	if len(c.pending) == 0 {
		c.mu.Unlock()
		return
	}
	payload := c.pending
	c.pending = make(map[string]string)
	c.mu.Unlock()

	if err := c.saver.Save(ctx, c.category, payload); err != nil {
		logger.Log.Warn().
			Err(err).
			Str("category", c.category).
			Int("fields", len(payload)).
			Msg("Auto-save failed, changes will retry on next edit")
		return
	}

	if c.preview != nil {
		c.previewTimer.CancelAll()
		c.previewTimer.Schedule(previewRefreshDelay, c.preview.Refresh)
	}
}

// GatherPayload converts form fields into a save payload: checkboxes
// serialize as explicit "true"/"false", file inputs are excluded.
func GatherPayload(fields []FormField) map[string]string {
	payload := make(map[string]string, len(fields))
	for _, field := range fields {
		if field.Kind == FieldFile {
			continue
		}
		payload[field.Name] = fieldValue(field)
	}
	return payload
}

func fieldValue(field FormField) string {
	if field.Kind == FieldCheckbox {
		if field.Checked {
			return "true"
		}
		return "false"
	}
	return field.Value
}
