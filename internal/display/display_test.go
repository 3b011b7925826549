package display

import (
	"fmt"
	"sync"
	"time"

	"github.com/zearom/caster/internal/models"
)

// recordSink records every mutation the display core performs, as an ordered
// event log plus per-element state for direct assertions.
type recordSink struct {
	mu sync.Mutex

	events []string

	visible bool
	opacity float64
	texts   map[ElementID]string
	styles  map[StyleProp]string
	poses   map[ElementID]Pose
	loops   map[ElementID]LoopAnimation
	reloads int
}

func newRecordSink() *recordSink {
	return &recordSink{
		texts:  make(map[ElementID]string),
		styles: make(map[StyleProp]string),
		poses:  make(map[ElementID]Pose),
		loops:  make(map[ElementID]LoopAnimation),
	}
}

func (r *recordSink) record(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

// Events returns a copy of the ordered event log
func (r *recordSink) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recordSink) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

func (r *recordSink) SetVisible(visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visible = visible
	r.record("visible:%v", visible)
}

func (r *recordSink) SetContainerOpacity(opacity float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opacity = opacity
	r.record("opacity:%g", opacity)
}

func (r *recordSink) SetStyle(prop StyleProp, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles[prop] = value
	r.record("style:%s=%s", prop, value)
}

func (r *recordSink) ApplyGeometry(g Geometry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("geometry:%s/%s", g.VerticalAlign, g.HorizontalAlign)
}

func (r *recordSink) SetText(el ElementID, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts[el] = text
	r.record("text:%s=%s", el, text)
}

func (r *recordSink) PlayAnimation(el ElementID, kind models.AnimationKind, duration, delay time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("anim:%s=%s", el, kind)
}

func (r *recordSink) PrepareTextReveal(el ElementID, kind models.TextAnimationKind, segments []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("prepare:%s=%s/%d", el, kind, len(segments))
}

func (r *recordSink) RevealSegment(el ElementID, index int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("reveal:%s[%d]", el, index)
}

func (r *recordSink) FinishTextReveal(el ElementID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("finish:%s", el)
}

func (r *recordSink) SetCursor(el ElementID, on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("cursor:%s=%v", el, on)
}

func (r *recordSink) SetPose(el ElementID, pose Pose) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.poses[el] = pose
	r.record("pose:%s", el)
}

func (r *recordSink) AnimatePose(el ElementID, pose Pose, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.poses[el] = pose
	r.record("animpose:%s", el)
}

func (r *recordSink) SetLoopAnimation(el ElementID, anim LoopAnimation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loops[el] = anim
	r.record("loop:%s=%s", el, anim.Kind)
}

func (r *recordSink) SetTickerDuration(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("tickerdur:%s", d)
}

func (r *recordSink) Reload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reloads++
	r.record("reload")
}

func (r *recordSink) Text(el ElementID) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.texts[el]
}

func (r *recordSink) Visible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible
}

func (r *recordSink) Opacity() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opacity
}

func (r *recordSink) Loop(el ElementID) LoopAnimation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loops[el]
}

func (r *recordSink) Reloads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reloads
}

func (r *recordSink) Has(event string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e == event {
			return true
		}
	}
	return false
}
