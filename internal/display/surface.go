package display

import (
	"sync"
	"time"

	"github.com/zearom/caster/internal/logger"
	"github.com/zearom/caster/internal/models"
	"github.com/zearom/caster/internal/timing"
)

const (
	// visibilityGraceDelay lets the container become visible before the
	// animation replay starts
	visibilityGraceDelay = 100 * time.Millisecond

	// hideFadeDuration is how long the container fades before it is marked
	// hidden
	hideFadeDuration = 500 * time.Millisecond

	// reloadDelay batches rapid structural changes into one reload
	reloadDelay = 300 * time.Millisecond

	// animationSettleDelay lets style/text changes land before animations
	// are replayed with the new parameters
	animationSettleDelay = 100 * time.Millisecond
)

// Surface owns one display surface's render state: the last applied
// document, the animation scheduler, the phrase rotator, and the pending
// apply-cycle timers. Incoming documents are diffed against the last applied
// one and applied as minimal mutations on the sink.
type Surface struct {
	sink    RenderSink
	layout  *LayoutEngine
	anim    *Scheduler
	rotator *Rotator

	// pending holds apply-cycle delays (visibility grace, reload, replay
	// settle), separate from animation timers so a replay cannot cancel
	// the timer that triggers it
	pending *timing.TimerSet

	mu      sync.Mutex
	current *models.OverlaySettings
}

// NewSurface creates a display surface drawing to sink. A nil measurer gets
// the heuristic text measurer; a zero viewport gets the 1920x1080 default.
func NewSurface(sink RenderSink, clock timing.Clock, viewport Size, measurer TextMeasurer) *Surface {
	return &Surface{
		sink:    sink,
		layout:  NewLayoutEngine(viewport, measurer),
		anim:    NewScheduler(sink, clock),
		rotator: NewRotator(sink, clock),
		pending: timing.NewTimerSet(clock),
	}
}

// Current returns the last applied document, or nil before the first render
func (s *Surface) Current() *models.OverlaySettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Init performs the initial full render of a document. Later updates go
// through Apply, which diffs against this state.
func (s *Surface) Init(doc *models.OverlaySettings) {
	s.sink.ApplyGeometry(s.layout.Compute(doc))
	s.applyAllStyles(doc)
	s.applyTexts(doc)
	s.applyLoopAnimations(doc)

	s.rotator.Configure(doc)

	s.sink.SetVisible(doc.IsVisible)
	if doc.IsVisible {
		s.sink.SetContainerOpacity(1)
		s.anim.Play(doc, s.rotator)
	} else {
		s.sink.SetContainerOpacity(0)
	}

	s.mu.Lock()
	s.current = doc
	s.mu.Unlock()
}

// Apply diffs an incoming document against the last applied one and applies
// the change buckets in priority order: visibility short-circuits, then
// structural, then style/rotation/text directly with the animation replay
// last so it reflects everything already applied.
func (s *Surface) Apply(next *models.OverlaySettings) {
	s.mu.Lock()
	prev := s.current
	s.mu.Unlock()

	if prev == nil {
		s.Init(next)
		return
	}

	changes := Classify(prev, next)
	if !changes.Any() {
		s.setCurrent(next)
		return
	}

	logger.Log.Debug().
		Str("category", next.Category).
		Int64("revision", next.Revision).
		Bool("visibility", changes.Visibility).
		Bool("structural", changes.Structural).
		Bool("style", changes.Style).
		Bool("rotation", changes.Rotation).
		Bool("text", changes.Text()).
		Bool("animation", changes.Animation).
		Bool("loop_animation", changes.LoopAnimation).
		Msg("Applying settings update")

	if changes.Visibility {
		s.applyVisibility(next, changes.VisibleNow)
		s.setCurrent(next)
		return
	}

	if changes.Structural {
		// Media elements need a fetch and a fresh layout; patching the
		// live tree is not possible. Overlapping triggers are tolerated:
		// the last reload wins.
		s.pending.Schedule(reloadDelay, s.sink.Reload)
		s.setCurrent(next)
		return
	}

	if changes.Style {
		for _, change := range diffStyles(prev, next) {
			s.sink.SetStyle(change.Prop, change.Value)
		}
		if layoutChanged(prev, next) {
			s.sink.ApplyGeometry(s.layout.Compute(next))
		}
	}

	if changes.Rotation {
		s.rotator.Reinit(next)
	}

	if changes.LoopAnimation {
		s.applyLoopAnimations(next)
	}

	if changes.MainTextChanged {
		s.sink.SetText(ElementMainText, decode(next.MainText))
	}
	if changes.CompanyNameChanged {
		s.sink.SetText(ElementCompanyName, decode(next.CompanyName))
	}
	if changes.TickerTextChanged {
		text := decode(next.TickerText)
		s.sink.SetText(ElementTicker, text)
		s.sink.SetTickerDuration(s.layout.TickerDuration(next, text))
	}

	if changes.Animation {
		doc := next
		s.pending.Schedule(animationSettleDelay, func() {
			s.replay(doc)
		})
	}

	s.setCurrent(next)
}

// applyVisibility handles the highest-priority bucket. Turning on: show,
// fade in, and replay everything after a short grace so the container is
// visible first. Turning off: fade out, then mark hidden once the fade
// completes. Either way no other field is evaluated this cycle.
func (s *Surface) applyVisibility(doc *models.OverlaySettings, visible bool) {
	// A toggle inside the previous fade or grace window must not let the
	// stale timer fire: an off->on flip would otherwise be marked hidden at
	// the old fade mark, and a pending settle replay could play onto a
	// freshly hidden surface.
	s.pending.CancelAll()

	if visible {
		s.sink.SetVisible(true)
		s.sink.SetContainerOpacity(1)
		s.pending.Schedule(visibilityGraceDelay, func() {
			s.replay(doc)
		})
		return
	}

	s.anim.Cancel()
	s.rotator.Stop()
	s.sink.SetContainerOpacity(0)
	s.pending.Schedule(hideFadeDuration, func() {
		s.sink.SetVisible(false)
	})
}

// replay cancels the running sequence and plays the full chain with the
// document's current parameters
func (s *Surface) replay(doc *models.OverlaySettings) {
	s.rotator.Stop()
	s.rotator.Configure(doc)
	s.anim.Play(doc, s.rotator)
}

// Rotator exposes the phrase rotator, mainly for observing rotation state
func (s *Surface) Rotator() *Rotator {
	return s.rotator
}

func (s *Surface) setCurrent(doc *models.OverlaySettings) {
	s.mu.Lock()
	s.current = doc
	s.mu.Unlock()
}

// applyAllStyles pushes every style property of a document to the sink,
// used for the initial render
func (s *Surface) applyAllStyles(doc *models.OverlaySettings) {
	for _, change := range diffStyles(&models.OverlaySettings{}, doc) {
		s.sink.SetStyle(change.Prop, change.Value)
	}
}

// applyLoopAnimations pushes the idle logo/image animation loops to the sink
func (s *Surface) applyLoopAnimations(doc *models.OverlaySettings) {
	s.sink.SetLoopAnimation(ElementLogo, loopAnimationFor(
		doc.LogoDisplayAnimation, doc.LogoDisplayAnimationEnabled,
		doc.LogoDisplayAnimationDuration, doc.LogoDisplayAnimationFrequency))
	s.sink.SetLoopAnimation(ElementImage, loopAnimationFor(
		doc.ImageDisplayAnimation, doc.ImageDisplayAnimationEnabled,
		doc.ImageDisplayAnimationDuration, doc.ImageDisplayAnimationFrequency))
}

// loopAnimationFor resolves one element's idle loop. Disabled or kind none
// both mean a stopped loop.
func loopAnimationFor(kind models.DisplayAnimationKind, enabled bool, durationSec, frequencySec float64) LoopAnimation {
	if !enabled || kind == models.DisplayAnimationNone {
		return LoopAnimation{Kind: models.DisplayAnimationNone}
	}
	return LoopAnimation{
		Kind:     kind,
		Duration: secondsToDuration(durationSec),
		Period:   secondsToDuration(frequencySec),
	}
}

// applyTexts sets all text content, entity-decoded, and computes the
// initial ticker period
func (s *Surface) applyTexts(doc *models.OverlaySettings) {
	s.sink.SetText(ElementMainText, decode(doc.MainText))
	s.sink.SetText(ElementCompanyName, decode(doc.CompanyName))
	ticker := decode(doc.TickerText)
	s.sink.SetText(ElementTicker, ticker)
	s.sink.SetTickerDuration(s.layout.TickerDuration(doc, ticker))
}
