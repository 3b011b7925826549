package display

import (
	"sync"
	"time"

	"github.com/zearom/caster/internal/models"
	"github.com/zearom/caster/internal/timing"
)

// phraseFrameDelay separates snapping a phrase to its initial pose from
// animating it to the entering pose, so the initial pose actually lands
// before the transition begins.
const phraseFrameDelay = 20 * time.Millisecond

// Rotator cycles the secondary-phrase area through its phrase list. Each
// transition moves the current phrase to its exiting pose, swaps the text
// while hidden, snaps the next phrase to the initial pose, and animates it
// in. The rotator owns its timers: a re-initialization cancels only the
// rotation timeouts, leaving the rest of the animation sequence alone.
type Rotator struct {
	sink   RenderSink
	timers *timing.TimerSet

	mu          sync.Mutex
	phrases     []string
	fallback    string
	enabled     bool
	displayDur  time.Duration
	transDur    time.Duration
	poses       PoseSet
	index       int
	running     bool
}

// NewRotator creates a rotator drawing to sink
func NewRotator(sink RenderSink, clock timing.Clock) *Rotator {
	return &Rotator{
		sink:   sink,
		timers: timing.NewTimerSet(clock),
	}
}

// Configure loads rotation settings from a document. Safe to call while
// stopped; Reinit handles the running case.
func (r *Rotator) Configure(doc *models.OverlaySettings) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.phrases = doc.PhraseList()
	r.fallback = decode(doc.SecondaryText)
	r.enabled = doc.SecondaryRotationEnabled
	r.displayDur = secondsToDuration(doc.SecondaryDisplayDuration)
	r.transDur = secondsToDuration(doc.SecondaryTransitionDuration)
	r.poses = PosesFor(doc.SecondaryTransitionType)
	r.index = 0
}

// Start begins rotating. With rotation disabled or fewer than two phrases
// the single phrase (or the static secondary text when the list is empty)
// is shown with no timer.
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return
	}
	r.running = true
	r.index = 0

	if !r.enabled || len(r.phrases) <= 1 {
		text := r.fallback
		if len(r.phrases) >= 1 {
			text = decode(r.phrases[0])
		}
		r.sink.SetText(ElementSecondary, text)
		r.sink.SetPose(ElementSecondary, r.poses.Entering)
		return
	}

	r.sink.SetText(ElementSecondary, decode(r.phrases[0]))
	r.sink.SetPose(ElementSecondary, r.poses.Initial)
	r.sink.AnimatePose(ElementSecondary, r.poses.Entering, r.transDur)
	r.scheduleNextLocked()
}

// Stop cancels all rotation timers. The currently displayed phrase stays on
// screen.
func (r *Rotator) Stop() {
	r.mu.Lock()
	r.running = false
	r.mu.Unlock()
	r.timers.CancelAll()
}

// Reinit fully re-initializes the rotation from a new document: timers
// cancelled, configuration reloaded, rotation restarted from the first
// phrase.
func (r *Rotator) Reinit(doc *models.OverlaySettings) {
	r.Stop()
	r.Configure(doc)
	r.Start()
}

// CurrentPhrase returns the phrase currently on screen
func (r *Rotator) CurrentPhrase() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.phrases) == 0 {
		return r.fallback
	}
	return decode(r.phrases[r.index])
}

// scheduleNextLocked arms the next transition. Callers hold r.mu. The
// rotation period is display duration plus transition duration.
func (r *Rotator) scheduleNextLocked() {
	r.timers.Schedule(r.displayDur, r.beginTransition)
}

// beginTransition animates the current phrase out
func (r *Rotator) beginTransition() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}
	r.sink.AnimatePose(ElementSecondary, r.poses.Exiting, r.transDur)
	r.timers.Schedule(r.transDur, r.completeTransition)
}

// completeTransition swaps in the next phrase while hidden and animates it in
func (r *Rotator) completeTransition() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}

	r.index = (r.index + 1) % len(r.phrases)
	r.sink.SetText(ElementSecondary, decode(r.phrases[r.index]))
	r.sink.SetPose(ElementSecondary, r.poses.Initial)

	entering := r.poses.Entering
	dur := r.transDur
	r.timers.Schedule(phraseFrameDelay, func() {
		r.sink.AnimatePose(ElementSecondary, entering, dur)
	})

	r.scheduleNextLocked()
}
