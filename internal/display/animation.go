package display

import (
	"strings"
	"time"

	"github.com/zearom/caster/internal/models"
	"github.com/zearom/caster/internal/timing"
)

const (
	// defaultElementAnimDuration is used for element entrances whose kind
	// has no configured duration (image, logo, ticker)
	defaultElementAnimDuration = 800 * time.Millisecond

	// Grace period between the text reveal starting and the secondary
	// rotation starting: longer when a text animation is running so the
	// reveal is estimated complete first.
	textActiveRotationGrace = 1500 * time.Millisecond
	minimalRotationGrace    = 200 * time.Millisecond

	// wordStaggerFactor scales the per-character speed up to a per-word
	// reveal interval
	wordStaggerFactor = 3
)

// Scheduler sequences the full animation chain relative to a single base
// time: entrance, text reveal, secondary rotation start, image, logo, and
// ticker entrances. Every timeout it schedules lives in one TimerSet, so a
// replay cancels the whole previous sequence atomically before starting.
type Scheduler struct {
	sink   RenderSink
	timers *timing.TimerSet
}

// NewScheduler creates an animation scheduler drawing to sink
func NewScheduler(sink RenderSink, clock timing.Clock) *Scheduler {
	return &Scheduler{
		sink:   sink,
		timers: timing.NewTimerSet(clock),
	}
}

// Play cancels any running sequence and plays the full chain for the
// document. The rotator is started once the text reveal is estimated
// complete.
func (a *Scheduler) Play(doc *models.OverlaySettings, rotator *Rotator) {
	a.Cancel()
	if rotator != nil {
		rotator.Stop()
	}

	entranceDelay := secondsToDuration(doc.EntranceDelay)
	entranceDuration := secondsToDuration(doc.EntranceDuration)
	base := entranceDelay + entranceDuration

	// Container entrance
	if doc.EntranceAnimation != models.AnimationNone {
		a.sink.PlayAnimation(ElementContainer, doc.EntranceAnimation, entranceDuration, entranceDelay)
	}

	// Text reveal starts only after the entrance has fully played out
	textAnimated := doc.TextAnimation != models.TextAnimationNone
	if textAnimated {
		a.scheduleTextReveal(doc, base)
	}

	// Secondary rotation starts after the text reveal is estimated complete
	if rotator != nil {
		grace := minimalRotationGrace
		if textAnimated {
			grace = textActiveRotationGrace
		}
		a.timers.Schedule(base+grace, rotator.Start)
	}

	// Image, logo, and ticker entrances are independent, each offset from
	// the same base by its own configured delay
	if doc.ShowCategoryImage && doc.CategoryImage != "" && doc.ImageAnimation != models.AnimationNone {
		at := base + secondsToDuration(doc.ImageAnimationDelay)
		kind := doc.ImageAnimation
		a.timers.Schedule(at, func() {
			a.sink.PlayAnimation(ElementImage, kind, defaultElementAnimDuration, 0)
		})
	}
	if doc.ShowCompanyLogo && doc.CompanyLogo != "" && doc.LogoAnimation != models.AnimationNone {
		at := base + secondsToDuration(doc.LogoAnimationDelay)
		kind := doc.LogoAnimation
		a.timers.Schedule(at, func() {
			a.sink.PlayAnimation(ElementLogo, kind, defaultElementAnimDuration, 0)
		})
	}
	if doc.ShowTicker && doc.TickerEntrance != models.AnimationNone {
		at := base + secondsToDuration(doc.TickerEntranceDelay)
		kind := doc.TickerEntrance
		a.timers.Schedule(at, func() {
			a.sink.PlayAnimation(ElementTicker, kind, defaultElementAnimDuration, 0)
		})
	}
}

// Cancel clears every pending timeout of the running sequence. Must be
// called before a replay; stale per-character callbacks otherwise mutate
// nodes belonging to the new sequence.
func (a *Scheduler) Cancel() {
	a.timers.CancelAll()
}

// scheduleTextReveal stages the reveal of main text and company name
func (a *Scheduler) scheduleTextReveal(doc *models.OverlaySettings, start time.Duration) {
	speed := secondsToDuration(doc.TextAnimationSpeed)
	if speed <= 0 {
		speed = 50 * time.Millisecond
	}

	main := revealTarget{el: ElementMainText, text: decode(doc.MainText)}
	company := revealTarget{el: ElementCompanyName, text: decode(doc.CompanyName)}

	switch doc.TextAnimation {
	case models.TextAnimationTypewriter:
		// Sequential: the cursor finishes one element, then hops to the next
		end := a.scheduleTypewriter(main, start, speed, true)
		a.scheduleTypewriter(company, end, speed, true)
	case models.TextAnimationWordFadeIn:
		a.scheduleStagger(main, start, speed*wordStaggerFactor, splitWords(main.text), doc.TextAnimation)
		a.scheduleStagger(company, start, speed*wordStaggerFactor, splitWords(company.text), doc.TextAnimation)
	case models.TextAnimationCharSlideIn:
		a.scheduleStagger(main, start, speed, splitChars(main.text), doc.TextAnimation)
		a.scheduleStagger(company, start, speed, splitChars(company.text), doc.TextAnimation)
	}
}

type revealTarget struct {
	el   ElementID
	text string
}

// scheduleTypewriter reveals one element character by character, returning
// when the reveal finishes so the next element can be chained after it.
func (a *Scheduler) scheduleTypewriter(t revealTarget, start time.Duration, speed time.Duration, cursor bool) time.Duration {
	segments := splitChars(t.text)
	if len(segments) == 0 {
		return start
	}

	a.timers.Schedule(start, func() {
		a.sink.PrepareTextReveal(t.el, models.TextAnimationTypewriter, segments)
		if cursor {
			a.sink.SetCursor(t.el, true)
		}
	})

	for i := range segments {
		index := i
		a.timers.Schedule(start+time.Duration(i+1)*speed, func() {
			a.sink.RevealSegment(t.el, index)
		})
	}

	end := start + time.Duration(len(segments))*speed
	a.timers.Schedule(end, func() {
		a.sink.FinishTextReveal(t.el)
		if cursor {
			a.sink.SetCursor(t.el, false)
		}
	})
	return end
}

// scheduleStagger reveals segments with a fixed stagger, all elements
// starting together
func (a *Scheduler) scheduleStagger(t revealTarget, start, stagger time.Duration, segments []string, kind models.TextAnimationKind) {
	if len(segments) == 0 {
		return
	}

	a.timers.Schedule(start, func() {
		a.sink.PrepareTextReveal(t.el, kind, segments)
	})

	for i := range segments {
		index := i
		a.timers.Schedule(start+time.Duration(i+1)*stagger, func() {
			a.sink.RevealSegment(t.el, index)
		})
	}

	a.timers.Schedule(start+time.Duration(len(segments)+1)*stagger, func() {
		a.sink.FinishTextReveal(t.el)
	})
}

func splitChars(s string) []string {
	runes := []rune(s)
	segments := make([]string, 0, len(runes))
	for _, r := range runes {
		segments = append(segments, string(r))
	}
	return segments
}

func splitWords(s string) []string {
	return strings.Fields(s)
}

// secondsToDuration converts a fractional-seconds settings value
func secondsToDuration(seconds float64) time.Duration {
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}
