package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zearom/caster/internal/models"
	"github.com/zearom/caster/internal/timing"
)

func animationDoc() *models.OverlaySettings {
	doc := models.DefaultOverlaySettings(models.CategoryFuneral)
	doc.EntranceAnimation = models.AnimationSlideLeft
	doc.EntranceDuration = 1.0
	doc.EntranceDelay = 0
	doc.TextAnimation = models.TextAnimationNone
	return doc
}

func TestPlayRunsContainerEntranceImmediately(t *testing.T) {
	sink := newRecordSink()
	clock := timing.NewFakeClock()
	sched := NewScheduler(sink, clock)

	sched.Play(animationDoc(), nil)
	assert.True(t, sink.Has("anim:container=slide-left"))
}

func TestPlaySkipsDisabledEntrance(t *testing.T) {
	sink := newRecordSink()
	clock := timing.NewFakeClock()
	sched := NewScheduler(sink, clock)

	doc := animationDoc()
	doc.EntranceAnimation = models.AnimationNone
	sched.Play(doc, nil)

	assert.False(t, sink.Has("anim:container=none"))
	assert.False(t, sink.Has("anim:container=slide-left"))
}

func TestTypewriterRevealsSequentially(t *testing.T) {
	sink := newRecordSink()
	clock := timing.NewFakeClock()
	sched := NewScheduler(sink, clock)

	doc := animationDoc()
	doc.MainText = "Hi"
	doc.CompanyName = "Co"
	doc.TextAnimation = models.TextAnimationTypewriter
	doc.TextAnimationSpeed = 0.1

	sched.Play(doc, nil)

	// Nothing is revealed until the entrance completes
	clock.Advance(900 * time.Millisecond)
	assert.False(t, sink.Has("prepare:main_text=typewriter/2"))

	clock.Advance(100 * time.Millisecond)
	assert.True(t, sink.Has("prepare:main_text=typewriter/2"))
	assert.True(t, sink.Has("cursor:main_text=true"))

	clock.Advance(200 * time.Millisecond)
	assert.True(t, sink.Has("reveal:main_text[0]"))
	assert.True(t, sink.Has("reveal:main_text[1]"))
	assert.True(t, sink.Has("finish:main_text"))
	assert.True(t, sink.Has("cursor:main_text=false"))

	// Company name starts only after the main text finished; the cursor
	// hops to it.
	assert.True(t, sink.Has("prepare:company_name=typewriter/2"))
	assert.True(t, sink.Has("cursor:company_name=true"))
	assert.False(t, sink.Has("finish:company_name"))

	clock.Advance(200 * time.Millisecond)
	assert.True(t, sink.Has("finish:company_name"))
	assert.True(t, sink.Has("cursor:company_name=false"))
}

func TestWordFadeRevealsElementsInParallel(t *testing.T) {
	sink := newRecordSink()
	clock := timing.NewFakeClock()
	sched := NewScheduler(sink, clock)

	doc := animationDoc()
	doc.MainText = "one two"
	doc.CompanyName = "three four"
	doc.TextAnimation = models.TextAnimationWordFadeIn
	doc.TextAnimationSpeed = 0.1

	sched.Play(doc, nil)
	clock.Advance(time.Second)

	// Both elements stage at the same base time
	assert.True(t, sink.Has("prepare:main_text=word-fade-in/2"))
	assert.True(t, sink.Has("prepare:company_name=word-fade-in/2"))
}

func TestRotationStartsAfterTextRevealGrace(t *testing.T) {
	sink := newRecordSink()
	clock := timing.NewFakeClock()
	sched := NewScheduler(sink, clock)

	doc := animationDoc()
	doc.TextAnimation = models.TextAnimationTypewriter
	doc.SetPhraseList([]string{"Phrase A", "Phrase B"})
	doc.SecondaryRotationEnabled = true

	rotator := NewRotator(sink, clock)
	rotator.Configure(doc)

	sched.Play(doc, rotator)

	// base (1s) plus the long grace while a text animation runs
	clock.Advance(2400 * time.Millisecond)
	assert.Empty(t, sink.Text(ElementSecondary))

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, "Phrase A", sink.Text(ElementSecondary))
}

func TestElementEntrancesOffsetFromBase(t *testing.T) {
	sink := newRecordSink()
	clock := timing.NewFakeClock()
	sched := NewScheduler(sink, clock)

	doc := animationDoc()
	doc.ShowCompanyLogo = true
	doc.CompanyLogo = "/uploads/logo.png"
	doc.LogoAnimation = models.AnimationScaleIn
	doc.LogoAnimationDelay = 0.5
	doc.ShowTicker = true
	doc.TickerEntrance = models.AnimationSlideUp
	doc.TickerEntranceDelay = 0.8
	doc.ShowCategoryImage = false

	sched.Play(doc, nil)

	clock.Advance(1400 * time.Millisecond)
	assert.False(t, sink.Has("anim:logo=scale-in"))

	clock.Advance(100 * time.Millisecond)
	assert.True(t, sink.Has("anim:logo=scale-in"))
	assert.False(t, sink.Has("anim:ticker=slide-up"))

	clock.Advance(300 * time.Millisecond)
	assert.True(t, sink.Has("anim:ticker=slide-up"))

	// Image entrance suppressed: not shown
	clock.Advance(10 * time.Second)
	assert.False(t, sink.Has("anim:image=fade-in"))
}

func TestCancelClearsPendingSequence(t *testing.T) {
	sink := newRecordSink()
	clock := timing.NewFakeClock()
	sched := NewScheduler(sink, clock)

	doc := animationDoc()
	doc.MainText = "Hello"
	doc.TextAnimation = models.TextAnimationTypewriter

	sched.Play(doc, nil)
	sched.Cancel()

	clock.Advance(10 * time.Second)
	assert.False(t, sink.Has("prepare:main_text=typewriter/5"), "cancelled reveal must not run")
}

func TestReplayCancelsPreviousSequence(t *testing.T) {
	sink := newRecordSink()
	clock := timing.NewFakeClock()
	sched := NewScheduler(sink, clock)

	doc := animationDoc()
	doc.MainText = "Hello"
	doc.TextAnimation = models.TextAnimationTypewriter

	sched.Play(doc, nil)
	clock.Advance(500 * time.Millisecond)

	// Replay with different text before the first reveal started
	doc2 := animationDoc()
	doc2.MainText = "Bye"
	doc2.TextAnimation = models.TextAnimationTypewriter
	sched.Play(doc2, nil)

	clock.Advance(10 * time.Second)
	assert.False(t, sink.Has("prepare:main_text=typewriter/5"), "stale reveal from the first sequence")
	assert.True(t, sink.Has("prepare:main_text=typewriter/3"))
}
