package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zearom/caster/internal/models"
)

func docPair() (*models.OverlaySettings, *models.OverlaySettings) {
	prev := models.DefaultOverlaySettings(models.CategoryWedding)
	next := models.DefaultOverlaySettings(models.CategoryWedding)
	return prev, next
}

func TestClassifyIdenticalDocuments(t *testing.T) {
	prev, next := docPair()
	changes := Classify(prev, next)
	assert.False(t, changes.Any())
}

func TestClassifyVisibilityFlip(t *testing.T) {
	prev, next := docPair()
	next.IsVisible = true

	changes := Classify(prev, next)
	assert.True(t, changes.Visibility)
	assert.True(t, changes.VisibleNow)

	back := Classify(next, prev)
	assert.True(t, back.Visibility)
	assert.False(t, back.VisibleNow)
}

func TestClassifyStructuralOnMediaChange(t *testing.T) {
	prev, next := docPair()
	next.CompanyLogo = "/uploads/wedding_logo_abc.png"

	changes := Classify(prev, next)
	assert.True(t, changes.Structural)

	prev2, next2 := docPair()
	next2.ShowCategoryImage = !prev2.ShowCategoryImage
	assert.True(t, Classify(prev2, next2).Structural)
}

func TestClassifyStyleOnlyChangeDoesNotReplayAnimations(t *testing.T) {
	prev, next := docPair()
	next.MainTextColor = "#FF0000"
	next.BorderWidth = 5

	changes := Classify(prev, next)
	assert.True(t, changes.Style)
	assert.False(t, changes.Animation, "color changes must not trigger a replay")
	assert.False(t, changes.Structural)
	assert.False(t, changes.Visibility)
	assert.False(t, changes.Rotation)
	assert.False(t, changes.Text())
}

func TestClassifyLayoutChangeIsStyleBucket(t *testing.T) {
	prev, next := docPair()
	next.VerticalPosition = models.VerticalTop
	next.ContainerPadding = 40

	changes := Classify(prev, next)
	assert.True(t, changes.Style)
	assert.False(t, changes.Animation)
}

func TestClassifyAnimationParameterChange(t *testing.T) {
	prev, next := docPair()
	next.EntranceAnimation = models.AnimationFadeIn
	next.EntranceDuration = 2.0

	changes := Classify(prev, next)
	assert.True(t, changes.Animation)
	assert.False(t, changes.Style)
	assert.False(t, changes.Structural)
}

func TestClassifyRotationChange(t *testing.T) {
	prev, next := docPair()
	next.SetPhraseList([]string{"Phrase A", "Phrase B"})
	next.SecondaryRotationEnabled = true

	changes := Classify(prev, next)
	assert.True(t, changes.Rotation)
}

func TestClassifyLoopAnimationChange(t *testing.T) {
	prev, next := docPair()
	next.LogoDisplayAnimationEnabled = true
	next.LogoDisplayAnimation = models.DisplayAnimationPulse

	changes := Classify(prev, next)
	assert.True(t, changes.LoopAnimation)
	assert.False(t, changes.Animation, "idle loops never replay the entrance sequence")
	assert.False(t, changes.Style)

	prev2, next2 := docPair()
	next2.ImageDisplayAnimationFrequency = 8.0
	assert.True(t, Classify(prev2, next2).LoopAnimation)
}

func TestClassifyTextComparesEntityDecoded(t *testing.T) {
	prev, next := docPair()
	prev.MainText = "Smith &amp; Sons"
	next.MainText = "Smith & Sons"

	changes := Classify(prev, next)
	assert.False(t, changes.MainTextChanged, "entity-encoded and decoded forms are the same text")

	next.MainText = "Smith &amp; Daughters"
	changes = Classify(prev, next)
	assert.True(t, changes.MainTextChanged)
}

func TestDiffStylesListsOnlyChangedProps(t *testing.T) {
	prev, next := docPair()
	next.AccentColor = "#123456"
	next.TickerSpeed = 80

	changes := diffStyles(prev, next)
	assert.Len(t, changes, 2)
	assert.Equal(t, StyleAccentColor, changes[0].Prop)
	assert.Equal(t, "#123456", changes[0].Value)
	assert.Equal(t, StyleTickerSpeed, changes[1].Prop)
	assert.Equal(t, "80", changes[1].Value)
}

func TestPosesForUnknownKindFallsBackToFade(t *testing.T) {
	fade := PosesFor(models.TransitionFade)
	unknown := PosesFor(models.TransitionKind("teleport"))
	assert.Equal(t, fade, unknown)

	zoom := PosesFor(models.TransitionZoom)
	assert.Equal(t, 0.8, zoom.Initial.Scale)
	assert.Equal(t, 1.2, zoom.Exiting.Scale)
	assert.Equal(t, 1.0, zoom.Entering.Opacity)
}
