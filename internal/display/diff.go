package display

import (
	"html"
	"strconv"

	"github.com/zearom/caster/internal/models"
)

// ChangeSet classifies one settings update into application buckets. Buckets
// are not mutually exclusive; Surface.Apply resolves priority: visibility
// short-circuits everything, then structural short-circuits the rest, then
// style/rotation/text apply directly with the animation replay last.
type ChangeSet struct {
	// Visibility flag flipped; VisibleNow is the incoming value
	Visibility bool
	VisibleNow bool

	// Structural/media change requiring a full reload
	Structural bool

	// Style/layout fields changed; applied field by field, no replay
	Style bool

	// Secondary-phrase/rotation configuration changed
	Rotation bool

	// Text content changed (entity-decoded comparison)
	MainTextChanged    bool
	CompanyNameChanged bool
	TickerTextChanged  bool

	// Animation parameters changed; full sequence replay after settle
	Animation bool

	// Idle loop animation on the logo or image changed; the loop restarts
	// with the new parameters, no sequence replay
	LoopAnimation bool
}

// Text reports whether any text-content bucket fired
func (c ChangeSet) Text() bool {
	return c.MainTextChanged || c.CompanyNameChanged || c.TickerTextChanged
}

// Any reports whether the update changes anything the surface renders
func (c ChangeSet) Any() bool {
	return c.Visibility || c.Structural || c.Style || c.Rotation || c.Text() || c.Animation || c.LoopAnimation
}

// Classify compares the previously applied document against an incoming one
func Classify(prev, next *models.OverlaySettings) ChangeSet {
	var c ChangeSet

	if prev.IsVisible != next.IsVisible {
		c.Visibility = true
		c.VisibleNow = next.IsVisible
	}

	// Media elements cannot be patched in place: the new image has to be
	// fetched and the layout recomputed from scratch.
	if prev.CompanyLogo != next.CompanyLogo ||
		prev.CategoryImage != next.CategoryImage ||
		prev.ShowCompanyLogo != next.ShowCompanyLogo ||
		prev.ShowCategoryImage != next.ShowCategoryImage {
		c.Structural = true
	}

	if len(diffStyles(prev, next)) > 0 || layoutChanged(prev, next) {
		c.Style = true
	}

	if rotationChanged(prev, next) {
		c.Rotation = true
	}

	c.MainTextChanged = decode(prev.MainText) != decode(next.MainText)
	c.CompanyNameChanged = decode(prev.CompanyName) != decode(next.CompanyName)
	c.TickerTextChanged = decode(prev.TickerText) != decode(next.TickerText)

	if animationChanged(prev, next) {
		c.Animation = true
	}

	if loopAnimationChanged(prev, next) {
		c.LoopAnimation = true
	}

	return c
}

// decode undoes HTML entity encoding applied when text was stored
func decode(s string) string {
	return html.UnescapeString(s)
}

// StyleChange is one incremental style mutation
type StyleChange struct {
	Prop  StyleProp
	Value string
}

// diffStyles lists the style properties whose values differ, in a stable
// order, ready to hand to the sink one by one.
func diffStyles(prev, next *models.OverlaySettings) []StyleChange {
	var changes []StyleChange

	add := func(prop StyleProp, a, b string) {
		if a != b {
			changes = append(changes, StyleChange{Prop: prop, Value: b})
		}
	}
	addInt := func(prop StyleProp, a, b int) {
		add(prop, strconv.Itoa(a), strconv.Itoa(b))
	}
	addFloat := func(prop StyleProp, a, b float64) {
		add(prop, formatFloat(a), formatFloat(b))
	}
	addBool := func(prop StyleProp, a, b bool) {
		add(prop, strconv.FormatBool(a), strconv.FormatBool(b))
	}

	add(StyleOverlayBg, prev.OverlayBgColor, next.OverlayBgColor)
	addFloat(StyleOverlayBgOpacity, prev.OverlayBgOpacity, next.OverlayBgOpacity)
	add(StyleMainTextColor, prev.MainTextColor, next.MainTextColor)
	add(StyleMainTextBg, prev.MainTextBgColor, next.MainTextBgColor)
	add(StyleSecondaryColor, prev.SecondaryTextColor, next.SecondaryTextColor)
	add(StyleSecondaryBg, prev.SecondaryTextBgColor, next.SecondaryTextBgColor)
	add(StyleTickerColor, prev.TickerTextColor, next.TickerTextColor)
	add(StyleTickerBg, prev.TickerBgColor, next.TickerBgColor)
	add(StyleCompanyColor, prev.CompanyNameColor, next.CompanyNameColor)
	add(StyleCompanyBg, prev.CompanyNameBgColor, next.CompanyNameBgColor)
	add(StyleFooterColor, prev.FooterTextColor, next.FooterTextColor)
	add(StyleFooterBg, prev.FooterBgColor, next.FooterBgColor)
	add(StyleAccentColor, prev.AccentColor, next.AccentColor)
	add(StyleBorderColor, prev.BorderColor, next.BorderColor)
	addInt(StyleBorderWidth, prev.BorderWidth, next.BorderWidth)
	addInt(StyleBorderRadius, prev.BorderRadius, next.BorderRadius)
	add(StyleFontFamily, prev.FontFamily, next.FontFamily)
	addInt(StyleMainFontSize, prev.MainFontSize, next.MainFontSize)
	addInt(StyleSecondaryFont, prev.SecondaryFontSize, next.SecondaryFontSize)
	addInt(StyleTickerFontSize, prev.TickerFontSize, next.TickerFontSize)
	addInt(StyleCompanyFontSize, prev.CompanyNameFontSize, next.CompanyNameFontSize)
	addInt(StyleFooterFontSize, prev.FooterFontSize, next.FooterFontSize)
	addInt(StyleLogoSize, prev.LogoSize, next.LogoSize)
	addFloat(StyleLogoOpacity, prev.LogoOpacity, next.LogoOpacity)
	addInt(StyleLogoRadius, prev.LogoBorderRadius, next.LogoBorderRadius)
	addBool(StyleLogoShadow, prev.LogoShadow, next.LogoShadow)
	addInt(StyleTickerSpeed, prev.TickerSpeed, next.TickerSpeed)
	addBool(StyleDecorations, prev.ShowDecorativeElements, next.ShowDecorativeElements)
	addFloat(StyleOpacity, prev.Opacity, next.Opacity)

	return changes
}

// layoutChanged reports whether any position/size/scale field differs;
// those changes re-run the layout engine but never replay animations.
func layoutChanged(prev, next *models.OverlaySettings) bool {
	return prev.VerticalPosition != next.VerticalPosition ||
		prev.HorizontalPosition != next.HorizontalPosition ||
		prev.CustomTop != next.CustomTop ||
		prev.CustomBottom != next.CustomBottom ||
		prev.CustomLeft != next.CustomLeft ||
		prev.CustomRight != next.CustomRight ||
		prev.ContainerWidth != next.ContainerWidth ||
		prev.CustomWidth != next.CustomWidth ||
		prev.ContainerMaxWidth != next.ContainerMaxWidth ||
		prev.ContainerMinWidth != next.ContainerMinWidth ||
		prev.ContainerHeight != next.ContainerHeight ||
		prev.CustomHeight != next.CustomHeight ||
		prev.ContainerPadding != next.ContainerPadding ||
		prev.TextScaleMode != next.TextScaleMode ||
		prev.TextLineHeight != next.TextLineHeight ||
		prev.TextMaxLines != next.TextMaxLines ||
		prev.EnableTextTruncation != next.EnableTextTruncation
}

// rotationChanged reports whether the secondary-phrase area needs a full
// re-initialization of its timer and nodes.
func rotationChanged(prev, next *models.OverlaySettings) bool {
	return prev.SecondaryPhrases != next.SecondaryPhrases ||
		prev.SecondaryRotationEnabled != next.SecondaryRotationEnabled ||
		prev.SecondaryDisplayDuration != next.SecondaryDisplayDuration ||
		prev.SecondaryTransitionType != next.SecondaryTransitionType ||
		prev.SecondaryTransitionDuration != next.SecondaryTransitionDuration ||
		decode(prev.SecondaryText) != decode(next.SecondaryText)
}

// animationChanged reports whether any animation parameter differs; the
// whole sequence is replayed so the new parameters take effect coherently.
func animationChanged(prev, next *models.OverlaySettings) bool {
	return prev.EntranceAnimation != next.EntranceAnimation ||
		prev.EntranceDuration != next.EntranceDuration ||
		prev.EntranceDelay != next.EntranceDelay ||
		prev.TextAnimation != next.TextAnimation ||
		prev.TextAnimationSpeed != next.TextAnimationSpeed ||
		prev.ImageAnimation != next.ImageAnimation ||
		prev.ImageAnimationDelay != next.ImageAnimationDelay ||
		prev.LogoAnimation != next.LogoAnimation ||
		prev.LogoAnimationDelay != next.LogoAnimationDelay ||
		prev.TickerEntrance != next.TickerEntrance ||
		prev.TickerEntranceDelay != next.TickerEntranceDelay
}

// loopAnimationChanged reports whether an idle logo/image animation loop
// needs to restart with new parameters.
func loopAnimationChanged(prev, next *models.OverlaySettings) bool {
	return prev.LogoDisplayAnimation != next.LogoDisplayAnimation ||
		prev.LogoDisplayAnimationEnabled != next.LogoDisplayAnimationEnabled ||
		prev.LogoDisplayAnimationDuration != next.LogoDisplayAnimationDuration ||
		prev.LogoDisplayAnimationFrequency != next.LogoDisplayAnimationFrequency ||
		prev.ImageDisplayAnimation != next.ImageDisplayAnimation ||
		prev.ImageDisplayAnimationEnabled != next.ImageDisplayAnimationEnabled ||
		prev.ImageDisplayAnimationDuration != next.ImageDisplayAnimationDuration ||
		prev.ImageDisplayAnimationFrequency != next.ImageDisplayAnimationFrequency
}

// formatFloat renders a float the way style values are compared
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
