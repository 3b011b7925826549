// Package display implements the display-surface core: the cached render
// state, the diff engine that classifies incoming settings updates, the
// animation scheduler, the secondary-phrase rotator, and the layout engine.
// The actual drawing is behind the RenderSink interface; the package decides
// what mutations happen and when.
package display

import (
	"time"

	"github.com/zearom/caster/internal/models"
)

// ElementID names a visual element of the overlay
type ElementID string

// Overlay elements
const (
	ElementContainer   ElementID = "container"
	ElementMainText    ElementID = "main_text"
	ElementCompanyName ElementID = "company_name"
	ElementSecondary   ElementID = "secondary"
	ElementTicker      ElementID = "ticker"
	ElementImage       ElementID = "image"
	ElementLogo        ElementID = "logo"
)

// StyleProp names an incrementally updatable style property
type StyleProp string

// Style properties applied field by field without an animation replay
const (
	StyleOverlayBg        StyleProp = "overlay_bg"
	StyleOverlayBgOpacity StyleProp = "overlay_bg_opacity"
	StyleMainTextColor    StyleProp = "main_text_color"
	StyleMainTextBg       StyleProp = "main_text_bg"
	StyleSecondaryColor   StyleProp = "secondary_text_color"
	StyleSecondaryBg      StyleProp = "secondary_text_bg"
	StyleTickerColor      StyleProp = "ticker_text_color"
	StyleTickerBg         StyleProp = "ticker_bg"
	StyleCompanyColor     StyleProp = "company_name_color"
	StyleCompanyBg        StyleProp = "company_name_bg"
	StyleFooterColor      StyleProp = "footer_text_color"
	StyleFooterBg         StyleProp = "footer_bg"
	StyleAccentColor      StyleProp = "accent_color"
	StyleBorderColor      StyleProp = "border_color"
	StyleBorderWidth      StyleProp = "border_width"
	StyleBorderRadius     StyleProp = "border_radius"
	StyleFontFamily       StyleProp = "font_family"
	StyleMainFontSize     StyleProp = "main_font_size"
	StyleSecondaryFont    StyleProp = "secondary_font_size"
	StyleTickerFontSize   StyleProp = "ticker_font_size"
	StyleCompanyFontSize  StyleProp = "company_name_font_size"
	StyleFooterFontSize   StyleProp = "footer_font_size"
	StyleLogoSize         StyleProp = "logo_size"
	StyleLogoOpacity      StyleProp = "logo_opacity"
	StyleLogoRadius       StyleProp = "logo_border_radius"
	StyleLogoShadow       StyleProp = "logo_shadow"
	StyleTickerSpeed      StyleProp = "ticker_speed"
	StyleDecorations      StyleProp = "decorative_elements"
	StyleOpacity          StyleProp = "opacity"
)

// LoopAnimation describes a continuous idle animation on a media element:
// one cycle of Kind runs for Duration, starting every Period. Kind none
// stops the loop.
type LoopAnimation struct {
	Kind     models.DisplayAnimationKind
	Duration time.Duration
	Period   time.Duration
}

// RenderSink is the drawing boundary of the display surface. The display
// core calls it; an implementation maps the calls onto whatever actually
// renders (a browser DOM, a preview widget, a test recorder).
type RenderSink interface {
	// SetVisible shows or hides the overlay container outright
	SetVisible(visible bool)

	// SetContainerOpacity fades the whole container; used by visibility
	// transitions
	SetContainerOpacity(opacity float64)

	// SetStyle updates one style property in place
	SetStyle(prop StyleProp, value string)

	// ApplyGeometry applies computed position/size/text-scaling geometry
	ApplyGeometry(g Geometry)

	// SetText replaces an element's full text content
	SetText(el ElementID, text string)

	// PlayAnimation runs a one-shot entrance animation on an element
	PlayAnimation(el ElementID, kind models.AnimationKind, duration, delay time.Duration)

	// PrepareTextReveal clears an element and stages its text segments for
	// a staggered reveal
	PrepareTextReveal(el ElementID, kind models.TextAnimationKind, segments []string)

	// RevealSegment makes one staged segment visible
	RevealSegment(el ElementID, index int)

	// FinishTextReveal marks a reveal complete (all segments visible)
	FinishTextReveal(el ElementID)

	// SetCursor toggles the typewriter cursor on an element
	SetCursor(el ElementID, on bool)

	// SetPose snaps an element to a pose with no animation
	SetPose(el ElementID, pose Pose)

	// AnimatePose animates an element to a pose over the given duration
	AnimatePose(el ElementID, pose Pose, duration time.Duration)

	// SetLoopAnimation starts, replaces, or stops the idle animation loop
	// on a media element
	SetLoopAnimation(el ElementID, anim LoopAnimation)

	// SetTickerDuration sets the ticker's scroll period
	SetTickerDuration(d time.Duration)

	// Reload tears down the surface and re-renders from scratch; used when
	// media elements change and incremental patching is not possible
	Reload()
}
