package models

// VerticalPosition controls where the overlay container anchors vertically
type VerticalPosition string

// Vertical position constants
const (
	VerticalTop    VerticalPosition = "top"
	VerticalCenter VerticalPosition = "center"
	VerticalBottom VerticalPosition = "bottom"
	VerticalCustom VerticalPosition = "custom"
)

// IsValid checks if the vertical position is a known value
func (p VerticalPosition) IsValid() bool {
	switch p {
	case VerticalTop, VerticalCenter, VerticalBottom, VerticalCustom:
		return true
	default:
		return false
	}
}

// HorizontalPosition controls where the overlay container anchors horizontally
type HorizontalPosition string

// Horizontal position constants
const (
	HorizontalLeft   HorizontalPosition = "left"
	HorizontalCenter HorizontalPosition = "center"
	HorizontalRight  HorizontalPosition = "right"
	HorizontalCustom HorizontalPosition = "custom"
)

// IsValid checks if the horizontal position is a known value
func (p HorizontalPosition) IsValid() bool {
	switch p {
	case HorizontalLeft, HorizontalCenter, HorizontalRight, HorizontalCustom:
		return true
	default:
		return false
	}
}

// SizeMode controls how the overlay container is sized along one axis
type SizeMode string

// Size mode constants
const (
	SizeAuto   SizeMode = "auto"
	SizeFull   SizeMode = "full"
	SizeCustom SizeMode = "custom"
)

// IsValid checks if the size mode is a known value
func (m SizeMode) IsValid() bool {
	switch m {
	case SizeAuto, SizeFull, SizeCustom:
		return true
	default:
		return false
	}
}

// TextScaleMode controls how main/secondary text is sized
type TextScaleMode string

// Text scale mode constants
const (
	ScaleFixed      TextScaleMode = "fixed"
	ScaleResponsive TextScaleMode = "responsive"
	ScaleFit        TextScaleMode = "fit"
)

// IsValid checks if the text scale mode is a known value
func (m TextScaleMode) IsValid() bool {
	switch m {
	case ScaleFixed, ScaleResponsive, ScaleFit:
		return true
	default:
		return false
	}
}

// AnimationKind names an entrance-style animation applied once to an element
// (the overlay container, the category image, the logo, or the ticker)
type AnimationKind string

// Animation kind constants
const (
	AnimationNone       AnimationKind = "none"
	AnimationFadeIn     AnimationKind = "fade-in"
	AnimationSlideLeft  AnimationKind = "slide-left"
	AnimationSlideRight AnimationKind = "slide-right"
	AnimationSlideUp    AnimationKind = "slide-up"
	AnimationSlideDown  AnimationKind = "slide-down"
	AnimationScaleIn    AnimationKind = "scale-in"
	AnimationRotateIn   AnimationKind = "rotate-in"
	AnimationZoomIn     AnimationKind = "zoom-in"
)

// IsValid checks if the animation kind is a known value
func (k AnimationKind) IsValid() bool {
	switch k {
	case AnimationNone, AnimationFadeIn, AnimationSlideLeft, AnimationSlideRight,
		AnimationSlideUp, AnimationSlideDown, AnimationScaleIn, AnimationRotateIn, AnimationZoomIn:
		return true
	default:
		return false
	}
}

// TextAnimationKind names a text-reveal animation for main text and company name
type TextAnimationKind string

// Text animation kind constants
const (
	TextAnimationNone        TextAnimationKind = "none"
	TextAnimationTypewriter  TextAnimationKind = "typewriter"
	TextAnimationWordFadeIn  TextAnimationKind = "word-fade-in"
	TextAnimationCharSlideIn TextAnimationKind = "char-slide-in"
)

// IsValid checks if the text animation kind is a known value
func (k TextAnimationKind) IsValid() bool {
	switch k {
	case TextAnimationNone, TextAnimationTypewriter, TextAnimationWordFadeIn, TextAnimationCharSlideIn:
		return true
	default:
		return false
	}
}

// TransitionKind names a secondary-phrase rotation transition. The set is
// closed: each kind maps to a fixed initial/entering/exiting pose triple in
// the display package.
type TransitionKind string

// Transition kind constants
const (
	TransitionFade       TransitionKind = "fade"
	TransitionSlideLeft  TransitionKind = "slide-left"
	TransitionSlideRight TransitionKind = "slide-right"
	TransitionSlideUp    TransitionKind = "slide-up"
	TransitionSlideDown  TransitionKind = "slide-down"
	TransitionZoom       TransitionKind = "zoom"
)

// IsValid checks if the transition kind is a known value
func (k TransitionKind) IsValid() bool {
	switch k {
	case TransitionFade, TransitionSlideLeft, TransitionSlideRight,
		TransitionSlideUp, TransitionSlideDown, TransitionZoom:
		return true
	default:
		return false
	}
}

// DisplayAnimationKind names a looping idle animation for the logo or
// category image while the overlay is on screen
type DisplayAnimationKind string

// Display animation kind constants
const (
	DisplayAnimationNone       DisplayAnimationKind = "none"
	DisplayAnimationPulse      DisplayAnimationKind = "pulse"
	DisplayAnimationFloat      DisplayAnimationKind = "float"
	DisplayAnimationRotateSlow DisplayAnimationKind = "rotate-slow"
	DisplayAnimationZoomSlow   DisplayAnimationKind = "zoom-slow"
	DisplayAnimationPan        DisplayAnimationKind = "pan"
)

// IsValid checks if the display animation kind is a known value
func (k DisplayAnimationKind) IsValid() bool {
	switch k {
	case DisplayAnimationNone, DisplayAnimationPulse, DisplayAnimationFloat,
		DisplayAnimationRotateSlow, DisplayAnimationZoomSlow, DisplayAnimationPan:
		return true
	default:
		return false
	}
}
