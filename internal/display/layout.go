package display

import (
	"time"

	"github.com/zearom/caster/internal/models"
)

// Size is a viewport size in pixels
type Size struct {
	Width  int
	Height int
}

// DefaultViewport is the reference canvas for broadcast overlays
var DefaultViewport = Size{Width: 1920, Height: 1080}

// referenceWidth is the design width responsive font scaling is relative to
const referenceWidth = 1920.0

// Alignment positions the container along one axis
type Alignment string

// Alignment constants
const (
	AlignStart  Alignment = "start"
	AlignCenter Alignment = "center"
	AlignEnd    Alignment = "end"
	AlignCustom Alignment = "custom"
)

// DimensionMode describes how a container dimension is resolved
type DimensionMode string

// Dimension modes
const (
	DimensionAuto   DimensionMode = "auto"
	DimensionFull   DimensionMode = "full"
	DimensionCustom DimensionMode = "custom"
)

// Dimension is a resolved container dimension
type Dimension struct {
	Mode DimensionMode
	Px   int // Meaningful for DimensionCustom
	Min  int
	Max  int
}

// Geometry is the concrete visual geometry computed from declarative
// settings: everything the sink needs to position and size the overlay.
type Geometry struct {
	VerticalAlign   Alignment
	HorizontalAlign Alignment

	// Pixel offsets, used when the matching alignment is AlignCustom
	OffsetTop    int
	OffsetBottom int
	OffsetLeft   int
	OffsetRight  int

	Width   Dimension
	Height  Dimension
	Padding int

	MainFontPx      float64
	SecondaryFontPx float64
	LineHeight      float64
	MaxLines        int
	Truncate        bool
}

// TextMeasurer estimates rendered text width. The display core only needs
// ratios, not pixel-perfect metrics, so a heuristic implementation is
// sufficient outside a real rendering engine.
type TextMeasurer interface {
	TextWidth(text string, fontPx float64, fontFamily string) float64
}

// avgGlyphWidthRatio approximates glyph width as a fraction of font size for
// common proportional fonts
const avgGlyphWidthRatio = 0.55

// HeuristicMeasurer estimates width from character count and font size
type HeuristicMeasurer struct{}

// TextWidth estimates the rendered width of text in pixels
func (HeuristicMeasurer) TextWidth(text string, fontPx float64, _ string) float64 {
	return float64(len([]rune(text))) * fontPx * avgGlyphWidthRatio
}

// LayoutEngine computes concrete geometry from declarative settings
type LayoutEngine struct {
	viewport Size
	measurer TextMeasurer
}

// NewLayoutEngine creates a layout engine for the given viewport
func NewLayoutEngine(viewport Size, measurer TextMeasurer) *LayoutEngine {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		viewport = DefaultViewport
	}
	if measurer == nil {
		measurer = HeuristicMeasurer{}
	}
	return &LayoutEngine{viewport: viewport, measurer: measurer}
}

// Compute resolves position, sizing, and text scaling for a document
func (e *LayoutEngine) Compute(s *models.OverlaySettings) Geometry {
	g := Geometry{
		VerticalAlign:   verticalAlignment(s.VerticalPosition),
		HorizontalAlign: horizontalAlignment(s.HorizontalPosition),
		OffsetTop:       s.CustomTop,
		OffsetBottom:    s.CustomBottom,
		OffsetLeft:      s.CustomLeft,
		OffsetRight:     s.CustomRight,
		Padding:         s.ContainerPadding,
		LineHeight:      s.TextLineHeight,
		MaxLines:        s.TextMaxLines,
		Truncate:        s.EnableTextTruncation,
	}

	g.Width = e.dimension(s.ContainerWidth, s.CustomWidth, s.ContainerMinWidth, s.ContainerMaxWidth, e.viewport.Width)
	g.Height = e.dimension(s.ContainerHeight, s.CustomHeight, 0, 0, e.viewport.Height)

	g.MainFontPx = e.fontSize(s, float64(s.MainFontSize), s.MainText, g)
	g.SecondaryFontPx = e.fontSize(s, float64(s.SecondaryFontSize), s.SecondaryText, g)

	return g
}

// dimension resolves one sizing axis with min/max clamping
func (e *LayoutEngine) dimension(mode models.SizeMode, custom, min, max, full int) Dimension {
	d := Dimension{Min: min, Max: max}
	switch mode {
	case models.SizeFull:
		d.Mode = DimensionFull
		d.Px = full
	case models.SizeCustom:
		d.Mode = DimensionCustom
		d.Px = clampInt(custom, min, max)
	default:
		d.Mode = DimensionAuto
	}
	return d
}

// fontSize resolves a font size under the document's scale mode. Fit mode
// shrinks by a single width-ratio pass rather than iterating to convergence.
func (e *LayoutEngine) fontSize(s *models.OverlaySettings, base float64, text string, g Geometry) float64 {
	switch s.TextScaleMode {
	case models.ScaleFixed:
		return base
	case models.ScaleResponsive:
		return base * float64(e.viewport.Width) / referenceWidth
	case models.ScaleFit:
		size := base * float64(e.viewport.Width) / referenceWidth
		avail := e.availableTextWidth(g)
		if avail <= 0 || text == "" {
			return size
		}
		measured := e.measurer.TextWidth(text, size, s.FontFamily)
		if measured > avail {
			size *= avail / measured
		}
		return size
	default:
		return base
	}
}

// availableTextWidth is the container's inner width for text
func (e *LayoutEngine) availableTextWidth(g Geometry) float64 {
	var width int
	switch g.Width.Mode {
	case DimensionFull:
		width = e.viewport.Width
	case DimensionCustom:
		width = g.Width.Px
	default:
		width = g.Width.Max
		if width == 0 {
			width = e.viewport.Width
		}
	}
	return float64(width - 2*g.Padding)
}

// TickerDuration computes the ticker's scroll period: the text must travel
// its own rendered width plus the full viewport at ticker_speed px/s.
func (e *LayoutEngine) TickerDuration(s *models.OverlaySettings, text string) time.Duration {
	speed := float64(s.TickerSpeed)
	if speed <= 0 {
		speed = 50
	}
	width := e.measurer.TextWidth(text, float64(s.TickerFontSize), s.FontFamily)
	seconds := (width + float64(e.viewport.Width)) / speed
	return time.Duration(seconds * float64(time.Second))
}

func verticalAlignment(p models.VerticalPosition) Alignment {
	switch p {
	case models.VerticalTop:
		return AlignStart
	case models.VerticalCenter:
		return AlignCenter
	case models.VerticalCustom:
		return AlignCustom
	default:
		return AlignEnd
	}
}

func horizontalAlignment(p models.HorizontalPosition) Alignment {
	switch p {
	case models.HorizontalCenter:
		return AlignCenter
	case models.HorizontalRight:
		return AlignEnd
	case models.HorizontalCustom:
		return AlignCustom
	default:
		return AlignStart
	}
}

// clampInt clamps v into [min, max]; a zero bound means unbounded
func clampInt(v, min, max int) int {
	if min > 0 && v < min {
		return min
	}
	if max > 0 && v > max {
		return max
	}
	return v
}
