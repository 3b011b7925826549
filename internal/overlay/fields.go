package overlay

import "github.com/zearom/caster/internal/models"

// UpdateFields carries a partial settings update. Every field is a pointer:
// nil means "not present in this save, keep the stored value". Enum-typed
// fields are applied only when the value is a known member of the closed set;
// unknown values are dropped rather than failing the whole save, matching how
// the control panel tolerates stale option lists.
type UpdateFields struct {
	// Content
	MainText          *string `json:"main_text,omitempty"`
	SecondaryText     *string `json:"secondary_text,omitempty"`
	TickerText        *string `json:"ticker_text,omitempty"`
	CompanyName       *string `json:"company_name,omitempty"`
	ShowCategoryImage *bool   `json:"show_category_image,omitempty"`
	ShowCompanyLogo   *bool   `json:"show_company_logo,omitempty"`
	ShowTicker        *bool   `json:"show_ticker,omitempty"`

	// Secondary phrase rotation
	SecondaryRotationEnabled    *bool    `json:"secondary_rotation_enabled,omitempty"`
	SecondaryDisplayDuration    *float64 `json:"secondary_display_duration,omitempty"`
	SecondaryTransitionType     *string  `json:"secondary_transition_type,omitempty"`
	SecondaryTransitionDuration *float64 `json:"secondary_transition_duration,omitempty"`

	// Position and size
	VerticalPosition   *string `json:"vertical_position,omitempty"`
	HorizontalPosition *string `json:"horizontal_position,omitempty"`
	CustomTop          *int    `json:"custom_top,omitempty"`
	CustomBottom       *int    `json:"custom_bottom,omitempty"`
	CustomLeft         *int    `json:"custom_left,omitempty"`
	CustomRight        *int    `json:"custom_right,omitempty"`
	ContainerWidth     *string `json:"container_width,omitempty"`
	CustomWidth        *int    `json:"custom_width,omitempty"`
	ContainerMaxWidth  *int    `json:"container_max_width,omitempty"`
	ContainerMinWidth  *int    `json:"container_min_width,omitempty"`
	ContainerHeight    *string `json:"container_height,omitempty"`
	CustomHeight       *int    `json:"custom_height,omitempty"`
	ContainerPadding   *int    `json:"container_padding,omitempty"`

	// Text scaling
	TextScaleMode        *string  `json:"text_scale_mode,omitempty"`
	TextLineHeight       *float64 `json:"text_line_height,omitempty"`
	TextMaxLines         *int     `json:"text_max_lines,omitempty"`
	EnableTextTruncation *bool    `json:"enable_text_truncation,omitempty"`

	// Colors and opacities
	OverlayBgColor         *string  `json:"overlay_bg_color,omitempty"`
	OverlayBgOpacity       *float64 `json:"overlay_bg_opacity,omitempty"`
	MainTextColor          *string  `json:"main_text_color,omitempty"`
	MainTextBgColor        *string  `json:"main_text_bg_color,omitempty"`
	MainTextBgOpacity      *float64 `json:"main_text_bg_opacity,omitempty"`
	SecondaryTextColor     *string  `json:"secondary_text_color,omitempty"`
	SecondaryTextBgColor   *string  `json:"secondary_text_bg_color,omitempty"`
	SecondaryTextBgOpacity *float64 `json:"secondary_text_bg_opacity,omitempty"`
	TickerTextColor        *string  `json:"ticker_text_color,omitempty"`
	TickerBgColor          *string  `json:"ticker_bg_color,omitempty"`
	TickerBgOpacity        *float64 `json:"ticker_bg_opacity,omitempty"`
	CompanyNameColor       *string  `json:"company_name_color,omitempty"`
	CompanyNameBgColor     *string  `json:"company_name_bg_color,omitempty"`
	CompanyNameBgOpacity   *float64 `json:"company_name_bg_opacity,omitempty"`
	FooterTextColor        *string  `json:"footer_text_color,omitempty"`
	FooterBgColor          *string  `json:"footer_bg_color,omitempty"`
	FooterBgOpacity        *float64 `json:"footer_bg_opacity,omitempty"`
	AccentColor            *string  `json:"accent_color,omitempty"`
	BorderColor            *string  `json:"border_color,omitempty"`
	BorderWidth            *int     `json:"border_width,omitempty"`
	BgColor                *string  `json:"bg_color,omitempty"`
	TextColor              *string  `json:"text_color,omitempty"`

	// Font sizes
	MainFontSize        *int `json:"main_font_size,omitempty"`
	SecondaryFontSize   *int `json:"secondary_font_size,omitempty"`
	TickerFontSize      *int `json:"ticker_font_size,omitempty"`
	CompanyNameFontSize *int `json:"company_name_font_size,omitempty"`
	FooterFontSize      *int `json:"footer_font_size,omitempty"`

	BorderRadius *int    `json:"border_radius,omitempty"`
	FontFamily   *string `json:"font_family,omitempty"`
	TickerSpeed  *int    `json:"ticker_speed,omitempty"`

	// Logo settings
	LogoSize         *int     `json:"logo_size,omitempty"`
	LogoOpacity      *float64 `json:"logo_opacity,omitempty"`
	LogoBorderRadius *int     `json:"logo_border_radius,omitempty"`
	LogoShadow       *bool    `json:"logo_shadow,omitempty"`

	// Layout
	LayoutStyle            *string  `json:"layout_style,omitempty"`
	ShowDecorativeElements *bool    `json:"show_decorative_elements,omitempty"`
	Opacity                *float64 `json:"opacity,omitempty"`

	// Animations
	EntranceAnimation   *string  `json:"entrance_animation,omitempty"`
	EntranceDuration    *float64 `json:"entrance_duration,omitempty"`
	EntranceDelay       *float64 `json:"entrance_delay,omitempty"`
	TextAnimation       *string  `json:"text_animation,omitempty"`
	TextAnimationSpeed  *float64 `json:"text_animation_speed,omitempty"`
	ImageAnimation      *string  `json:"image_animation,omitempty"`
	ImageAnimationDelay *float64 `json:"image_animation_delay,omitempty"`
	LogoAnimation       *string  `json:"logo_animation,omitempty"`
	LogoAnimationDelay  *float64 `json:"logo_animation_delay,omitempty"`
	TickerEntrance      *string  `json:"ticker_entrance,omitempty"`
	TickerEntranceDelay *float64 `json:"ticker_entrance_delay,omitempty"`

	// Looping display animations
	LogoDisplayAnimation           *string  `json:"logo_display_animation,omitempty"`
	LogoDisplayAnimationEnabled    *bool    `json:"logo_display_animation_enabled,omitempty"`
	LogoDisplayAnimationDuration   *float64 `json:"logo_display_animation_duration,omitempty"`
	LogoDisplayAnimationFrequency  *float64 `json:"logo_display_animation_frequency,omitempty"`
	ImageDisplayAnimation          *string  `json:"image_display_animation,omitempty"`
	ImageDisplayAnimationEnabled   *bool    `json:"image_display_animation_enabled,omitempty"`
	ImageDisplayAnimationDuration  *float64 `json:"image_display_animation_duration,omitempty"`
	ImageDisplayAnimationFrequency *float64 `json:"image_display_animation_frequency,omitempty"`

	// Visibility
	IsVisible *bool `json:"is_visible,omitempty"`
}

// Apply writes every present field onto the settings document. Numeric
// ranges are clamped afterwards by the caller via ClampRanges.
func (f *UpdateFields) Apply(s *models.OverlaySettings) {
	setString(f.MainText, &s.MainText)
	setString(f.SecondaryText, &s.SecondaryText)
	setString(f.TickerText, &s.TickerText)
	setString(f.CompanyName, &s.CompanyName)
	setBool(f.ShowCategoryImage, &s.ShowCategoryImage)
	setBool(f.ShowCompanyLogo, &s.ShowCompanyLogo)
	setBool(f.ShowTicker, &s.ShowTicker)

	setBool(f.SecondaryRotationEnabled, &s.SecondaryRotationEnabled)
	setFloat(f.SecondaryDisplayDuration, &s.SecondaryDisplayDuration)
	if f.SecondaryTransitionType != nil {
		if k := models.TransitionKind(*f.SecondaryTransitionType); k.IsValid() {
			s.SecondaryTransitionType = k
		}
	}
	setFloat(f.SecondaryTransitionDuration, &s.SecondaryTransitionDuration)

	if f.VerticalPosition != nil {
		if p := models.VerticalPosition(*f.VerticalPosition); p.IsValid() {
			s.VerticalPosition = p
		}
	}
	if f.HorizontalPosition != nil {
		if p := models.HorizontalPosition(*f.HorizontalPosition); p.IsValid() {
			s.HorizontalPosition = p
		}
	}
	setInt(f.CustomTop, &s.CustomTop)
	setInt(f.CustomBottom, &s.CustomBottom)
	setInt(f.CustomLeft, &s.CustomLeft)
	setInt(f.CustomRight, &s.CustomRight)
	if f.ContainerWidth != nil {
		if m := models.SizeMode(*f.ContainerWidth); m.IsValid() {
			s.ContainerWidth = m
		}
	}
	setInt(f.CustomWidth, &s.CustomWidth)
	setInt(f.ContainerMaxWidth, &s.ContainerMaxWidth)
	setInt(f.ContainerMinWidth, &s.ContainerMinWidth)
	if f.ContainerHeight != nil {
		if m := models.SizeMode(*f.ContainerHeight); m.IsValid() {
			s.ContainerHeight = m
		}
	}
	setInt(f.CustomHeight, &s.CustomHeight)
	setInt(f.ContainerPadding, &s.ContainerPadding)

	if f.TextScaleMode != nil {
		if m := models.TextScaleMode(*f.TextScaleMode); m.IsValid() {
			s.TextScaleMode = m
		}
	}
	setFloat(f.TextLineHeight, &s.TextLineHeight)
	setInt(f.TextMaxLines, &s.TextMaxLines)
	setBool(f.EnableTextTruncation, &s.EnableTextTruncation)

	setString(f.OverlayBgColor, &s.OverlayBgColor)
	setFloat(f.OverlayBgOpacity, &s.OverlayBgOpacity)
	setString(f.MainTextColor, &s.MainTextColor)
	setString(f.MainTextBgColor, &s.MainTextBgColor)
	setFloat(f.MainTextBgOpacity, &s.MainTextBgOpacity)
	setString(f.SecondaryTextColor, &s.SecondaryTextColor)
	setString(f.SecondaryTextBgColor, &s.SecondaryTextBgColor)
	setFloat(f.SecondaryTextBgOpacity, &s.SecondaryTextBgOpacity)
	setString(f.TickerTextColor, &s.TickerTextColor)
	setString(f.TickerBgColor, &s.TickerBgColor)
	setFloat(f.TickerBgOpacity, &s.TickerBgOpacity)
	setString(f.CompanyNameColor, &s.CompanyNameColor)
	setString(f.CompanyNameBgColor, &s.CompanyNameBgColor)
	setFloat(f.CompanyNameBgOpacity, &s.CompanyNameBgOpacity)
	setString(f.FooterTextColor, &s.FooterTextColor)
	setString(f.FooterBgColor, &s.FooterBgColor)
	setFloat(f.FooterBgOpacity, &s.FooterBgOpacity)
	setString(f.AccentColor, &s.AccentColor)
	setString(f.BorderColor, &s.BorderColor)
	setInt(f.BorderWidth, &s.BorderWidth)
	setString(f.BgColor, &s.BgColor)
	setString(f.TextColor, &s.TextColor)

	setInt(f.MainFontSize, &s.MainFontSize)
	setInt(f.SecondaryFontSize, &s.SecondaryFontSize)
	setInt(f.TickerFontSize, &s.TickerFontSize)
	setInt(f.CompanyNameFontSize, &s.CompanyNameFontSize)
	setInt(f.FooterFontSize, &s.FooterFontSize)

	setInt(f.BorderRadius, &s.BorderRadius)
	setString(f.FontFamily, &s.FontFamily)
	setInt(f.TickerSpeed, &s.TickerSpeed)

	setInt(f.LogoSize, &s.LogoSize)
	setFloat(f.LogoOpacity, &s.LogoOpacity)
	setInt(f.LogoBorderRadius, &s.LogoBorderRadius)
	setBool(f.LogoShadow, &s.LogoShadow)

	setString(f.LayoutStyle, &s.LayoutStyle)
	setBool(f.ShowDecorativeElements, &s.ShowDecorativeElements)
	setFloat(f.Opacity, &s.Opacity)

	if f.EntranceAnimation != nil {
		if k := models.AnimationKind(*f.EntranceAnimation); k.IsValid() {
			s.EntranceAnimation = k
		}
	}
	setFloat(f.EntranceDuration, &s.EntranceDuration)
	setFloat(f.EntranceDelay, &s.EntranceDelay)
	if f.TextAnimation != nil {
		if k := models.TextAnimationKind(*f.TextAnimation); k.IsValid() {
			s.TextAnimation = k
		}
	}
	setFloat(f.TextAnimationSpeed, &s.TextAnimationSpeed)
	if f.ImageAnimation != nil {
		if k := models.AnimationKind(*f.ImageAnimation); k.IsValid() {
			s.ImageAnimation = k
		}
	}
	setFloat(f.ImageAnimationDelay, &s.ImageAnimationDelay)
	if f.LogoAnimation != nil {
		if k := models.AnimationKind(*f.LogoAnimation); k.IsValid() {
			s.LogoAnimation = k
		}
	}
	setFloat(f.LogoAnimationDelay, &s.LogoAnimationDelay)
	if f.TickerEntrance != nil {
		if k := models.AnimationKind(*f.TickerEntrance); k.IsValid() {
			s.TickerEntrance = k
		}
	}
	setFloat(f.TickerEntranceDelay, &s.TickerEntranceDelay)

	if f.LogoDisplayAnimation != nil {
		if k := models.DisplayAnimationKind(*f.LogoDisplayAnimation); k.IsValid() {
			s.LogoDisplayAnimation = k
		}
	}
	setBool(f.LogoDisplayAnimationEnabled, &s.LogoDisplayAnimationEnabled)
	setFloat(f.LogoDisplayAnimationDuration, &s.LogoDisplayAnimationDuration)
	setFloat(f.LogoDisplayAnimationFrequency, &s.LogoDisplayAnimationFrequency)
	if f.ImageDisplayAnimation != nil {
		if k := models.DisplayAnimationKind(*f.ImageDisplayAnimation); k.IsValid() {
			s.ImageDisplayAnimation = k
		}
	}
	setBool(f.ImageDisplayAnimationEnabled, &s.ImageDisplayAnimationEnabled)
	setFloat(f.ImageDisplayAnimationDuration, &s.ImageDisplayAnimationDuration)
	setFloat(f.ImageDisplayAnimationFrequency, &s.ImageDisplayAnimationFrequency)

	setBool(f.IsVisible, &s.IsVisible)
}

func setString(src *string, dst *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(src *int, dst *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(src *float64, dst *float64) {
	if src != nil {
		*dst = *src
	}
}

func setBool(src *bool, dst *bool) {
	if src != nil {
		*dst = *src
	}
}
