package overlay

import (
	"strconv"
	"strings"
)

// DecodeValues builds an UpdateFields from loosely typed values, as posted by
// the control panel. Each value may be the field's native type or its string
// form ("true", "0.5", "12"); values that cannot be coerced are dropped, the
// same policy applied to unknown enum members.
func DecodeValues(values map[string]any) *UpdateFields {
	d := decoder{values: values}
	return &UpdateFields{
		MainText:          d.str("main_text"),
		SecondaryText:     d.str("secondary_text"),
		TickerText:        d.str("ticker_text"),
		CompanyName:       d.str("company_name"),
		ShowCategoryImage: d.boolean("show_category_image"),
		ShowCompanyLogo:   d.boolean("show_company_logo"),
		ShowTicker:        d.boolean("show_ticker"),

		SecondaryRotationEnabled:    d.boolean("secondary_rotation_enabled"),
		SecondaryDisplayDuration:    d.float("secondary_display_duration"),
		SecondaryTransitionType:     d.str("secondary_transition_type"),
		SecondaryTransitionDuration: d.float("secondary_transition_duration"),

		VerticalPosition:   d.str("vertical_position"),
		HorizontalPosition: d.str("horizontal_position"),
		CustomTop:          d.integer("custom_top"),
		CustomBottom:       d.integer("custom_bottom"),
		CustomLeft:         d.integer("custom_left"),
		CustomRight:        d.integer("custom_right"),
		ContainerWidth:     d.str("container_width"),
		CustomWidth:        d.integer("custom_width"),
		ContainerMaxWidth:  d.integer("container_max_width"),
		ContainerMinWidth:  d.integer("container_min_width"),
		ContainerHeight:    d.str("container_height"),
		CustomHeight:       d.integer("custom_height"),
		ContainerPadding:   d.integer("container_padding"),

		TextScaleMode:        d.str("text_scale_mode"),
		TextLineHeight:       d.float("text_line_height"),
		TextMaxLines:         d.integer("text_max_lines"),
		EnableTextTruncation: d.boolean("enable_text_truncation"),

		OverlayBgColor:         d.str("overlay_bg_color"),
		OverlayBgOpacity:       d.float("overlay_bg_opacity"),
		MainTextColor:          d.str("main_text_color"),
		MainTextBgColor:        d.str("main_text_bg_color"),
		MainTextBgOpacity:      d.float("main_text_bg_opacity"),
		SecondaryTextColor:     d.str("secondary_text_color"),
		SecondaryTextBgColor:   d.str("secondary_text_bg_color"),
		SecondaryTextBgOpacity: d.float("secondary_text_bg_opacity"),
		TickerTextColor:        d.str("ticker_text_color"),
		TickerBgColor:          d.str("ticker_bg_color"),
		TickerBgOpacity:        d.float("ticker_bg_opacity"),
		CompanyNameColor:       d.str("company_name_color"),
		CompanyNameBgColor:     d.str("company_name_bg_color"),
		CompanyNameBgOpacity:   d.float("company_name_bg_opacity"),
		FooterTextColor:        d.str("footer_text_color"),
		FooterBgColor:          d.str("footer_bg_color"),
		FooterBgOpacity:        d.float("footer_bg_opacity"),
		AccentColor:            d.str("accent_color"),
		BorderColor:            d.str("border_color"),
		BorderWidth:            d.integer("border_width"),
		BgColor:                d.str("bg_color"),
		TextColor:              d.str("text_color"),

		MainFontSize:        d.integer("main_font_size"),
		SecondaryFontSize:   d.integer("secondary_font_size"),
		TickerFontSize:      d.integer("ticker_font_size"),
		CompanyNameFontSize: d.integer("company_name_font_size"),
		FooterFontSize:      d.integer("footer_font_size"),

		BorderRadius: d.integer("border_radius"),
		FontFamily:   d.str("font_family"),
		TickerSpeed:  d.integer("ticker_speed"),

		LogoSize:         d.integer("logo_size"),
		LogoOpacity:      d.float("logo_opacity"),
		LogoBorderRadius: d.integer("logo_border_radius"),
		LogoShadow:       d.boolean("logo_shadow"),

		LayoutStyle:            d.str("layout_style"),
		ShowDecorativeElements: d.boolean("show_decorative_elements"),
		Opacity:                d.float("opacity"),

		EntranceAnimation:   d.str("entrance_animation"),
		EntranceDuration:    d.float("entrance_duration"),
		EntranceDelay:       d.float("entrance_delay"),
		TextAnimation:       d.str("text_animation"),
		TextAnimationSpeed:  d.float("text_animation_speed"),
		ImageAnimation:      d.str("image_animation"),
		ImageAnimationDelay: d.float("image_animation_delay"),
		LogoAnimation:       d.str("logo_animation"),
		LogoAnimationDelay:  d.float("logo_animation_delay"),
		TickerEntrance:      d.str("ticker_entrance"),
		TickerEntranceDelay: d.float("ticker_entrance_delay"),

		LogoDisplayAnimation:           d.str("logo_display_animation"),
		LogoDisplayAnimationEnabled:    d.boolean("logo_display_animation_enabled"),
		LogoDisplayAnimationDuration:   d.float("logo_display_animation_duration"),
		LogoDisplayAnimationFrequency:  d.float("logo_display_animation_frequency"),
		ImageDisplayAnimation:          d.str("image_display_animation"),
		ImageDisplayAnimationEnabled:   d.boolean("image_display_animation_enabled"),
		ImageDisplayAnimationDuration:  d.float("image_display_animation_duration"),
		ImageDisplayAnimationFrequency: d.float("image_display_animation_frequency"),

		IsVisible: d.boolean("is_visible"),
	}
}

type decoder struct {
	values map[string]any
}

func (d decoder) str(key string) *string {
	v, ok := d.values[key]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func (d decoder) boolean(key string) *bool {
	v, ok := d.values[key]
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case bool:
		return &t
	case string:
		// Checkbox values arrive as "true"/"false"; "on" and "1" are
		// accepted for raw form submissions.
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "on", "1":
			b := true
			return &b
		case "false", "off", "0", "":
			b := false
			return &b
		}
	}
	return nil
}

func (d decoder) integer(key string) *int {
	v, ok := d.values[key]
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case float64:
		n := int(t)
		return &n
	case int:
		return &t
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return &n
		}
		// Range inputs may submit fractional strings for integer fields
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			n := int(f)
			return &n
		}
	}
	return nil
}

func (d decoder) float(key string) *float64 {
	v, ok := d.values[key]
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case float64:
		return &t
	case int:
		f := float64(t)
		return &f
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return &f
		}
	}
	return nil
}
