// Package models defines the database models for overlay settings documents.
package models

import (
	"encoding/json"
	"strings"
	"time"
)

// OverlaySettings represents the full settings document for one overlay
// category. There is exactly one row per category; the row is created with
// category defaults on first access and never deleted (reset restores
// defaults in place).
type OverlaySettings struct {
	ID       uint   `json:"-" gorm:"primaryKey;autoIncrement;column:id"`
	Category string `json:"category" gorm:"type:text;not null;uniqueIndex;column:category"`

	// Revision increases strictly on every committed write to this category.
	// Display surfaces compare it against the last value they observed.
	Revision int64 `json:"revision" gorm:"type:integer;not null;default:1;column:revision"`

	// Content
	MainText          string `json:"main_text" gorm:"type:text;column:main_text"`
	SecondaryText     string `json:"secondary_text" gorm:"type:text;column:secondary_text"`
	SecondaryPhrases  string `json:"secondary_phrases" gorm:"type:text;column:secondary_phrases"`
	TickerText        string `json:"ticker_text" gorm:"type:text;column:ticker_text"`
	CompanyName       string `json:"company_name" gorm:"type:text;column:company_name"`
	CompanyLogo       string `json:"company_logo" gorm:"type:text;column:company_logo"`
	CategoryImage     string `json:"category_image" gorm:"type:text;column:category_image"`
	ShowCategoryImage bool   `json:"show_category_image" gorm:"default:true;column:show_category_image"`
	ShowCompanyLogo   bool   `json:"show_company_logo" gorm:"default:true;column:show_company_logo"`
	ShowTicker        bool   `json:"show_ticker" gorm:"default:true;column:show_ticker"`

	// Secondary phrase rotation
	SecondaryRotationEnabled    bool           `json:"secondary_rotation_enabled" gorm:"default:false;column:secondary_rotation_enabled"`
	SecondaryDisplayDuration    float64        `json:"secondary_display_duration" gorm:"default:3.0;column:secondary_display_duration"`
	SecondaryTransitionType     TransitionKind `json:"secondary_transition_type" gorm:"type:text;default:fade;column:secondary_transition_type"`
	SecondaryTransitionDuration float64        `json:"secondary_transition_duration" gorm:"default:0.5;column:secondary_transition_duration"`

	// Position and size
	VerticalPosition   VerticalPosition   `json:"vertical_position" gorm:"type:text;default:bottom;column:vertical_position"`
	HorizontalPosition HorizontalPosition `json:"horizontal_position" gorm:"type:text;default:left;column:horizontal_position"`
	CustomTop          int                `json:"custom_top" gorm:"default:0;column:custom_top"`
	CustomBottom       int                `json:"custom_bottom" gorm:"default:0;column:custom_bottom"`
	CustomLeft         int                `json:"custom_left" gorm:"default:0;column:custom_left"`
	CustomRight        int                `json:"custom_right" gorm:"default:0;column:custom_right"`
	ContainerWidth     SizeMode           `json:"container_width" gorm:"type:text;default:auto;column:container_width"`
	CustomWidth        int                `json:"custom_width" gorm:"default:800;column:custom_width"`
	ContainerMaxWidth  int                `json:"container_max_width" gorm:"default:1200;column:container_max_width"`
	ContainerMinWidth  int                `json:"container_min_width" gorm:"default:600;column:container_min_width"`
	ContainerHeight    SizeMode           `json:"container_height" gorm:"type:text;default:auto;column:container_height"`
	CustomHeight       int                `json:"custom_height" gorm:"default:200;column:custom_height"`
	ContainerPadding   int                `json:"container_padding" gorm:"default:25;column:container_padding"`

	// Text scaling
	TextScaleMode        TextScaleMode `json:"text_scale_mode" gorm:"type:text;default:responsive;column:text_scale_mode"`
	TextLineHeight       float64       `json:"text_line_height" gorm:"default:1.2;column:text_line_height"`
	TextMaxLines         int           `json:"text_max_lines" gorm:"default:2;column:text_max_lines"`
	EnableTextTruncation bool          `json:"enable_text_truncation" gorm:"default:true;column:enable_text_truncation"`

	// Overlay container colors
	OverlayBgColor   string  `json:"overlay_bg_color" gorm:"type:text;default:#000000;column:overlay_bg_color"`
	OverlayBgOpacity float64 `json:"overlay_bg_opacity" gorm:"default:0.9;column:overlay_bg_opacity"`

	// Main text colors
	MainTextColor     string  `json:"main_text_color" gorm:"type:text;default:#FFFFFF;column:main_text_color"`
	MainTextBgColor   string  `json:"main_text_bg_color" gorm:"type:text;default:transparent;column:main_text_bg_color"`
	MainTextBgOpacity float64 `json:"main_text_bg_opacity" gorm:"default:1.0;column:main_text_bg_opacity"`

	// Secondary text colors
	SecondaryTextColor     string  `json:"secondary_text_color" gorm:"type:text;default:#FFD700;column:secondary_text_color"`
	SecondaryTextBgColor   string  `json:"secondary_text_bg_color" gorm:"type:text;default:transparent;column:secondary_text_bg_color"`
	SecondaryTextBgOpacity float64 `json:"secondary_text_bg_opacity" gorm:"default:1.0;column:secondary_text_bg_opacity"`

	// Ticker colors
	TickerTextColor string  `json:"ticker_text_color" gorm:"type:text;default:#FFFFFF;column:ticker_text_color"`
	TickerBgColor   string  `json:"ticker_bg_color" gorm:"type:text;default:#1a1a1a;column:ticker_bg_color"`
	TickerBgOpacity float64 `json:"ticker_bg_opacity" gorm:"default:0.8;column:ticker_bg_opacity"`

	// Company name colors
	CompanyNameColor     string  `json:"company_name_color" gorm:"type:text;default:#FFD700;column:company_name_color"`
	CompanyNameBgColor   string  `json:"company_name_bg_color" gorm:"type:text;default:transparent;column:company_name_bg_color"`
	CompanyNameBgOpacity float64 `json:"company_name_bg_opacity" gorm:"default:1.0;column:company_name_bg_opacity"`

	// Footer colors
	FooterTextColor string  `json:"footer_text_color" gorm:"type:text;default:#CCCCCC;column:footer_text_color"`
	FooterBgColor   string  `json:"footer_bg_color" gorm:"type:text;default:#1a1a1a;column:footer_bg_color"`
	FooterBgOpacity float64 `json:"footer_bg_opacity" gorm:"default:0.7;column:footer_bg_opacity"`

	// Accent and border
	AccentColor string `json:"accent_color" gorm:"type:text;default:#FFD700;column:accent_color"`
	BorderColor string `json:"border_color" gorm:"type:text;default:#FFD700;column:border_color"`
	BorderWidth int    `json:"border_width" gorm:"default:0;column:border_width"`

	// Legacy color fields kept for older control panels
	BgColor   string `json:"bg_color" gorm:"type:text;default:#000000;column:bg_color"`
	TextColor string `json:"text_color" gorm:"type:text;default:#FFFFFF;column:text_color"`

	// Font sizes
	MainFontSize        int `json:"main_font_size" gorm:"default:32;column:main_font_size"`
	SecondaryFontSize   int `json:"secondary_font_size" gorm:"default:24;column:secondary_font_size"`
	TickerFontSize      int `json:"ticker_font_size" gorm:"default:18;column:ticker_font_size"`
	CompanyNameFontSize int `json:"company_name_font_size" gorm:"default:20;column:company_name_font_size"`
	FooterFontSize      int `json:"footer_font_size" gorm:"default:14;column:footer_font_size"`

	BorderRadius int    `json:"border_radius" gorm:"default:10;column:border_radius"`
	FontFamily   string `json:"font_family" gorm:"type:text;default:Arial, sans-serif;column:font_family"`
	TickerSpeed  int    `json:"ticker_speed" gorm:"default:50;column:ticker_speed"`

	// Logo settings
	LogoSize         int     `json:"logo_size" gorm:"default:80;column:logo_size"`
	LogoOpacity      float64 `json:"logo_opacity" gorm:"default:1.0;column:logo_opacity"`
	LogoBorderRadius int     `json:"logo_border_radius" gorm:"default:0;column:logo_border_radius"`
	LogoShadow       bool    `json:"logo_shadow" gorm:"default:false;column:logo_shadow"`

	// Layout
	LayoutStyle            string  `json:"layout_style" gorm:"type:text;default:default;column:layout_style"`
	ShowDecorativeElements bool    `json:"show_decorative_elements" gorm:"default:true;column:show_decorative_elements"`
	Opacity                float64 `json:"opacity" gorm:"default:0.9;column:opacity"`

	// Entrance and element animations
	EntranceAnimation   AnimationKind     `json:"entrance_animation" gorm:"type:text;default:slide-left;column:entrance_animation"`
	EntranceDuration    float64           `json:"entrance_duration" gorm:"default:1.0;column:entrance_duration"`
	EntranceDelay       float64           `json:"entrance_delay" gorm:"default:0.0;column:entrance_delay"`
	TextAnimation       TextAnimationKind `json:"text_animation" gorm:"type:text;default:none;column:text_animation"`
	TextAnimationSpeed  float64           `json:"text_animation_speed" gorm:"default:0.05;column:text_animation_speed"`
	ImageAnimation      AnimationKind     `json:"image_animation" gorm:"type:text;default:fade-in;column:image_animation"`
	ImageAnimationDelay float64           `json:"image_animation_delay" gorm:"default:0.3;column:image_animation_delay"`
	LogoAnimation       AnimationKind     `json:"logo_animation" gorm:"type:text;default:scale-in;column:logo_animation"`
	LogoAnimationDelay  float64           `json:"logo_animation_delay" gorm:"default:0.5;column:logo_animation_delay"`
	TickerEntrance      AnimationKind     `json:"ticker_entrance" gorm:"type:text;default:slide-up;column:ticker_entrance"`
	TickerEntranceDelay float64           `json:"ticker_entrance_delay" gorm:"default:0.8;column:ticker_entrance_delay"`

	// Looping idle animations shown while the overlay stays visible
	LogoDisplayAnimation           DisplayAnimationKind `json:"logo_display_animation" gorm:"type:text;default:none;column:logo_display_animation"`
	LogoDisplayAnimationEnabled    bool                 `json:"logo_display_animation_enabled" gorm:"default:false;column:logo_display_animation_enabled"`
	LogoDisplayAnimationDuration   float64              `json:"logo_display_animation_duration" gorm:"default:3.0;column:logo_display_animation_duration"`
	LogoDisplayAnimationFrequency  float64              `json:"logo_display_animation_frequency" gorm:"default:5.0;column:logo_display_animation_frequency"`
	ImageDisplayAnimation          DisplayAnimationKind `json:"image_display_animation" gorm:"type:text;default:none;column:image_display_animation"`
	ImageDisplayAnimationEnabled   bool                 `json:"image_display_animation_enabled" gorm:"default:false;column:image_display_animation_enabled"`
	ImageDisplayAnimationDuration  float64              `json:"image_display_animation_duration" gorm:"default:3.0;column:image_display_animation_duration"`
	ImageDisplayAnimationFrequency float64              `json:"image_display_animation_frequency" gorm:"default:5.0;column:image_display_animation_frequency"`

	// Visibility
	IsVisible bool `json:"is_visible" gorm:"default:false;column:is_visible"`

	CreatedAt time.Time `json:"created_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:updated_at"`
}

// TableName overrides the GORM table name
func (OverlaySettings) TableName() string {
	return "overlay_settings"
}

// PhraseList decodes the stored secondary phrase list. A missing or corrupt
// value decodes to an empty list rather than an error; the stored value is
// always written by SetPhraseList.
func (s *OverlaySettings) PhraseList() []string {
	if s.SecondaryPhrases == "" {
		return []string{}
	}
	var phrases []string
	if err := json.Unmarshal([]byte(s.SecondaryPhrases), &phrases); err != nil {
		return []string{}
	}
	return phrases
}

// SetPhraseList encodes and stores the secondary phrase list
func (s *OverlaySettings) SetPhraseList(phrases []string) {
	if phrases == nil {
		phrases = []string{}
	}
	encoded, _ := json.Marshal(phrases)
	s.SecondaryPhrases = string(encoded)
}

// FilterBlankPhrases trims each phrase and drops empty entries, preserving
// order. Used before any phrase-list commit.
func FilterBlankPhrases(phrases []string) []string {
	filtered := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	return filtered
}

// ClampRanges normalizes numeric fields into their valid ranges: opacities
// into [0,1] and durations/delays/speeds to non-negative values.
func (s *OverlaySettings) ClampRanges() {
	for _, f := range []*float64{
		&s.OverlayBgOpacity, &s.MainTextBgOpacity, &s.SecondaryTextBgOpacity,
		&s.TickerBgOpacity, &s.CompanyNameBgOpacity, &s.FooterBgOpacity,
		&s.LogoOpacity, &s.Opacity,
	} {
		*f = clamp01(*f)
	}
	for _, f := range []*float64{
		&s.EntranceDuration, &s.EntranceDelay, &s.TextAnimationSpeed,
		&s.ImageAnimationDelay, &s.LogoAnimationDelay, &s.TickerEntranceDelay,
		&s.SecondaryDisplayDuration, &s.SecondaryTransitionDuration,
		&s.LogoDisplayAnimationDuration, &s.LogoDisplayAnimationFrequency,
		&s.ImageDisplayAnimationDuration, &s.ImageDisplayAnimationFrequency,
	} {
		if *f < 0 {
			*f = 0
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
