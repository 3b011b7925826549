package models

// Known overlay categories provisioned at startup
const (
	CategoryFuneral  = "funeral"
	CategoryWedding  = "wedding"
	CategoryCeremony = "ceremony"
)

// KnownCategories lists the categories provisioned with defaults at startup.
// Other category names are still accepted and provisioned on first access.
var KnownCategories = []string{CategoryFuneral, CategoryWedding, CategoryCeremony}

// DefaultOverlaySettings returns a settings document populated with defaults
// for the given category. Unknown categories get the funeral palette, matching
// how templates fall back to the funeral theme.
func DefaultOverlaySettings(category string) *OverlaySettings {
	s := baseOverlaySettings(category)

	switch category {
	case CategoryWedding:
		s.MainText = "Together Forever"
		s.SecondaryText = "Celebrating Love & Unity"
		s.TickerText = "Join us as we celebrate this beautiful union."
		s.CompanyName = "Wedding Services"
		s.BgColor = "#FFE4E1"
		s.AccentColor = "#D4AF37"
		s.TextColor = "#8B008B"
		s.OverlayBgColor = "#FFFFFF"
		s.OverlayBgOpacity = 0.95
		s.MainTextColor = "#D4AF37"
		s.SecondaryTextColor = "#8B7355"
		s.TickerTextColor = "#333333"
		s.TickerBgColor = "#F5F5DC"
		s.TickerBgOpacity = 0.9
		s.CompanyNameColor = "#D4AF37"
		s.FooterTextColor = "#666666"
		s.FooterBgColor = "#F5F5DC"
		s.FooterBgOpacity = 0.8
		s.BorderColor = "#D4AF37"
		s.BorderWidth = 2
		s.LogoAnimation = AnimationFadeIn
		s.LogoBorderRadius = 50
		s.LogoShadow = true
		s.LogoDisplayAnimation = DisplayAnimationFloat
		s.ImageDisplayAnimation = DisplayAnimationPan
	case CategoryCeremony:
		s.MainText = "Special Ceremony"
		s.SecondaryText = "A Moment to Remember"
		s.TickerText = "Welcome to this special occasion."
		s.CompanyName = "Event Services"
		s.BgColor = "#000080"
		s.AccentColor = "#FFD700"
		s.TextColor = "#FFFFFF"
		s.OverlayBgColor = "#1a237e"
		s.TickerBgColor = "#0d47a1"
		s.FooterTextColor = "#DDDDDD"
		s.FooterBgColor = "#0d47a1"
		s.BorderWidth = 1
		s.LogoAnimation = AnimationRotateIn
		s.LogoBorderRadius = 10
		s.LogoDisplayAnimation = DisplayAnimationRotateSlow
		s.ImageDisplayAnimation = DisplayAnimationZoomSlow
	default: // funeral palette
		s.MainText = "In Loving Memory"
		s.SecondaryText = "Celebrating a Life Well Lived"
		s.TickerText = "We gather today to honor and remember."
		s.CompanyName = "Funeral Services"
		s.BgColor = "#1a1a1a"
		s.AccentColor = "#FFD700"
		s.TextColor = "#E8E8E8"
		s.LogoAnimation = AnimationScaleIn
		s.LogoDisplayAnimation = DisplayAnimationPulse
		s.ImageDisplayAnimation = DisplayAnimationZoomSlow
	}

	return s
}

// baseOverlaySettings holds the category-independent defaults
func baseOverlaySettings(category string) *OverlaySettings {
	s := &OverlaySettings{
		Category: category,
		Revision: 1,

		ShowCategoryImage: true,
		ShowCompanyLogo:   true,
		ShowTicker:        true,

		SecondaryRotationEnabled:    false,
		SecondaryDisplayDuration:    3.0,
		SecondaryTransitionType:     TransitionFade,
		SecondaryTransitionDuration: 0.5,

		VerticalPosition:   VerticalBottom,
		HorizontalPosition: HorizontalLeft,
		ContainerWidth:     SizeAuto,
		CustomWidth:        800,
		ContainerMaxWidth:  1200,
		ContainerMinWidth:  600,
		ContainerHeight:    SizeAuto,
		CustomHeight:       200,
		ContainerPadding:   25,

		TextScaleMode:        ScaleResponsive,
		TextLineHeight:       1.2,
		TextMaxLines:         2,
		EnableTextTruncation: true,

		OverlayBgColor:         "#000000",
		OverlayBgOpacity:       0.9,
		MainTextColor:          "#FFFFFF",
		MainTextBgColor:        "transparent",
		MainTextBgOpacity:      1.0,
		SecondaryTextColor:     "#FFD700",
		SecondaryTextBgColor:   "transparent",
		SecondaryTextBgOpacity: 1.0,
		TickerTextColor:        "#FFFFFF",
		TickerBgColor:          "#1a1a1a",
		TickerBgOpacity:        0.8,
		CompanyNameColor:       "#FFD700",
		CompanyNameBgColor:     "transparent",
		CompanyNameBgOpacity:   1.0,
		FooterTextColor:        "#CCCCCC",
		FooterBgColor:          "#1a1a1a",
		FooterBgOpacity:        0.7,
		AccentColor:            "#FFD700",
		BorderColor:            "#FFD700",

		MainFontSize:        32,
		SecondaryFontSize:   24,
		TickerFontSize:      18,
		CompanyNameFontSize: 20,
		FooterFontSize:      14,
		BorderRadius:        10,
		FontFamily:          "Arial, sans-serif",
		TickerSpeed:         50,

		LogoSize:    80,
		LogoOpacity: 1.0,

		LayoutStyle:            "default",
		ShowDecorativeElements: true,
		Opacity:                0.9,

		EntranceAnimation:   AnimationSlideLeft,
		EntranceDuration:    1.0,
		TextAnimation:       TextAnimationNone,
		TextAnimationSpeed:  0.05,
		ImageAnimation:      AnimationFadeIn,
		ImageAnimationDelay: 0.3,
		LogoAnimationDelay:  0.5,
		TickerEntrance:      AnimationSlideUp,
		TickerEntranceDelay: 0.8,

		LogoDisplayAnimationDuration:   3.0,
		LogoDisplayAnimationFrequency:  5.0,
		ImageDisplayAnimationDuration:  3.0,
		ImageDisplayAnimationFrequency: 5.0,

		IsVisible: false,
	}
	s.SetPhraseList([]string{})
	return s
}
