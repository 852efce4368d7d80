package ui

import "github.com/edkf/album-visualizer/internal/colors"

// backgroundDarkenPercent pulls the dominant color down far enough that
// light text stays readable on top of it.
const backgroundDarkenPercent = 40

// Theme is what the view paints with. It always derives from exactly the
// single most dominant extracted color; the text color is chosen against
// the undarkened dominant, not the darkened background.
type Theme struct {
	Background colors.Color
	Text       colors.Color
	Accent     colors.Color

	// Gradient endpoints back the default look when no artwork colors are
	// available.
	GradientStart colors.Color
	GradientEnd   colors.Color

	IsDefault bool
}

func DefaultTheme() Theme {
	start := colors.New(0x8B, 0xA4, 0xE8)
	end := colors.New(0xE8, 0xA4, 0xC8)
	return Theme{
		Background:    colors.New(0x1E, 0x1E, 0x2E),
		Text:          colors.LightText,
		Accent:        start,
		GradientStart: start,
		GradientEnd:   end,
		IsDefault:     true,
	}
}

// ThemeFromColors builds a theme from extracted colors, most dominant
// first. An empty extraction falls back to the default gradient theme.
func ThemeFromColors(extracted []colors.Color) Theme {
	if len(extracted) == 0 {
		return DefaultTheme()
	}

	dominant := extracted[0]
	theme := Theme{
		Background:    colors.Darken(dominant, backgroundDarkenPercent),
		Text:          colors.AccessibleTextColor(dominant),
		Accent:        dominant,
		GradientStart: dominant,
		GradientEnd:   colors.Darken(dominant, backgroundDarkenPercent),
	}
	if len(extracted) > 1 {
		theme.GradientEnd = extracted[1]
	}
	return theme
}
