package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ThemeMode selects the light or dark palette.
type ThemeMode int

const (
	ThemeDark ThemeMode = iota
	ThemeLight
)

// String returns the config spelling of the mode.
func (m ThemeMode) String() string {
	if m == ThemeLight {
		return "light"
	}
	return "dark"
}

// Toggle returns the opposite mode.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseThemeMode maps "light" to ThemeLight and everything else to ThemeDark.
func ParseThemeMode(s string) ThemeMode {
	if s == "light" {
		return ThemeLight
	}
	return ThemeDark
}

// ColourSet groups a base colour with the colour drawn on top of it.
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Surface ColourSet
	Border  lipgloss.Color
	Muted   lipgloss.Color

	Gray     ColourSet
	Red      ColourSet
	Green    ColourSet
	Disabled ColourSet
}

// Theme is the full styling context for one mode.
type Theme struct {
	Mode    ThemeMode
	Palette Palette
	Glyph   string
}

// Root is the style applied to the outermost surface.
func (t Theme) Root() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.Palette.Surface.Base).
		Foreground(t.Palette.Surface.OnBase)
}

// Divider is the bottom border separating display regions.
func (t Theme) Divider() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Palette.Border).
		BorderBackground(t.Palette.Surface.Base)
}

// Text is plain body text on the surface.
func (t Theme) Text() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Palette.Surface.OnBase).
		Background(t.Palette.Surface.Base)
}

// MutedText is de-emphasised text on the surface.
func (t Theme) MutedText() lipgloss.Style {
	return t.Text().Foreground(t.Palette.Muted)
}

// Variant returns the colours for a button variant.
func (t Theme) Variant(v ButtonVariant) ColourSet {
	switch v {
	case ButtonRed:
		return t.Palette.Red
	case ButtonGreen:
		return t.Palette.Green
	case ButtonDisabled:
		return t.Palette.Disabled
	default:
		return t.Palette.Gray
	}
}

// DarkTheme is the default theme.
func DarkTheme() Theme {
	return Theme{
		Mode:  ThemeDark,
		Glyph: "🌑",
		Palette: Palette{
			Surface:  ColourSet{Base: lipgloss.Color("#0a0a0a"), OnBase: lipgloss.Color("#f5f5f5")},
			Border:   lipgloss.Color("#262626"),
			Muted:    lipgloss.Color("#737373"),
			Gray:     ColourSet{Base: lipgloss.Color("#404040"), OnBase: lipgloss.Color("#f5f5f5")},
			Red:      ColourSet{Base: lipgloss.Color("#7f1d1d"), OnBase: lipgloss.Color("#fca5a5")},
			Green:    ColourSet{Base: lipgloss.Color("#14532d"), OnBase: lipgloss.Color("#86efac")},
			Disabled: ColourSet{Base: lipgloss.Color("#171717"), OnBase: lipgloss.Color("#525252")},
		},
	}
}

// LightTheme mirrors DarkTheme on a light surface.
func LightTheme() Theme {
	return Theme{
		Mode:  ThemeLight,
		Glyph: "☀️",
		Palette: Palette{
			Surface:  ColourSet{Base: lipgloss.Color("#ffffff"), OnBase: lipgloss.Color("#171717")},
			Border:   lipgloss.Color("#e5e5e5"),
			Muted:    lipgloss.Color("#a3a3a3"),
			Gray:     ColourSet{Base: lipgloss.Color("#d4d4d4"), OnBase: lipgloss.Color("#171717")},
			Red:      ColourSet{Base: lipgloss.Color("#fecaca"), OnBase: lipgloss.Color("#b91c1c")},
			Green:    ColourSet{Base: lipgloss.Color("#bbf7d0"), OnBase: lipgloss.Color("#15803d")},
			Disabled: ColourSet{Base: lipgloss.Color("#f5f5f5"), OnBase: lipgloss.Color("#d4d4d4")},
		},
	}
}

// ThemeFor returns the theme for mode.
func ThemeFor(mode ThemeMode) Theme {
	if mode == ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}
