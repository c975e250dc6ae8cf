package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeModeToggleIsInvolution(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeDark.Toggle().Toggle())
}

func TestParseThemeMode(t *testing.T) {
	assert.Equal(t, ThemeLight, ParseThemeMode("light"))
	assert.Equal(t, ThemeDark, ParseThemeMode("dark"))
	assert.Equal(t, ThemeDark, ParseThemeMode(""))
	assert.Equal(t, "light", ThemeLight.String())
	assert.Equal(t, "dark", ThemeDark.String())
}

func TestThemeForSelectsPalette(t *testing.T) {
	dark := ThemeFor(ThemeDark)
	light := ThemeFor(ThemeLight)

	assert.Equal(t, ThemeDark, dark.Mode)
	assert.Equal(t, ThemeLight, light.Mode)
	assert.NotEqual(t, dark.Palette.Surface.Base, light.Palette.Surface.Base, "light theme should invert surface base")
	assert.Equal(t, "🌑", dark.Glyph)
	assert.Equal(t, "☀️", light.Glyph)
}

func TestThemeRootUsesSurface(t *testing.T) {
	theme := DarkTheme()
	assert.Equal(t, theme.Palette.Surface.Base, theme.Root().GetBackground())
	assert.Equal(t, theme.Palette.Surface.OnBase, theme.Root().GetForeground())
}

func TestThemeVariantColours(t *testing.T) {
	theme := LightTheme()
	assert.Equal(t, theme.Palette.Red, theme.Variant(ButtonRed))
	assert.Equal(t, theme.Palette.Green, theme.Variant(ButtonGreen))
	assert.Equal(t, theme.Palette.Gray, theme.Variant(ButtonGray))
	assert.Equal(t, theme.Palette.Disabled, theme.Variant(ButtonDisabled))
}
