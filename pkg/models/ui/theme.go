package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	BackgroundColor = color.NRGBA{R: 0xF2, G: 0xF2, B: 0xF2, A: 0xFF} // #F2F2F2
	ButtonColor     = color.NRGBA{R: 0xD9, G: 0xD9, B: 0xD9, A: 0xFF} // #D9D9D9
	DotColor        = color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF} // #101010
)

// displayColors maps the color names used by lines and cells to canvas colors.
var displayColors = map[string]color.Color{
	"black": color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}, // #202020
	"white": color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, // #FFFFFF
	"grey":  color.NRGBA{R: 0xC8, G: 0xC8, B: 0xC8, A: 0xFF}, // #C8C8C8
	"red":   color.NRGBA{R: 0xFF, G: 0x40, B: 0x40, A: 0xC0}, // #FF4040C0
	"blue":  color.NRGBA{R: 0x40, G: 0x40, B: 0xFF, A: 0xC0}, // #4040FFC0
}

func DisplayColor(name string) color.Color {
	if c, ok := displayColors[name]; ok {
		return c
	}
	return color.Transparent
}

// GameTheme keeps the board on a light background whatever the system variant.
type GameTheme struct{}

func (GameTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return BackgroundColor
	case theme.ColorNameButton:
		return ButtonColor
	case theme.ColorNameForeground:
		return DotColor
	default:
		return theme.DefaultTheme().Color(name, theme.VariantLight)
	}
}

func (GameTheme) Icon(name fyne.ThemeIconName) fyne.Resource { return theme.DefaultTheme().Icon(name) }

func (GameTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }

func (GameTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }
