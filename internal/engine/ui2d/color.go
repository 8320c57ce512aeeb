package ui2d

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Theme colors.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}

	ColorBackground   = Color{0.96, 0.96, 0.97, 1}
	ColorPanelBg      = Color{1, 1, 1, 1}
	ColorPanelBorder  = Color{0.89, 0.89, 0.91, 1}
	ColorButtonNormal = Color{0.31, 0.27, 0.90, 1} // indigo-600
	ColorButtonHover  = Color{0.26, 0.22, 0.79, 1}
	ColorButtonActive = Color{0.22, 0.19, 0.64, 1}
	ColorButtonAlt    = Color{1, 1, 1, 1}
	ColorText         = Color{0.09, 0.09, 0.11, 1}
	ColorTextDim      = Color{0.63, 0.63, 0.67, 1}
	ColorTextInverse  = Color{1, 1, 1, 1}
	ColorBadge        = Color{0.15, 0.15, 0.16, 1}
	ColorHighlight    = Color{0.06, 0.73, 0.51, 1} // emerald-500
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Darken returns a darker version of the color.
func (c Color) Darken(factor float32) Color {
	return Color{
		R: c.R * (1 - factor),
		G: c.G * (1 - factor),
		B: c.B * (1 - factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of the color.
func (c Color) Lighten(factor float32) Color {
	return Color{
		R: c.R + (1-c.R)*factor,
		G: c.G + (1-c.G)*factor,
		B: c.B + (1-c.B)*factor,
		A: c.A,
	}
}

// Desaturate moves the color toward its grey luminance by factor.
func (c Color) Desaturate(factor float32) Color {
	l := 0.299*c.R + 0.587*c.G + 0.114*c.B
	return Color{
		R: c.R + (l-c.R)*factor,
		G: c.G + (l-c.G)*factor,
		B: c.B + (l-c.B)*factor,
		A: c.A,
	}
}
