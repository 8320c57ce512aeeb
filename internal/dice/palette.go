package dice

import (
	"strconv"
	"strings"
)

// Color is a named palette entry.
type Color struct {
	Name string
	Hex  string // #rrggbb
}

// RGB returns the 8-bit channels of the color. Malformed hex yields black.
func (c Color) RGB() (r, g, b uint8) {
	h := strings.TrimPrefix(c.Hex, "#")
	if len(h) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

func (c Color) String() string {
	return c.Name
}

// palette is the fixed set of die colors, in display order.
var palette = [...]Color{
	{Name: "Red", Hex: "#ef4444"},
	{Name: "Blue", Hex: "#3b82f6"},
	{Name: "Green", Hex: "#22c55e"},
	{Name: "Yellow", Hex: "#eab308"},
	{Name: "Purple", Hex: "#a855f7"},
	{Name: "Pink", Hex: "#ec4899"},
	{Name: "Indigo", Hex: "#6366f1"},
	{Name: "Orange", Hex: "#f97316"},
	{Name: "Teal", Hex: "#14b8a6"},
	{Name: "Slate", Hex: "#475569"},
}

var (
	// DefaultColor is selected when nothing else is.
	DefaultColor = palette[1]

	// FallbackColor paints dice when no color is selected at all.
	FallbackColor = palette[9]
)

// Palette returns a copy of the palette.
func Palette() []Color {
	out := make([]Color, len(palette))
	copy(out, palette[:])
	return out
}

// LookupColor finds a palette color by name (case-insensitive) or hex value.
func LookupColor(key string) (Color, bool) {
	key = strings.TrimSpace(key)
	for _, c := range palette {
		if strings.EqualFold(c.Name, key) || strings.EqualFold(c.Hex, key) {
			return c, true
		}
	}
	return Color{}, false
}

// InPalette reports whether c is one of the palette colors.
func InPalette(c Color) bool {
	for _, p := range palette {
		if p == c {
			return true
		}
	}
	return false
}
