package color

import (
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// palette is the fixed named-color table. Components are normalized [0,1].
var palette = map[string]colorful.Color{
	"red":    {R: 1.0, G: 0.0, B: 0.0},
	"orange": {R: 1.0, G: 0.6, B: 0.0},
	"yellow": {R: 1.0, G: 1.0, B: 0.0},
	"green":  {R: 0.0, G: 0.8, B: 0.0},
	"blue":   {R: 0.0, G: 0.4, B: 1.0},
	"purple": {R: 0.6, G: 0.2, B: 0.8},
	"cyan":   {R: 0.0, G: 0.8, B: 0.8},
	"white":  {R: 1.0, G: 1.0, B: 1.0},
	"pink":   {R: 1.0, G: 0.4, B: 0.7},
}

// Parse resolves a color name or hex triplet to an RGB color. Names match
// case-insensitively; hex accepts an optional leading '#' and must be six
// digits. Anything unparseable falls back to red, so Parse never fails.
func Parse(s string) colorful.Color {
	if c, ok := palette[strings.ToLower(s)]; ok {
		return c
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		if c, err := colorful.Hex("#" + hex); err == nil {
			return c
		}
	}
	return palette["red"]
}

// Pixel converts a color to a 0xRRGGBB pixel value for CwBackPixel on a
// TrueColor visual.
func Pixel(c colorful.Color) uint32 {
	r, g, b := c.RGB255()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Names returns the palette's color names in sorted order.
func Names() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Named looks up a palette entry by its exact lowercase name.
func Named(name string) (colorful.Color, bool) {
	c, ok := palette[name]
	return c, ok
}
