package chart

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses an opaque "#rrggbb" color.
func ParseHexColor(s string) (color.RGBA, error) {
	// Hex stops scanning after three bytes, so trailing digits must be caught here
	if len(s) != len("#rrggbb") {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
