package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// RGBFromTriple converts a constant triple to RGB.
func RGBFromTriple(t [3]uint8) RGB {
	return RGB{R: t[0], G: t[1], B: t[2]}
}

// FromColorful reduces a colorful.Color to 8-bit RGB, clamping out of
// gamut values.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// ParseColor parses a CSS color expression such as #rrggbb, rgb(),
// hsl() or a named color. Alpha is discarded.
func ParseColor(s string) (RGB, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return RGB{}, fmt.Errorf("unrecognized color %q: %w", s, err)
	}
	return RGB{R: clampByte(c.R * 255), G: clampByte(c.G * 255), B: clampByte(c.B * 255)}, nil
}

func clampByte(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f + 0.5)
}
