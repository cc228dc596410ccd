package style

import (
	"fmt"
	"image/color"
	"strings"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// IsClear reports whether the color is fully transparent.
// A clear text color means "not configured" and falls back to the theme.
func (c RGBA) IsClear() bool {
	return c.A == 0
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
// Unknown formats yield opaque black.
func Hex(hex string) RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex is like Hex but reports malformed input.
func ParseHex(hex string) (RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(hex) {
	case 3:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	}
	if !ok {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// parseHex accumulates hex digits into val. Returns false on a non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// HexString returns the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c RGBA) HexString() string {
	r := uint8(clamp255(c.R*255 + 0.5))
	g := uint8(clamp255(c.G*255 + 0.5))
	b := uint8(clamp255(c.B*255 + 0.5))
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	a := uint8(clamp255(c.A*255 + 0.5))
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// MarshalText encodes the color as a hex string.
func (c RGBA) MarshalText() ([]byte, error) {
	return []byte(c.HexString()), nil
}

// UnmarshalText decodes a hex string. An empty string yields Transparent.
func (c *RGBA) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*c = Transparent
		return nil
	}
	v, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Grey        = RGB(0.5, 0.5, 0.5)
	Transparent = RGBA{}
)
