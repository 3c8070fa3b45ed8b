package chroma

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS-style color string: "#RGB" or "#RRGGBB" hex
// notation, or a named color such as "mediumpurple". The names are the
// SVG 1.1 set plus "rebeccapurple", matched case-insensitively.
func ParseColor(s string) (RGB, error) {
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	name := strings.ToLower(s)
	// CSS Color 4 addition, absent from the SVG 1.1 table.
	if name == "rebeccapurple" {
		return RGB{R: 0x66 / 255.0, G: 0x33 / 255.0, B: 0x99 / 255.0}, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return RGB{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}, nil
	}
	return RGB{}, fmt.Errorf("chroma: unknown color %q", s)
}

func parseHex(hex string) (RGB, error) {
	var r, g, b uint8
	switch len(hex) {
	case 3:
		if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); err != nil {
			return RGB{}, fmt.Errorf("chroma: invalid hex color %q: %w", hex, err)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return RGB{}, fmt.Errorf("chroma: invalid hex color %q: %w", hex, err)
		}
	default:
		return RGB{}, fmt.Errorf("chroma: invalid hex color %q: must be 3 or 6 hex digits", hex)
	}
	return RGB{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, nil
}

// Hex formats the color as "#rrggbb", clamping into the displayable
// range and rounding to the nearest 8-bit step.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(clamp01(c.R)*255+0.5),
		uint8(clamp01(c.G)*255+0.5),
		uint8(clamp01(c.B)*255+0.5))
}
