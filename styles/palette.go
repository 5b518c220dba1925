package styles

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Shades is one Tailwind hue from 50 to 950
type Shades [11]color.RGBA

var shadeSteps = [11]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

func palette(hexes ...string) Shades {
	var s Shades
	for i, h := range hexes {
		s[i] = Hex(h)
	}
	return s
}

// Hex parses #rrggbb into an opaque color, panicking on malformed input
func Hex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("styles: bad color %q: %v", s, err))
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Shade returns the color at a Tailwind step (50, 100, ..., 950)
func (s Shades) Shade(step int) color.RGBA {
	for i, st := range shadeSteps {
		if st == step {
			return s[i]
		}
	}
	panic(fmt.Sprintf("styles: no shade %d", step))
}

var (
	Red = palette(
		"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444",
		"#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a",
	)
	Gray = palette(
		"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280",
		"#4b5563", "#374151", "#1f2937", "#111827", "#030712",
	)
	Green = palette(
		"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e",
		"#16a34a", "#15803d", "#166534", "#14532d", "#052e16",
	)
	Blue = palette(
		"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6",
		"#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554",
	)
)
