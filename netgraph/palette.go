// SPDX-License-Identifier: MIT

package netgraph

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette saturation and value: saturated enough to tell sectors apart,
// dark enough for white labels.
const (
	paletteSaturation = 0.65
	paletteValue      = 0.85
)

// Palette returns k distinct "#rrggbb" colors with hues evenly spaced around
// the HSV circle, starting at red. k ≤ 0 yields nil.
// The result depends only on k.
func Palette(k int) []string {
	if k <= 0 {
		return nil
	}
	out := make([]string, k)
	for i := 0; i < k; i++ {
		hue := 360 * float64(i) / float64(k)
		out[i] = colorful.Hsv(hue, paletteSaturation, paletteValue).Hex()
	}

	return out
}
