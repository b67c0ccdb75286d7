// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: codec/hsl.go
// Summary: HSL to RGB conversion used by the hsl()/hsla() notation.

package codec

import (
	"math"

	"github.com/framegrace/codetint/color"
)

// hslToColor converts hue in degrees (any real) and saturation/lightness in
// [0,1] to a Color with the given alpha byte.
func hslToColor(h, s, l float64, a int) color.Color {
	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(math.Mod(h, 360)+360, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r1, g1, b1 float64
	switch {
	case hp < 1:
		r1, g1, b1 = c, x, 0
	case hp < 2:
		r1, g1, b1 = x, c, 0
	case hp < 3:
		r1, g1, b1 = 0, c, x
	case hp < 4:
		r1, g1, b1 = 0, x, c
	case hp < 5:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}

	m := l - c/2
	return color.Make(
		unitToByte(r1+m),
		unitToByte(g1+m),
		unitToByte(b1+m),
		a,
	)
}
