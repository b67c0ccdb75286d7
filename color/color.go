// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: color/color.go
// Summary: Canonical four-channel color value shared by the codec and its callers.
// Usage: Built by the decoder, the picker, and the store; never mutated in place.

package color

import (
	"errors"
	"fmt"
	imgcolor "image/color"
	"math"
	"regexp"
	"strconv"
)

// ErrInvalidHex is returned by SampleFromHex for input that is not a 6-digit hex color.
var ErrInvalidHex = errors.New("color: not a 6-digit hex color")

// Color is the canonical color record. Hex caches the #RRGGBB form of R, G and B;
// alpha is carried only in A.
type Color struct {
	Hex string `json:"hex" yaml:"hex"`
	R   int    `json:"r" yaml:"r"`
	G   int    `json:"g" yaml:"g"`
	B   int    `json:"b" yaml:"b"`
	A   int    `json:"a" yaml:"a"`
}

// Make builds a Color from channels already in [0,255]. It does not clamp.
func Make(r, g, b, a int) Color {
	return Color{
		Hex: fmt.Sprintf("#%02X%02X%02X", r, g, b),
		R:   r,
		G:   g,
		B:   b,
		A:   a,
	}
}

// RGB builds a fully opaque Color.
func RGB(r, g, b int) Color {
	return Make(r, g, b, 255)
}

// Clamp limits n to [0,255]. Fractions pass through; NaN becomes 0.
func Clamp(n float64) float64 {
	if math.IsNaN(n) {
		return 0
	}
	return math.Max(0, math.Min(255, n))
}

var sampleRE = regexp.MustCompile(`(?i)^#?([a-f\d]{2})([a-f\d]{2})([a-f\d]{2})$`)

// SampleFromHex turns a trusted #RRGGBB (or RRGGBB) sample into an opaque Color.
func SampleFromHex(hex string) (Color, error) {
	m := sampleRE.FindStringSubmatch(hex)
	if m == nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return RGB(hexByte(m[1]), hexByte(m[2]), hexByte(m[3])), nil
}

// hexByte parses two hex digits. The caller guarantees the input shape.
func hexByte(s string) int {
	v, _ := strconv.ParseUint(s, 16, 8)
	return int(v)
}

// String returns the cached hex form.
func (c Color) String() string {
	return c.Hex
}

// Equal reports whether both colors carry the same channels.
func (c Color) Equal(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B && c.A == o.A
}

// Opaque reports whether the alpha channel is fully opaque.
func (c Color) Opaque() bool {
	return c.A == 255
}

// NRGBA converts to the image/color non-premultiplied form.
func (c Color) NRGBA() imgcolor.NRGBA {
	return imgcolor.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: uint8(c.A)}
}

// Valid reports whether every channel is in range and Hex matches the channels.
func (c Color) Valid() bool {
	for _, v := range [...]int{c.R, c.G, c.B, c.A} {
		if v < 0 || v > 255 {
			return false
		}
	}
	return c.Hex == fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
