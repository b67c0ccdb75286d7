// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: codec/number.go
// Summary: Numeric field helpers for functional notations.

package codec

import (
	"math"
	"regexp"
	"strconv"

	"github.com/framegrace/codetint/color"
)

var leadingNumberRE = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)`)

// parseNumber reads the longest numeric prefix of s, so "0.5.1" reads as 0.5.
// A field with no readable number is 0.
func parseNumber(s string) float64 {
	lead := leadingNumberRE.FindString(s)
	if lead == "" {
		return 0
	}
	v, err := strconv.ParseFloat(lead, 64)
	if err != nil {
		return 0
	}
	return v
}

// unitToByte maps a [0,1] fraction to a clamped byte.
func unitToByte(v float64) int {
	return int(color.Clamp(math.Round(v * 255)))
}
