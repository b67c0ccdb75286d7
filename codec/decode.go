// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: codec/decode.go
// Summary: Detects a color notation inside arbitrary text and decodes it.
// Usage: Decode(clipboardText) -> (color.Color, ok). A false ok means no color was found.

package codec

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/framegrace/codetint/color"
)

// Notation names a recognised textual color syntax.
type Notation string

const (
	NotationNamed    Notation = "named"
	NotationFlutter  Notation = "0xAARRGGBB"
	NotationHex8     Notation = "#RRGGBBAA"
	NotationHex8ARGB Notation = "#AARRGGBB"
	NotationHex6     Notation = "#RRGGBB"
	NotationShortHex Notation = "#RGB[A]"
	NotationTailwind Notation = "text-[color:#RRGGBB]"
	NotationRGB      Notation = "rgb[a]()"
	NotationHSL      Notation = "hsl[a]()"
	NotationSwiftUI  Notation = "Color(red:green:blue:opacity:)"
	NotationUIKit    Notation = "UIColor(red:green:blue:alpha:)"
)

var (
	flutterRE     = regexp.MustCompile(`0x([A-Fa-f0-9]{8})\b`)
	hex8RE        = regexp.MustCompile(`#([A-Fa-f0-9]{8})\b`)
	androidHintRE = regexp.MustCompile(`(?i)android|xml|aarrggbb`)
	hex6HashRE    = regexp.MustCompile(`#([A-Fa-f0-9]{6})\b`)
	hex6BareRE    = regexp.MustCompile(`\b([A-Fa-f0-9]{6})\b`)
	shortHexRE    = regexp.MustCompile(`#([A-Fa-f0-9]{3,4})\b`)
	tailwindRE    = regexp.MustCompile(`text-\[color:#([A-Fa-f0-9]{6})\]`)
	rgbRE         = regexp.MustCompile(`(?i)rgba?\(\s*([0-9]{1,3})\s*,\s*([0-9]{1,3})\s*,\s*([0-9]{1,3})(?:\s*,\s*([0-9.]+))?\s*\)`)
	hslRE         = regexp.MustCompile(`(?i)hsla?\(\s*([\-0-9.]+)\s*,\s*([0-9.]+)%\s*,\s*([0-9.]+)%(?:\s*,\s*([0-9.]+))?\s*\)`)
	swiftUIRE     = regexp.MustCompile(`(?i)Color\(\s*red:\s*([0-9.]+)\s*,\s*green:\s*([0-9.]+)\s*,\s*blue:\s*([0-9.]+)\s*,\s*(?:opacity|alpha):\s*([0-9.]+)\s*\)`)
	uikitRE       = regexp.MustCompile(`(?i)UI(?:Color)?\(\s*red:\s*([0-9.]+)\s*,\s*green:\s*([0-9.]+)\s*,\s*blue:\s*([0-9.]+)\s*,\s*alpha:\s*([0-9.]+)\s*\)`)
)

// matcher inspects trimmed input and reports the color and the notation it matched.
type matcher func(s string) (color.Color, Notation, bool)

// chain is evaluated in order; the first structural match wins.
var chain = []matcher{
	matchNamed,
	matchFlutter,
	matchHex8,
	matchHex6,
	matchShortHex,
	matchTailwind,
	matchRGB,
	matchHSL,
	matchSwiftUI,
	matchUIKit,
}

// Decode finds the first recognised color notation in input.
func Decode(input string) (color.Color, bool) {
	c, _, ok := DecodeNotation(input)
	return c, ok
}

// DecodeNotation is Decode that also reports which notation matched.
func DecodeNotation(input string) (color.Color, Notation, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return color.Color{}, "", false
	}
	for _, m := range chain {
		if c, n, ok := m(s); ok {
			return c, n, true
		}
	}
	return color.Color{}, "", false
}

func matchNamed(s string) (color.Color, Notation, bool) {
	c, ok := named[strings.ToLower(s)]
	return c, NotationNamed, ok
}

func matchFlutter(s string) (color.Color, Notation, bool) {
	m := flutterRE.FindStringSubmatch(s)
	if m == nil {
		return color.Color{}, "", false
	}
	return fromARGB(m[1]), NotationFlutter, true
}

// matchHex8 resolves the #RRGGBBAA (web) versus #AARRGGBB (Android) ambiguity.
// The choice is a heuristic: an explicit hint wins, then the only
// semi-transparent reading, then the web order.
func matchHex8(s string) (color.Color, Notation, bool) {
	m := hex8RE.FindStringSubmatch(s)
	if m == nil {
		return color.Color{}, "", false
	}
	web := fromRGBA(m[1])
	android := fromARGB(m[1])

	switch {
	case androidHintRE.MatchString(s):
		return android, NotationHex8ARGB, true
	case !web.Opaque() && android.Opaque():
		return web, NotationHex8, true
	case !android.Opaque() && web.Opaque():
		return android, NotationHex8ARGB, true
	}
	return web, NotationHex8, true
}

func matchHex6(s string) (color.Color, Notation, bool) {
	m := hex6HashRE.FindStringSubmatch(s)
	if m == nil {
		m = hex6BareRE.FindStringSubmatch(s)
	}
	if m == nil {
		return color.Color{}, "", false
	}
	return fromRGB(m[1]), NotationHex6, true
}

func matchShortHex(s string) (color.Color, Notation, bool) {
	m := shortHexRE.FindStringSubmatch(s)
	if m == nil {
		return color.Color{}, "", false
	}
	var b strings.Builder
	for _, r := range m[1] {
		b.WriteRune(r)
		b.WriteRune(r)
	}
	full := b.String()
	if len(full) == 6 {
		return fromRGB(full), NotationShortHex, true
	}
	return fromRGBA(full), NotationShortHex, true
}

func matchTailwind(s string) (color.Color, Notation, bool) {
	m := tailwindRE.FindStringSubmatch(s)
	if m == nil {
		return color.Color{}, "", false
	}
	return fromRGB(m[1]), NotationTailwind, true
}

func matchRGB(s string) (color.Color, Notation, bool) {
	m := rgbRE.FindStringSubmatch(s)
	if m == nil {
		return color.Color{}, "", false
	}
	a := 255
	if m[4] != "" {
		a = unitToByte(parseNumber(m[4]))
	}
	return color.Make(channel(m[1]), channel(m[2]), channel(m[3]), a), NotationRGB, true
}

func matchHSL(s string) (color.Color, Notation, bool) {
	m := hslRE.FindStringSubmatch(s)
	if m == nil {
		return color.Color{}, "", false
	}
	alpha := 1.0
	if m[4] != "" {
		alpha = parseNumber(m[4])
	}
	c := hslToColor(parseNumber(m[1]), parseNumber(m[2])/100, parseNumber(m[3])/100, unitToByte(alpha))
	return c, NotationHSL, true
}

func matchSwiftUI(s string) (color.Color, Notation, bool) {
	m := swiftUIRE.FindStringSubmatch(s)
	if m == nil {
		return color.Color{}, "", false
	}
	return fromUnits(m[1:5]), NotationSwiftUI, true
}

func matchUIKit(s string) (color.Color, Notation, bool) {
	m := uikitRE.FindStringSubmatch(s)
	if m == nil {
		return color.Color{}, "", false
	}
	return fromUnits(m[1:5]), NotationUIKit, true
}

// fromUnits converts four [0,1] fractional fields (r, g, b, a) to a Color.
func fromUnits(fields []string) color.Color {
	return color.Make(
		unitToByte(parseNumber(fields[0])),
		unitToByte(parseNumber(fields[1])),
		unitToByte(parseNumber(fields[2])),
		unitToByte(parseNumber(fields[3])),
	)
}

func fromRGB(hex string) color.Color {
	return color.RGB(hexByte(hex[0:2]), hexByte(hex[2:4]), hexByte(hex[4:6]))
}

func fromRGBA(hex string) color.Color {
	return color.Make(hexByte(hex[0:2]), hexByte(hex[2:4]), hexByte(hex[4:6]), hexByte(hex[6:8]))
}

func fromARGB(hex string) color.Color {
	return color.Make(hexByte(hex[2:4]), hexByte(hex[4:6]), hexByte(hex[6:8]), hexByte(hex[0:2]))
}

func hexByte(s string) int {
	v, _ := strconv.ParseUint(s, 16, 8)
	return int(v)
}

// channel reads a 1-3 digit integer channel and clamps it.
func channel(s string) int {
	v, _ := strconv.Atoi(s)
	return int(color.Clamp(float64(v)))
}
