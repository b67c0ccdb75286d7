// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: codec/encode.go
// Summary: Formats a canonical color as a platform color literal.
// Usage: Encode(c, "flutter") -> "const Color(0xFF3498DB)". Unknown profiles fall back to #RRGGBB.

package codec

import (
	"fmt"
	"strings"

	"github.com/framegrace/codetint/color"
)

// fields holds the pre-formatted pieces shared by every profile.
type fields struct {
	hex        string // RRGGBB, uppercase
	ahex       string // AA, uppercase
	r1, g1, b1 string // channel/255, three decimals
	af         string // alpha/255, two decimals
	c          color.Color
}

func newFields(c color.Color) fields {
	hex := strings.ToUpper(strings.TrimPrefix(c.Hex, "#"))
	if hex == "" {
		hex = "000000"
	}
	return fields{
		hex:  hex,
		ahex: fmt.Sprintf("%02X", c.A),
		r1:   fmt.Sprintf("%.3f", float64(c.R)/255),
		g1:   fmt.Sprintf("%.3f", float64(c.G)/255),
		b1:   fmt.Sprintf("%.3f", float64(c.B)/255),
		af:   fmt.Sprintf("%.2f", float64(c.A)/255),
		c:    c,
	}
}

var formatters = map[Profile]func(fields) string{
	ProfileFlutter: func(f fields) string {
		return "const Color(0x" + f.ahex + f.hex + ")"
	},
	ProfileCSSHex: plainHex,
	ProfileCSSRGBA: func(f fields) string {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", f.c.R, f.c.G, f.c.B, f.af)
	},
	ProfileReactNative: func(f fields) string {
		return "'#" + f.hex + "'"
	},
	ProfileSwiftUI: func(f fields) string {
		return fmt.Sprintf("Color(red:%s, green:%s, blue:%s, opacity:%s)", f.r1, f.g1, f.b1, f.af)
	},
	ProfileUIKit: func(f fields) string {
		return fmt.Sprintf("UIColor(red:%s, green:%s, blue:%s, alpha:%s)", f.r1, f.g1, f.b1, f.af)
	},
	ProfileAndroidXML: func(f fields) string {
		return "#" + f.ahex + f.hex
	},
	ProfileTailwind: func(f fields) string {
		return "text-[color:#" + f.hex + "]"
	},
}

func plainHex(f fields) string {
	return "#" + f.hex
}

// Encode formats c for profile. It never fails: an unknown profile yields #RRGGBB.
func Encode(c color.Color, profile string) string {
	format, ok := formatters[Profile(profile)]
	if !ok {
		format = plainHex
	}
	return format(newFields(c))
}
