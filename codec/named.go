// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: codec/named.go
// Summary: CSS color keywords recognised by the decoder.

package codec

import "github.com/framegrace/codetint/color"

var named = map[string]color.Color{
	"black":         color.RGB(0x00, 0x00, 0x00),
	"white":         color.RGB(0xFF, 0xFF, 0xFF),
	"red":           color.RGB(0xFF, 0x00, 0x00),
	"lime":          color.RGB(0x00, 0xFF, 0x00),
	"blue":          color.RGB(0x00, 0x00, 0xFF),
	"gray":          color.RGB(0x80, 0x80, 0x80),
	"grey":          color.RGB(0x80, 0x80, 0x80),
	"silver":        color.RGB(0xC0, 0xC0, 0xC0),
	"maroon":        color.RGB(0x80, 0x00, 0x00),
	"green":         color.RGB(0x00, 0x80, 0x00),
	"navy":          color.RGB(0x00, 0x00, 0x80),
	"teal":          color.RGB(0x00, 0x80, 0x80),
	"purple":        color.RGB(0x80, 0x00, 0x80),
	"olive":         color.RGB(0x80, 0x80, 0x00),
	"orange":        color.RGB(0xFF, 0xA5, 0x00),
	"aqua":          color.RGB(0x00, 0xFF, 0xFF),
	"fuchsia":       color.RGB(0xFF, 0x00, 0xFF),
	"rebeccapurple": color.RGB(0x66, 0x33, 0x99),
	"transparent":   color.Make(0x00, 0x00, 0x00, 0x00),
}
