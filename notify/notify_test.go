// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package notify

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestTerminalPlain(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminal(&buf)
	if n.Color {
		t.Fatal("buffer detected as terminal")
	}
	n.Notify("Copied #FF0000", "#FF0000")
	if got := buf.String(); got != "Copied #FF0000\n" {
		t.Errorf("output = %q", got)
	}
}

func TestTerminalSwatch(t *testing.T) {
	var buf bytes.Buffer
	n := &Terminal{W: &buf, Color: true}
	n.Notify("Converted: #FFFFFF", "#FFFFFF")
	got := buf.String()
	if !strings.Contains(got, "\x1b[48;2;255;255;255m") {
		t.Errorf("missing white background in %q", got)
	}
	if !strings.Contains(got, "\x1b[38;2;0;0;0m") {
		t.Errorf("white swatch should use black text: %q", got)
	}
	if !strings.HasSuffix(got, "Converted: #FFFFFF\n") {
		t.Errorf("message missing: %q", got)
	}

	buf.Reset()
	n.Notify("Canceled", "")
	if buf.String() != "Canceled\n" {
		t.Errorf("no-swatch output = %q", buf.String())
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#000000", "#ffffff"},
		{"#ffffff", "#000000"},
		{"#ffff00", "#000000"},
		{"#000080", "#ffffff"},
	}
	for _, tt := range tests {
		c, _ := colorful.Hex(tt.hex)
		if got := Contrast(c).Hex(); got != tt.want {
			t.Errorf("Contrast(%s) = %s, want %s", tt.hex, got, tt.want)
		}
	}
}

func TestSwatchInvalid(t *testing.T) {
	if _, ok := Swatch("zzz"); ok {
		t.Error("Swatch accepted invalid hex")
	}
}

func TestLogAndMulti(t *testing.T) {
	var buf bytes.Buffer
	old := log.Writer()
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(old)
		log.SetFlags(flags)
	})

	var term bytes.Buffer
	Multi{Log{}, NewTerminal(&term)}.Notify("Copied red", "#FF0000")

	if got := buf.String(); got != "[CodeTint] Copied red (#FF0000)\n" {
		t.Errorf("log output = %q", got)
	}
	if term.String() != "Copied red\n" {
		t.Errorf("terminal output = %q", term.String())
	}
}
