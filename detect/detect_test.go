// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package detect

import (
	"testing"

	"github.com/framegrace/codetint/codec"
)

func TestLanguage(t *testing.T) {
	tests := []struct {
		filename string
		content  string
		want     string
	}{
		{"lib/theme.dart", "const primary = Color(0xFF6750A4);\n", "Dart"},
		{"styles/site.css", "body { color: #333333; }\n", "CSS"},
		{"Sources/Theme.swift", "let accent = Color(red: 0.2, green: 0.4, blue: 0.8)\n", "Swift"},
		{"index.html", "<!DOCTYPE html>\n<html><body class=\"text-[color:#FF0000]\"></body></html>\n", "HTML"},
		{"main.go", "package main\n\nfunc main() {}\n", "Go"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Language(tt.filename, []byte(tt.content)); got != tt.want {
				t.Errorf("Language(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestProfileFor(t *testing.T) {
	tests := []struct {
		lang string
		want codec.Profile
	}{
		{"Dart", codec.ProfileFlutter},
		{"CSS", codec.ProfileCSSHex},
		{"SCSS", codec.ProfileCSSHex},
		{"TypeScript", codec.ProfileReactNative},
		{"Swift", codec.ProfileSwiftUI},
		{"Objective-C", codec.ProfileUIKit},
		{"XML", codec.ProfileAndroidXML},
		{"Vue", codec.ProfileTailwind},
		{"Go", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ProfileFor(tt.lang); got != tt.want {
			t.Errorf("ProfileFor(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestProfileForFile(t *testing.T) {
	p, lang := ProfileForFile("lib/colors.dart", []byte("final c = Color(0xFF000000);\n"))
	if lang != "Dart" || p != codec.ProfileFlutter {
		t.Errorf("ProfileForFile = %q, %q", p, lang)
	}
}

func TestSkippable(t *testing.T) {
	if !Skippable("image.bin", []byte{0x89, 'P', 'N', 'G', 0x00, 0x00, 0x01}) {
		t.Error("binary content not skipped")
	}
	if !Skippable("node_modules/pkg/index.js", []byte("module.exports = {}\n")) {
		t.Error("vendored file not skipped")
	}
	if Skippable("src/theme.css", []byte("a { color: red; }\n")) {
		t.Error("plain source skipped")
	}
}
