// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: detect/detect.go
// Summary: Source language detection and the output profile each language uses.

package detect

import (
	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/codetint/codec"
)

// Language names the language of a source file from its name and content.
// It returns "" when go-enry cannot tell.
func Language(filename string, content []byte) string {
	return enry.GetLanguage(filename, content)
}

// Skippable reports whether a file should not be scanned for color literals.
func Skippable(filename string, content []byte) bool {
	return enry.IsBinary(content) || enry.IsVendor(filename)
}

var languageProfiles = map[string]codec.Profile{
	"Dart":        codec.ProfileFlutter,
	"CSS":         codec.ProfileCSSHex,
	"SCSS":        codec.ProfileCSSHex,
	"Sass":        codec.ProfileCSSHex,
	"Less":        codec.ProfileCSSHex,
	"JavaScript":  codec.ProfileReactNative,
	"TypeScript":  codec.ProfileReactNative,
	"TSX":         codec.ProfileReactNative,
	"JSX":         codec.ProfileReactNative,
	"Swift":       codec.ProfileSwiftUI,
	"Objective-C": codec.ProfileUIKit,
	"XML":         codec.ProfileAndroidXML,
	"HTML":        codec.ProfileTailwind,
	"Vue":         codec.ProfileTailwind,
	"Svelte":      codec.ProfileTailwind,
}

// ProfileFor maps a language name to the profile whose literal syntax it uses.
// Unknown languages return "", leaving the configured profile in effect.
func ProfileFor(language string) codec.Profile {
	return languageProfiles[language]
}

// ProfileForFile combines Language and ProfileFor.
func ProfileForFile(filename string, content []byte) (codec.Profile, string) {
	lang := Language(filename, content)
	return ProfileFor(lang), lang
}
