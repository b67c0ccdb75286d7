// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: codec/profile.go
// Summary: Output profiles selectable by the user.

package codec

// Profile identifies a target color literal syntax.
type Profile string

const (
	ProfileFlutter     Profile = "flutter"
	ProfileCSSHex      Profile = "css-hex"
	ProfileCSSRGBA     Profile = "css-rgba"
	ProfileReactNative Profile = "react-native"
	ProfileSwiftUI     Profile = "ios-swiftui"
	ProfileUIKit       Profile = "ios-uikit"
	ProfileAndroidXML  Profile = "android-xml"
	ProfileTailwind    Profile = "tailwind"
)

// DefaultProfile is used until the user selects another one.
const DefaultProfile = ProfileFlutter

// ProfileInfo describes a profile for listings and selectors.
type ProfileInfo struct {
	Profile Profile
	Label   string
	Example string
	lexer   string
}

// Lexer returns the syntax highlighter lexer name for literals of this profile.
func (p ProfileInfo) Lexer() string {
	return p.lexer
}

var profiles = []ProfileInfo{
	{Profile: ProfileFlutter, Label: "Flutter", Example: "const Color(0xFF3498DB)", lexer: "dart"},
	{Profile: ProfileCSSHex, Label: "CSS Hex", Example: "#3498DB", lexer: "css"},
	{Profile: ProfileCSSRGBA, Label: "CSS RGBA", Example: "rgba(52, 152, 219, 1.00)", lexer: "css"},
	{Profile: ProfileReactNative, Label: "React Native", Example: "'#3498DB'", lexer: "react"},
	{Profile: ProfileSwiftUI, Label: "SwiftUI", Example: "Color(red:0.204, green:0.596, blue:0.859, opacity:1.00)", lexer: "swift"},
	{Profile: ProfileUIKit, Label: "UIKit", Example: "UIColor(red:0.204, green:0.596, blue:0.859, alpha:1.00)", lexer: "swift"},
	{Profile: ProfileAndroidXML, Label: "Android XML", Example: "#FF3498DB", lexer: "xml"},
	{Profile: ProfileTailwind, Label: "Tailwind", Example: "text-[color:#3498DB]", lexer: "html"},
}

// Profiles returns every known profile in display order.
func Profiles() []ProfileInfo {
	out := make([]ProfileInfo, len(profiles))
	copy(out, profiles)
	return out
}

// ParseProfile reports whether name is a known profile.
func ParseProfile(name string) (Profile, bool) {
	for _, p := range profiles {
		if string(p.Profile) == name {
			return p.Profile, true
		}
	}
	return "", false
}

// Info returns the descriptor for p, or the CSS hex descriptor for unknown profiles.
func (p Profile) Info() ProfileInfo {
	for _, info := range profiles {
		if info.Profile == p {
			return info
		}
	}
	return profiles[1]
}

// Label returns the display name of p.
func (p Profile) Label() string {
	return p.Info().Label
}
