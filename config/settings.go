// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/settings.go
// Summary: Named accessors for the settings codetint reads.

package config

// Profile returns the selected output profile name.
func (c Config) Profile() string {
	if p := c.GetString("", "profile", DefaultProfile); p != "" {
		return p
	}
	return DefaultProfile
}

// HistoryLimit returns how many recent colors are kept. Values below 1 use the default.
func (c Config) HistoryLimit() int {
	if n := c.GetInt("history", "limit", DefaultHistoryLimit); n > 0 {
		return n
	}
	return DefaultHistoryLimit
}

// ClipboardBackend returns auto, command or osc52.
func (c Config) ClipboardBackend() string {
	return c.GetString("clipboard", "backend", "auto")
}

// HighlightEnabled reports whether CLI output is syntax highlighted.
func (c Config) HighlightEnabled() bool {
	return c.GetBool("highlight", "enabled", true)
}

// HighlightStyle returns the chroma style name.
func (c Config) HighlightStyle() string {
	return c.GetString("highlight", "style", DefaultHighlightStyle)
}

// StorePath returns the SQLite database path.
func (c Config) StorePath() string {
	if p := c.GetString("store", "path", ""); p != "" {
		return p
	}
	return defaultStorePath()
}

// SetProfile selects and persists the output profile.
func SetProfile(profile string) error {
	Set("", "profile", profile)
	return Save()
}
