// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for codetint.json.

package config

const (
	DefaultProfile        = "flutter"
	DefaultHistoryLimit   = 8
	DefaultHighlightStyle = "catppuccin-mocha"
)

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"profile": DefaultProfile,
	})
	cfg.RegisterDefaults("history", Section{
		"limit": DefaultHistoryLimit,
	})
	cfg.RegisterDefaults("clipboard", Section{
		"backend": "auto",
	})
	cfg.RegisterDefaults("highlight", Section{
		"enabled": true,
		"style":   DefaultHighlightStyle,
	})
	cfg.RegisterDefaults("store", Section{
		"path": "",
	})
}
