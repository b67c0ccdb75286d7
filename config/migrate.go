// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/migrate.go
// Summary: Imports settings from the browser-extension era config.json.
//
// The extension kept {"profile": "...", "history": [...], "last": {...}} in
// chrome.storage.local. Exports of that object are accepted as config.json.
// The profile selection moves into the settings file; the colors are handed
// to the store through LegacyColors.

package config

import (
	"encoding/json"
	"os"

	"github.com/framegrace/codetint/color"
)

// Legacy holds the colors recorded by the extension.
type Legacy struct {
	Last    *color.Color
	History []color.Color
}

// Empty reports whether there is nothing to import.
func (l Legacy) Empty() bool {
	return l.Last == nil && len(l.History) == 0
}

// LegacyColors reads the last color and the history, newest first, from an
// extension-era config.json. A missing file yields an empty Legacy.
func LegacyColors() (Legacy, error) {
	path, err := legacyConfigPath()
	if err != nil {
		return Legacy{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Legacy{}, nil
		}
		return Legacy{}, err
	}

	var raw struct {
		Last    *color.Color  `json:"last"`
		History []color.Color `json:"history"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Legacy{}, err
	}

	var out Legacy
	if raw.Last != nil {
		if c, ok := legacyColor(*raw.Last); ok {
			out.Last = &c
		}
	}
	for _, rec := range raw.History {
		if c, ok := legacyColor(rec); ok {
			out.History = append(out.History, c)
		}
	}
	return out, nil
}

// legacyColor rebuilds a stored record from its channels so Hex always
// matches them. Records carrying only a hex string are read as opaque.
func legacyColor(rec color.Color) (color.Color, bool) {
	if rec.R == 0 && rec.G == 0 && rec.B == 0 && rec.A == 0 {
		if rec.Hex == "" {
			return color.Color{}, false
		}
		c, err := color.SampleFromHex(rec.Hex)
		return c, err == nil
	}
	ch := func(v int) int { return int(color.Clamp(float64(v))) }
	return color.Make(ch(rec.R), ch(rec.G), ch(rec.B), ch(rec.A)), true
}

func migrateFromLegacy(cfg Config) (bool, error) {
	if cfg == nil {
		return false, nil
	}
	legacyPath, err := legacyConfigPath()
	if err != nil {
		return false, err
	}
	legacy, exists, err := readConfig(legacyPath)
	if err != nil {
		return false, err
	}
	if !exists || legacy == nil {
		return false, nil
	}

	migrated := false
	if val, ok := legacy["profile"].(string); ok && val != "" {
		if _, ok := cfg["profile"]; !ok {
			cfg["profile"] = val
			migrated = true
		}
	}
	if copySection(cfg, legacy, "clipboard") {
		migrated = true
	}
	if copySection(cfg, legacy, "highlight") {
		migrated = true
	}
	return migrated, nil
}

func copySection(dst Config, src Config, name string) bool {
	if dst == nil || src == nil || name == "" {
		return false
	}
	if _, ok := dst[name]; ok {
		return false
	}
	if section, ok := src[name]; ok {
		dst[name] = section
		return true
	}
	return false
}
