// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers for config data.

package config

import (
	"encoding/json"
	"strconv"
)

// Section returns the named section, the top level for "", or nil if missing.
func (c Config) Section(sectionName string) Section {
	if c == nil {
		return nil
	}
	if sectionName == "" {
		return Section(c)
	}
	switch v := c[sectionName].(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults fills missing keys of a section without overwriting existing ones.
func (c Config) RegisterDefaults(sectionName string, defaults Section) {
	if c == nil || defaults == nil {
		return
	}
	section := c.Section(sectionName)
	if section == nil {
		section = make(Section)
		c[sectionName] = section
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

// Set stores value under sectionName/key, creating the section when needed.
func (c Config) Set(sectionName, key string, value interface{}) {
	if c == nil {
		return
	}
	if sectionName == "" {
		c[key] = value
		return
	}
	section := c.Section(sectionName)
	if section == nil {
		section = make(Section)
		c[sectionName] = section
	}
	section[key] = value
}

// GetString retrieves a string value.
func (c Config) GetString(sectionName, key, defaultValue string) string {
	if v, ok := c.Section(sectionName)[key].(string); ok {
		return v
	}
	return defaultValue
}

// GetInt retrieves an integer value. JSON numbers arrive as float64.
func (c Config) GetInt(sectionName, key string, defaultValue int) int {
	switch v := c.Section(sectionName)[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case json.Number:
		if parsed, err := v.Int64(); err == nil {
			return int(parsed)
		}
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetBool retrieves a boolean value.
func (c Config) GetBool(sectionName, key string, defaultValue bool) bool {
	switch v := c.Section(sectionName)[key].(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return defaultValue
}
