// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for codetint files.

package config

import (
	"os"
	"path/filepath"
)

// Dir returns the codetint configuration directory.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "codetint"), nil
}

// Path returns the location of codetint.json.
func Path() (string, error) {
	return systemConfigPath()
}

func systemConfigPath() (string, error) {
	root, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}

func legacyConfigPath() (string, error) {
	root, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, legacyConfigName), nil
}

// LogPath returns the log file written by the CLI.
func LogPath() (string, error) {
	root, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "codetint.log"), nil
}

func defaultStorePath() string {
	root, err := Dir()
	if err != nil {
		return "codetint.db"
	}
	return filepath.Join(root, "codetint.db")
}
