// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Persistent settings store for codetint (codetint.json).

package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	systemConfigName = "codetint.json"
	legacyConfigName = "config.json"
)

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

var (
	mu      sync.RWMutex
	once    sync.Once
	system  Config
	loadErr error
	// damaged is set when codetint.json exists but could not be read or parsed.
	damaged bool
)

// Err returns the most recent load error.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// System returns a copy of the loaded configuration.
func System() Config {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return Clone(system)
}

// Reload re-reads codetint.json from disk.
func Reload() error {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	loadErr = loadSystemLocked()
	return loadErr
}

// Save persists the in-memory configuration. A settings file that failed to
// load is moved to codetint.json.bak first.
func Save() error {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	path, err := systemConfigPath()
	if err != nil {
		return err
	}
	if damaged {
		if err := backupConfig(path); err != nil {
			return fmt.Errorf("config: refusing to overwrite %s: %w", path, err)
		}
		damaged = false
	}
	return writeConfig(path, system)
}

// SetSystem replaces the in-memory configuration.
func SetSystem(cfg Config) {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	if cfg == nil {
		cfg = make(Config)
	}
	system = Clone(cfg)
	applySystemDefaults(system)
}

// Set stores a single value in memory. Call Save to persist it.
func Set(sectionName, key string, value interface{}) {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	system.Set(sectionName, key, value)
}

func initStore() {
	mu.Lock()
	defer mu.Unlock()
	system = make(Config)
	loadErr = loadSystemLocked()
}

func readConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, true, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

func writeConfig(path string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	log.Printf("Config: Wrote %s", path)
	return nil
}

func backupConfig(path string) error {
	backup := path + ".bak"
	if err := os.Rename(path, backup); err != nil {
		return err
	}
	log.Printf("Config: Moved unreadable %s to %s", path, backup)
	return nil
}

// Clone returns a copy of the config and its sections.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	out := make(Config, len(cfg))
	for name, value := range cfg {
		switch v := value.(type) {
		case map[string]interface{}:
			out[name] = cloneSection(v)
		case Section:
			out[name] = cloneSection(v)
		default:
			out[name] = v
		}
	}
	return out
}

func cloneSection(in map[string]interface{}) Section {
	s := make(Section, len(in))
	for k, v := range in {
		s[k] = v
	}
	return s
}
