// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load and migration logic for the settings file.

package config

import "log"

func loadSystemLocked() error {
	damaged = false
	path, err := systemConfigPath()
	if err != nil {
		log.Printf("Config: Failed to resolve config path: %v", err)
		system = make(Config)
		applySystemDefaults(system)
		return err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Printf("Config: Failed to read config %s: %v", path, readErr)
		cfg = make(Config)
		damaged = exists
	}

	if !exists {
		cfg = make(Config)
		migrated, migrateErr := migrateFromLegacy(cfg)
		if migrateErr != nil {
			log.Printf("Config: Legacy migration error: %v", migrateErr)
			if readErr == nil {
				readErr = migrateErr
			}
		}
		if !migrated {
			if def, err := embeddedSystemDefaults(); err == nil && def != nil {
				cfg = Clone(def)
				migrated = true
			} else if err != nil {
				log.Printf("Config: Embedded defaults unavailable: %v", err)
			}
		}
		applySystemDefaults(cfg)
		if migrated {
			if err := writeConfig(path, cfg); err != nil {
				log.Printf("Config: Failed to write initial config: %v", err)
				if readErr == nil {
					readErr = err
				}
			}
		}
	} else {
		applySystemDefaults(cfg)
	}

	system = cfg
	if readErr == nil && exists {
		log.Printf("Config: Loaded config from %s", path)
	}
	return readErr
}
