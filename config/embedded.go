// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Loads and caches the embedded codetint.json defaults.

package config

import (
	"encoding/json"
	"sync"

	"github.com/framegrace/codetint/defaults"
)

var (
	embeddedOnce sync.Once
	embedded     Config
	embeddedErr  error
)

// embeddedSystemDefaults returns the parsed embedded defaults, cached after the first call.
func embeddedSystemDefaults() (Config, error) {
	embeddedOnce.Do(func() {
		data, err := defaults.SystemConfig()
		if err != nil {
			embeddedErr = err
			return
		}
		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			embeddedErr = err
			return
		}
		embedded = cfg
	})
	return embedded, embeddedErr
}
