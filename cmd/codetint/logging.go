// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/framegrace/codetint/config"
)

// setupLogging sends the standard logger to codetint.log, mirrored to stderr
// when verbose. The returned func restores stderr logging and closes the file.
func setupLogging(verbose bool, stderr io.Writer) (func(), error) {
	logPath, err := config.LogPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.SetOutput(io.MultiWriter(file, stderr))
	} else {
		log.SetOutput(file)
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() {
		log.SetOutput(os.Stderr)
		file.Close()
	}, nil
}
