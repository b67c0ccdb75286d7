// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/codetint/app.go
// Summary: Lazily built collaborators shared by the subcommands.

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/framegrace/codetint/clipboard"
	"github.com/framegrace/codetint/codec"
	"github.com/framegrace/codetint/config"
	"github.com/framegrace/codetint/highlight"
	"github.com/framegrace/codetint/notify"
	"github.com/framegrace/codetint/store"
	"github.com/framegrace/codetint/tint"
)

type app struct {
	opts   globalOptions
	cfg    config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	store *store.Store
	clip  clipboard.Clipboard
}

func newApp(opts globalOptions, stdin io.Reader, stdout, stderr io.Writer) *app {
	if err := config.Err(); err != nil {
		log.Printf("Config: using defaults after load error: %v", err)
	}
	return &app{
		opts:   opts,
		cfg:    config.System(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			log.Printf("[STORE] Close failed: %v", err)
		}
	}
}

// profile returns the -profile override or the configured profile.
func (a *app) profile() string {
	if a.opts.profile != "" {
		return a.opts.profile
	}
	return a.cfg.Profile()
}

func (a *app) openStore() (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	path := a.cfg.StorePath()
	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	st, err := store.OpenWithConfig(store.Config{
		DBPath:       path,
		HistoryLimit: a.cfg.HistoryLimit(),
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if fresh {
		importLegacy(st)
	}
	a.store = st
	return st, nil
}

// importLegacy copies the extension's last color and history into a new store.
// Failures are logged; the store stays usable.
func importLegacy(st *store.Store) {
	legacy, err := config.LegacyColors()
	if err != nil {
		log.Printf("[STORE] Reading legacy colors failed: %v", err)
		return
	}
	if legacy.Empty() {
		return
	}
	if err := st.Import(context.Background(), legacy.Last, legacy.History); err != nil {
		log.Printf("[STORE] Importing legacy colors failed: %v", err)
		return
	}
	log.Printf("[STORE] Imported %d legacy history entries", len(legacy.History))
}

func (a *app) openClipboard() (clipboard.Clipboard, error) {
	if a.clip != nil {
		return a.clip, nil
	}
	backend := a.opts.clipboard
	if backend == "" {
		backend = a.cfg.ClipboardBackend()
	}
	c, err := clipboard.New(backend, a.stderr)
	if err != nil {
		return nil, err
	}
	a.clip = c
	return c, nil
}

func (a *app) notifier() notify.Notifier {
	t := notify.NewTerminal(a.stderr)
	if a.opts.noColor {
		t.Color = false
	}
	return notify.Multi{notify.Log{}, t}
}

func (a *app) service() (*tint.Service, error) {
	st, err := a.openStore()
	if err != nil {
		return nil, err
	}
	clip, err := a.openClipboard()
	if err != nil {
		return nil, err
	}
	return &tint.Service{
		Clipboard: clip,
		Store:     st,
		Notifier:  a.notifier(),
		Profile:   a.profile,
	}, nil
}

// colorOutput reports whether stdout gets syntax highlighting.
func (a *app) colorOutput() bool {
	if a.opts.noColor || !a.cfg.HighlightEnabled() {
		return false
	}
	f, ok := a.stdout.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printLiteral writes an encoded literal and a newline.
func (a *app) printLiteral(text, profile string) error {
	if _, ok := codec.ParseProfile(profile); !ok {
		profile = string(codec.ProfileCSSHex)
	}
	var err error
	if a.colorOutput() {
		err = highlight.Literal(a.stdout, text, profile, a.cfg.HighlightStyle())
	} else {
		err = highlight.Plain(a.stdout, text)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout)
	return err
}
