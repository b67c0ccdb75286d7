// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: picker/interactive.go
// Summary: Full-screen Sampler built on the OKLCH picker.

package picker

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/codetint/internal/termloop"
)

// Interactive samples a color by letting the user pick it in the terminal.
// Enter accepts, Esc, q or Ctrl-C cancel.
type Interactive struct {
	// Initial is an optional "#rrggbb" starting point.
	Initial string
}

// Sample opens the picker on the terminal.
func (p Interactive) Sample(ctx context.Context) (string, error) {
	app := p.newApp()
	if err := termloop.Run(ctx, app); err != nil {
		return "", err
	}
	return app.result()
}

// SampleOn runs the picker on an already initialized screen.
func (p Interactive) SampleOn(ctx context.Context, s tcell.Screen) (string, error) {
	app := p.newApp()
	if err := termloop.Loop(ctx, s, app); err != nil {
		return "", err
	}
	return app.result()
}

func (p Interactive) newApp() *pickerApp {
	op := NewOKLCH()
	if p.Initial != "" {
		if err := op.SetHex(p.Initial); err != nil {
			log.Printf("Picker: ignoring initial color: %v", err)
		}
	}
	return &pickerApp{op: op}
}

type pickerApp struct {
	op       *OKLCH
	accepted bool
}

const (
	originX = 2
	originY = 2
)

func (a *pickerApp) Draw(s tcell.Screen) {
	termloop.DrawText(s, originX, 0, "Pick a color  ←↑↓→ move  Tab lightness  Enter pick  Esc cancel", tcell.StyleDefault.Bold(true))
	a.op.Draw(s, originX, originY)
}

func (a *pickerApp) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		a.accepted = true
		return true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return true
		}
	}
	a.op.HandleKey(ev)
	return false
}

func (a *pickerApp) HandleMouse(ev *tcell.EventMouse) {
	a.op.HandleMouse(ev, originX, originY)
}

func (a *pickerApp) result() (string, error) {
	if !a.accepted {
		return "", ErrCanceled
	}
	return a.op.Hex(), nil
}
