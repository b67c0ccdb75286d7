// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/termloop/termloop.go
// Summary: Full-screen tcell event loop shared by the picker and the popup.

package termloop

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// App is a full-screen view driven by Loop.
type App interface {
	// Draw paints the whole view. The screen is cleared beforehand.
	Draw(s tcell.Screen)
	// HandleKey reacts to a key press and reports whether the loop should end.
	HandleKey(ev *tcell.EventKey) (done bool)
}

// MouseHandler is implemented by apps that accept mouse input.
type MouseHandler interface {
	HandleMouse(ev *tcell.EventMouse)
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run opens a terminal screen, drives app until it finishes, and restores the terminal.
func Run(ctx context.Context, app App) error {
	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	defer screen.DisableMouse()

	return Loop(ctx, screen, app)
}

// Loop drives app on an initialized screen. It returns nil when app reports
// done and ctx.Err() when ctx is canceled first.
func Loop(ctx context.Context, screen tcell.Screen, app App) error {
	stop := context.AfterFunc(ctx, func() {
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	draw := func() {
		screen.Clear()
		app.Draw(screen)
		screen.Show()
	}
	draw()

	for {
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			// Screen finalized underneath us.
			return ctx.Err()
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
			draw()
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if app.HandleKey(tev) {
				return nil
			}
			draw()
		case *tcell.EventMouse:
			if mh, ok := app.(MouseHandler); ok {
				mh.HandleMouse(tev)
				draw()
			}
		}
	}
}

// DrawText writes text starting at (x, y) and returns the column after the
// last cell. Wide runes take two columns.
func DrawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// DrawTextClipped is DrawText limited to maxWidth columns, ending in "…" when cut.
func DrawTextClipped(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	if maxWidth <= 0 {
		return x
	}
	return DrawText(s, x, y, runewidth.Truncate(text, maxWidth, "…"), style)
}
