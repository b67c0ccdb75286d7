// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: notify/notify.go
// Summary: Short user-facing status messages with an optional color swatch.

package notify

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"
)

// Notifier shows a transient message. swatch is a "#RRGGBB" color or "".
type Notifier interface {
	Notify(message, swatch string)
}

// Log writes messages to the standard logger.
type Log struct{}

func (Log) Notify(message, swatch string) {
	if swatch != "" {
		log.Printf("[CodeTint] %s (%s)", message, swatch)
		return
	}
	log.Printf("[CodeTint] %s", message)
}

// Terminal prints messages on a writer, with a truecolor swatch when Color is set.
type Terminal struct {
	W     io.Writer
	Color bool
}

// NewTerminal enables color when w is a terminal.
func NewTerminal(w io.Writer) *Terminal {
	t := &Terminal{W: w}
	if f, ok := w.(*os.File); ok {
		t.Color = term.IsTerminal(int(f.Fd()))
	}
	return t
}

func (t *Terminal) Notify(message, swatch string) {
	if t.Color && swatch != "" {
		if sw, ok := Swatch(swatch); ok {
			fmt.Fprintf(t.W, "%s %s\n", sw, message)
			return
		}
	}
	fmt.Fprintln(t.W, message)
}

// Swatch renders hex as a block of its own color with the hex value written
// in black or white, whichever reads better on it.
func Swatch(hex string) (string, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", false
	}
	bg := c.Clamped()
	fg := Contrast(bg)
	br, bgg, bb := bg.RGB255()
	fr, fgg, fb := fg.RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm %s \x1b[0m",
		br, bgg, bb, fr, fgg, fb, hex), true
}

// Contrast returns black or white, whichever is perceptually farther from c.
func Contrast(c colorful.Color) colorful.Color {
	black := colorful.Color{R: 0, G: 0, B: 0}
	white := colorful.Color{R: 1, G: 1, B: 1}
	if c.DistanceCIEDE2000(black) > c.DistanceCIEDE2000(white) {
		return black
	}
	return white
}

// Multi fans a message out to several notifiers.
type Multi []Notifier

func (m Multi) Notify(message, swatch string) {
	for _, n := range m {
		n.Notify(message, swatch)
	}
}
