// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/popup/popup.go
// Summary: Terminal popup showing the last color, the profile selector and recent colors.

package popup

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/codetint/codec"
	"github.com/framegrace/codetint/color"
	"github.com/framegrace/codetint/internal/termloop"
	"github.com/framegrace/codetint/notify"
	"github.com/framegrace/codetint/store"
	"github.com/framegrace/codetint/tint"
)

// History is the part of the store the popup reads and clears.
type History interface {
	Last(ctx context.Context) (color.Color, error)
	History(ctx context.Context) ([]color.Color, error)
	ClearHistory(ctx context.Context) error
}

// Options configures a popup.
type Options struct {
	Service *tint.Service
	Store   History
	// Profile is the initially selected profile.
	Profile string
	// SaveProfile persists a profile change. Optional.
	SaveProfile func(profile string) error
}

// historyTop is the first screen row of the recent colors list.
const historyTop = 9

// Popup is the interactive view. It implements termloop.App.
type Popup struct {
	ctx  context.Context
	opts Options

	profiles []codec.ProfileInfo
	selected int

	last    *color.Color
	history []color.Color
	// cursor is the highlighted history row, -1 when the preview has focus.
	cursor int
	status string
	// rows is the number of history rows the last Draw fit on screen, -1 before the first Draw.
	rows int
}

// New loads the current state and returns a popup.
func New(ctx context.Context, opts Options) (*Popup, error) {
	p := &Popup{
		ctx:      ctx,
		opts:     opts,
		profiles: codec.Profiles(),
		cursor:   -1,
		rows:     -1,
	}
	p.selectProfile(opts.Profile)
	if err := p.reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Run opens the popup on the terminal until the user quits.
func Run(ctx context.Context, opts Options) error {
	p, err := New(ctx, opts)
	if err != nil {
		return err
	}
	return termloop.Run(ctx, p)
}

// Profile returns the selected profile.
func (p *Popup) Profile() codec.Profile {
	return p.profiles[p.selected].Profile
}

// Status returns the feedback line.
func (p *Popup) Status() string {
	return p.status
}

// Cursor returns the selected history row, or -1.
func (p *Popup) Cursor() int {
	return p.cursor
}

func (p *Popup) selectProfile(name string) {
	p.selected = 0
	if prof, ok := codec.ParseProfile(name); ok {
		for i, info := range p.profiles {
			if info.Profile == prof {
				p.selected = i
				return
			}
		}
	}
	for i, info := range p.profiles {
		if info.Profile == codec.DefaultProfile {
			p.selected = i
		}
	}
}

func (p *Popup) reload() error {
	last, err := p.opts.Store.Last(p.ctx)
	switch {
	case errors.Is(err, store.ErrNoLast):
		p.last = nil
	case err != nil:
		return err
	default:
		p.last = &last
	}

	p.history, err = p.opts.Store.History(p.ctx)
	if err != nil {
		return err
	}
	if p.cursor >= len(p.history) {
		p.cursor = len(p.history) - 1
	}
	return nil
}

func (p *Popup) setProfile(i int) {
	n := len(p.profiles)
	p.selected = ((i % n) + n) % n
	p.status = ""
	prof := string(p.Profile())
	if p.opts.SaveProfile != nil {
		if err := p.opts.SaveProfile(prof); err != nil {
			log.Printf("[CodeTint] Saving profile %s failed: %v", prof, err)
			p.status = "Could not save profile"
		}
	}
}

func (p *Popup) copySelected() {
	var res tint.Result
	var err error
	prof := string(p.Profile())
	if p.cursor >= 0 {
		res, err = p.opts.Service.Copy(p.ctx, p.history[p.cursor], prof)
	} else {
		if p.last == nil {
			return
		}
		res, err = p.opts.Service.Copy(p.ctx, *p.last, prof)
	}
	if err != nil {
		log.Printf("[CodeTint] Copy failed: %v", err)
		p.status = "Copy failed"
		return
	}
	log.Printf("[CodeTint] Copied %s", res.Text)
	p.status = "Copied!"
}

func (p *Popup) clearHistory() {
	if err := p.opts.Store.ClearHistory(p.ctx); err != nil {
		log.Printf("[CodeTint] Clearing history failed: %v", err)
		p.status = "Could not clear history"
		return
	}
	p.history = nil
	p.cursor = -1
	p.status = "History cleared"
}

// selectable returns how many history rows the cursor may reach.
func (p *Popup) selectable() int {
	n := len(p.history)
	if p.rows >= 0 && p.rows < n {
		n = p.rows
	}
	return n
}

// HandleKey implements termloop.App.
func (p *Popup) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		p.setProfile(p.selected - 1)
	case tcell.KeyRight:
		p.setProfile(p.selected + 1)
	case tcell.KeyUp:
		if p.cursor >= 0 {
			p.cursor--
		}
		p.status = ""
	case tcell.KeyDown:
		if p.cursor < p.selectable()-1 {
			p.cursor++
		}
		p.status = ""
	case tcell.KeyEnter:
		p.copySelected()
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == 'q':
			return true
		case r == 'c':
			p.clearHistory()
		case r == 'r':
			if err := p.reload(); err != nil {
				log.Printf("[CodeTint] Reload failed: %v", err)
			}
		case r >= '1' && r <= '9':
			if i := int(r - '1'); i < len(p.profiles) {
				p.setProfile(i)
			}
		}
	}
	return false
}

// Draw implements termloop.App.
func (p *Popup) Draw(s tcell.Screen) {
	w, h := s.Size()
	p.rows = max(0, h-1-historyTop)
	if p.cursor >= p.selectable() {
		p.cursor = p.selectable() - 1
	}
	base := tcell.StyleDefault
	bold := base.Bold(true)
	dim := base.Dim(true)

	termloop.DrawText(s, 1, 0, "CodeTint", bold)

	// Profile selector
	x := termloop.DrawText(s, 1, 2, "Profile  ◀ ", base)
	x = termloop.DrawText(s, x, 2, p.profiles[p.selected].Label, bold)
	x = termloop.DrawText(s, x, 2, " ▶  ", base)
	termloop.DrawText(s, x, 2, strconv.Itoa(p.selected+1)+"/"+strconv.Itoa(len(p.profiles)), dim)

	// Preview of the last color
	previewStyle := base
	if p.cursor < 0 {
		previewStyle = previewStyle.Reverse(true)
	}
	if p.last == nil {
		termloop.DrawText(s, 1, 4, "      ", base.Background(tcell.ColorGray))
		termloop.DrawText(s, 8, 4, "—", previewStyle)
		termloop.DrawText(s, 8, 5, "No color yet", dim)
	} else {
		drawSwatch(s, 1, 4, 6, *p.last)
		termloop.DrawTextClipped(s, 8, 4, w-9, codec.Encode(*p.last, string(p.Profile())), previewStyle)
		termloop.DrawText(s, 8, 5, p.last.Hex, dim)
	}
	if p.status != "" {
		termloop.DrawText(s, 1, 6, p.status, bold)
	}

	// Recent colors
	termloop.DrawText(s, 1, 8, "Recent", bold)
	if len(p.history) == 0 {
		termloop.DrawText(s, 3, historyTop, "No recent colors", dim)
	}
	for i, c := range p.history[:p.selectable()] {
		y := historyTop + i
		style := base
		if i == p.cursor {
			style = style.Reverse(true)
		}
		drawSwatch(s, 1, y, 2, c)
		termloop.DrawTextClipped(s, 4, y, w-5, c.Hex+"  "+codec.Encode(c, string(p.Profile())), style)
	}

	termloop.DrawTextClipped(s, 1, h-1, w-2, "←/→ 1-8 profile  ↑/↓ select  Enter copy  c clear  q quit", dim)
}

// drawSwatch fills width cells with c. The middle cell shows a contrast dot
// when the color is translucent.
func drawSwatch(s tcell.Screen, x, y, width int, c color.Color) {
	bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	style := tcell.StyleDefault.Background(bg)
	if !c.Opaque() {
		cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
		fr, fg, fb := notify.Contrast(cf).RGB255()
		style = style.Foreground(tcell.NewRGBColor(int32(fr), int32(fg), int32(fb)))
	}
	for i := 0; i < width; i++ {
		ch := ' '
		if !c.Opaque() && i == width/2 {
			ch = '◌'
		}
		s.SetContent(x+i, y, ch, nil, style)
	}
}
