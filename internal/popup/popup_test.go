// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package popup

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/codetint/clipboard"
	"github.com/framegrace/codetint/codec"
	"github.com/framegrace/codetint/color"
	"github.com/framegrace/codetint/internal/termloop"
	"github.com/framegrace/codetint/store"
	"github.com/framegrace/codetint/tint"
)

type harness struct {
	popup *Popup
	clip  *clipboard.Memory
	store *store.Store
	saved []string
}

func newHarness(t *testing.T, remember ...color.Color) *harness {
	t.Helper()
	ctx := context.Background()
	st, err := store.Open(filepath.Join(t.TempDir(), "codetint.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	for _, c := range remember {
		if err := st.Remember(ctx, c); err != nil {
			t.Fatalf("remember: %v", err)
		}
	}

	h := &harness{clip: clipboard.NewMemory(""), store: st}
	svc := &tint.Service{Clipboard: h.clip, Store: st}
	h.popup, err = New(ctx, Options{
		Service: svc,
		Store:   st,
		Profile: "flutter",
		SaveProfile: func(p string) error {
			h.saved = append(h.saved, p)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return h
}

func (h *harness) press(keys ...*tcell.EventKey) bool {
	done := false
	for _, k := range keys {
		done = h.popup.HandleKey(k)
	}
	return done
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func screen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(60, 20)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestEmptyState(t *testing.T) {
	h := newHarness(t)
	s := screen(t)
	h.popup.Draw(s)

	if got := rowText(s, 4); !strings.Contains(got, "—") {
		t.Errorf("preview row = %q, want placeholder", got)
	}
	if got := rowText(s, 5); !strings.Contains(got, "No color yet") {
		t.Errorf("row 5 = %q", got)
	}

	h.press(key(tcell.KeyEnter))
	if h.clip.Text() != "" || h.popup.Status() != "" {
		t.Errorf("Enter with no color copied %q, status %q", h.clip.Text(), h.popup.Status())
	}
}

func TestProfileSelection(t *testing.T) {
	h := newHarness(t)

	h.press(key(tcell.KeyRight))
	if h.popup.Profile() != codec.ProfileCSSHex {
		t.Errorf("Right: profile = %s", h.popup.Profile())
	}
	h.press(key(tcell.KeyLeft), key(tcell.KeyLeft))
	if h.popup.Profile() != codec.ProfileTailwind {
		t.Errorf("Left wrap: profile = %s", h.popup.Profile())
	}
	h.press(char('5'))
	if h.popup.Profile() != codec.ProfileSwiftUI {
		t.Errorf("'5': profile = %s", h.popup.Profile())
	}
	h.press(char('9'))
	if h.popup.Profile() != codec.ProfileSwiftUI {
		t.Errorf("'9' changed profile to %s", h.popup.Profile())
	}

	want := []string{"css-hex", "flutter", "tailwind", "ios-swiftui"}
	if strings.Join(h.saved, ",") != strings.Join(want, ",") {
		t.Errorf("saved = %v, want %v", h.saved, want)
	}
}

func TestCopyLastAndHistory(t *testing.T) {
	h := newHarness(t, color.RGB(1, 2, 3), color.Make(255, 0, 0, 128))

	h.press(char('2'), key(tcell.KeyEnter))
	if h.clip.Text() != "#FF0000" {
		t.Errorf("copied %q, want #FF0000", h.clip.Text())
	}
	if h.popup.Status() != "Copied!" {
		t.Errorf("status = %q", h.popup.Status())
	}

	h.press(key(tcell.KeyDown), key(tcell.KeyDown), key(tcell.KeyDown))
	if h.popup.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", h.popup.Cursor())
	}
	h.press(char('7'), key(tcell.KeyEnter))
	if h.clip.Text() != "#FF010203" {
		t.Errorf("copied %q, want #FF010203", h.clip.Text())
	}

	h.press(key(tcell.KeyUp), key(tcell.KeyUp), key(tcell.KeyUp))
	if h.popup.Cursor() != -1 {
		t.Errorf("cursor = %d, want -1", h.popup.Cursor())
	}
}

func TestDrawShowsPreviewAndHistory(t *testing.T) {
	h := newHarness(t, color.RGB(0x34, 0x98, 0xDB))
	s := screen(t)
	h.popup.Draw(s)

	if got := rowText(s, 2); !strings.Contains(got, "Flutter") {
		t.Errorf("profile row = %q", got)
	}
	if got := rowText(s, 4); !strings.Contains(got, "const Color(0xFF3498DB)") {
		t.Errorf("preview row = %q", got)
	}
	if got := rowText(s, 9); !strings.Contains(got, "#3498DB") {
		t.Errorf("history row = %q", got)
	}
	_, _, style, _ := s.GetContent(1, 4)
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(0x34, 0x98, 0xDB) {
		t.Errorf("swatch background = %v", bg)
	}
}

func TestClearHistory(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, color.RGB(9, 9, 9))

	h.press(key(tcell.KeyDown), char('c'))
	hist, err := h.store.History(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(hist) != 0 {
		t.Errorf("history not cleared: %v", hist)
	}
	if h.popup.Cursor() != -1 || h.popup.Status() != "History cleared" {
		t.Errorf("cursor %d status %q", h.popup.Cursor(), h.popup.Status())
	}
	if _, err := h.store.Last(ctx); err != nil {
		t.Errorf("last color lost: %v", err)
	}
}

func TestCursorStaysOnVisibleRows(t *testing.T) {
	h := newHarness(t, color.RGB(1, 1, 1), color.RGB(2, 2, 2), color.RGB(3, 3, 3), color.RGB(4, 4, 4))
	s := screen(t)
	s.SetSize(60, 12)
	h.popup.Draw(s)

	h.press(key(tcell.KeyDown), key(tcell.KeyDown), key(tcell.KeyDown), key(tcell.KeyDown), key(tcell.KeyDown))
	if h.popup.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1 (last visible row)", h.popup.Cursor())
	}
	h.press(char('2'), key(tcell.KeyEnter))
	if h.clip.Text() != "#030303" {
		t.Errorf("copied %q, want #030303", h.clip.Text())
	}
	if got := rowText(s, 11); strings.Contains(got, "#020202") {
		t.Errorf("third history row drawn over the help line: %q", got)
	}
}

func TestShrinkClampsCursor(t *testing.T) {
	h := newHarness(t, color.RGB(1, 1, 1), color.RGB(2, 2, 2), color.RGB(3, 3, 3), color.RGB(4, 4, 4))
	s := screen(t)
	h.popup.Draw(s)
	h.press(key(tcell.KeyDown), key(tcell.KeyDown), key(tcell.KeyDown), key(tcell.KeyDown))
	if h.popup.Cursor() != 3 {
		t.Fatalf("cursor = %d, want 3", h.popup.Cursor())
	}

	s.SetSize(60, 10)
	h.popup.Draw(s)
	if h.popup.Cursor() != -1 {
		t.Errorf("cursor = %d after shrinking to no history rows, want -1", h.popup.Cursor())
	}
}

func TestQuitKeys(t *testing.T) {
	h := newHarness(t)
	for _, k := range []*tcell.EventKey{char('q'), key(tcell.KeyEscape), key(tcell.KeyCtrlC)} {
		if !h.popup.HandleKey(k) {
			t.Errorf("%s did not quit", k.Name())
		}
	}
	if h.press(char('x')) {
		t.Error("'x' quit the popup")
	}
}

func TestLoopIntegration(t *testing.T) {
	h := newHarness(t, color.RGB(0x10, 0x20, 0x30))
	s := screen(t)
	s.PostEvent(key(tcell.KeyRight))
	s.PostEvent(key(tcell.KeyEnter))
	s.PostEvent(char('q'))

	if err := termloop.Loop(context.Background(), s, h.popup); err != nil {
		t.Fatalf("Loop: %v", err)
	}
	if h.clip.Text() != "#102030" {
		t.Errorf("clipboard = %q, want #102030", h.clip.Text())
	}
}
