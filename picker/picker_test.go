// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package picker

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestStatic(t *testing.T) {
	got, err := Static("#12ab34").Sample(context.Background())
	if err != nil || got != "#12ab34" {
		t.Fatalf("Sample() = %q, %v", got, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Static("#000000").Sample(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Sample on canceled ctx = %v", err)
	}
}

func TestFunc(t *testing.T) {
	f := Func(func(context.Context) (string, error) { return "", ErrCanceled })
	if _, err := f.Sample(context.Background()); !errors.Is(err, ErrCanceled) {
		t.Errorf("Func error = %v, want ErrCanceled", err)
	}
}

func TestOKLCHPlaneNavigation(t *testing.T) {
	op := NewOKLCH()

	op.HandleKey(key(tcell.KeyHome))
	if op.H != 0 {
		t.Errorf("Home: H = %v, want 0", op.H)
	}
	op.HandleKey(key(tcell.KeyLeft))
	if op.H != 0 {
		t.Errorf("Left at edge moved hue to %v", op.H)
	}
	op.HandleKey(key(tcell.KeyEnd))
	if op.H != 360 {
		t.Errorf("End: H = %v, want 360", op.H)
	}

	for i := 0; i < 20; i++ {
		op.HandleKey(key(tcell.KeyUp))
	}
	if math.Abs(op.C-maxChroma) > 1e-9 {
		t.Errorf("top row chroma = %v, want %v", op.C, maxChroma)
	}
	for i := 0; i < 20; i++ {
		op.HandleKey(key(tcell.KeyDown))
	}
	if op.C != 0 {
		t.Errorf("bottom row chroma = %v, want 0", op.C)
	}
}

func TestOKLCHLightnessSlider(t *testing.T) {
	op := NewOKLCH()
	op.HandleKey(key(tcell.KeyTab))
	if op.Active() != OKLCHControlLightness {
		t.Fatalf("Tab did not focus the slider")
	}
	hue := op.H

	for i := 0; i < 10; i++ {
		op.HandleKey(key(tcell.KeyUp))
	}
	if op.L != 1.0 {
		t.Errorf("L = %v, want 1.0", op.L)
	}
	op.HandleKey(key(tcell.KeyEnd))
	if op.L != 0 {
		t.Errorf("End: L = %v, want 0", op.L)
	}
	if op.H != hue {
		t.Errorf("slider keys changed hue from %v to %v", hue, op.H)
	}

	op.HandleKey(key(tcell.KeyBacktab))
	if op.Active() != OKLCHControlPlane {
		t.Errorf("Backtab did not return to the plane")
	}
}

func TestOKLCHSetHex(t *testing.T) {
	for _, hex := range []string{"#ff0000", "#3366cc", "#808080", "#ffffff"} {
		op := NewOKLCH()
		if err := op.SetHex(hex); err != nil {
			t.Fatalf("SetHex(%s): %v", hex, err)
		}
		if got := op.Hex(); got != hex {
			t.Errorf("SetHex(%s) then Hex() = %s", hex, got)
		}
	}
	if err := NewOKLCH().SetHex("nope"); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestOKLCHMouse(t *testing.T) {
	op := NewOKLCH()
	op.HandleKey(key(tcell.KeyTab))

	if !op.HandleMouse(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone), 5, 5) {
		t.Fatal("click on plane origin not handled")
	}
	if op.Active() != OKLCHControlPlane || op.H != 0 || math.Abs(op.C-maxChroma) > 1e-9 {
		t.Errorf("after click: active=%v H=%v C=%v", op.Active(), op.H, op.C)
	}

	// Slider column is plane width + 2 to the right.
	if !op.HandleMouse(tcell.NewEventMouse(5+20+2+1, 5, tcell.Button1, tcell.ModNone), 5, 5) {
		t.Fatal("click on slider not handled")
	}
	if op.Active() != OKLCHControlLightness || op.L != 1.0 {
		t.Errorf("after slider click: active=%v L=%v", op.Active(), op.L)
	}

	if op.HandleMouse(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone), 5, 5) {
		t.Error("click outside handled")
	}
}

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func TestInteractiveAccept(t *testing.T) {
	s := simScreen(t)
	s.PostEvent(key(tcell.KeyEnter))

	got, err := Interactive{Initial: "#3366cc"}.SampleOn(context.Background(), s)
	if err != nil {
		t.Fatalf("SampleOn: %v", err)
	}
	if got != "#3366cc" {
		t.Errorf("sampled %s, want #3366cc", got)
	}
}

func TestInteractiveMoveThenAccept(t *testing.T) {
	s := simScreen(t)
	s.PostEvent(key(tcell.KeyHome))
	s.PostEvent(key(tcell.KeyEnter))

	want := NewOKLCH()
	want.HandleKey(key(tcell.KeyHome))

	got, err := Interactive{}.SampleOn(context.Background(), s)
	if err != nil {
		t.Fatalf("SampleOn: %v", err)
	}
	if got != want.Hex() {
		t.Errorf("sampled %s, want %s", got, want.Hex())
	}
}

func TestInteractiveCancel(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		key(tcell.KeyEscape),
		key(tcell.KeyCtrlC),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		s := simScreen(t)
		s.PostEvent(ev)
		if _, err := (Interactive{}).SampleOn(context.Background(), s); !errors.Is(err, ErrCanceled) {
			t.Errorf("key %v: err = %v, want ErrCanceled", ev.Name(), err)
		}
	}
}
