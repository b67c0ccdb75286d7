// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: picker/oklch.go
// Summary: OKLCH color selection plane with a lightness slider.

package picker

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/codetint/internal/termloop"
)

// OKLCHControl identifies which control has focus.
type OKLCHControl int

const (
	OKLCHControlPlane     OKLCHControl = iota // Hue x Chroma plane
	OKLCHControlLightness                     // Lightness slider
)

const maxChroma = 0.4

// OKLCH holds the picker state.
// Layout:
//   - H×C (hue×chroma) plane: 2D grid (20x10)
//   - L (lightness) slider: vertical on right
//   - Preview and hex value below
type OKLCH struct {
	L float64 // 0.0 - 1.0
	C float64 // 0.0 - 0.4
	H float64 // 0 - 360

	active  OKLCHControl
	planeW  int
	planeH  int
	cursorX int
	cursorY int
}

// NewOKLCH returns a picker starting on a mid-lightness purple.
func NewOKLCH() *OKLCH {
	op := &OKLCH{
		L:       0.7,
		planeW:  20,
		planeH:  10,
		cursorX: 15, // hue 270
		cursorY: 6,  // chroma ~0.15
	}
	op.updateFromCursor()
	return op
}

// Active reports which control has focus.
func (op *OKLCH) Active() OKLCHControl {
	return op.active
}

// Color returns the current selection mapped into the sRGB gamut.
func (op *OKLCH) Color() colorful.Color {
	return colorful.OkLch(op.L, op.C, op.H).Clamped()
}

// Hex returns the current selection as "#rrggbb".
func (op *OKLCH) Hex() string {
	return op.Color().Hex()
}

// SetHex moves the picker to an sRGB color.
func (op *OKLCH) SetHex(hex string) error {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("picker: %w", err)
	}
	op.L, op.C, op.H = c.OkLch()

	op.cursorX = clampInt(int(op.H/360.0*float64(op.planeW-1)+0.5), 0, op.planeW-1)
	op.cursorY = clampInt(int((1.0-op.C/maxChroma)*float64(op.planeH-1)+0.5), 0, op.planeH-1)
	return nil
}

// Size returns the cells needed to draw the picker.
func (op *OKLCH) Size() (int, int) {
	// plane + gap + slider, plane + label + two preview rows
	return op.planeW + 2 + 3, op.planeH + 3
}

// Draw paints the picker with its top-left corner at (x, y).
func (op *OKLCH) Draw(s tcell.Screen, x, y int) {
	base := tcell.StyleDefault
	op.drawPlane(s, x, y)
	sliderX := x + op.planeW + 2
	op.drawSlider(s, sliderX, y)

	termloop.DrawText(s, x, y+op.planeH, "H→", base)
	if op.active == OKLCHControlPlane {
		termloop.DrawText(s, sliderX, y+op.planeH, "L", base.Dim(true))
	} else {
		termloop.DrawText(s, sliderX, y+op.planeH, "L", base.Bold(true))
	}
	op.drawPreview(s, x, y+op.planeH+1)
}

func (op *OKLCH) drawPlane(s tcell.Screen, ox, oy int) {
	if op.planeW <= 1 || op.planeH <= 1 {
		return
	}
	for y := 0; y < op.planeH; y++ {
		for x := 0; x < op.planeW; x++ {
			h := float64(x) / float64(op.planeW-1) * 360.0
			c := (1.0 - float64(y)/float64(op.planeH-1)) * maxChroma

			ch := '·'
			if x == op.cursorX && y == op.cursorY {
				if op.active == OKLCHControlPlane {
					ch = '●'
				} else {
					ch = '○'
				}
			}
			style := tcell.StyleDefault.Foreground(tcellColor(colorful.OkLch(op.L, c, h).Clamped()))
			s.SetContent(ox+x, oy+y, ch, nil, style)
		}
	}
}

func (op *OKLCH) drawSlider(s tcell.Screen, ox, oy int) {
	if op.planeH <= 1 {
		return
	}
	thumb := int((1.0 - op.L) * float64(op.planeH-1))
	border := tcell.StyleDefault
	for y := 0; y < op.planeH; y++ {
		l := 1.0 - float64(y)/float64(op.planeH-1)
		style := tcell.StyleDefault.Foreground(tcellColor(colorful.OkLch(l, op.C, op.H).Clamped()))

		ch := '█'
		if y == thumb {
			if op.active == OKLCHControlLightness {
				ch = '◆'
				style = style.Reverse(true)
			} else {
				ch = '◇'
			}
		}
		s.SetContent(ox, oy+y, '│', nil, border)
		s.SetContent(ox+1, oy+y, ch, nil, style)
		s.SetContent(ox+2, oy+y, '│', nil, border)
	}
}

func (op *OKLCH) drawPreview(s tcell.Screen, x, y int) {
	base := tcell.StyleDefault
	c := op.Color()

	cx := termloop.DrawText(s, x, y, "[", base)
	cx = termloop.DrawText(s, cx, y, "███", base.Foreground(tcellColor(c)))
	cx = termloop.DrawText(s, cx, y, "] ", base)
	termloop.DrawText(s, cx, y, fmt.Sprintf("L:%.2f C:%.2f H:%.0f°", op.L, op.C, op.H), base)

	r, g, b := c.RGB255()
	termloop.DrawText(s, x, y+1, fmt.Sprintf("%s RGB(%d,%d,%d)", c.Hex(), r, g, b), base.Dim(true))
}

// HandleKey applies a navigation key. It reports whether the key was used.
func (op *OKLCH) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyTab, tcell.KeyBacktab:
		if op.active == OKLCHControlPlane {
			op.active = OKLCHControlLightness
		} else {
			op.active = OKLCHControlPlane
		}
		return true
	}
	if op.active == OKLCHControlPlane {
		return op.handlePlaneKey(ev)
	}
	return op.handleLightnessKey(ev)
}

func (op *OKLCH) handlePlaneKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		if op.cursorX > 0 {
			op.cursorX--
		}
	case tcell.KeyRight:
		if op.cursorX < op.planeW-1 {
			op.cursorX++
		}
	case tcell.KeyUp:
		if op.cursorY > 0 {
			op.cursorY--
		}
	case tcell.KeyDown:
		if op.cursorY < op.planeH-1 {
			op.cursorY++
		}
	case tcell.KeyHome:
		op.cursorX = 0
	case tcell.KeyEnd:
		op.cursorX = op.planeW - 1
	default:
		return false
	}
	op.updateFromCursor()
	return true
}

func (op *OKLCH) handleLightnessKey(ev *tcell.EventKey) bool {
	const step = 0.05
	switch ev.Key() {
	case tcell.KeyUp:
		op.L = min(op.L+step, 1.0)
	case tcell.KeyDown:
		op.L = max(op.L-step, 0.0)
	case tcell.KeyHome:
		op.L = 1.0
	case tcell.KeyEnd:
		op.L = 0.0
	default:
		return false
	}
	return true
}

// HandleMouse selects on the plane or slider when the picker sits at (x, y).
func (op *OKLCH) HandleMouse(ev *tcell.EventMouse, x, y int) bool {
	if ev.Buttons() != tcell.Button1 {
		return false
	}
	mx, my := ev.Position()
	if mx >= x && mx < x+op.planeW && my >= y && my < y+op.planeH {
		op.active = OKLCHControlPlane
		op.cursorX = mx - x
		op.cursorY = my - y
		op.updateFromCursor()
		return true
	}
	sliderX := x + op.planeW + 2
	if mx >= sliderX && mx < sliderX+3 && my >= y && my < y+op.planeH && op.planeH > 1 {
		op.active = OKLCHControlLightness
		op.L = min(max(1.0-float64(my-y)/float64(op.planeH-1), 0.0), 1.0)
		return true
	}
	return false
}

func (op *OKLCH) updateFromCursor() {
	if op.planeW > 1 {
		op.H = float64(op.cursorX) / float64(op.planeW-1) * 360.0
	}
	if op.planeH > 1 {
		op.C = (1.0 - float64(op.cursorY)/float64(op.planeH-1)) * maxChroma
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
