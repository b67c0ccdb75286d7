// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tint/tint.go
// Summary: The pick and convert actions tying sampler, codec, clipboard and store together.
//
// Every action ends with a user-facing notification. Colors that were decoded
// successfully are remembered as the last color and pushed onto the history.

package tint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/framegrace/codetint/clipboard"
	"github.com/framegrace/codetint/codec"
	"github.com/framegrace/codetint/color"
	"github.com/framegrace/codetint/notify"
	"github.com/framegrace/codetint/picker"
)

var (
	// ErrClipboardEmpty is returned by ConvertClipboard when there is no text to convert.
	ErrClipboardEmpty = errors.New("tint: clipboard is empty")
	// ErrNoColor is returned by ConvertClipboard when no notation matches the text.
	ErrNoColor = errors.New("tint: no color found")
	// ErrWriteFailed wraps clipboard write errors.
	ErrWriteFailed = errors.New("tint: clipboard write failed")
)

// Notification texts.
const (
	msgCanceled    = "Canceled"
	msgEmpty       = "Clipboard is empty"
	msgNoColor     = "No color found in clipboard"
	msgWriteFailed = "Clipboard write failed"
)

// Recorder persists the last color and the history.
type Recorder interface {
	Remember(ctx context.Context, c color.Color) error
	Last(ctx context.Context) (color.Color, error)
}

// Result describes the outcome of an action.
type Result struct {
	Color    color.Color    `json:"color" yaml:"color"`
	Text     string         `json:"text" yaml:"text"`
	Notation codec.Notation `json:"notation,omitempty" yaml:"notation,omitempty"`
}

// Service runs the actions.
type Service struct {
	Clipboard clipboard.Clipboard
	Sampler   picker.Sampler
	Store     Recorder
	Notifier  notify.Notifier
	// Profile returns the active output profile. Nil means codec.DefaultProfile.
	Profile func() string
}

func (s *Service) profile() string {
	if s.Profile == nil {
		return string(codec.DefaultProfile)
	}
	if p := s.Profile(); p != "" {
		return p
	}
	return string(codec.DefaultProfile)
}

func (s *Service) notify(message, swatch string) {
	if s.Notifier != nil {
		s.Notifier.Notify(message, swatch)
	}
}

func (s *Service) fail(err error) error {
	s.notify("Error: "+err.Error(), "")
	return err
}

// PickScreenColor samples a color, copies it in the active profile and remembers it.
func (s *Service) PickScreenColor(ctx context.Context) (Result, error) {
	hex, err := s.Sampler.Sample(ctx)
	if err != nil {
		if errors.Is(err, picker.ErrCanceled) || errors.Is(err, context.Canceled) {
			s.notify(msgCanceled, "")
			return Result{}, picker.ErrCanceled
		}
		return Result{}, s.fail(fmt.Errorf("sample: %w", err))
	}

	c, err := color.SampleFromHex(hex)
	if err != nil {
		return Result{}, s.fail(err)
	}
	res := Result{Color: c, Text: codec.Encode(c, s.profile())}

	if err := s.Clipboard.WriteText(ctx, res.Text); err != nil {
		return res, s.fail(fmt.Errorf("%w: %w", ErrWriteFailed, err))
	}
	log.Printf("[CodeTint] Picked %s → Copied: %s", hex, res.Text)
	s.notify("Copied "+res.Text, c.Hex)

	if err := s.Store.Remember(ctx, c); err != nil {
		return res, s.fail(err)
	}
	return res, nil
}

// ConvertClipboard decodes text, or the clipboard when text is blank, and
// writes it back in the active profile. A failed write still remembers the color.
func (s *Service) ConvertClipboard(ctx context.Context, text string) (Result, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		clip, err := s.Clipboard.ReadText(ctx)
		if err != nil {
			log.Printf("[CodeTint] Clipboard read failed: %v", err)
		}
		raw = strings.TrimSpace(clip)
	}
	if raw == "" {
		s.notify(msgEmpty, "")
		return Result{}, ErrClipboardEmpty
	}

	c, notation, ok := codec.DecodeNotation(raw)
	if !ok {
		s.notify(msgNoColor, "")
		return Result{}, ErrNoColor
	}
	res := Result{Color: c, Text: codec.Encode(c, s.profile()), Notation: notation}

	var writeErr error
	if err := s.Clipboard.WriteText(ctx, res.Text); err != nil {
		writeErr = fmt.Errorf("%w: %w", ErrWriteFailed, err)
		s.notify(msgWriteFailed, c.Hex)
	} else {
		s.notify("Converted: "+res.Text, c.Hex)
	}

	if err := s.Store.Remember(ctx, c); err != nil {
		return res, s.fail(err)
	}
	return res, writeErr
}

// Preview formats the last color in profile without touching the clipboard.
// An empty profile uses the active one.
func (s *Service) Preview(ctx context.Context, profile string) (Result, error) {
	last, err := s.Store.Last(ctx)
	if err != nil {
		return Result{}, err
	}
	if profile == "" {
		profile = s.profile()
	}
	return Result{Color: last, Text: codec.Encode(last, profile)}, nil
}

// Copy writes c in profile to the clipboard. Nothing is remembered.
func (s *Service) Copy(ctx context.Context, c color.Color, profile string) (Result, error) {
	if profile == "" {
		profile = s.profile()
	}
	res := Result{Color: c, Text: codec.Encode(c, profile)}
	if err := s.Clipboard.WriteText(ctx, res.Text); err != nil {
		return res, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return res, nil
}

// CopyLast writes the last color in profile to the clipboard.
func (s *Service) CopyLast(ctx context.Context, profile string) (Result, error) {
	last, err := s.Store.Last(ctx)
	if err != nil {
		return Result{}, err
	}
	return s.Copy(ctx, last, profile)
}
