// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: picker/picker.go
// Summary: Color sampling sources.

package picker

import (
	"context"
	"errors"
)

// ErrCanceled is returned when the user dismisses the picker without choosing.
var ErrCanceled = errors.New("picker: canceled")

// Sampler produces a single sRGB color as a "#rrggbb" string.
type Sampler interface {
	Sample(ctx context.Context) (string, error)
}

// Static always samples the same hex value.
type Static string

func (s Static) Sample(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return string(s), nil
}

// Func adapts a function to the Sampler interface.
type Func func(ctx context.Context) (string, error)

func (f Func) Sample(ctx context.Context) (string, error) {
	return f(ctx)
}
