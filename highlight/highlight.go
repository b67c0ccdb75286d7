// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: highlight/highlight.go
// Summary: Syntax-highlighted rendering of encoded color literals.

package highlight

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/framegrace/codetint/codec"
)

const (
	defaultStyleName = "catppuccin-mocha"
	formatterName    = "terminal256"
)

// chromaStyle resolves a style name to a Chroma style, falling back to the default.
func chromaStyle(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	return styles.Get(name)
}

// getLexer returns the lexer for a profile's target language.
func getLexer(profile string) chroma.Lexer {
	name := codec.Profile(profile).Info().Lexer()
	if l := lexers.Get(name); l != nil {
		return l
	}
	return lexers.Fallback
}

// Literal writes text colored as the source language of profile. Any
// highlighting failure degrades to writing text unchanged.
func Literal(w io.Writer, text, profile, style string) error {
	lexer := chroma.Coalesce(getLexer(profile))
	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return Plain(w, text)
	}
	if err := formatters.Get(formatterName).Format(w, chromaStyle(style), it); err != nil {
		return Plain(w, text)
	}
	return nil
}

// Plain writes text without any escapes.
func Plain(w io.Writer, text string) error {
	_, err := io.WriteString(w, text)
	return err
}
