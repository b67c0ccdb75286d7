// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/codetint/scan.go
// Summary: The scan subcommand lists color literals found in a source file.

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/framegrace/codetint/codec"
	"github.com/framegrace/codetint/color"
	"github.com/framegrace/codetint/detect"
)

// finding is one color literal located in a file.
type finding struct {
	Line     int
	Text     string
	Color    color.Color
	Notation codec.Notation
}

// maxLine bounds a single scanned line.
const maxLine = 1024 * 1024

// scanLines decodes each line of content and returns the lines holding a color.
// A line longer than maxLine ends the scan with bufio.ErrTooLong.
func scanLines(content []byte) ([]finding, error) {
	var out []finding
	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		c, notation, ok := codec.DecodeNotation(text)
		if !ok {
			continue
		}
		out = append(out, finding{Line: line, Text: text, Color: c, Notation: notation})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}
	return out, nil
}

func (a *app) cmdScan(args []string) error {
	fs := a.flagSet("scan")
	profile := fs.String("profile", "", "Output profile (default: inferred from the file language)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: codetint scan [-profile p] <file>")
	}
	path := fs.Arg(0)

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if detect.Skippable(path, content) {
		return fmt.Errorf("%s is binary or vendored", path)
	}

	p := *profile
	if p == "" {
		p = a.opts.profile
	}
	if p == "" {
		inferred, lang := detect.ProfileForFile(path, content)
		if inferred != "" {
			p = string(inferred)
			log.Printf("[CodeTint] %s detected as %s, using %s", path, lang, p)
		} else {
			p = a.profile()
		}
	}

	findings, err := scanLines(content)
	if err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	for _, f := range findings {
		fmt.Fprintf(a.stdout, "%s:%d: %s\t%s\n", path, f.Line, f.Notation, codec.Encode(f.Color, p))
	}
	return nil
}
