// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: clipboard/clipboard.go
// Summary: System clipboard access through helper programs, OSC 52 or memory.

package clipboard

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

var (
	// ErrUnavailable is returned when no clipboard helper program is installed.
	ErrUnavailable = errors.New("clipboard: no clipboard helper found")
	// ErrWriteOnly is returned by ReadText on backends that cannot read.
	ErrWriteOnly = errors.New("clipboard: backend is write-only")
)

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadText(ctx context.Context) (string, error)
	WriteText(ctx context.Context, text string) error
}

// Command talks to the clipboard through a pair of helper programs.
type Command struct {
	Name  string
	Read  []string
	Write []string
	// Env names an environment variable that must be set for this helper.
	Env string
	// OS restricts the helper to one GOOS. Empty means any.
	OS string
}

var candidates = []Command{
	{Name: "wayland", Read: []string{"wl-paste", "--no-newline"}, Write: []string{"wl-copy"}, Env: "WAYLAND_DISPLAY"},
	{Name: "xclip", Read: []string{"xclip", "-selection", "clipboard", "-o"}, Write: []string{"xclip", "-selection", "clipboard", "-i"}, Env: "DISPLAY"},
	{Name: "xsel", Read: []string{"xsel", "--clipboard", "--output"}, Write: []string{"xsel", "--clipboard", "--input"}, Env: "DISPLAY"},
	{Name: "macos", Read: []string{"pbpaste"}, Write: []string{"pbcopy"}, OS: "darwin"},
	{Name: "windows", Read: []string{"powershell.exe", "-NoProfile", "-Command", "Get-Clipboard"}, Write: []string{"clip.exe"}},
}

// Hooks replaced in tests.
var (
	lookPath = exec.LookPath
	getenv   = os.Getenv
	goos     = runtime.GOOS
)

// Detect returns the first helper pair usable on this system.
func Detect() (*Command, error) {
	for _, c := range candidates {
		if c.OS != "" && c.OS != goos {
			continue
		}
		if c.Env != "" && getenv(c.Env) == "" {
			continue
		}
		if _, err := lookPath(c.Read[0]); err != nil {
			continue
		}
		if _, err := lookPath(c.Write[0]); err != nil {
			continue
		}
		log.Printf("Clipboard: using %s helpers", c.Name)
		return &c, nil
	}
	return nil, ErrUnavailable
}

// ReadText runs the read helper and returns its output.
func (c *Command) ReadText(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, c.Read[0], c.Read[1:]...).Output()
	if err != nil {
		return "", fmt.Errorf("clipboard read via %s: %w", c.Read[0], err)
	}
	return string(out), nil
}

// WriteText feeds text to the write helper on stdin.
func (c *Command) WriteText(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, c.Write[0], c.Write[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("clipboard write via %s: %w: %s", c.Write[0], err, msg)
		}
		return fmt.Errorf("clipboard write via %s: %w", c.Write[0], err)
	}
	return nil
}

// OSC52 sets the host terminal's clipboard with an OSC 52 escape sequence.
// Terminals do not answer reads reliably, so it is write-only.
type OSC52 struct {
	W io.Writer
}

// ReadText always fails with ErrWriteOnly.
func (o OSC52) ReadText(context.Context) (string, error) {
	return "", ErrWriteOnly
}

// WriteText emits ESC ] 52 ; c ; <base64> BEL.
func (o OSC52) WriteText(_ context.Context, text string) error {
	seq := "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\x07"
	if _, err := io.WriteString(o.W, seq); err != nil {
		return fmt.Errorf("clipboard write via osc52: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard.
type Memory struct {
	mu   sync.Mutex
	text string

	// WriteErr, when set, is returned by every WriteText call.
	WriteErr error
}

// NewMemory returns a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

func (m *Memory) ReadText(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) WriteText(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.text = text
	return nil
}

// Text returns the current contents.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// New resolves a clipboard.backend setting. "auto" prefers helper programs
// and falls back to OSC 52 on w.
func New(backend string, w io.Writer) (Clipboard, error) {
	switch backend {
	case "", "auto":
		cmd, err := Detect()
		if err == nil {
			return cmd, nil
		}
		log.Printf("Clipboard: %v, falling back to OSC 52", err)
		return OSC52{W: w}, nil
	case "command":
		cmd, err := Detect()
		if err != nil {
			return nil, err
		}
		return cmd, nil
	case "osc52":
		return OSC52{W: w}, nil
	case "memory":
		return NewMemory(""), nil
	default:
		return nil, fmt.Errorf("clipboard: unknown backend %q", backend)
	}
}
