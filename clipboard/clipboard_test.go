// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func stubEnv(t *testing.T, system string, env map[string]string, bins ...string) {
	t.Helper()
	oldLook, oldEnv, oldOS := lookPath, getenv, goos
	t.Cleanup(func() { lookPath, getenv, goos = oldLook, oldEnv, oldOS })

	have := make(map[string]bool)
	for _, b := range bins {
		have[b] = true
	}
	lookPath = func(name string) (string, error) {
		if have[name] {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}
	getenv = func(k string) string { return env[k] }
	goos = system
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		os   string
		env  map[string]string
		bins []string
		want string
	}{
		{"wayland", "linux", map[string]string{"WAYLAND_DISPLAY": "wayland-0", "DISPLAY": ":0"}, []string{"wl-paste", "wl-copy", "xclip"}, "wayland"},
		{"wayland missing falls to xclip", "linux", map[string]string{"WAYLAND_DISPLAY": "wayland-0", "DISPLAY": ":0"}, []string{"xclip"}, "xclip"},
		{"x11 without display", "linux", nil, []string{"xclip", "xsel"}, ""},
		{"xsel", "linux", map[string]string{"DISPLAY": ":0"}, []string{"xsel"}, "xsel"},
		{"macos", "darwin", nil, []string{"pbpaste", "pbcopy"}, "macos"},
		{"pbcopy on linux ignored", "linux", nil, []string{"pbpaste", "pbcopy"}, ""},
		{"wsl", "linux", nil, []string{"powershell.exe", "clip.exe"}, "windows"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubEnv(t, tt.os, tt.env, tt.bins...)
			cmd, err := Detect()
			if tt.want == "" {
				if !errors.Is(err, ErrUnavailable) {
					t.Fatalf("Detect() error = %v, want ErrUnavailable", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if cmd.Name != tt.want {
				t.Errorf("Detect() = %s, want %s", cmd.Name, tt.want)
			}
		})
	}
}

func TestCommandRoundTrip(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	file := filepath.Join(t.TempDir(), "clip")
	c := &Command{
		Name:  "test",
		Read:  []string{"sh", "-c", "cat " + file},
		Write: []string{"sh", "-c", "cat > " + file},
	}
	ctx := context.Background()
	if err := c.WriteText(ctx, "#FF8800"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	got, err := c.ReadText(ctx)
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if got != "#FF8800" {
		t.Errorf("ReadText = %q, want %q", got, "#FF8800")
	}
}

func TestCommandWriteFailure(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	c := &Command{Write: []string{"sh", "-c", "echo nope >&2; exit 3"}}
	if err := c.WriteText(context.Background(), "x"); err == nil {
		t.Fatal("expected write error")
	}
}

func TestOSC52(t *testing.T) {
	var buf bytes.Buffer
	o := OSC52{W: &buf}
	if err := o.WriteText(context.Background(), "const Color(0xFFFF0000)"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	want := "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte("const Color(0xFFFF0000)")) + "\x07"
	if buf.String() != want {
		t.Errorf("sequence = %q, want %q", buf.String(), want)
	}
	if _, err := o.ReadText(context.Background()); !errors.Is(err, ErrWriteOnly) {
		t.Errorf("ReadText error = %v, want ErrWriteOnly", err)
	}
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory("red")
	got, _ := m.ReadText(ctx)
	if got != "red" {
		t.Errorf("ReadText = %q", got)
	}
	if err := m.WriteText(ctx, "blue"); err != nil {
		t.Fatal(err)
	}
	if m.Text() != "blue" {
		t.Errorf("Text = %q, want blue", m.Text())
	}

	boom := errors.New("boom")
	m.WriteErr = boom
	if err := m.WriteText(ctx, "green"); !errors.Is(err, boom) {
		t.Errorf("WriteText error = %v, want boom", err)
	}
	if m.Text() != "blue" {
		t.Errorf("failed write changed contents to %q", m.Text())
	}
}

func TestNew(t *testing.T) {
	stubEnv(t, "linux", nil)

	if c, err := New("osc52", os.Stdout); err != nil {
		t.Fatal(err)
	} else if _, ok := c.(OSC52); !ok {
		t.Errorf("osc52 backend = %T", c)
	}
	if c, err := New("auto", os.Stdout); err != nil {
		t.Fatal(err)
	} else if _, ok := c.(OSC52); !ok {
		t.Errorf("auto without helpers = %T, want OSC52", c)
	}
	if _, err := New("command", os.Stdout); !errors.Is(err, ErrUnavailable) {
		t.Errorf("command without helpers error = %v", err)
	}
	if c, err := New("memory", nil); err != nil {
		t.Fatal(err)
	} else if _, ok := c.(*Memory); !ok {
		t.Errorf("memory backend = %T", c)
	}
	if _, err := New("carrier-pigeon", nil); err == nil {
		t.Error("expected error for unknown backend")
	}
}
