// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/codetint/commands.go
// Summary: Subcommand handlers.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/framegrace/codetint/codec"
	"github.com/framegrace/codetint/color"
	"github.com/framegrace/codetint/config"
	"github.com/framegrace/codetint/internal/popup"
	"github.com/framegrace/codetint/picker"
	"github.com/framegrace/codetint/store"
)

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("codetint "+name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func (a *app) cmdPick(ctx context.Context, args []string) error {
	fs := a.flagSet("pick")
	hex := fs.String("hex", "", "Use this RRGGBB color instead of the interactive picker")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc, err := a.service()
	if err != nil {
		return err
	}
	if *hex != "" {
		svc.Sampler = picker.Static("#" + strings.TrimPrefix(*hex, "#"))
	} else {
		interactive := picker.Interactive{}
		if last, err := a.store.Last(ctx); err == nil {
			interactive.Initial = strings.ToLower(last.Hex)
		}
		svc.Sampler = interactive
	}

	res, err := svc.PickScreenColor(ctx)
	if err != nil {
		return err
	}
	return a.printLiteral(res.Text, a.profile())
}

func (a *app) cmdConvert(ctx context.Context, args []string) error {
	fs := a.flagSet("convert")
	fromStdin := fs.Bool("stdin", false, "Read the text to convert from stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	text := strings.Join(fs.Args(), " ")
	if *fromStdin {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	svc, err := a.service()
	if err != nil {
		return err
	}
	res, err := svc.ConvertClipboard(ctx, text)
	if err != nil && res.Text == "" {
		return err
	}
	if perr := a.printLiteral(res.Text, a.profile()); perr != nil {
		return perr
	}
	return err
}

type decoded struct {
	Color    color.Color    `json:"color" yaml:"color"`
	Notation codec.Notation `json:"notation" yaml:"notation"`
}

func (a *app) cmdDecode(args []string) error {
	fs := a.flagSet("decode")
	format := fs.String("format", "json", "Output format: json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	text := strings.Join(fs.Args(), " ")
	c, notation, ok := codec.DecodeNotation(text)
	if !ok {
		return fmt.Errorf("no color found in %q", strings.TrimSpace(text))
	}
	return a.writeStructured(*format, decoded{Color: c, Notation: notation})
}

func (a *app) cmdEncode(args []string) error {
	fs := a.flagSet("encode")
	profile := fs.String("profile", "", "Output profile (default: active profile)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p := *profile
	if p == "" {
		p = a.profile()
	}
	text := strings.Join(fs.Args(), " ")
	c, ok := codec.Decode(text)
	if !ok {
		return fmt.Errorf("no color found in %q", strings.TrimSpace(text))
	}
	return a.printLiteral(codec.Encode(c, p), p)
}

func (a *app) cmdProfile(args []string) error {
	sub := "get"
	if len(args) > 0 {
		sub = args[0]
	}
	switch sub {
	case "get":
		_, err := fmt.Fprintln(a.stdout, a.profile())
		return err
	case "list":
		active := a.profile()
		for i, info := range codec.Profiles() {
			mark := " "
			if string(info.Profile) == active {
				mark = "*"
			}
			fmt.Fprintf(a.stdout, "%s %d  %-13s %-13s %s\n", mark, i+1, info.Profile, info.Label, info.Example)
		}
		return nil
	case "set":
		if len(args) != 2 {
			return errors.New("usage: codetint profile set <profile>")
		}
		p, ok := codec.ParseProfile(args[1])
		if !ok {
			return fmt.Errorf("unknown profile %q", args[1])
		}
		if err := config.SetProfile(string(p)); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		a.cfg = config.System()
		_, err := fmt.Fprintf(a.stdout, "Profile set to %s (%s)\n", p, p.Label())
		return err
	default:
		return fmt.Errorf("unknown profile command %q", sub)
	}
}

func (a *app) cmdLast(ctx context.Context, args []string) error {
	fs := a.flagSet("last")
	profile := fs.String("profile", "", "Output profile (default: active profile)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	svc, err := a.service()
	if err != nil {
		return err
	}
	p := *profile
	if p == "" {
		p = a.profile()
	}
	res, err := svc.Preview(ctx, p)
	if errors.Is(err, store.ErrNoLast) {
		return errors.New("no color yet")
	}
	if err != nil {
		return err
	}
	return a.printLiteral(res.Text, p)
}

func (a *app) cmdHistory(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}
	st, err := a.openStore()
	if err != nil {
		return err
	}

	switch sub {
	case "list":
		hist, err := st.History(ctx)
		if err != nil {
			return err
		}
		p := a.profile()
		for _, c := range hist {
			fmt.Fprintf(a.stdout, "%s  %s\n", c.Hex, codec.Encode(c, p))
		}
		return nil
	case "clear":
		if err := st.ClearHistory(ctx); err != nil {
			return err
		}
		_, err := fmt.Fprintln(a.stdout, "History cleared")
		return err
	case "export":
		fs := a.flagSet("history export")
		format := fs.String("format", "json", "Output format: json or yaml")
		if err := fs.Parse(args); err != nil {
			return err
		}
		hist, err := st.History(ctx)
		if err != nil {
			return err
		}
		if hist == nil {
			hist = []color.Color{}
		}
		return a.writeStructured(*format, hist)
	default:
		return fmt.Errorf("unknown history command %q", sub)
	}
}

func (a *app) cmdPopup(ctx context.Context, args []string) error {
	fs := a.flagSet("popup")
	if err := fs.Parse(args); err != nil {
		return err
	}
	svc, err := a.service()
	if err != nil {
		return err
	}
	// The popup reports copies on screen.
	svc.Notifier = nil
	return popup.Run(ctx, popup.Options{
		Service:     svc,
		Store:       a.store,
		Profile:     a.profile(),
		SaveProfile: config.SetProfile,
	})
}

func (a *app) writeStructured(format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
