// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/codetint/main.go
// Summary: codetint command: pick, convert and browse color literals from the terminal.
// Usage: Run `codetint help` for the list of subcommands.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/framegrace/codetint/picker"
	"github.com/framegrace/codetint/tint"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if !reported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// reported reports whether the user already saw a notification for err.
func reported(err error) bool {
	return errors.Is(err, tint.ErrClipboardEmpty) ||
		errors.Is(err, tint.ErrNoColor) ||
		errors.Is(err, tint.ErrWriteFailed) ||
		errors.Is(err, picker.ErrCanceled)
}

type globalOptions struct {
	verbose   bool
	profile   string
	noColor   bool
	clipboard string
}

const usage = `Usage: codetint [flags] <command> [args]

Commands:
  pick [-hex RRGGBB]              pick a color and copy it in the active profile
  convert [-stdin] [text]         convert a color from text, stdin or the clipboard
  decode [-format json|yaml] <text>
                                  print the color found in text
  encode [-profile p] <text>      print the color found in text in a profile
  profile [list|get|set <p>]      show or change the active profile
  last                            print the last color in the active profile
  history [list|clear|export [-format json|yaml]]
                                  manage recent colors
  scan [-profile p] <file>        list color literals in a source file
  popup                           open the terminal popup

Flags:
`

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("codetint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts globalOptions
	fs.BoolVar(&opts.verbose, "verbose", false, "Also write log output to stderr")
	fs.StringVar(&opts.profile, "profile", "", "Override the configured output profile")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	fs.StringVar(&opts.clipboard, "clipboard", "", "Clipboard backend: auto, command, osc52 or memory")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	closeLog, err := setupLogging(opts.verbose, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer closeLog()
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	a := newApp(opts, stdin, stdout, stderr)
	defer a.Close()

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "pick":
		return a.cmdPick(ctx, cmdArgs)
	case "convert":
		return a.cmdConvert(ctx, cmdArgs)
	case "decode":
		return a.cmdDecode(cmdArgs)
	case "encode":
		return a.cmdEncode(cmdArgs)
	case "profile":
		return a.cmdProfile(cmdArgs)
	case "last":
		return a.cmdLast(ctx, cmdArgs)
	case "history":
		return a.cmdHistory(ctx, cmdArgs)
	case "scan":
		return a.cmdScan(cmdArgs)
	case "popup":
		return a.cmdPopup(ctx, cmdArgs)
	case "help":
		fs.Usage()
		return nil
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}
