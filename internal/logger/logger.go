// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger sets up the structured logger of the civil command.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Formats accepted by Setup.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configures the logger.
type Options struct {
	// Verbose enables debug output.
	Verbose bool
	// Format is FormatText or FormatJSON. The empty string means FormatText.
	Format string
}

// Setup returns a logger writing to w. If w is nil, os.Stderr is used.
func Setup(w io.Writer, opts Options) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	ho := &slog.HandlerOptions{Level: slog.LevelWarn}
	if opts.Verbose {
		ho.Level = slog.LevelDebug
	}
	var h slog.Handler
	switch opts.Format {
	case "", FormatText:
		h = slog.NewTextHandler(w, ho)
	case FormatJSON:
		h = slog.NewJSONHandler(w, ho)
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
	return slog.New(h), nil
}

// SetupDefault installs the logger returned by Setup as the global logger.
func SetupDefault(w io.Writer, opts Options) error {
	l, err := Setup(w, opts)
	if err != nil {
		return err
	}
	slog.SetDefault(l)
	return nil
}
