// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings of the civil command.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"gonih.org/civil"
	"gonih.org/civil/internal/export"
	"gonih.org/civil/internal/logger"
)

// Config holds all runtime configuration of the civil command.
// Values are populated from .civil.yaml, CIVIL_* env vars, and CLI flags.
type Config struct {
	// WeekStart is the name of the first day of the week in calendars.
	WeekStart string `mapstructure:"week_start"`
	// Color enables colored output.
	Color bool `mapstructure:"color"`
	// Layout overrides the layout used to print results. If it is empty,
	// results are printed in the layout of their alignment.
	Layout string `mapstructure:"layout"`
	// Output is the encoding of lists of civil times.
	Output    string `mapstructure:"output"`
	LogFormat string `mapstructure:"log_format"`
	Verbose   bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags. The result is
// validated.
func Load() (Config, error) {
	viper.SetDefault("week_start", "monday")
	viper.SetDefault("color", true)
	viper.SetDefault("layout", "")
	viper.SetDefault("output", export.FormatText)
	viper.SetDefault("log_format", logger.FormatText)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all settings have valid values.
func (c Config) Validate() error {
	if _, err := civil.ParseWeekday(c.WeekStart); err != nil {
		return fmt.Errorf("invalid week_start: %w", err)
	}
	switch c.LogFormat {
	case logger.FormatText, logger.FormatJSON:
	default:
		return fmt.Errorf("invalid log_format %q: must be %q or %q", c.LogFormat, logger.FormatText, logger.FormatJSON)
	}
	if !export.Supported(c.Output) {
		return fmt.Errorf("invalid output %q: must be one of %v", c.Output, export.Formats())
	}
	return nil
}

// FirstWeekday returns the first day of the week. It must only be called on
// a validated Config.
func (c Config) FirstWeekday() civil.Weekday {
	wd, _ := civil.ParseWeekday(c.WeekStart)
	return wd
}

// LoggerOptions returns the options to set up the logger with.
func (c Config) LoggerOptions() logger.Options {
	return logger.Options{Verbose: c.Verbose, Format: c.LogFormat}
}
