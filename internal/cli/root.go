// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the civil command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gonih.org/civil"
	"gonih.org/civil/internal/config"
	"gonih.org/civil/internal/export"
	"gonih.org/civil/internal/logger"
)

// app is the state shared by all commands. It is populated before any
// command runs.
type app struct {
	cfgFile string
	cfg     config.Config
	log     *slog.Logger
}

// NewRootCommand returns the civil command with all subcommands.
func NewRootCommand() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:   "civil",
		Short: "Calendar arithmetic on civil times",
		Long: "Civil normalizes, compares and steps through civil times, " +
			"date and clock readings without a time zone.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .civil.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.String("layout", "", "layout to print results with (default depends on alignment)")
	pf.String("log-format", logger.FormatText, "log format (text or json)")
	pf.Bool("color", true, "colored output")
	pf.StringP("output", "o", export.FormatText, "output format of lists (text, json, yaml or toml)")
	_ = viper.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = viper.BindPFlag("layout", pf.Lookup("layout"))
	_ = viper.BindPFlag("log_format", pf.Lookup("log-format"))
	_ = viper.BindPFlag("color", pf.Lookup("color"))
	_ = viper.BindPFlag("output", pf.Lookup("output"))

	root.AddCommand(
		a.normalizeCommand(),
		a.addCommand(),
		a.subCommand(),
		a.diffCommand(),
		a.convertCommand(),
		a.formatCommand(),
		a.parseCommand(),
		a.weekdayCommand(),
		a.nextCommand(),
		a.prevCommand(),
		a.nowCommand(),
		a.calCommand(),
		a.rangeCommand(),
		a.listCommand(),
	)
	return root
}

// Run executes the civil command with args, reading from stdin and writing
// to stdout and stderr.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root := NewRootCommand()
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(escapeNegatives(root, args))
	return root.Execute()
}

// Execute runs the civil command and exits on error.
func Execute() {
	if err := Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func (a *app) init(stderr io.Writer) error {
	if a.cfgFile != "" {
		viper.SetConfigFile(a.cfgFile)
	} else {
		viper.SetConfigName(".civil")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("CIVIL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// It's fine if no config file is found; we use defaults.
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.SetupDefault(stderr, cfg.LoggerOptions()); err != nil {
		return err
	}
	a.cfg, a.log = cfg, slog.Default()
	if f := viper.ConfigFileUsed(); f != "" {
		a.log.Debug("loaded config", "file", f)
	}
	return nil
}

// print writes v to w, formatted with the configured layout.
func (a *app) print(w io.Writer, v civil.Value) {
	if a.cfg.Layout != "" {
		fmt.Fprintln(w, v.Format(a.cfg.Layout))
		return
	}
	fmt.Fprintln(w, v)
}
