// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// isNegative reports whether arg looks like a negative number or year. No
// flag of the civil command is a digit, so such arguments are never flags.
func isNegative(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && '0' <= arg[1] && arg[1] <= '9'
}

// lookupFlag finds a flag of cmd by long or short name, including the
// persistent flags of root.
func lookupFlag(root, cmd *cobra.Command, name string, short bool) *pflag.Flag {
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), root.PersistentFlags()} {
		var f *pflag.Flag
		if short {
			f = fs.ShorthandLookup(name)
		} else {
			f = fs.Lookup(name)
		}
		if f != nil {
			return f
		}
	}
	return nil
}

// takesValue reports whether the flag argument arg consumes the next argument
// as its value.
func takesValue(root, cmd *cobra.Command, arg string) bool {
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		if strings.Contains(name, "=") {
			return false
		}
		f := lookupFlag(root, cmd, name, false)
		return f != nil && f.NoOptDefVal == ""
	}
	// A group of shorthands, the last of which may take the next argument.
	for i := 1; i < len(arg); i++ {
		f := lookupFlag(root, cmd, arg[i:i+1], true)
		if f == nil || f.NoOptDefVal == "" {
			return f != nil && i == len(arg)-1
		}
	}
	return false
}

// escapeNegatives rewrites args so that negative numbers and years are
// passed as positional arguments instead of being parsed as shorthand
// flags. If any are present, all positional arguments after the subcommand
// are moved behind a "--" terminator, keeping their order.
func escapeNegatives(root *cobra.Command, args []string) []string {
	var (
		head, pos []string
		cmd       = root
		negative  bool
	)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			pos = append(pos, args[i+1:]...)
			i = len(args)
		case isNegative(arg):
			negative = true
			pos = append(pos, arg)
		case strings.HasPrefix(arg, "-") && arg != "-":
			head = append(head, arg)
			if takesValue(root, cmd, arg) && i+1 < len(args) {
				i++
				head = append(head, args[i])
			}
		case cmd == root:
			// The civil command itself takes no arguments, so the first one
			// names the subcommand.
			if sub, _, err := root.Find([]string{arg}); err == nil && sub != root {
				cmd = sub
			}
			head = append(head, arg)
		default:
			pos = append(pos, arg)
		}
	}
	if !negative {
		return args
	}
	return append(append(head, "--"), pos...)
}
