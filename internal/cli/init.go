package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/bjaus/textfmt"
	"github.com/spf13/cobra"
)

type initOptions struct {
	newline    string
	letterCase string
	trim       string
	blankLines string
	tabs       string
	tabSize    int
	backup     bool
	force      bool
}

// InitCmd returns the subcommand that writes a config file from flags.
func InitCmd() *cobra.Command {
	opts := &initOptions{}
	cmd := &cobra.Command{
		Use:   "init <config file>",
		Short: "Write a config file",
		Example: `  textfmt init textfmt.yaml --newline crlf --trim all --blank-lines collapse
  textfmt init textfmt.yaml --tabs spaces --tab-size 2 --backup=false`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			path := args[0]
			if !opts.force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%w: %s", ErrConfigExists, path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}
			if err := textfmt.WriteConfig(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.newline, "newline", "", `newline: cr, crlf, lf, space, remove (or the literal, e.g. "\r\n")`)
	flags.StringVar(&opts.letterCase, "case", "", "letter case: lower, upper")
	flags.StringVar(&opts.trim, "trim", "", "trim: none, leading, trailing, all")
	flags.StringVar(&opts.blankLines, "blank-lines", "", "blank lines: remove, collapse")
	flags.StringVar(&opts.tabs, "tabs", "", "tabs: spaces, tabs, expand")
	flags.IntVar(&opts.tabSize, "tab-size", 0, "columns per tab stop (default 4)")
	flags.BoolVar(&opts.backup, "backup", true, "back up files before rewriting them")
	flags.BoolVarP(&opts.force, "force", "f", false, "overwrite an existing config file")
	return cmd
}

func (o *initOptions) config() (textfmt.Config, error) {
	cfg := textfmt.DefaultConfig()
	cfg.BackupFile = o.backup

	var ok bool
	if o.newline != "" {
		if cfg.Newline, ok = parseNewlineFlag(o.newline); !ok {
			return cfg, invalidFlag("newline", o.newline)
		}
	}
	if o.letterCase != "" {
		if cfg.Case, ok = textfmt.ParseCase(o.letterCase); !ok {
			return cfg, invalidFlag("case", o.letterCase)
		}
	}
	if o.trim != "" {
		if cfg.Trim, ok = textfmt.ParseTrim(o.trim); !ok {
			return cfg, invalidFlag("trim", o.trim)
		}
	}
	if o.blankLines != "" {
		if cfg.BlankLines, ok = textfmt.ParseBlankLines(o.blankLines); !ok {
			return cfg, invalidFlag("blank-lines", o.blankLines)
		}
	}
	if o.tabs != "" {
		if cfg.Tabs, ok = textfmt.ParseTabs(o.tabs); !ok {
			return cfg, invalidFlag("tabs", o.tabs)
		}
	}
	if o.tabSize < 0 {
		return cfg, invalidFlag("tab-size", fmt.Sprint(o.tabSize))
	}
	if o.tabSize > 0 {
		if cfg.Tabs == textfmt.TabsUnset {
			return cfg, fmt.Errorf("%w: --tab-size requires --tabs", textfmt.ErrInvalidArgument)
		}
		cfg.TabSize = o.tabSize
	}
	return cfg, nil
}

// parseNewlineFlag accepts a kind's name (case-insensitive) as well as the
// forms textfmt.ParseNewline understands.
func parseNewlineFlag(s string) (textfmt.NewlineKind, bool) {
	if k, ok := textfmt.ParseNewline(s); ok {
		return k, true
	}
	for k := textfmt.NewlineCR; k.Valid(); k++ {
		if strings.EqualFold(s, k.String()) {
			return k, true
		}
	}
	return textfmt.NewlineUnset, false
}

func invalidFlag(name, value string) error {
	return fmt.Errorf("%w: --%s %q", textfmt.ErrInvalidArgument, name, value)
}
