// Package cli implements the textfmt command line.
package cli

import (
	"errors"

	"github.com/bjaus/textfmt/internal/report"
	"github.com/spf13/cobra"
)

// Errors reported to the user before or after a run.
var (
	ErrConfigNotFound = errors.New("configuration file does not exist")
	ErrNoInputFiles   = errors.New("no input files provided")
	ErrFilesFailed    = errors.New("some files could not be formatted")
	ErrConfigExists   = errors.New("configuration file already exists")
)

type runOptions struct {
	dir      string
	jobs     int
	noBackup bool
	dryRun   bool
	output   string
	logLevel string
}

// RootCmd returns the textfmt command.
func RootCmd() *cobra.Command {
	opts := &runOptions{}
	root := &cobra.Command{
		Use:   "textfmt <config file> <input files>...",
		Short: "Reformat text files according to a config file",
		Long: `textfmt reads a YAML config file and rewrites every matching input file:
newline conversion, blank line removal, trimming, tab conversion and letter case.
Input files are glob patterns ("**" matches any number of directories).`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args[0], args[1:])
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.dir, "dir", "C", "", "resolve relative patterns against this directory (default: working directory)")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "files formatted at once (default: number of CPUs)")
	flags.BoolVar(&opts.noBackup, "no-backup", false, "never write .bak files, whatever the config says")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "format in memory without touching any file")
	flags.StringVarP(&opts.output, "output", "o", string(report.Plain), "report format: plain, table, markdown, json, yaml")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(InitCmd())
	return root
}
