package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bjaus/textfmt"
	"github.com/bjaus/textfmt/internal/report"
	"github.com/spf13/afero"
)

func run(ctx context.Context, stdout, stderr io.Writer, opts *runOptions, configPath string, patterns []string) error {
	logger, err := newLogger(stderr, opts.logLevel)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(opts.output)
	if err != nil {
		return err
	}

	root := opts.dir
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			return err
		}
	}
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(root, configPath)
	}
	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return err
	}
	cfg, err := textfmt.ReadConfig(configPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded config", "path", configPath,
		"newline", cfg.Newline, "case", cfg.Case, "trim", cfg.Trim,
		"blank-lines", cfg.BlankLines, "tabs", cfg.Tabs, "backup", cfg.BackupFile)

	files, err := ExpandInputs(root, patterns)
	if err != nil {
		return err
	}
	backups := cfg.BackupFile && !opts.noBackup
	if backups {
		files = WithoutBackups(files)
	}
	if len(files) == 0 {
		return ErrNoInputFiles
	}
	logger.Debug("resolved inputs", "count", len(files))

	batch := textfmt.Batch{Fs: afero.NewOsFs(), Jobs: opts.jobs}
	switch {
	case opts.dryRun:
		batch.Fs = afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(batch.Fs), afero.NewMemMapFs())
		logger.Info("dry run, no files will be written")
	case backups:
		batch.Backup = func(path string) error {
			dst, err := backupFile(path)
			if err == nil {
				logger.Debug("backed up", "path", path, "backup", dst)
			}
			return err
		}
	}

	results := batch.Run(ctx, cfg, files)
	for _, r := range results {
		if r.OK() {
			logger.Info("formatted", "path", r.Path, "lines", r.Lines, "duration", r.Duration)
		} else {
			logger.Error("failed", "path", r.Path, "err", r.Err)
		}
	}
	if err := report.Write(stdout, format, results); err != nil {
		return err
	}

	ok, failed := report.Summary(results)
	logger.Debug("done", "ok", ok, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, failed, len(results))
	}
	return nil
}
