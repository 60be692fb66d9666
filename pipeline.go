package textfmt

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Format runs the transforms selected by cfg over lines and returns a new
// slice. Passes run in a fixed order: blank lines first, then for each line
// trim, tab conversion and letter case. lines is not modified.
func Format(cfg Config, lines []string) ([]string, error) {
	out, err := RemoveBlankLines(lines, cfg.BlankLines)
	if err != nil {
		return nil, err
	}
	for i, line := range out {
		if line, err = TrimLine(line, cfg.Trim); err != nil {
			return nil, err
		}
		if line, err = convertTabs(line, cfg.Tabs, cfg.TabSize); err != nil {
			return nil, err
		}
		if line, err = ConvertCase(line, cfg.Case); err != nil {
			return nil, err
		}
		out[i] = line
	}
	return out, nil
}

// FormatText splits text into lines, formats them, and joins the result with
// the configured newline, or LF when none is set.
func FormatText(cfg Config, text string) (string, error) {
	lines, err := Format(cfg, SplitLines(text))
	if err != nil {
		return "", err
	}
	return JoinLines(lines, cfg.newline())
}

// FormatFile formats the file at path in place.
func FormatFile(cfg Config, path string) error {
	return FormatFileFS(afero.NewOsFs(), cfg, path)
}

// FormatFileFS is [FormatFile] on an arbitrary filesystem.
func FormatFileFS(fsys afero.Fs, cfg Config, path string) error {
	_, err := formatFile(fsys, cfg, path, nil)
	return err
}

func formatFile(fsys afero.Fs, cfg Config, path string, backup func(string) error) (int, error) {
	lines, err := ReadDocumentFS(fsys, path)
	if err != nil {
		return 0, err
	}
	lines, err = Format(cfg, lines)
	if err != nil {
		return 0, err
	}
	if backup != nil && cfg.BackupFile {
		if err := backup(path); err != nil {
			return 0, fmt.Errorf("backup: %w", err)
		}
	}
	if err := WriteDocumentFS(fsys, path, lines, cfg.newline()); err != nil {
		return 0, err
	}
	return len(lines), nil
}

func (c Config) newline() NewlineKind {
	if c.Newline == NewlineUnset {
		return NewlineLF
	}
	return c.Newline
}

// Result is the outcome of formatting one file in a [Batch].
type Result struct {
	Path     string
	Lines    int
	Duration time.Duration
	Err      error
}

// OK reports whether the file was formatted successfully.
func (r Result) OK() bool { return r.Err == nil }

// Batch formats many files independently. The zero value formats files on the
// OS filesystem with one worker per CPU and no backups.
type Batch struct {
	// Fs is the filesystem files are read from and written to.
	// Default: the OS filesystem.
	Fs afero.Fs
	// Jobs caps the number of files formatted at once.
	// Default: runtime.GOMAXPROCS(0).
	Jobs int
	// Backup is called with a file's path before the file is overwritten,
	// but only when the config's BackupFile is set. A Backup error leaves
	// the file untouched and is reported in its Result.
	Backup func(path string) error
}

// Run formats each path with cfg and returns one Result per path, in the order
// of paths. A failing file does not stop the others. Files not yet started
// when ctx is done report ctx.Err().
func (b Batch) Run(ctx context.Context, cfg Config, paths []string) []Result {
	fsys := b.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	jobs := b.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(paths))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range paths {
		results[i].Path = path
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			start := time.Now()
			n, err := formatFile(fsys, cfg, path, b.Backup)
			results[i] = Result{Path: path, Lines: n, Duration: time.Since(start), Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
