package cli

import (
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
)

func newLogger(w io.Writer, level string) (*charmlog.Logger, error) {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           lvl,
		Prefix:          "textfmt",
	})
	return logger, nil
}
