package report

import (
	"fmt"
	"io"
)

func writePlain(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		var err error
		if e.Error != "" {
			_, err = fmt.Fprintf(w, "%-6s %s: %s\n", e.Status, e.Path, e.Error)
		} else {
			_, err = fmt.Fprintf(w, "%-6s %s\n", e.Status, e.Path)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
