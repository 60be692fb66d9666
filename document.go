package textfmt

import "fmt"

// RemoveBlankLines returns lines with blank lines handled according to kind.
// A blank line is the empty string; whitespace-only lines are not blank
// unless trimmed first. The input is never modified and the result is always
// a new slice, even for [BlankLinesUnset].
func RemoveBlankLines(lines []string, kind BlankLineKind) ([]string, error) {
	switch kind {
	case BlankLinesUnset:
		out := make([]string, len(lines))
		copy(out, lines)
		return out, nil
	case BlankLinesRemove:
		out := make([]string, 0, len(lines))
		for _, line := range lines {
			if line != "" {
				out = append(out, line)
			}
		}
		return out, nil
	case BlankLinesCollapse:
		out := make([]string, 0, len(lines))
		lastBlank := false
		for _, line := range lines {
			if line != "" {
				out = append(out, line)
				lastBlank = false
			} else if !lastBlank {
				out = append(out, line)
				lastBlank = true
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: blank line kind %v", ErrInvalidArgument, kind)
	}
}
