package textfmt

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ReplaceSpacesWithTab replaces each run of n consecutive spaces with a tab,
// scanning left to right without overlap. Leftover spaces shorter than n are
// kept.
func ReplaceSpacesWithTab(line string, n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: number of spaces must be positive: %d", ErrInvalidArgument, n)
	}
	return strings.ReplaceAll(line, strings.Repeat(" ", n), "\t"), nil
}

// ReplaceTabWithSpaces replaces each tab with n spaces. n == 0 deletes tabs.
func ReplaceTabWithSpaces(line string, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: number of spaces must not be negative: %d", ErrInvalidArgument, n)
	}
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", n)), nil
}

// ExpandTabs replaces each tab with the spaces needed to reach the next
// multiple of width display columns. Wide runes count as two columns.
func ExpandTabs(line string, width int) (string, error) {
	if width < 1 {
		return "", fmt.Errorf("%w: tab width must be positive: %d", ErrInvalidArgument, width)
	}
	if !strings.ContainsRune(line, '\t') {
		return line, nil
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			pad := width - col%width
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String(), nil
}

// TrimLine strips whitespace from the ends of line selected by kind.
// Whitespace is [unicode.IsSpace] plus the information separators U+001C
// through U+001F. [TrimNone] returns line unchanged.
func TrimLine(line string, kind TrimKind) (string, error) {
	switch kind {
	case TrimNone:
		return line, nil
	case TrimLeading:
		return strings.TrimLeftFunc(line, isSpace), nil
	case TrimTrailing:
		return strings.TrimRightFunc(line, isSpace), nil
	case TrimAll:
		return strings.TrimFunc(line, isSpace), nil
	default:
		return "", fmt.Errorf("%w: trim kind %v", ErrInvalidArgument, kind)
	}
}

// ConvertCase maps line to the letter case selected by kind.
// [CaseUnset] returns line unchanged.
func ConvertCase(line string, kind CaseKind) (string, error) {
	switch kind {
	case CaseUnset:
		return line, nil
	case CaseLower:
		return cases.Lower(language.Und).String(line), nil
	case CaseUpper:
		return cases.Upper(language.Und).String(line), nil
	default:
		return "", fmt.Errorf("%w: case kind %v", ErrInvalidArgument, kind)
	}
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// convertTabs applies the tab policy of kind with the given size.
func convertTabs(line string, kind TabKind, size int) (string, error) {
	if size == 0 {
		size = DefaultTabSize
	}
	switch kind {
	case TabsUnset:
		return line, nil
	case TabsToSpaces:
		return ReplaceTabWithSpaces(line, size)
	case SpacesToTabs:
		return ReplaceSpacesWithTab(line, size)
	case TabsExpand:
		return ExpandTabs(line, size)
	default:
		return "", fmt.Errorf("%w: tab kind %v", ErrInvalidArgument, kind)
	}
}
