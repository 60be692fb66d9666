package textfmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidConfig   = errors.New("invalid config")
)

// --- Newline ---

// NewlineKind selects the line terminator used when lines are joined or
// written. The zero value [NewlineUnset] means no newline conversion was
// requested.
type NewlineKind int

const (
	NewlineUnset  NewlineKind = iota
	NewlineCR                 // \r
	NewlineCRLF               // \r\n (Windows)
	NewlineLF                 // \n (Unix, Linux, macOS)
	NewlineSpace              // lines joined with a single space
	NewlineRemove             // lines concatenated directly
)

type newlineInfo struct {
	name   string
	joiner string
	text   string
	raw    string
	eol    bool
}

var newlines = map[NewlineKind]newlineInfo{
	NewlineCR:     {name: "CR", joiner: "\r", text: `\r`, raw: "\r", eol: true},
	NewlineCRLF:   {name: "CRLF", joiner: "\r\n", text: `\r\n`, raw: "\r\n", eol: true},
	NewlineLF:     {name: "LF", joiner: "\n", text: `\n`, raw: "\n", eol: true},
	NewlineSpace:  {name: "SPACE", joiner: " ", text: "space"},
	NewlineRemove: {name: "REMOVE", joiner: "", text: "remove"},
}

// Valid reports whether k is a defined newline kind.
func (k NewlineKind) Valid() bool {
	_, ok := newlines[k]
	return ok
}

// String returns the kind's name, e.g. "CRLF".
func (k NewlineKind) String() string {
	if info, ok := newlines[k]; ok {
		return info.name
	}
	return fmt.Sprintf("NewlineKind(%d)", int(k))
}

// Joiner returns the string inserted between lines when they are joined.
func (k NewlineKind) Joiner() (string, error) {
	info, ok := newlines[k]
	if !ok {
		return "", fmt.Errorf("%w: newline kind %v", ErrInvalidArgument, k)
	}
	return info.joiner, nil
}

// FileEOL returns the end-of-line sequence a file writer should emit for k.
// Only CR, CRLF and LF have one; SPACE and REMOVE report false because
// their content is pre-joined into a single line.
func (k NewlineKind) FileEOL() (string, bool) {
	info, ok := newlines[k]
	if !ok || !info.eol {
		return "", false
	}
	return info.joiner, true
}

// MarshalText encodes k in its config file form: the escaped sequences
// `\n`, `\r\n`, `\r`, or the words "space" and "remove".
func (k NewlineKind) MarshalText() ([]byte, error) {
	info, ok := newlines[k]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported newline kind %v", ErrInvalidArgument, k)
	}
	return []byte(info.text), nil
}

// ParseNewline decodes the config file form of a newline kind. The raw
// control characters are accepted as well as their escaped spelling. Unknown
// text yields [NewlineUnset] and false.
func ParseNewline(s string) (NewlineKind, bool) {
	for k, info := range newlines {
		if s == info.text || (info.raw != "" && s == info.raw) {
			return k, true
		}
	}
	return NewlineUnset, false
}

// --- Trim ---

// TrimKind selects which ends of a line lose their whitespace.
type TrimKind int

const (
	TrimNone TrimKind = iota
	TrimLeading
	TrimTrailing
	TrimAll
)

var trimNames = []string{"none", "leading", "trailing", "all"}

// Valid reports whether k is a defined trim kind.
func (k TrimKind) Valid() bool { return k >= TrimNone && int(k) < len(trimNames) }

// String returns the config file form of k.
func (k TrimKind) String() string {
	if k.Valid() {
		return trimNames[k]
	}
	return fmt.Sprintf("TrimKind(%d)", int(k))
}

// MarshalText implements [encoding.TextMarshaler].
func (k TrimKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: unsupported trim kind %v", ErrInvalidArgument, k)
	}
	return []byte(trimNames[k]), nil
}

// ParseTrim decodes a trim kind. Unknown text yields [TrimNone] and false.
func ParseTrim(s string) (TrimKind, bool) {
	for i, name := range trimNames {
		if s == name {
			return TrimKind(i), true
		}
	}
	return TrimNone, false
}

// --- Case ---

// CaseKind selects the target letter case. The zero value [CaseUnset] means
// no conversion.
type CaseKind int

const (
	CaseUnset CaseKind = iota
	CaseLower
	CaseUpper
)

var caseNames = map[CaseKind]string{CaseLower: "lower", CaseUpper: "upper"}

// Valid reports whether k is a defined case kind. [CaseUnset] is not.
func (k CaseKind) Valid() bool {
	_, ok := caseNames[k]
	return ok
}

// String returns the config file form of k.
func (k CaseKind) String() string {
	if name, ok := caseNames[k]; ok {
		return name
	}
	if k == CaseUnset {
		return "unset"
	}
	return fmt.Sprintf("CaseKind(%d)", int(k))
}

// MarshalText implements [encoding.TextMarshaler].
func (k CaseKind) MarshalText() ([]byte, error) {
	name, ok := caseNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported case kind %v", ErrInvalidArgument, k)
	}
	return []byte(name), nil
}

// ParseCase decodes a case kind. Unknown text yields [CaseUnset] and false.
func ParseCase(s string) (CaseKind, bool) {
	for k, name := range caseNames {
		if s == name {
			return k, true
		}
	}
	return CaseUnset, false
}

// --- Blank lines ---

// BlankLineKind selects how blank lines are handled. The zero value
// [BlankLinesUnset] leaves them alone.
type BlankLineKind int

const (
	BlankLinesUnset BlankLineKind = iota
	BlankLinesRemove
	BlankLinesCollapse
)

var blankLineNames = map[BlankLineKind]string{BlankLinesRemove: "remove", BlankLinesCollapse: "collapse"}

// Valid reports whether k is a defined blank line kind. [BlankLinesUnset] is not.
func (k BlankLineKind) Valid() bool {
	_, ok := blankLineNames[k]
	return ok
}

// String returns the config file form of k.
func (k BlankLineKind) String() string {
	if name, ok := blankLineNames[k]; ok {
		return name
	}
	if k == BlankLinesUnset {
		return "unset"
	}
	return fmt.Sprintf("BlankLineKind(%d)", int(k))
}

// MarshalText implements [encoding.TextMarshaler].
func (k BlankLineKind) MarshalText() ([]byte, error) {
	name, ok := blankLineNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported blank line kind %v", ErrInvalidArgument, k)
	}
	return []byte(name), nil
}

// ParseBlankLines decodes a blank line kind. Unknown text yields
// [BlankLinesUnset] and false.
func ParseBlankLines(s string) (BlankLineKind, bool) {
	for k, name := range blankLineNames {
		if s == name {
			return k, true
		}
	}
	return BlankLinesUnset, false
}

// --- Tabs ---

// TabKind selects how tabs and space runs are converted. The zero value
// [TabsUnset] leaves them alone.
type TabKind int

const (
	TabsUnset    TabKind = iota
	TabsToSpaces         // each tab becomes TabSize spaces
	SpacesToTabs         // each run of TabSize spaces becomes a tab
	TabsExpand           // tabs advance to the next tab stop
)

// DefaultTabSize is used when a tab conversion is requested without a size.
const DefaultTabSize = 4

var tabNames = map[TabKind]string{TabsToSpaces: "spaces", SpacesToTabs: "tabs", TabsExpand: "expand"}

// Valid reports whether k is a defined tab kind. [TabsUnset] is not.
func (k TabKind) Valid() bool {
	_, ok := tabNames[k]
	return ok
}

// String returns the config file form of k.
func (k TabKind) String() string {
	if name, ok := tabNames[k]; ok {
		return name
	}
	if k == TabsUnset {
		return "unset"
	}
	return fmt.Sprintf("TabKind(%d)", int(k))
}

// MarshalText implements [encoding.TextMarshaler].
func (k TabKind) MarshalText() ([]byte, error) {
	name, ok := tabNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported tab kind %v", ErrInvalidArgument, k)
	}
	return []byte(name), nil
}

// ParseTabs decodes a tab kind. Unknown text yields [TabsUnset] and false.
func ParseTabs(s string) (TabKind, bool) {
	for k, name := range tabNames {
		if s == name {
			return k, true
		}
	}
	return TabsUnset, false
}
