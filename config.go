package textfmt

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config file keys.
const (
	keyBackupFile = "backup-file"
	keyLetterCase = "letter-case"
	keyNewline    = "newline"
	keyWhitespace = "whitespace"
	keyBlankLines = "blank-lines"
	keyTrim       = "trim"
	keyTabs       = "tabs"
	keyTabSize    = "tab-size"
)

// Config selects the transforms applied to a document. Zero-valued kinds mean
// the corresponding pass is skipped. A Config is a plain value: the engine
// never modifies it, so one Config can be shared by concurrent formatting
// calls.
type Config struct {
	// BackupFile asks the caller to keep a copy of each file before it is
	// overwritten. The engine only carries the flag.
	BackupFile bool
	BlankLines BlankLineKind
	Case       CaseKind
	Newline    NewlineKind
	Trim       TrimKind
	Tabs       TabKind
	// TabSize parameterizes Tabs. Zero means DefaultTabSize, so a Config
	// cannot delete tabs; call ReplaceTabWithSpaces(line, 0) for that.
	TabSize int
}

// DefaultConfig returns a Config that backs up files and applies no
// transforms.
func DefaultConfig() Config {
	return Config{BackupFile: true}
}

// FromMap builds a Config from the structured form of a config file. Decoding
// is lenient: each missing or unrecognized value leaves its field at the
// default, and FromMap never fails.
func FromMap(data map[string]any) Config {
	cfg := DefaultConfig()
	switch v := data[keyBackupFile].(type) {
	case bool:
		cfg.BackupFile = v
	case string:
		switch strings.ToLower(v) {
		case "true":
			cfg.BackupFile = true
		case "false":
			cfg.BackupFile = false
		}
	}
	if s, ok := data[keyLetterCase].(string); ok {
		cfg.Case, _ = ParseCase(s)
	}
	if s, ok := data[keyNewline].(string); ok {
		cfg.Newline, _ = ParseNewline(s)
	}

	ws, ok := asMap(data[keyWhitespace])
	if !ok {
		return cfg
	}
	if s, ok := ws[keyBlankLines].(string); ok {
		cfg.BlankLines, _ = ParseBlankLines(s)
	}
	if s, ok := ws[keyTrim].(string); ok {
		cfg.Trim, _ = ParseTrim(s)
	}
	if s, ok := ws[keyTabs].(string); ok {
		cfg.Tabs, _ = ParseTabs(s)
	}
	if n, ok := asPositiveInt(ws[keyTabSize]); ok {
		cfg.TabSize = n
	}
	return cfg
}

// ToMap returns the structured form of c. Only set fields are emitted, and
// the whitespace group is omitted when none of its fields are set. An
// undefined kind value fails with [ErrInvalidArgument].
func (c Config) ToMap() (map[string]any, error) {
	out := map[string]any{
		keyBackupFile: strconv.FormatBool(c.BackupFile),
	}
	if c.Case != CaseUnset {
		if err := putText(out, keyLetterCase, c.Case); err != nil {
			return nil, err
		}
	}
	if c.Newline != NewlineUnset {
		if err := putText(out, keyNewline, c.Newline); err != nil {
			return nil, err
		}
	}

	ws := map[string]any{}
	if c.BlankLines != BlankLinesUnset {
		if err := putText(ws, keyBlankLines, c.BlankLines); err != nil {
			return nil, err
		}
	}
	if c.Trim != TrimNone {
		if err := putText(ws, keyTrim, c.Trim); err != nil {
			return nil, err
		}
	}
	if c.TabSize < 0 {
		return nil, fmt.Errorf("%w: tab size must not be negative: %d", ErrInvalidArgument, c.TabSize)
	}
	if c.Tabs != TabsUnset {
		if err := putText(ws, keyTabs, c.Tabs); err != nil {
			return nil, err
		}
		if c.TabSize > 0 {
			ws[keyTabSize] = c.TabSize
		}
	}
	if len(ws) > 0 {
		out[keyWhitespace] = ws
	}
	return out, nil
}

// MarshalYAML implements [yaml.Marshaler].
func (c Config) MarshalYAML() (any, error) {
	return c.ToMap()
}

// UnmarshalYAML implements [yaml.Unmarshaler]. Only a document that is not a
// mapping fails; individual fields decode leniently as in [FromMap].
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var data map[string]any
	if err := value.Decode(&data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	*c = FromMap(data)
	return nil
}

type textMarshaler interface {
	MarshalText() ([]byte, error)
}

func putText(m map[string]any, key string, v textMarshaler) error {
	b, err := v.MarshalText()
	if err != nil {
		return err
	}
	m[key] = string(b)
	return nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if s, ok := k.(string); ok {
				out[s] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func asPositiveInt(v any) (int, bool) {
	var n int
	switch x := v.(type) {
	case int:
		n = x
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	return n, n >= 1
}
