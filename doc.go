// Package textfmt reformats text files: newline conversion, blank line
// removal, whitespace trimming, tab conversion and letter case.
//
// A document is a []string of lines without terminators. Transforms are plain
// functions over lines or documents, and [Format] runs the ones selected by a
// [Config] in a fixed order:
//
//  1. [RemoveBlankLines] with Config.BlankLines
//  2. for each line: [TrimLine], tab conversion, [ConvertCase]
//
// [FormatText] and [FormatFile] add splitting and joining around that, using
// Config.Newline (LF when unset).
//
//	cfg, err := textfmt.ReadConfig("textfmt.yaml")
//	if err != nil { ... }
//	err = textfmt.FormatFile(cfg, "notes.txt")
//
// # Absent Options
//
// Every kind type reserves its zero value for "not configured", and a
// zero-valued field makes its pass an identity transform. [TrimNone] is both
// the zero value and a real member.
//
// # Newlines
//
// [SplitLines] accepts every common terminator (\n, \r\n, \r, and the
// Unicode line and paragraph separators). [NewlineKind] carries two mappings:
// [NewlineKind.Joiner] for in-memory joins and [NewlineKind.FileEOL] for the
// terminator written to disk. SPACE and REMOVE have no file terminator, so
// [WriteDocument] joins their lines into one physical line.
//
// # Config Files
//
// Configs are YAML:
//
//	backup-file: "false"
//	newline: '\r\n'
//	letter-case: upper
//	whitespace:
//	  blank-lines: collapse
//	  trim: all
//	  tabs: expand
//	  tab-size: 4
//
// Decoding is lenient. A missing or unknown value leaves that field at its
// default ([FromMap] never fails); only a document that is not YAML, or not a
// mapping, is rejected. Encoding is strict: [Config.ToMap] fails for kind
// values outside their defined set.
//
// # Batches
//
// [Batch] formats many files concurrently. Files are independent; each is
// read, formatted and written before its handle is released, and a failure
// is reported per file in its [Result].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidArgument] — out-of-range size or undefined kind value
//   - [ErrInvalidConfig] — config document could not be parsed
//
// Filesystem errors are returned unchanged.
package textfmt
