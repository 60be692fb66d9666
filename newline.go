package textfmt

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"golang.org/x/text/transform"
)

// SplitLines splits text into lines on any line terminator: \r\n, \r, \n,
// \v, \f, \x1c, \x1d, \x1e, U+0085, U+2028 and U+2029. The terminators are
// discarded and a trailing terminator does not produce a trailing empty line.
// Empty text yields an empty, non-nil slice.
func SplitLines(text string) []string {
	normalized, _, err := transform.String(&lineBreakNormalizer{}, text)
	if err != nil {
		// The normalizer never fails on complete input.
		normalized = text
	}
	return splitNormalized(normalized)
}

// JoinLines joins lines with the joiner of kind. An empty slice joins to "".
func JoinLines(lines []string, kind NewlineKind) (string, error) {
	joiner, err := kind.Joiner()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, joiner), nil
}

// ReadDocument reads the file at path and splits it into lines.
// Filesystem errors are returned unchanged.
func ReadDocument(path string) ([]string, error) {
	return ReadDocumentFS(afero.NewOsFs(), path)
}

// ReadDocumentFS is [ReadDocument] on an arbitrary filesystem.
func ReadDocumentFS(fsys afero.Fs, path string) ([]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(transform.NewReader(f, &lineBreakNormalizer{}))
	if err != nil {
		return nil, err
	}
	return splitNormalized(string(data)), nil
}

// WriteDocument writes lines to the file at path, terminated according to
// kind. CR, CRLF and LF are produced by translating line feeds on the
// way to disk; SPACE and REMOVE join everything into one physical line first.
// The file is truncated or created; no terminator follows the last line.
func WriteDocument(path string, lines []string, kind NewlineKind) error {
	return WriteDocumentFS(afero.NewOsFs(), path, lines, kind)
}

// WriteDocumentFS is [WriteDocument] on an arbitrary filesystem.
func WriteDocumentFS(fsys afero.Fs, path string, lines []string, kind NewlineKind) error {
	var (
		text string
		eol  string
		err  error
	)
	if e, ok := kind.FileEOL(); ok {
		eol = e
		text, err = JoinLines(lines, NewlineLF)
	} else {
		text, err = JoinLines(lines, kind)
	}
	if err != nil {
		return err
	}

	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	var w io.Writer = bw
	if eol != "" && eol != "\n" {
		w = &eolWriter{w: bw, eol: []byte(eol)}
	}
	if _, err := io.WriteString(w, text); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func splitNormalized(s string) []string {
	if s == "" {
		return []string{}
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// lineBreakNormalizer rewrites every line terminator to a single \n.
type lineBreakNormalizer struct {
	prevCR bool
}

func (n *lineBreakNormalizer) Reset() { n.prevCR = false }

func (n *lineBreakNormalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c == '\n' && n.prevCR {
			// Second half of \r\n, already emitted.
			n.prevCR = false
			nSrc++
			continue
		}
		out, size := c, 1
		switch c {
		case '\r', '\n', '\v', '\f', 0x1c, 0x1d, 0x1e:
			out = '\n'
		case 0xc2, 0xe2:
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			switch r, rs := utf8.DecodeRune(src[nSrc:]); r {
			case '\u0085', '\u2028', '\u2029':
				out, size = '\n', rs
			}
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = out
		nDst++
		nSrc += size
		n.prevCR = c == '\r'
	}
	return nDst, nSrc, nil
}

// eolWriter replaces each \n written through it with eol.
type eolWriter struct {
	w   io.Writer
	eol []byte
}

func (e *eolWriter) Write(p []byte) (int, error) {
	var n int
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			w, err := e.w.Write(p)
			return n + w, err
		}
		w, err := e.w.Write(p[:i])
		n += w
		if err != nil {
			return n, err
		}
		if _, err := e.w.Write(e.eol); err != nil {
			return n, err
		}
		n++
		p = p[i+1:]
	}
	return n, nil
}
