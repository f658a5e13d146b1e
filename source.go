// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package minij

import (
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"go4.org/mem"
)

// A Source is an immutable view of a complete source text, with an index of
// line starts for converting offsets to line and column positions.
type Source struct {
	name  string
	text  []byte
	lines []int // offsets of the first byte of each line
}

// EncodingError reports that source text is not valid UTF-8.
type EncodingError struct {
	Name   string // the source label, if any
	Offset int    // offset of the first invalid byte
}

func (e *EncodingError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: invalid UTF-8 at offset %d", e.Name, e.Offset)
	}
	return fmt.Sprintf("invalid UTF-8 at offset %d", e.Offset)
}

// NewSource constructs a Source for text with the given name.  The name is
// used only for display in diagnostics and may be empty. NewSource reports an
// *EncodingError if text is not valid UTF-8. The Source retains text, which
// the caller must not modify afterward.
func NewSource(name string, text []byte) (*Source, error) {
	if !utf8.Valid(text) {
		return nil, &EncodingError{Name: name, Offset: firstInvalid(text)}
	}
	lines := []int{0}
	for i, b := range text {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &Source{name: name, text: text, lines: lines}, nil
}

// ReadSource reads all of r and constructs a Source from its contents.
func ReadSource(name string, r io.Reader) (*Source, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return NewSource(name, text)
}

// Name returns the display name of s.
func (s *Source) Name() string { return s.name }

// Len returns the length of s in bytes.
func (s *Source) Len() int { return len(s.text) }

// Bytes returns a read-only view of the complete text of s.
func (s *Source) Bytes() mem.RO { return mem.B(s.text) }

// At returns the byte at offset pos, or 0 if pos is out of range.
func (s *Source) At(pos int) byte {
	if pos < 0 || pos >= len(s.text) {
		return 0
	}
	return s.text[pos]
}

// View returns a read-only view of the text covered by sp.
func (s *Source) View(sp Span) mem.RO { return mem.B(s.text[sp.Pos:sp.End]) }

// Text returns a copy of the text covered by sp.
func (s *Source) Text(sp Span) string { return s.View(sp).StringCopy() }

// Lines returns the number of lines in s. An empty source has one line.
func (s *Source) Lines() int { return len(s.lines) }

// LineCol returns the line and column of the byte at offset pos.  An offset
// equal to the length of s refers to the end of the input.
func (s *Source) LineCol(pos int) LineCol {
	// Find the last line whose start is <= pos.
	i := sort.Search(len(s.lines), func(i int) bool { return s.lines[i] > pos }) - 1
	if i < 0 {
		i = 0
	}
	return LineCol{Line: i + 1, Column: pos - s.lines[i] + 1}
}

// Location returns the complete location of sp.
func (s *Source) Location(sp Span) Location {
	return Location{Span: sp, First: s.LineCol(sp.Pos), Last: s.LineCol(sp.End)}
}

// Line returns the text of the specified 1-based line, without its trailing
// line break. It returns "" if line is out of range.
func (s *Source) Line(line int) string {
	if line < 1 || line > len(s.lines) {
		return ""
	}
	pos, end := s.lines[line-1], len(s.text)
	if line < len(s.lines) {
		end = s.lines[line] - 1
	}
	if end > pos && s.text[end-1] == '\r' {
		end--
	}
	return string(s.text[pos:end])
}

func firstInvalid(text []byte) int {
	for i := 0; i < len(text); {
		r, n := utf8.DecodeRune(text[i:])
		if r == utf8.RuneError && n <= 1 {
			return i
		}
		i += n
	}
	return len(text)
}
