// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package minij

import "fmt"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Contains reports whether o lies entirely within s.
func (s Span) Contains(o Span) bool { return s.Pos <= o.Pos && o.End <= s.End }

// Overlaps reports whether s and o share at least one byte.
func (s Span) Overlaps(o Span) bool { return s.Pos < o.End && o.Pos < s.End }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 1-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets. Last is the position just past the
// final byte of the range.
type Location struct {
	Span
	First, Last LineCol
}

// IsValid reports whether loc refers to a real source position.
func (loc Location) IsValid() bool { return loc.First.Line > 0 }

// Through returns the smallest location enclosing both loc and end.
// The result begins at loc and finishes at end.
func (loc Location) Through(end Location) Location {
	return Location{
		Span:  Span{Pos: loc.Pos, End: end.End},
		First: loc.First,
		Last:  end.Last,
	}
}

func (loc Location) String() string {
	return fmt.Sprintf("%v-%v", loc.First, loc.Last)
}
