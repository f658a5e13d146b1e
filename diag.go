// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package minij

import (
	"errors"
	"fmt"
	"slices"
)

// Severity classifies the impact of a diagnostic.
type Severity byte

const (
	SevError   Severity = iota // the input is malformed
	SevWarning                 // the input is suspicious but usable
)

func (s Severity) String() string {
	if s == SevWarning {
		return "warning"
	}
	return "error"
}

// Code is a stable identifier for a kind of diagnostic.
type Code string

// Lexical error codes, reported by the Scanner.
const (
	UnexpectedCharacter Code = "UnexpectedCharacter"
	UnterminatedString  Code = "UnterminatedString"
	UnterminatedComment Code = "UnterminatedComment"
	MalformedNumber     Code = "MalformedNumber"
)

// Syntax error codes, reported by the parser.
const (
	UnexpectedToken           Code = "UnexpectedToken"
	TryRequiresCatchOrFinally Code = "TryRequiresCatchOrFinally"
	UnterminatedBlock         Code = "UnterminatedBlock"
	MaxNestingDepthExceeded   Code = "MaxNestingDepthExceeded"
	InvalidAssignmentTarget   Code = "InvalidAssignmentTarget"
	TooManyErrors             Code = "TooManyErrors"
)

// A Diagnostic records a problem detected in source text.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Source   string // the source name, if known
	Location Location
}

// Error satisfies the error interface. The format is "name:line:col: message",
// omitting the name if it is empty.
func (d *Diagnostic) Error() string {
	pos := d.Location.First.String()
	if d.Source != "" {
		pos = d.Source + ":" + pos
	}
	if d.Severity == SevWarning {
		return fmt.Sprintf("%s: warning: %s", pos, d.Message)
	}
	return fmt.Sprintf("%s: %s", pos, d.Message)
}

// Diagnostics is an ordered collection of diagnostics.
type Diagnostics []*Diagnostic

// Add appends a diagnostic to ds and returns it.
func (ds *Diagnostics) Add(sev Severity, code Code, loc Location, msg string, args ...any) *Diagnostic {
	d := &Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(msg, args...),
		Location: loc,
	}
	*ds = append(*ds, d)
	return d
}

// HasErrors reports whether ds contains at least one diagnostic with error
// severity.
func (ds Diagnostics) HasErrors() bool {
	return slices.ContainsFunc(ds, func(d *Diagnostic) bool { return d.Severity == SevError })
}

// Count reports the number of diagnostics in ds with the given code.
func (ds Diagnostics) Count(code Code) int {
	var n int
	for _, d := range ds {
		if d.Code == code {
			n++
		}
	}
	return n
}

// Err returns an error joining all the error-severity diagnostics of ds, or
// nil if there are none.
func (ds Diagnostics) Err() error {
	var errs []error
	for _, d := range ds {
		if d.Severity == SevError {
			errs = append(errs, d)
		}
	}
	return errors.Join(errs...)
}

// Sort orders ds by starting offset. Diagnostics at the same offset keep
// the order in which they were detected.
func (ds Diagnostics) Sort() {
	slices.SortStableFunc(ds, func(a, b *Diagnostic) int {
		return a.Location.Pos - b.Location.Pos
	})
}

// Merge combines diagnostic lists into a single list ordered by source
// position. Each input is assumed to be in detection order.
func Merge(lists ...Diagnostics) Diagnostics {
	var out Diagnostics
	for _, ds := range lists {
		out = append(out, ds...)
	}
	out.Sort()
	return out
}
