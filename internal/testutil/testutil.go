// Package testutil defines support code for unit tests.
package testutil

import (
	"reflect"
	"testing"

	"github.com/creachadair/minij"
	"github.com/creachadair/minij/ast"
	"github.com/google/go-cmp/cmp"

	_ "embed"
)

// MainJava is the text of a complete program exercising every statement form
// of the language, with comments. It parses without diagnostics.
//
//go:embed testdata/Main.java
var MainJava string

var locationType = reflect.TypeOf(minij.Location{})

// IgnoreLocations is a cmp option that compares syntax trees by structure,
// disregarding the source locations of nodes.
var IgnoreLocations = cmp.Options{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().Type() == locationType
	}, cmp.Ignore()),
}

// MustParse parses text and fails t if the parse reports any diagnostics.
func MustParse(t testing.TB, text string) *ast.Program {
	t.Helper()
	prog, diags, err := ast.ParseString(text, nil)
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("Parse: unexpected diagnostics:\n%v", diags.Err())
	}
	return prog
}

// CheckSpans verifies the location invariants of the tree rooted at root:
// every node lies within the span of its parent, siblings appear in source
// order without overlapping, and if src != nil, the line and column
// positions of each node agree with src.
func CheckSpans(t testing.TB, src *minij.Source, root ast.Node) {
	t.Helper()
	ast.Inspect(root, func(n ast.Node) bool {
		if n == nil {
			return false
		}
		loc := n.Location()
		if loc.Pos > loc.End {
			t.Errorf("%T: span %+v is inverted", n, loc.Span)
		}
		if src != nil {
			if want := src.Location(loc.Span); loc != want {
				t.Errorf("%T: location %v, want %v", n, loc, want)
			}
		}
		var prev ast.Node
		for _, c := range ast.Children(n) {
			cloc := c.Node.Location()
			if !loc.Contains(cloc.Span) {
				t.Errorf("%T %q at %v is outside parent %T at %v", c.Node, c.Name, cloc, n, loc)
			}
			if prev != nil {
				if ploc := prev.Location(); ploc.End > cloc.Pos {
					t.Errorf("%T at %v overlaps or follows sibling %T at %v", c.Node, cloc, prev, ploc)
				}
			}
			prev = c.Node
		}
		return true
	})
}
