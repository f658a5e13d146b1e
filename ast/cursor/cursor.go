// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements navigation over a syntax tree.
package cursor

import (
	"fmt"

	"github.com/creachadair/minij/ast"
)

// Path traverses a sequential path into the structure of n where path elements
// are as documented for the Cursor.Down method.  This is a convenience wrapper
// for creating a cursor, applying path, and retrieving its node.
func Path[T ast.Node](n ast.Node, path ...any) (T, error) {
	c := New(n).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	v, ok := c.Node().(T)
	if !ok {
		return result, fmt.Errorf("wrong node type %T", c.Node())
	}
	return v, nil
}

// A Cursor is a pointer that navigates into the structure of a syntax tree.
type Cursor struct {
	org ast.Node
	stk []ast.Node
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin ast.Node) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin node of c.
func (c *Cursor) Origin() ast.Node { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Node reports the current node under the cursor.
func (c *Cursor) Node() ast.Node {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of nodes from the origin to the current
// location in c.
func (c *Cursor) Path() []ast.Node {
	return append([]ast.Node{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current node, where path elements are strings (denoting field names),
// integers (denoting child offsets), or functions (see below).  If the path
// is valid, the node reached is returned. If the path cannot be completely
// consumed, traversal stops and an error is recorded. Use Err to recover the
// error.
//
// If a path element is a string, it names a field of the current node, as
// reported by ast.Children (for example "cond", "then", "body"). If the field
// holds a single node, that node is reached. If the field holds a list, the
// next path element must be an integer, which selects an element of the list.
//
// If a path element is an integer that does not follow a list field, it
// selects among all the children of the current node in source order.
// Negative indices count backward from the end (-1 is last, -2 second last).
// An error is reported if the index is out of bounds.
//
// If a path element is a function, it must have the signature
//
//	func(ast.Node) bool
//
// and the first child of the current node (or element of a list field) for
// which it reports true is reached. An error is reported if there is none.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Node()
	var list []ast.Child // the elements of a list field, if one was named
	var field string
	for _, elt := range path {
		cands := list
		if field == "" {
			cands = ast.Children(cur)
		}
		switch t := elt.(type) {
		case string:
			if field != "" {
				return c.setErrorf("field %q is a list; want an index", field)
			}
			var match []ast.Child
			for _, ch := range cands {
				if ch.Name == t {
					match = append(match, ch)
				}
			}
			if len(match) == 0 {
				return c.setErrorf("%T has no field %q", cur, t)
			} else if match[0].Index < 0 {
				cur = c.push(match[0].Node)
				continue
			}
			list, field = match, t
			continue

		case int:
			i, ok := fixArrayBound(len(cands), t)
			if !ok {
				return c.setErrorf("index %d out of bounds (n=%d)", i, len(cands))
			}
			cur = c.push(cands[i].Node)

		case func(ast.Node) bool:
			var found bool
			for _, ch := range cands {
				if t(ch.Node) {
					cur, found = c.push(ch.Node), true
					break
				}
			}
			if !found {
				return c.setErrorf("no matching child of %T", cur)
			}

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
		list, field = nil, ""
	}
	if field != "" {
		return c.setErrorf("field %q is a list; want an index", field)
	}
	return c
}

func (c *Cursor) push(n ast.Node) ast.Node { c.stk = append(c.stk, n); return n }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
