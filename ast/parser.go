// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/minij"
)

// Parse reads a complete source text from r and parses it.  It returns the
// syntax tree along with the lexical and syntax diagnostics for the input, in
// source order. An error is reported only if r could not be read or does not
// contain valid UTF-8; in that case no tree is returned.
func Parse(r io.Reader, opts *Options) (*Program, minij.Diagnostics, error) {
	src, err := minij.ReadSource(opts.name(), r)
	if err != nil {
		return nil, nil, err
	}
	prog, diags := ParseSource(src, opts)
	return prog, diags, nil
}

// ParseString is a convenience wrapper for Parse on a string.
func ParseString(text string, opts *Options) (*Program, minij.Diagnostics, error) {
	return Parse(strings.NewReader(text), opts)
}

// ParseSource parses src and returns its syntax tree along with the lexical
// and syntax diagnostics for the input, in source order.  A tree is always
// returned; parts of the input that could not be parsed are represented by
// BadStmt and BadExpr nodes.
func ParseSource(src *minij.Source, opts *Options) (*Program, minij.Diagnostics) {
	p := newParser(src, opts)
	prog := p.program()
	return prog, minij.Merge(p.st.Diagnostics(), p.diags)
}

// A parser is a recursive-descent parser for a single source. The state of a
// parse is the stack of active grammar rules; a syntax error unwinds that
// stack to the nearest rule that can recover (see recoverStmt).
type parser struct {
	src   *minij.Source
	st    *minij.Stream
	diags minij.Diagnostics
	log   *slog.Logger

	maxDepth  int
	maxErrors int
	depth     int  // current nesting depth
	nerr      int  // number of syntax errors reported
	halted    bool // stop reporting; the input has been skipped to EOF

	comments []*Comment
}

func newParser(src *minij.Source, opts *Options) *parser {
	p := &parser{
		src:       src,
		st:        minij.NewStream(src),
		log:       opts.logger(),
		maxDepth:  opts.maxDepth(),
		maxErrors: opts.maxErrors(),
	}
	if opts.keepComments() {
		p.st.SetCommentHandler(minij.CommentFunc(func(x minij.Lexeme) {
			p.comments = append(p.comments, &Comment{node: at(x.Location), Text: x.Text})
		}))
	}
	return p
}

// A bailout is the panic value used to unwind a failed grammar rule.
// If resume is true, the parser should resume at the current token without
// discarding input.
type bailout struct{ resume bool }

func (p *parser) tok() minij.Token       { return p.st.Token() }
func (p *parser) peek(n int) minij.Lexeme { return p.st.Peek(n) }
func (p *parser) next() minij.Lexeme      { return p.st.Next() }
func (p *parser) cur() minij.Location     { return p.st.Peek(0).Location }

// got reports whether the current token is tok. If so, it is consumed.
func (p *parser) got(tok minij.Token) bool {
	if p.tok() == tok {
		p.next()
		return true
	}
	return false
}

// want consumes and returns the current token if it is tok. Otherwise it
// reports a syntax error.
func (p *parser) want(tok minij.Token) minij.Lexeme {
	if p.tok() != tok {
		p.failf(minij.UnexpectedToken, "%s", tokLabel([]minij.Token{tok}, p.peek(0)))
	}
	return p.next()
}

// spanFrom returns the location from start through the last token consumed.
// If nothing has been consumed since start, the result is empty.
func (p *parser) spanFrom(start minij.Location) minij.Location {
	last := p.st.Last().Location
	if !last.IsValid() || last.End <= start.Pos {
		return minij.Location{
			Span:  minij.Span{Pos: start.Pos, End: start.Pos},
			First: start.First,
			Last:  start.First,
		}
	}
	return start.Through(last)
}

// enter records entry to a nested construct, and halts the parse if the
// nesting limit is exceeded. The caller must defer a call to leave.
func (p *parser) enter() {
	p.depth++
	if p.depth > p.maxDepth {
		p.halt(minij.MaxNestingDepthExceeded, "nesting depth exceeds %d", p.maxDepth)
	}
}

func (p *parser) leave() { p.depth-- }

// report records a syntax error at loc without interrupting the parse.
func (p *parser) report(code minij.Code, loc minij.Location, msg string, args ...any) {
	if p.halted {
		return
	}
	d := p.diags.Add(minij.SevError, code, loc, msg, args...)
	d.Source = p.src.Name()
	p.nerr++
	if p.maxErrors > 0 && p.nerr >= p.maxErrors {
		d := p.diags.Add(minij.SevError, minij.TooManyErrors, loc, "too many errors")
		d.Source = p.src.Name()
		p.stop()
	}
}

// failf reports a syntax error at the current token and unwinds the current
// grammar rule. It does not return.
//
// If the previous token was malformed and the current token is on a later
// line, the scanner has already reported the problem: the error is dropped
// and parsing resumes at the current token.
func (p *parser) failf(code minij.Code, msg string, args ...any) {
	if last := p.st.Last(); last.Location.IsValid() && last.Token == minij.Invalid &&
		p.cur().First.Line > last.Location.Last.Line {
		p.log.Debug("resume after lexical error", "at", p.cur().First)
		panic(bailout{resume: true})
	}
	p.report(code, p.cur(), msg, args...)
	panic(bailout{})
}

// halt reports an error, discards the rest of the input, and unwinds.
func (p *parser) halt(code minij.Code, msg string, args ...any) {
	p.report(code, p.cur(), msg, args...)
	p.stop()
	panic(bailout{})
}

// stop discards the remaining input and suppresses further reports.
func (p *parser) stop() {
	if p.halted {
		return
	}
	p.log.Debug("parse halted", "at", p.cur().First, "errors", p.nerr)
	p.halted = true
	for p.tok() != minij.EOF {
		p.next()
	}
}

// syncTokens are the tokens at which statement parsing can resume after an
// error. A semicolon is consumed; the others are not.
var syncTokens = mapset.New(
	minij.Semi, minij.LBrace, minij.RBrace, minij.EOF,
	minij.If, minij.Do, minij.While, minij.For, minij.Try, minij.Return,
	minij.Class, minij.Public, minij.Private, minij.Protected, minij.Static,
)

// sync discards tokens until a statement boundary. Besides the tokens in
// syncTokens, a boundary is the start of a line that begins a declaration or
// an assignment (see atLineStart).
func (p *parser) sync() {
	var n int
	for !syncTokens.Has(p.tok()) && !p.atLineStart() {
		p.next()
		n++
	}
	if p.tok() == minij.Semi {
		p.next()
		n++
	}
	p.log.Debug("resynchronized", "skipped", n, "at", p.cur().First)
}

// atLineStart reports whether the current token is the first on its line and
// looks like the start of a statement: a name followed by another name, an
// assignment or update operator, or a selector.
func (p *parser) atLineStart() bool {
	last := p.st.Last().Location
	if p.tok() != minij.Ident || !last.IsValid() || p.cur().First.Line <= last.Last.Line {
		return false
	}
	switch next := p.peek(1).Token; next {
	case minij.Ident, minij.Dot, minij.Inc, minij.Dec:
		return true
	default:
		return next.IsAssign()
	}
}

// skipTo discards tokens until the specified closing token at the current
// nesting level, or a statement boundary. The closer is not consumed.
func (p *parser) skipTo(closer minij.Token) {
	var nest int
	for {
		switch tok := p.tok(); tok {
		case minij.Semi, minij.LBrace, minij.RBrace, minij.EOF:
			return
		case closer:
			if nest == 0 {
				return
			}
			nest--
		case minij.LParen, minij.LSquare:
			nest++
		case minij.RParen, minij.RSquare:
			nest--
		}
		p.next()
	}
}

// recoverStmt calls parse to parse a statement. If parse fails with a syntax
// error, recoverStmt resynchronizes the input and returns a *BadStmt covering
// the discarded text. It guarantees that at least one token is consumed.
func (p *parser) recoverStmt(parse func() Stmt) (s Stmt) {
	start := p.cur()
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		b, ok := e.(bailout)
		if !ok {
			panic(e)
		}
		if !b.resume {
			p.sync()
		}
		if p.cur().Pos == start.Pos && p.tok() != minij.EOF {
			p.next()
		}
		s = &BadStmt{node: at(p.spanFrom(start))}
	}()
	return parse()
}

// recoverExpr parses an expression that must be followed by closer. If the
// expression is malformed, recoverExpr skips to the closer and returns a
// *BadExpr covering the discarded text. The closer is not consumed.
func (p *parser) recoverExpr(closer minij.Token) (x Expr) {
	start := p.cur()
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		if b, ok := e.(bailout); !ok || b.resume || p.halted {
			panic(e)
		}
		p.skipTo(closer)
		x = &BadExpr{node: at(p.spanFrom(start))}
	}()
	x = p.expr()
	if p.tok() != closer {
		p.failf(minij.UnexpectedToken, "%s", tokLabel([]minij.Token{closer}, p.peek(0)))
	}
	return x
}

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []minij.Token, got minij.Lexeme) string {
	if len(tokens) == 0 {
		return fmt.Sprint("unexpected ", got)
	}
	var exp string
	if len(tokens) == 1 {
		exp = tokens[0].String()
	} else {
		last := len(tokens) - 1
		ss := make([]string, len(tokens)-1)
		for i, tok := range tokens[:last] {
			ss[i] = tok.String()
		}
		exp = strings.Join(ss, ", ") + " or " + tokens[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
