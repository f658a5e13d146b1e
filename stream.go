// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package minij

// CommentHandler is an optional interface for receiving comment tokens from a
// Stream. If a Stream has a comment handler, Comment is called for each
// comment token in the input, in order. Otherwise, comments are silently
// discarded.
type CommentHandler interface {
	// Process the line or block comment x.
	// Line comments include their leading "//" but not the trailing newline.
	// Block comments include their leading "/*" and trailing "*/".
	Comment(x Lexeme)
}

// CommentFunc adapts a function to the CommentHandler interface.
type CommentFunc func(Lexeme)

// Comment satisfies the CommentHandler interface.
func (f CommentFunc) Comment(x Lexeme) { f(x) }

// Stream is a buffered token stream over a Scanner, providing a bounded
// number of tokens of lookahead. Comment tokens never appear in the stream;
// they are delivered to the CommentHandler, if one is set.
//
// Once the end of input is reached, the stream yields EOF tokens
// indefinitely.
type Stream struct {
	s    *Scanner
	ch   CommentHandler
	buf  []Lexeme // lookahead, buf[0] is the current token
	last Lexeme   // the most recently consumed token
}

// NewStream constructs a new Stream that consumes tokens from src.
func NewStream(src *Source) *Stream { return &Stream{s: NewScanner(src)} }

// NewStreamWithScanner constructs a new Stream that consumes input from s.
func NewStreamWithScanner(s *Scanner) *Stream { return &Stream{s: s} }

// SetCommentHandler arranges for comments to be delivered to h. If h == nil,
// comments are discarded.
func (s *Stream) SetCommentHandler(h CommentHandler) {
	s.ch = h
	s.s.KeepComments(h != nil)
}

// Scanner returns the scanner underlying s.
func (s *Stream) Scanner() *Scanner { return s.s }

// Diagnostics returns the lexical errors reported by the underlying scanner
// for the tokens read so far.
func (s *Stream) Diagnostics() Diagnostics { return s.s.Diagnostics() }

// Peek returns the token n positions ahead of the current token without
// consuming anything. Peek(0) is the current token.
func (s *Stream) Peek(n int) Lexeme {
	s.fill(n)
	return s.buf[n]
}

// Token returns the type of the current token.
func (s *Stream) Token() Token { return s.Peek(0).Token }

// Next consumes and returns the current token.
func (s *Stream) Next() Lexeme {
	s.fill(0)
	s.last = s.buf[0]
	if s.last.Token != EOF || len(s.buf) > 1 {
		s.buf = s.buf[1:]
	}
	return s.last
}

// Last returns the most recently consumed token. Before the first call to
// Next, it returns a zero Lexeme.
func (s *Stream) Last() Lexeme { return s.last }

// fill ensures there are at least n+1 tokens buffered.
func (s *Stream) fill(n int) {
	for len(s.buf) <= n {
		s.s.Next() // errors are recorded as diagnostics, or EOF
		x := s.s.Lexeme()

		// If we see a comment token, pass it to the handler.  Either way,
		// discard the comment and fetch the next available token.
		if x.Token.IsComment() {
			if s.ch != nil {
				s.ch.Comment(x)
			}
			continue
		}
		s.buf = append(s.buf, x)
	}
}
