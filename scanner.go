// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package minij

import (
	"io"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from a Source.  Each call to Next advances
// the scanner to the next token.
//
// Lexical errors do not stop the scanner. Each error is recorded as a
// diagnostic (see Diagnostics) and scanning continues after the offending
// text. A malformed number or string is reported as an Invalid token
// covering the bad text; an unexpected character is skipped entirely.
type Scanner struct {
	src      *Source
	text     mem.RO
	comments bool // report comment tokens
	tok      Token
	err      error
	diags    Diagnostics

	pos, end int // start and end offsets of current token
}

// NewScanner constructs a new lexical scanner that consumes input from src.
func NewScanner(src *Source) *Scanner {
	return &Scanner{src: src, text: src.Bytes()}
}

// KeepComments configures the scanner to report (true) or discard (false)
// comment tokens. By default comments are discarded.  Comments are C++ style
// block comments (/* ... */) and line comments (// ...).
func (s *Scanner) KeepComments(ok bool) { s.comments = ok }

// Source returns the source text consumed by s.
func (s *Scanner) Source() *Source { return s.src }

// Next advances s to the next token of the input.  At the end of the input,
// Next returns io.EOF and the current token is EOF. Once the end of input has
// been reached, further calls to Next continue to report it.
func (s *Scanner) Next() error {
	s.err = nil
	for {
		s.pos = s.end
		if s.end >= s.text.Len() {
			s.tok = EOF
			return s.setErr(io.EOF)
		}
		ch := s.text.At(s.end)

		switch {
		case isSpace(ch):
			s.end++
			continue // discard whitespace

		case isLetter(ch):
			s.scanWord()
			return nil

		case isDigit(ch):
			s.scanNumber()
			return nil

		case ch == '"':
			s.scanString()
			return nil

		case ch == '/' && (s.peek(1) == '/' || s.peek(1) == '*'):
			s.scanComment()
			if s.comments {
				return nil
			}
			continue
		}

		if tok, n := s.scanOperator(ch); n > 0 {
			s.end += n
			s.tok = tok
			return nil
		}

		// Nothing matched: report the offending character and skip it.
		r, n := mem.DecodeRune(s.text.SliceFrom(s.end))
		if n == 0 {
			n = 1
		}
		s.end += n
		s.failf(UnexpectedCharacter, "unexpected character %q", r)
	}
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns a view of the undecoded text of the current token.
func (s *Scanner) Text() mem.RO { return s.text.Slice(s.pos, s.end) }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location { return s.src.Location(s.Span()) }

// Lexeme returns a copy of the current token with its text and location.
func (s *Scanner) Lexeme() Lexeme {
	return Lexeme{Token: s.tok, Text: s.Text().StringCopy(), Location: s.Location()}
}

// Diagnostics returns the lexical errors reported so far, in the order they
// were detected.
func (s *Scanner) Diagnostics() Diagnostics { return s.diags }

func (s *Scanner) peek(n int) byte { return s.src.At(s.end + n) }

// scanWord consumes an identifier or keyword.
// Precondition: isLetter(current).
func (s *Scanner) scanWord() {
	s.end = s.skipWhile(s.end+1, isWordByte)
	s.tok = lookupWord(s.Text())
}

// scanNumber consumes an integer or floating literal. A number directly
// followed by a word character is malformed, and is consumed as a single
// Invalid token.
func (s *Scanner) scanNumber() {
	s.end = s.skipWhile(s.end, isDigit)
	s.tok = Integer

	// A decimal point makes a float only if digits follow it.
	if s.peek(0) == '.' && isDigit(s.peek(1)) {
		s.end = s.skipWhile(s.end+1, isDigit)
		s.tok = Float
	}
	if isWordByte(s.peek(0)) {
		s.end = s.skipWhile(s.end, isWordByte)
		s.tok = Invalid
		s.failf(MalformedNumber, "malformed number %q", s.Text().StringCopy())
	}
}

// scanString consumes a double-quoted string literal. The only escapes
// recognized are \" and \\; a backslash before any other character is kept as
// written. A string must end on the line where it begins.
func (s *Scanner) scanString() {
	i, n := s.end+1, s.text.Len()
	for i < n {
		switch s.text.At(i) {
		case '"':
			s.end = i + 1
			s.tok = String
			return
		case '\\':
			if i+1 < n && s.text.At(i+1) != '\n' {
				i += 2
				continue
			}
		case '\n':
			n = i // stop here; the line break is not part of the token
			continue
		}
		i++
	}

	// Reaching here, the string was not closed before the end of the line.
	if i > s.pos && s.text.At(i-1) == '\r' {
		i--
	}
	s.end = i
	s.tok = Invalid
	s.failf(UnterminatedString, "string literal not terminated")
}

// scanComment consumes a line or block comment.
// Precondition: current is "//" or "/*".
func (s *Scanner) scanComment() {
	rest := s.text.SliceFrom(s.end + 2)
	if s.peek(1) == '/' {
		// Line comment to LF, not including the LF.
		if i := mem.IndexByte(rest, '\n'); i >= 0 {
			s.end += 2 + i
		} else {
			s.end = s.text.Len()
		}
		s.tok = LineComment
		return
	}

	// Block comment to the first "*/".
	s.tok = BlockComment
	if i := mem.Index(rest, mem.S("*/")); i >= 0 {
		s.end += 2 + i + 2
		return
	}

	// An unterminated comment is reported at its opening, and consumes the
	// remainder of the input.
	s.end = s.text.Len()
	s.diagAt(UnterminatedComment, Span{Pos: s.pos, End: s.pos + 2}, "block comment not terminated")
}

// scanOperator reports the punctuation or operator token at the current
// position and its length in bytes, using the longest match. It returns 0 if
// no operator matches.
func (s *Scanner) scanOperator(ch byte) (Token, int) {
	next := s.peek(1)
	pick := func(alt byte, long, short Token) (Token, int) {
		if next == alt {
			return long, 2
		}
		return short, 1
	}
	switch ch {
	case '{':
		return LBrace, 1
	case '}':
		return RBrace, 1
	case '(':
		return LParen, 1
	case ')':
		return RParen, 1
	case '[':
		return LSquare, 1
	case ']':
		return RSquare, 1
	case ';':
		return Semi, 1
	case ',':
		return Comma, 1
	case '.':
		return Dot, 1
	case '+':
		if next == '+' {
			return Inc, 2
		}
		return pick('=', AddAssign, Plus)
	case '-':
		if next == '-' {
			return Dec, 2
		}
		return pick('=', SubAssign, Minus)
	case '*':
		return pick('=', MulAssign, Star)
	case '/':
		return pick('=', DivAssign, Slash)
	case '%':
		return Percent, 1
	case '=':
		return pick('=', Eq, Assign)
	case '!':
		return pick('=', Ne, Not)
	case '<':
		return pick('=', Le, Lt)
	case '>':
		return pick('=', Ge, Gt)
	case '&':
		if next == '&' {
			return AndAnd, 2
		}
	case '|':
		if next == '|' {
			return OrOr, 2
		}
	}
	return Invalid, 0
}

// skipWhile returns the offset of the first byte at or after pos that does
// not satisfy f, or the end of the input.
func (s *Scanner) skipWhile(pos int, f func(byte) bool) int {
	for pos < s.text.Len() && f(s.text.At(pos)) {
		pos++
	}
	return pos
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

// failf records a lexical error covering the current token.
func (s *Scanner) failf(code Code, msg string, args ...any) {
	s.diagAt(code, s.Span(), msg, args...)
}

func (s *Scanner) diagAt(code Code, sp Span, msg string, args ...any) {
	d := s.diags.Add(SevError, code, s.src.Location(sp), msg, args...)
	d.Source = s.src.Name()
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t' || ch == '\f'
}

func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isLetter(ch byte) bool   { return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' }
func isWordByte(ch byte) bool { return isLetter(ch) || isDigit(ch) }
