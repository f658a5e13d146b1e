// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package minij

import "go4.org/mem"

// Token is the type of a lexical token in the language grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	EOF                  // end of input

	Ident   // identifier
	Integer // number: digits with no fraction
	Float   // number: digits with a fraction
	String  // quoted string
	True    // constant: true
	False   // constant: false
	Null    // constant: null

	// Keywords. Keep these contiguous; see IsKeyword.
	If
	Else
	Do
	While
	For
	Try
	Catch
	Finally
	New
	Return
	Class
	Public
	Private
	Protected
	Static

	// Punctuation.
	LBrace  // {
	RBrace  // }
	LParen  // (
	RParen  // )
	LSquare // [
	RSquare // ]
	Semi    // ;
	Comma   // ,
	Dot     // .

	// Operators.
	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Percent   // %
	Inc       // ++
	Dec       // --
	AddAssign // +=
	SubAssign // -=
	MulAssign // *=
	DivAssign // /=
	Eq        // ==
	Ne        // !=
	Lt        // <
	Le        // <=
	Gt        // >
	Ge        // >=
	AndAnd    // &&
	OrOr      // ||
	Not       // !
	Assign    // =

	BlockComment // comment: /* ... */
	LineComment  // comment: // ... <LF>
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	EOF:     "end of input",
	Ident:   "identifier",
	Integer: "integer",
	Float:   "float",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",

	If:        `"if"`,
	Else:      `"else"`,
	Do:        `"do"`,
	While:     `"while"`,
	For:       `"for"`,
	Try:       `"try"`,
	Catch:     `"catch"`,
	Finally:   `"finally"`,
	New:       `"new"`,
	Return:    `"return"`,
	Class:     `"class"`,
	Public:    `"public"`,
	Private:   `"private"`,
	Protected: `"protected"`,
	Static:    `"static"`,

	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LParen:  `"("`,
	RParen:  `")"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Semi:    `";"`,
	Comma:   `","`,
	Dot:     `"."`,

	Plus:      `"+"`,
	Minus:     `"-"`,
	Star:      `"*"`,
	Slash:     `"/"`,
	Percent:   `"%"`,
	Inc:       `"++"`,
	Dec:       `"--"`,
	AddAssign: `"+="`,
	SubAssign: `"-="`,
	MulAssign: `"*="`,
	DivAssign: `"/="`,
	Eq:        `"=="`,
	Ne:        `"!="`,
	Lt:        `"<"`,
	Le:        `"<="`,
	Gt:        `">"`,
	Ge:        `">="`,
	AndAnd:    `"&&"`,
	OrOr:      `"||"`,
	Not:       `"!"`,
	Assign:    `"="`,

	BlockComment: "block comment",
	LineComment:  "line comment",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// IsKeyword reports whether t is a reserved word.
func (t Token) IsKeyword() bool { return t >= If && t <= Static }

// IsLiteral reports whether t denotes a literal value.
func (t Token) IsLiteral() bool { return t >= Integer && t <= Null }

// IsComment reports whether t is a comment token.
func (t Token) IsComment() bool { return t == BlockComment || t == LineComment }

// IsAssign reports whether t is a simple or compound assignment operator.
func (t Token) IsAssign() bool {
	switch t {
	case Assign, AddAssign, SubAssign, MulAssign, DivAssign:
		return true
	}
	return false
}

// Op returns the operator or punctuation text of t, or "" if t does not have
// fixed spelling.
func (t Token) Op() string {
	if t < LBrace || t > Assign {
		return ""
	}
	s := tokenStr[t]
	return s[1 : len(s)-1]
}

// keywords maps reserved words and named constants to their tokens.
var keywords = map[string]Token{
	"if": If, "else": Else, "do": Do, "while": While, "for": For,
	"try": Try, "catch": Catch, "finally": Finally, "new": New,
	"return": Return, "class": Class, "public": Public, "private": Private,
	"protected": Protected, "static": Static,

	"true": True, "false": False, "null": Null,
}

// IsReserved reports whether word is a keyword or named constant.
func IsReserved(word string) bool {
	_, ok := keywords[word]
	return ok
}

// lookupWord classifies the text of a scanned word.
func lookupWord(word mem.RO) Token {
	if word.Len() > len("protected") {
		return Ident // longer than any keyword
	}
	if tok, ok := keywords[word.StringCopy()]; ok {
		return tok
	}
	return Ident
}

// A Lexeme is a single token scanned from the input, together with its
// undecoded text and its location.
type Lexeme struct {
	Token    Token
	Text     string
	Location Location
}

func (x Lexeme) String() string {
	switch x.Token {
	case Ident, Integer, Float, String, Invalid:
		return x.Token.String() + " " + quoteText(x.Text)
	}
	return x.Token.String()
}

func quoteText(s string) string {
	const maxText = 24
	if len(s) > maxText {
		s = s[:maxText] + "..."
	}
	return "<" + s + ">"
}
