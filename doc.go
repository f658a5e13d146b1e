// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package minij implements a scanner for a small Java-like language, along
// with the source and diagnostic types shared by its parser.
//
// # Sources
//
// A Source is an immutable, fully-materialized source text with an index of
// line starts. Construct one with NewSource or ReadSource; both report an
// *EncodingError if the text is not valid UTF-8, before any token is read:
//
//	src, err := minij.NewSource("Main.java", data)
//	if err != nil {
//	   log.Fatalf("Bad input: %v", err)
//	}
//
// # Scanning
//
// The Scanner type implements a lexical scanner. Construct a scanner from a
// Source and call its Next method to iterate over the tokens:
//
//	s := minij.NewScanner(src)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Lexeme())
//	}
//
// Next returns io.EOF when the input has been fully consumed, and the current
// token is then EOF. Lexical errors do not stop the scanner; they are
// collected and reported by the Diagnostics method:
//
//	for _, d := range s.Diagnostics() {
//	   log.Print(d)
//	}
//
// # Streaming
//
// The Stream type wraps a Scanner to provide lookahead for a parser. Comments
// are removed from the stream and optionally delivered to a CommentHandler.
//
// # Diagnostics
//
// A Diagnostic records a lexical or syntax error with a code, a message, and
// the source location it refers to. Diagnostics from different phases can be
// combined into a single source-ordered list with Merge.
//
// The parser for the language is in the ast subpackage.
package minij
