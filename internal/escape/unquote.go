// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of string literals.
//
// The only escape sequences recognized are \" and \\. A backslash followed by
// any other character is preserved as written.
package escape

import (
	"errors"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the body of a string literal. The
// input must have the enclosing double quotation marks already removed.
//
// The escapes \" and \\ are replaced by the characters they denote. Unquote
// reports an error for a backslash at the end of the input.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		switch b := src.At(0); b {
		case '"', '\\':
			dec = append(dec, b)
		default:
			dec = append(dec, '\\', b)
		}
		src = src.SliceFrom(1)

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}
