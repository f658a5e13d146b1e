// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"errors"

	"go4.org/mem"
)

// ErrLineBreak is reported by Quote for text that contains a line break,
// which a string literal cannot represent.
var ErrLineBreak = errors.New("string contains a line break")

// Quote encodes src as the body of a string literal, escaping double
// quotation marks and backslashes. The enclosing quotation marks are not
// added.
func Quote(src mem.RO) ([]byte, error) {
	if mem.IndexByte(src, '\n') >= 0 {
		return nil, ErrLineBreak
	}
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		switch b := src.At(i); b {
		case '"', '\\':
			buf = append(buf, '\\', b)
		default:
			buf = append(buf, b)
		}
	}
	return buf, nil
}
