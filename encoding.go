// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package minij

import (
	"errors"
	"strings"

	"github.com/creachadair/minij/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a string literal. Quotation marks and backslashes are
// escaped and double quotation marks are added.  Quote reports an error if
// src contains a line break, since string literals may not span lines.
func Quote(src string) (string, error) {
	q, err := escape.Quote(mem.S(src))
	if err != nil {
		return "", err
	}
	return `"` + string(q) + `"`, nil
}

// Unquote decodes a string literal.  Double quotation marks are removed, and
// the escapes \" and \\ are replaced with the characters they denote.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	dec, err := escape.Unquote(mem.S(src[1 : len(src)-1]))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
