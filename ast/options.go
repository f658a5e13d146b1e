// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/tailscale/hujson"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 256

// Options control the behaviour of the parser. A nil *Options is ready for
// use and provides default settings.
type Options struct {
	// Name is the display name of the input, used in diagnostics.
	Name string `json:"name,omitempty"`

	// MaxDepth limits the nesting depth of blocks and expressions. When the
	// limit is exceeded the parser reports MaxNestingDepthExceeded and stops.
	// If zero, DefaultMaxDepth is used.
	MaxDepth int `json:"maxDepth,omitempty"`

	// MaxErrors, if positive, stops the parse after this many syntax errors
	// have been reported.
	MaxErrors int `json:"maxErrors,omitempty"`

	// KeepComments, if true, records the comments of the input in the
	// Comments field of the Program.
	KeepComments bool `json:"keepComments,omitempty"`

	// Logger, if non-nil, receives debug logs of error recovery.
	Logger *slog.Logger `json:"-"`
}

func (o *Options) name() string {
	if o == nil {
		return ""
	}
	return o.Name
}

func (o *Options) maxDepth() int {
	if o == nil || o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o *Options) maxErrors() int {
	if o == nil {
		return 0
	}
	return o.MaxErrors
}

func (o *Options) keepComments() bool { return o != nil && o.KeepComments }

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// LoadOptions reads parser options from a HuJSON document: JSON that may
// include comments and trailing commas. Unknown fields are reported as
// errors.
//
//	{
//	  // Stop after the first few problems.
//	  "maxErrors": 10,
//	  "keepComments": true,
//	}
func LoadOptions(r io.Reader) (*Options, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read options: %w", err)
	}
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parse options: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()
	opts := new(Options)
	if err := dec.Decode(opts); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	if opts.MaxDepth < 0 || opts.MaxErrors < 0 {
		return nil, fmt.Errorf("invalid options: limits must not be negative")
	}
	return opts, nil
}
