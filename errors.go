// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "errors"

// ErrSyntax indicates that a byte slice does not start with (or, for
// Parse, is not entirely) a valid floating-point literal.
var ErrSyntax = errors.New("not a float at the start of input")

// ParseError records a failed conversion, in the style of
// strconv.NumError.
type ParseError struct {
	Func string // the failing function ("Parse" or "ParsePartial")
	Num  string // the input, truncated to a reasonable length
	Err  error  // always ErrSyntax
}

func (e *ParseError) Error() string {
	return "fastfloat." + e.Func + ": parsing " + quote(e.Num) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

const maxErrorInput = 64

func syntaxError(fn string, s []byte) *ParseError {
	n := s
	truncated := false
	if len(n) > maxErrorInput {
		n = n[:maxErrorInput]
		truncated = true
	}
	str := string(n)
	if truncated {
		str += "..."
	}
	return &ParseError{Func: fn, Num: str, Err: ErrSyntax}
}

func quote(s string) string {
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	b = append(b, s...)
	b = append(b, '"')
	return string(b)
}
