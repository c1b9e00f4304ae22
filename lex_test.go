// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "testing"

func TestIsEightDigits(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"12345678", true},
		{"00000000", true},
		{"99999999", true},
		{"1234567a", false},
		{"1234567.", false},
		{"1234:678", false},
	}
	for _, tt := range tests {
		v := uint64(0)
		for i := 7; i >= 0; i-- {
			v = v<<8 | uint64(tt.s[i])
		}
		if got := isEightDigits(v); got != tt.want {
			t.Errorf("isEightDigits(%q) = %v; want %v", tt.s, got, tt.want)
		}
	}
}

func TestParseEightDigits(t *testing.T) {
	tests := []struct {
		s    string
		want uint64
	}{
		{"12345678", 12345678},
		{"00000000", 0},
		{"99999999", 99999999},
		{"00000001", 1},
	}
	for _, tt := range tests {
		var v uint64
		for i := 7; i >= 0; i-- {
			v = v<<8 | uint64(tt.s[i])
		}
		if got := parseEightDigits(v); got != tt.want {
			t.Errorf("parseEightDigits(%q) = %d; want %d", tt.s, got, tt.want)
		}
	}
}

var parseNumberTests = []struct {
	in         string
	mantissa   uint64
	exponent   int64
	negative   bool
	manyDigits bool
	consumed   int
	ok         bool
}{
	{"1.23", 123, -2, false, false, 4, true},
	{"-0001e-02", 1, -2, true, false, 9, true},
	{"0.", 0, 0, false, false, 2, true},
	{"2e2.", 2, 2, false, false, 3, true},
	{"-2e-1x", 2, -1, true, false, 5, true},
	{"123", 123, 0, false, false, 3, true},
	{"", 0, 0, false, false, 0, false},
	{".", 0, 0, false, false, 0, false},
	{"+", 0, 0, false, false, 0, false},
	{".e1", 0, 0, false, false, 0, false},
	{"x", 0, 0, false, false, 0, false},
}

func TestParseNumber(t *testing.T) {
	for _, tt := range parseNumberTests {
		n, consumed, ok := parseNumber([]byte(tt.in))
		if ok != tt.ok {
			t.Errorf("parseNumber(%q) ok = %v; want %v", tt.in, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if n.mantissa != tt.mantissa || n.exponent != tt.exponent || n.negative != tt.negative || consumed != tt.consumed {
			t.Errorf("parseNumber(%q) = %+v, consumed %d; want mantissa=%d exponent=%d negative=%v consumed=%d",
				tt.in, n, consumed, tt.mantissa, tt.exponent, tt.negative, tt.consumed)
		}
	}
}

func TestParseNumberTrailingDotAfterExponent(t *testing.T) {
	// "2e2." must leave the trailing '.' unconsumed: 'e2' is a valid
	// exponent, but the '.' after it belongs to neither.
	n, consumed, ok := parseNumber([]byte("2e2."))
	if !ok {
		t.Fatal("parseNumber(\"2e2.\") failed")
	}
	if consumed != 3 {
		t.Errorf("consumed = %d; want 3", consumed)
	}
	if n.exponent != 2 {
		t.Errorf("exponent = %d; want 2", n.exponent)
	}
}

func TestParseNumberBareETrailing(t *testing.T) {
	// A trailing 'e' with no following digits (or a sign with no
	// digits) is retracted entirely; only the digits before it count.
	n, consumed, ok := parseNumber([]byte("12e"))
	if !ok {
		t.Fatal("parseNumber(\"12e\") failed")
	}
	if consumed != 2 || n.mantissa != 12 || n.exponent != 0 {
		t.Errorf("got mantissa=%d exponent=%d consumed=%d; want 12, 0, 2", n.mantissa, n.exponent, consumed)
	}
}

func TestParseNumberManyDigits(t *testing.T) {
	n, _, ok := parseNumber([]byte("1.2345678901234567890123e16"))
	if !ok {
		t.Fatal("parseNumber failed")
	}
	if !n.manyDigits {
		t.Errorf("manyDigits = false; want true for a 23-significant-digit literal")
	}
}

// TestParseNumberManyDigitsMantissaCapped checks the bounded
// re-accumulation itself: a significand with far more than 19 digits
// must not wrap mantissa, and the dropped integer digits must be
// restored in exponent so that mantissa*10^exponent stays a sane
// truncation of the true value.
func TestParseNumberManyDigitsMantissaCapped(t *testing.T) {
	n, _, ok := parseNumber([]byte("99999999999999999999")) // 20 nines
	if !ok {
		t.Fatal("parseNumber failed")
	}
	if !n.manyDigits {
		t.Fatal("manyDigits = false; want true for a 20-digit integer")
	}
	if n.mantissa != 9999999999999999999 {
		t.Errorf("mantissa = %d; want 9999999999999999999 (first 19 nines)", n.mantissa)
	}
	if n.exponent != 1 {
		t.Errorf("exponent = %d; want 1 (one dropped integer digit)", n.exponent)
	}
}

var infNaNTests = []struct {
	in       string
	wantOK   bool
	negative bool
	isNaN    bool
	consumed int
}{
	{"inf", true, false, false, 3},
	{"-INFINITY", true, true, false, 9},
	{"Inf", true, false, false, 3},
	{"nan", true, false, true, 3},
	{"NaN", true, false, true, 3},
	{"infi", true, false, false, 3}, // "infi" parses "inf", leaves "i" unconsumed
	{"xyz", false, false, false, 0},
}

func TestParseInfNaN(t *testing.T) {
	for _, tt := range infNaNTests {
		v, consumed, ok := parseInfNaN[float64]([]byte(tt.in))
		if ok != tt.wantOK {
			t.Errorf("parseInfNaN(%q) ok = %v; want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if consumed != tt.consumed {
			t.Errorf("parseInfNaN(%q) consumed = %d; want %d", tt.in, consumed, tt.consumed)
		}
		if tt.isNaN != (v != v) {
			t.Errorf("parseInfNaN(%q) = %v; want NaN=%v", tt.in, v, tt.isNaN)
		}
	}
}
