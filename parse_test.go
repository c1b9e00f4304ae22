// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import (
	"math"
	"testing"
)

var parseFloat64Tests = []struct {
	in   string
	want float64
}{
	{"1.23", 1.23},
	{"0", 0},
	{"-0", math.Copysign(0, -1)},
	{"1", 1},
	{"-1", -1},
	{"1e10", 1e10},
	{"1e-10", 1e-10},
	{"3.141592653589793", math.Pi},
	{"1234.5678901234567", 1234.5678901234567},
	{"2.2250738585072014e-308", 2.2250738585072014e-308}, // smallest normal
	{"5e-324", 5e-324},                                   // smallest subnormal
	{"1.7976931348623157e+308", 1.7976931348623157e+308}, // max finite
	{"9007199254740993", 9007199254740992}, // 2^53+1 rounds down (even)
	{"7.2057594037927933e16", 7.2057594037927933e16},
}

func TestParseFloat64(t *testing.T) {
	for _, tt := range parseFloat64Tests {
		got, err := Parse[float64]([]byte(tt.in))
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want && !(got != got && tt.want != tt.want) {
			t.Errorf("Parse(%q) = %v (%x); want %v (%x)", tt.in, got, math.Float64bits(got), tt.want, math.Float64bits(tt.want))
		}
	}
}

func TestParseFloat64Signbit(t *testing.T) {
	got, err := Parse[float64]([]byte("-0"))
	if err != nil {
		t.Fatal(err)
	}
	if !math.Signbit(got) {
		t.Errorf("Parse(\"-0\") signbit = false; want true")
	}
}

func TestParseFloat32(t *testing.T) {
	got, err := Parse[float32]([]byte("3.14"))
	if err != nil {
		t.Fatal(err)
	}
	want := float32(3.14)
	if got != want {
		t.Errorf("Parse[float32](\"3.14\") = %v; want %v", got, want)
	}
}

func TestParseInfNaNTop(t *testing.T) {
	v, err := Parse[float64]([]byte("inf"))
	if err != nil || !math.IsInf(v, 1) {
		t.Errorf("Parse(\"inf\") = %v, %v; want +Inf, nil", v, err)
	}
	v, err = Parse[float64]([]byte("-infinity"))
	if err != nil || !math.IsInf(v, -1) {
		t.Errorf("Parse(\"-infinity\") = %v, %v; want -Inf, nil", v, err)
	}
	v, err = Parse[float64]([]byte("nan"))
	if err != nil || !math.IsNaN(v) {
		t.Errorf("Parse(\"nan\") = %v, %v; want NaN, nil", v, err)
	}
}

var parseErrorTests = []string{
	"",
	".",
	"+",
	".e1",
	"x",
	"1.23x",   // trailing garbage rejected by Parse (not ParsePartial)
	"--1",
	"1..2",
}

func TestParseErrors(t *testing.T) {
	for _, in := range parseErrorTests {
		_, err := Parse[float64]([]byte(in))
		if err == nil {
			t.Errorf("Parse(%q) succeeded; want error", in)
		}
	}
}

func TestParsePartial(t *testing.T) {
	v, n, err := ParsePartial[float64]([]byte("1.23x"))
	if err != nil {
		t.Fatalf("ParsePartial error: %v", err)
	}
	if v != 1.23 || n != 4 {
		t.Errorf("ParsePartial(\"1.23x\") = %v, %d; want 1.23, 4", v, n)
	}
}

func TestParsePartialRejectsGarbagePrefix(t *testing.T) {
	_, _, err := ParsePartial[float64]([]byte("x1.23"))
	if err == nil {
		t.Errorf("ParsePartial(\"x1.23\") succeeded; want error")
	}
}

// TestParseMonotone checks that Parse is monotone non-decreasing in the
// input's magnitude for a family of same-length decimal literals, a
// cheap proxy for "every representable result is correctly rounded".
func TestParseMonotone(t *testing.T) {
	prev := math.Inf(-1)
	for i := 0; i < 1000; i++ {
		s := []byte{byte('0' + i/100%10), '.', byte('0' + i/10%10), byte('0' + i%10)}
		v, err := Parse[float64](s)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}
		if v < prev {
			t.Fatalf("Parse(%q) = %v not monotone after %v", s, v, prev)
		}
		prev = v
	}
}
