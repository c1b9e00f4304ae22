// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "testing"

func digitString(d *bigDecimal) string {
	b := make([]byte, d.numDigits)
	for i := 0; i < d.numDigits; i++ {
		b[i] = '0' + d.digits[i]
	}
	return string(b)
}

var parseBigDecimalTests = []struct {
	in           string
	digits       string
	decimalPoint int32
	negative     bool
}{
	{"123", "123", 3, false},
	{"1.23", "123", 1, false},
	{"-0.0123", "123", -1, true},
	{"100", "1", 3, false},
	{"0.001", "1", -2, false},
	{"1e5", "1", 6, false},
	{"1.5e-3", "15", -2, false},
}

func TestParseBigDecimal(t *testing.T) {
	for _, tt := range parseBigDecimalTests {
		d := parseBigDecimal([]byte(tt.in))
		if digitString(&d) != tt.digits || d.decimalPoint != tt.decimalPoint || d.negative != tt.negative {
			t.Errorf("parseBigDecimal(%q) = {digits:%q point:%d neg:%v}; want {%q %d %v}",
				tt.in, digitString(&d), d.decimalPoint, d.negative, tt.digits, tt.decimalPoint, tt.negative)
		}
	}
}

func TestBigDecimalLeftRightShiftRoundTrip(t *testing.T) {
	d := parseBigDecimal([]byte("123456789"))
	before := digitString(&d)
	beforePoint := d.decimalPoint
	d.leftShift(5)
	d.rightShift(5)
	if digitString(&d) != before || d.decimalPoint != beforePoint {
		t.Errorf("leftShift(5) then rightShift(5) changed value: got {%q %d}; want {%q %d}",
			digitString(&d), d.decimalPoint, before, beforePoint)
	}
}

func TestBigDecimalRound(t *testing.T) {
	// 1.5 rounds to 2 (ties to even, 2 is even).
	d := parseBigDecimal([]byte("1.5"))
	if got := d.round(); got != 2 {
		t.Errorf("round(1.5) = %d; want 2", got)
	}
	// 2.5 rounds to 2 (ties to even, 2 is even; 2.5 is exact).
	d = parseBigDecimal([]byte("2.5"))
	if got := d.round(); got != 2 {
		t.Errorf("round(2.5) = %d; want 2", got)
	}
	// 1.4 rounds down to 1.
	d = parseBigDecimal([]byte("1.4"))
	if got := d.round(); got != 1 {
		t.Errorf("round(1.4) = %d; want 1", got)
	}
	// 1.500...1 (truncated beyond the halfway point) rounds up.
	d = parseBigDecimal([]byte("1.5"))
	d.truncated = true
	if got := d.round(); got != 2 {
		t.Errorf("round(1.5, truncated) = %d; want 2", got)
	}
}

func TestBigDecimalTrim(t *testing.T) {
	d := parseBigDecimal([]byte("1.230"))
	if digitString(&d) != "123" {
		t.Errorf("parseBigDecimal(\"1.230\") digits = %q; want %q (trailing zero trimmed)", digitString(&d), "123")
	}
}

func TestNumberOfDigitsDecimalLeftShift(t *testing.T) {
	d := parseBigDecimal([]byte("1"))
	if n := d.numberOfDigitsDecimalLeftShift(0); n != 0 {
		t.Errorf("numberOfDigitsDecimalLeftShift(0) = %d; want 0", n)
	}
}
