// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/db47h/fastfloat"
	"github.com/db47h/fastfloat/internal/refcheck"
)

// randomDecimal produces a random, syntactically valid decimal literal
// (sign, integer part, optional fraction, optional exponent) whose
// digit count and exponent magnitude span the fast path, the Lemire
// path, and the big-decimal fallback.
func randomDecimal(r *rand.Rand) string {
	var neg string
	if r.Intn(2) == 0 {
		neg = "-"
	}
	nInt := 1 + r.Intn(20)
	intPart := make([]byte, nInt)
	intPart[0] = byte('1' + r.Intn(9))
	for i := 1; i < nInt; i++ {
		intPart[i] = byte('0' + r.Intn(10))
	}
	nFrac := r.Intn(20)
	fracPart := make([]byte, nFrac)
	for i := range fracPart {
		fracPart[i] = byte('0' + r.Intn(10))
	}
	frac := ""
	if nFrac > 0 {
		frac = "." + string(fracPart)
	}
	exp := ""
	if r.Intn(2) == 0 {
		e := r.Intn(320) - 160
		exp = fmt.Sprintf("e%+d", e)
	}
	return neg + string(intPart) + frac + exp
}

// TestPropertyRoundTripFormat checks property 1/2 from spec.md: parsing
// then formatting the parsed float64 back with Go's own (exact,
// shortest-round-trip) formatter and re-parsing reproduces the same bit
// pattern — i.e. Parse is a function, and applying it twice through a
// faithful textual round trip is idempotent.
func TestPropertyRoundTripFormat(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		s := randomDecimal(r)
		v, err := fastfloat.Parse[float64]([]byte(s))
		if err != nil {
			continue
		}
		again := fmt.Sprintf("%g", v)
		v2, err := fastfloat.Parse[float64]([]byte(again))
		require.NoError(t, err, "re-parsing %q (from %q)", again, s)
		require.True(t, refcheck.BitsEqual64(v, v2), "round trip mismatch: %q -> %v -> %q -> %v", s, v, again, v2)
	}
}

// TestPropertyCorrectRounding checks property 3: fastfloat's result
// agrees bit-for-bit with an independent big.Rat-based reference
// computation, across a wide spread of magnitudes and digit counts.
func TestPropertyCorrectRounding(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	checked := 0
	for i := 0; i < 5000; i++ {
		s := randomDecimal(r)
		want, ok := refcheck.Float64(s)
		if !ok {
			continue
		}
		got, err := fastfloat.Parse[float64]([]byte(s))
		require.NoError(t, err, "Parse(%q)", s)
		require.True(t, refcheck.BitsEqual64(want, got),
			"Parse(%q) = %v (%#x); want %v (%#x)", s, got, math.Float64bits(got), want, math.Float64bits(want))
		checked++
	}
	require.Greater(t, checked, 1000, "too few literals actually exercised the parser")
}

// TestPropertyPartialLength checks property 4: ParsePartial's consumed
// count, applied to s, always yields a prefix that Parse itself accepts
// with no error and the identical value.
func TestPropertyPartialLength(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		s := randomDecimal(r) + "trailing garbage"
		v, n, err := fastfloat.ParsePartial[float64]([]byte(s))
		if err != nil {
			continue
		}
		v2, err := fastfloat.Parse[float64]([]byte(s[:n]))
		require.NoError(t, err, "Parse(%q[:%d])", s, n)
		require.True(t, refcheck.BitsEqual64(v, v2))
	}
}

// TestPropertyManyDigitsOverflow targets the many-digits path directly:
// literals whose significant-digit count overflows a plain uint64
// accumulator must still parse to the correctly-rounded value, verified
// against the independent big.Rat oracle rather than a hand-computed
// constant.
func TestPropertyManyDigitsOverflow(t *testing.T) {
	tests := []string{
		"99999999999999999999",                       // 20 significant digits, all integer
		"9999999999999999999999999999999999999999",   // far beyond uint64
		"1.2345678901234567890123456789",              // long fraction, digits dropped past the cap
		"0.000000000000000000099999999999999999999",  // leading fractional zeros plus overflow
		"123456789012345678901234567890e-20",
	}
	for _, s := range tests {
		want, ok := refcheck.Float64(s)
		if !ok {
			t.Fatalf("refcheck.Float64(%q) failed to parse", s)
		}
		got, err := fastfloat.Parse[float64]([]byte(s))
		require.NoError(t, err, "Parse(%q)", s)
		require.True(t, refcheck.BitsEqual64(want, got),
			"Parse(%q) = %v (%#x); want %v (%#x)", s, got, math.Float64bits(got), want, math.Float64bits(want))
	}
}

// TestPropertyMonotone checks property 6: for a fixed digit pattern,
// increasing the represented magnitude never decreases the parsed
// float64 value.
func TestPropertyMonotone(t *testing.T) {
	prev := math.Inf(-1)
	for exp := -320; exp <= 300; exp += 4 {
		s := fmt.Sprintf("1e%d", exp)
		v, err := fastfloat.Parse[float64]([]byte(s))
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, prev, "Parse(%q) = %v not monotone", s, v)
		prev = v
	}
}
