// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "math"

// Float is the set of binary floating-point types Parse and ParsePartial
// support. The set is closed: no user type may implement it, and the
// package never needs to handle an open set of float representations.
type Float interface {
	~float32 | ~float64
}

// fspec bundles the per-format constants used throughout the pipeline (the
// Go analogue of the original Rust Float trait with associated constants: Go
// has no const generics, so each Float instantiation is backed by one of
// these package-level values, selected with a type switch in specOf).
type fspec struct {
	mantissaExplicitBits         uint
	minimumExponent              int32
	infinitePower                int32
	signIndex                    uint
	smallestPowerOfTen           int32
	largestPowerOfTen            int32
	minExponentFastPath          int64
	maxExponentFastPath          int64
	maxExponentDisguisedFastPath int64
	maxMantissaFastPath          uint64
	minExponentRoundToEven       int32
	maxExponentRoundToEven       int32
}

var spec32 = fspec{
	mantissaExplicitBits:         23,
	minimumExponent:              -127,
	infinitePower:                0xFF,
	signIndex:                    31,
	smallestPowerOfTen:           -65,
	largestPowerOfTen:            38,
	minExponentFastPath:          -10,
	maxExponentFastPath:          10,
	maxExponentDisguisedFastPath: 17,
	maxMantissaFastPath:          2 << 23,
	minExponentRoundToEven:       -17,
	maxExponentRoundToEven:       10,
}

var spec64 = fspec{
	mantissaExplicitBits:         52,
	minimumExponent:              -1023,
	infinitePower:                0x7FF,
	signIndex:                    63,
	smallestPowerOfTen:           -342,
	largestPowerOfTen:            308,
	minExponentFastPath:          -22,
	maxExponentFastPath:          22,
	maxExponentDisguisedFastPath: 37,
	maxMantissaFastPath:          2 << 52,
	minExponentRoundToEven:       -4,
	maxExponentRoundToEven:       23,
}

// specOf returns the fspec for F. The type switch on a zero value of F is
// the idiomatic stand-in, in a generics-without-const-generics language,
// for the trait dispatch spec.md describes; F's constraint keeps the
// switch exhaustive at compile time in spirit (there is no third case to
// add, since Float cannot be implemented by other types).
func specOf[F Float]() *fspec {
	var z F
	switch any(z).(type) {
	case float32:
		return &spec32
	default:
		return &spec64
	}
}

// pow10FastPathTable32 holds 10^0..10^10 exactly representable in float32,
// padded with zeros (never indexed — guarded by maxExponentFastPath).
var pow10FastPathTable32 = [16]float32{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
}

// pow10FastPathTable64 holds 10^0..10^22 exactly representable in float64.
var pow10FastPathTable64 = [32]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// pow10FastPath returns 10^exponent in F, exact for exponent within the
// format's fast-path range.
func pow10FastPath[F Float](exponent int64) F {
	var z F
	switch any(z).(type) {
	case float32:
		return any(pow10FastPathTable32[exponent&15]).(F)
	default:
		return any(pow10FastPathTable64[exponent&31]).(F)
	}
}

// fromBits reinterprets the IEEE-754 bit pattern word as F.
func fromBits[F Float](word uint64) F {
	var z F
	switch any(z).(type) {
	case float32:
		return any(math.Float32frombits(uint32(word))).(F)
	default:
		return any(math.Float64frombits(word)).(F)
	}
}

// mulByPow10Exact multiplies mantissa (converted to F) by 10^|exponent| or
// divides by it, using F's own arithmetic so that, per spec.md §4.2, the
// single rounding inherent in the multiply/divide is the only rounding
// that occurs.
func mulByPow10Exact[F Float](mantissa uint64, exponent int64) F {
	value := F(mantissa)
	if exponent < 0 {
		value = value / pow10FastPath[F](-exponent)
	} else {
		value = value * pow10FastPath[F](exponent)
	}
	return value
}
