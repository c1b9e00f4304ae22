// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refcheck independently verifies fastfloat's parsing results
// using math/big's arbitrary-precision rationals, for use in tests only.
// Computing the correctly-rounded float from a decimal literal the "slow
// but obviously correct" way — via big.Rat — gives the property tests an
// oracle that does not share any code with the package under test.
//
// Grounded on the RoundRat family in joeycumines-go-utilpkg/floater,
// adapted here to answer "what is the correctly-rounded binary64/32
// value" rather than "round this rational to N decimal places".
package refcheck

import (
	"math"
	"math/big"
)

// Float64 parses s (a plain decimal literal, no inf/nan, as accepted by
// math/big.Rat.SetString) as an exact rational and returns the
// correctly-rounded float64 nearest it, rounding half to even.
func Float64(s string) (float64, bool) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return 0, false
	}
	f, _ := r.Float64()
	return f, true
}

// Float32 is Float64's float32 analogue.
func Float32(s string) (float32, bool) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return 0, false
	}
	f, _ := r.Float32()
	return f, true
}

// BitsEqual64 reports whether a and b have identical IEEE-754 bit
// patterns, treating all NaN payloads as equivalent (fastfloat does not
// promise to preserve a NaN payload through the decimal grammar, which
// has none).
func BitsEqual64(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Float64bits(a) == math.Float64bits(b)
}

// BitsEqual32 is BitsEqual64's float32 analogue.
func BitsEqual32(a, b float32) bool {
	if math.IsNaN(float64(a)) && math.IsNaN(float64(b)) {
		return true
	}
	return math.Float32bits(a) == math.Float32bits(b)
}
