// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "math/bits"

// Parse converts the floating-point literal in s to F, requiring the
// entire slice to be consumed. It returns *ParseError (wrapping
// ErrSyntax) if s is empty, has trailing garbage, or does not start with
// a valid literal.
func Parse[F Float](s []byte) (F, error) {
	v, n, err := ParsePartial[F](s)
	if err != nil {
		return 0, syntaxError("Parse", s)
	}
	if n != len(s) {
		return 0, syntaxError("Parse", s)
	}
	return v, nil
}

// ParsePartial converts the floating-point literal at the start of s to
// F, returning the value and the number of bytes consumed. Unlike Parse,
// trailing bytes after a valid literal are not an error. It returns
// *ParseError if s does not start with a valid literal.
func ParsePartial[F Float](s []byte) (F, int, error) {
	if len(s) == 0 {
		return 0, 0, syntaxError("ParsePartial", s)
	}

	if v, n, ok := parseInfNaN[F](s); ok {
		return v, n, nil
	}

	n, consumed, ok := parseNumber(s)
	if !ok {
		return 0, 0, syntaxError("ParsePartial", s)
	}

	if v, ok := tryFastPath[F](n); ok {
		if n.negative {
			v = -v
		}
		return v, consumed, nil
	}

	am := computeFloat[F](n.exponent, n.mantissa)
	if n.manyDigits && am.power2 >= 0 {
		// The fast Lemire path used only the truncated mantissa; with
		// more significant digits than it can see, the borderline case
		// must be re-checked against w+1 (spec.md's many-digits
		// discriminator; aldanor/fast-float-rust's trimmed slow-path
		// shortcut skips this and goes straight to the big-decimal path
		// instead, which this package also supports but prefers to avoid
		// on the common case of merely-long-but-unambiguous input).
		amUp := computeFloat[F](n.exponent, n.mantissa+1)
		if amUp.power2 < 0 || amUp.mantissa != am.mantissa || amUp.power2 != am.power2 {
			am = adjustedMantissa{power2: negativePower2}
		}
	}

	if am.power2 < 0 {
		am = parseLongMantissa[F](s)
	}

	word := packBits[F](am, n.negative)
	return fromBits[F](word), consumed, nil
}

// tryFastPath attempts spec.md §4.2's fast path: when the mantissa is
// exactly representable and the decimal exponent is small enough that
// multiplying (or dividing) by 10^|exponent| is the only rounding that
// occurs, the result is computed directly with F's own arithmetic. The
// "disguised" extension handles exponents just past max_exp_fp by
// premultiplying the mantissa by the excess power of ten as an integer,
// which is still exact as long as no 64-bit overflow and the fast-path
// mantissa bound both hold.
func tryFastPath[F Float](n number) (F, bool) {
	if n.manyDigits {
		return 0, false
	}
	fs := specOf[F]()

	if n.mantissa > fs.maxMantissaFastPath {
		return 0, false
	}
	if n.exponent < fs.minExponentFastPath || n.exponent > fs.maxExponentDisguisedFastPath {
		return 0, false
	}

	mantissa := n.mantissa
	exponent := n.exponent
	if exponent > fs.maxExponentFastPath {
		excess := exponent - fs.maxExponentFastPath
		scaled, overflowed := mulPow10Int(mantissa, excess)
		if overflowed || scaled > fs.maxMantissaFastPath {
			return 0, false
		}
		mantissa = scaled
		exponent = fs.maxExponentFastPath
	}

	return mulByPow10Exact[F](mantissa, exponent), true
}

// mulPow10Int computes mantissa*10^exp as a uint64, reporting overflow.
// exp is always small here (bounded by max_exp_disguised_fp - max_exp_fp).
func mulPow10Int(mantissa uint64, exp int64) (uint64, bool) {
	for ; exp > 0; exp-- {
		hi, lo := bits.Mul64(mantissa, 10)
		if hi != 0 {
			return 0, true
		}
		mantissa = lo
	}
	return mantissa, false
}

// packBits assembles the IEEE-754 word for am (sign, biased exponent,
// mantissa minus hidden bit) at the bit positions spec.md §4.5 specifies,
// using OR rather than addition: computeFloat's subnormal branch can
// return a mantissa with its top bit set that is arithmetically meant to
// be the exponent field's own bit 0, which only composes correctly under
// OR (see spec.md's packing note and lemire.go's computeFloat comment).
func packBits[F Float](am adjustedMantissa, negative bool) uint64 {
	fs := specOf[F]()
	word := am.mantissa
	word |= uint64(am.power2) << fs.mantissaExplicitBits
	if negative {
		word |= uint64(1) << fs.signIndex
	}
	return word
}
