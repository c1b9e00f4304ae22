// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

// maxShift is the largest single left/right shift bigDecimal.leftShift and
// rightShift perform in one call; parseLongMantissa always requests a
// shift within [0, maxShift].
const maxShift = 60

// shiftPowers gives, for decimal_point values n = 0..18, the shift distance
// floor(n*log2(10)), so each table step adds roughly one decimal digit's
// worth of shift (shift*log10(2) is just under n); beyond index 18,
// maxShift is used every iteration. Grounded on simple.rs's POWERS table.
var shiftPowers = [19]uint{
	0, 3, 6, 9, 13, 16, 19, 23, 26, 29, 33, 36, 39, 43, 46, 49, 53, 56, 59,
}

func shiftFor(n int) uint {
	if n < len(shiftPowers) {
		return shiftPowers[n]
	}
	return maxShift
}

// parseLongMantissa is the arbitrary-precision fallback of spec.md §4.4,
// invoked when the Eisel–Lemire path (computeFloat) returns the
// power2 == negativePower2 sentinel. It re-lexes s into a bigDecimal and
// alternates binary shifts to bring the value's exponent into the
// target format's representable range, then rounds to the nearest
// representable mantissa. Grounded on simple.rs's parse_long_mantissa.
func parseLongMantissa[F Float](s []byte) adjustedMantissa {
	fs := specOf[F]()
	amZero := zeroPow2(0)
	amInf := zeroPow2(fs.infinitePower)

	d := parseBigDecimal(s)

	if d.numDigits == 0 || d.decimalPoint < -324 {
		return amZero
	} else if d.decimalPoint >= 310 {
		return amInf
	}

	var exp2 int32
	for d.decimalPoint > 0 {
		n := int(d.decimalPoint)
		shift := shiftFor(n)
		d.rightShift(shift)
		if d.decimalPoint < -decimalPointRange {
			return amZero
		}
		exp2 += int32(shift)
	}
	for d.decimalPoint <= 0 {
		var shift uint
		if d.decimalPoint == 0 {
			switch {
			case d.digits[0] >= 5:
				goto normalized
			case d.digits[0] == 0 || d.digits[0] == 1:
				shift = 2
			default:
				shift = 1
			}
		} else {
			shift = shiftFor(int(-d.decimalPoint))
		}
		d.leftShift(shift)
		if d.decimalPoint > decimalPointRange {
			return amInf
		}
		exp2 -= int32(shift)
	}
normalized:
	exp2--

	for fs.minimumExponent+1 > exp2 {
		n := uint(fs.minimumExponent + 1 - exp2)
		if n > maxShift {
			n = maxShift
		}
		d.rightShift(n)
		exp2 += int32(n)
	}
	if exp2-fs.minimumExponent >= fs.infinitePower {
		return amInf
	}

	d.leftShift(fs.mantissaExplicitBits + 1)
	mantissa := d.round()
	if mantissa >= 1<<(fs.mantissaExplicitBits+1) {
		d.rightShift(1)
		exp2++
		mantissa = d.round()
		if exp2-fs.minimumExponent >= fs.infinitePower {
			return amInf
		}
	}

	power2 := exp2 - fs.minimumExponent
	if mantissa < 1<<fs.mantissaExplicitBits {
		power2--
	}
	mantissa &= (1 << fs.mantissaExplicitBits) - 1
	return adjustedMantissa{mantissa: mantissa, power2: power2}
}
