// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fastfloat implements a high-throughput decimal-to-binary
floating-point parser.

Given a byte slice that may contain a decimal numeric literal — optionally
signed, with an optional fractional part, an optional decimal scientific
exponent, and the special tokens for infinity and not-a-number — Parse and
ParsePartial produce the IEEE-754 binary32 or binary64 value that is the
correctly-rounded (round-to-nearest-even) image of the exact rational value
denoted by the digits; ParsePartial also returns the count of input bytes
consumed.

A lexical recognizer first extracts sign, integer digits, fractional
digits, and exponent into a number. Three conversion tiers follow, each of
which may punt to the next:

  - an exact fast path that multiplies or divides the mantissa by an
    exactly representable power of ten when both fit the target format;
  - the Eisel–Lemire path, which uses a pre-tabulated 128-bit
    approximation of 5^q to compute the result directly in nearly every
    case;
  - an arbitrary-precision "big decimal" fallback (bigDecimal) that
    guarantees correct rounding for every otherwise-ambiguous case.

All functions are pure, and a successful conversion does not allocate: the
big-decimal fallback is a stack-resident fixed-size array, there is no
global mutable state beyond the read-only constant tables, and there are
no I/O or suspension points. Only a failed call allocates, for the
*ParseError it returns.
Concurrent calls on disjoint inputs require no coordination.

Hexadecimal floats, non-ASCII digits, locale-dependent separators, integer
parsing, and formatting floats back to strings are out of scope.
*/
package fastfloat
