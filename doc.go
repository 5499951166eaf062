// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package large implements fixed-width unsigned integers and signed rationals
built on top of them.

A Uint is a sequence of 32 bits digits whose count, the width, is chosen when
the value is created and never changes by itself:

	x := large.FromUint(4, uint64(84)) // 128 bits
	y := large.FromUint(4, uint64(2))
	q, r, err := x.DivRem(y)          // q = 42, r = 0

The Go zero value of a Uint has width 0 and must not be used as an operand.
Binary operations require operands of the same width and panic otherwise.
Resize converts between widths like a conversion between native integer
types: widening adds leading zero digits, narrowing silently drops the most
significant ones.

Values are immutable. Operations return new values and never modify their
operands, so they can be shared freely between goroutines.

Error handling follows the distinction between programming errors and
runtime conditions: invalid widths, mismatched widths and invalid number
bases panic, while arithmetic overflow and division by zero are reported as
errors wrapping ErrOverflow and ErrDivideByZero:

	_, err := large.Max(2).Add(large.FromUint(2, uint(1)))
	if errors.Is(err, large.ErrOverflow) {
		// ...
	}

Variants such as AddCarry and SubBorrow wrap around instead and return the
carry.

Division uses Algorithm D from Knuth's The Art of Computer Programming,
Vol. 2, section 4.3.1. GCDs are available through Euclid's and Stein's binary
algorithms.

A Rat is a signed fraction whose numerator and denominator are Uint values of
the same width. Rat arithmetic is carried out internally with twice the width
of its operands (plus one digit for sums), then reduced and narrowed back.
When a reduced result still does not fit, it is approximated by dropping the
same number of least significant digits from its numerator and denominator.
Zero is signed: -0 compares below +0.

The context sub-package provides an error latching calculator over a fixed
working width, and the math sub-package provides exponentiation and a generic
complex number type.
*/
package large
