// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the Rat type and its accessors.

package large

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// A Rat is a signed fraction num/den where num and den are Uint values of the
// same width, the width of the Rat.
//
// Rat values are immutable. A Rat returned by an arithmetic operation is
// always reduced, but constructors keep num and den as given. The
// denominator must not be zero; this is not checked at construction.
//
// Zero has two representations, +0 and -0, which are equal in magnitude but
// -0 orders below +0.
//
// When a result does not fit the width of the operands, it is approximated
// by dropping the same number of least significant digits from its numerator
// and denominator (see Resize). Rat arithmetic never returns errors except
// for a division by zero.
type Rat struct {
	sign Sign
	num  Uint
	den  Uint
}

// NewRat returns the fraction sign*num/den. num and den must have the same
// width.
func NewRat(sign Sign, num, den Uint) Rat {
	if !sign.valid() {
		panic(fmt.Sprintf("large: invalid sign %d", int8(sign)))
	}
	sameWidth("NewRat", num, den)
	return Rat{sign, num, den}
}

// RatFromInt returns the integer v as a Rat of the given width.
func RatFromInt[T constraints.Integer](width int, v T) Rat {
	if v < 0 {
		// -uint64 wraps around correctly for math.MinInt64
		return Rat{Negative, FromUint(width, -uint64(int64(v))), one(width)}
	}
	return Rat{Positive, FromUint(width, uint64(v)), one(width)}
}

// RatFromFrac returns num/den as a Rat of the given width. It panics if den
// is 0.
func RatFromFrac(width int, num int64, den uint64) Rat {
	if den == 0 {
		panic("large: RatFromFrac: zero denominator")
	}
	x := RatFromInt(width, num)
	x.den = FromUint(width, den)
	return x
}

// Sign returns the sign of x. The sign of zero can be either Negative or
// Positive.
func (x Rat) Sign() Sign { return x.sign }

// Num returns the numerator of x.
func (x Rat) Num() Uint { return x.num }

// Den returns the denominator of x.
func (x Rat) Den() Uint { return x.den }

// Width returns the width of x.
func (x Rat) Width() int { return len(x.num.w) }

// IsZero reports whether x is +0 or -0.
func (x Rat) IsZero() bool { return x.num.IsZero() }

// IsInt reports whether the denominator of x is 1.
func (x Rat) IsInt() bool { return x.den.isOne() }

// Neg returns -x.
func (x Rat) Neg() Rat {
	x.sign = x.sign.Neg()
	return x
}

// Abs returns |x|.
func (x Rat) Abs() Rat {
	x.sign = Positive
	return x
}

// Inv returns 1/x. If x is zero, Inv returns an error wrapping
// ErrDivideByZero.
func (x Rat) Inv() (Rat, error) {
	if x.IsZero() {
		return Rat{}, divByZero("inv", x.Width())
	}
	return Rat{x.sign, x.den, x.num}, nil
}

// Reduce returns x with its numerator and denominator divided by their
// greatest common divisor.
func (x Rat) Reduce() Rat {
	g := x.num.GcdBinary(x.den)
	if g.IsZero() || g.isOne() {
		return x
	}
	return Rat{x.sign, must(x.num.Div(g)), must(x.den.Div(g))}
}

// Resize returns x with the given width. When narrowing, if x has more
// significant digits than width, the numerator and denominator are both
// shifted right by the excess number of digits before being cast to the new
// width. The result is then only an approximation of x.
func (x Rat) Resize(width int) Rat {
	checkWidth(width)
	if width < x.Width() {
		if s := max(x.num.SignificantDigits(), x.den.SignificantDigits()); width < s {
			x.num = x.num.shrDigits(s - width)
			x.den = x.den.shrDigits(s - width)
		}
	}
	return Rat{x.sign, x.num.Resize(width), x.den.Resize(width)}
}

// widen returns x with the given width, which must not be smaller than the
// width of x.
func (x Rat) widen(width int) Rat {
	return Rat{x.sign, x.num.Resize(width), x.den.Resize(width)}
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Signs are compared first, so that -0 < +0.
func (x Rat) Cmp(y Rat) int {
	n := x.sameWidth("Cmp", y)
	if x.sign != y.sign {
		return x.sign.Cmp(y.sign)
	}
	a, b := sameDenominator(x.widen(2*n), y.widen(2*n))
	if x.sign == Negative {
		return b.num.Cmp(a.num)
	}
	return a.num.Cmp(b.num)
}

// Equal reports whether x and y have the same sign and value.
func (x Rat) Equal(y Rat) bool {
	return x.Cmp(y) == 0
}

func (x Rat) sameWidth(op string, y Rat) int {
	return sameWidth(op, x.num, y.num)
}

// sameDenominator returns a and b scaled to a common denominator. The width
// of a and b must be large enough for the cross products not to overflow.
func sameDenominator(a, b Rat) (Rat, Rat) {
	if a.den.Equal(b.den) {
		return a, b
	}
	a.num = must(a.num.Mul(b.den))
	b.num = must(b.num.Mul(a.den))
	den := must(a.den.Mul(b.den))
	a.den, b.den = den, den
	return a, b
}
