// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package large

type signPair struct {
	x, y Sign
}

// Add returns the reduced sum x+y.
func (x Rat) Add(y Rat) Rat {
	x.sameWidth("Add", y)
	switch (signPair{x.sign, y.sign}) {
	case signPair{Positive, Positive}:
		return addPositive(x, y)
	case signPair{Negative, Negative}:
		// -a + -b = -(a + b)
		return addPositive(x.Abs(), y.Abs()).Neg()
	case signPair{Positive, Negative}:
		// a + -b = a - b
		return subPositive(x, y.Abs())
	default:
		// -a + b = b - a
		return subPositive(y, x.Abs())
	}
}

// Sub returns the reduced difference x-y.
func (x Rat) Sub(y Rat) Rat {
	x.sameWidth("Sub", y)
	switch (signPair{x.sign, y.sign}) {
	case signPair{Positive, Positive}:
		return subPositive(x, y)
	case signPair{Negative, Negative}:
		// -a - -b = b - a
		return subPositive(y.Abs(), x.Abs())
	case signPair{Positive, Negative}:
		// a - -b = a + b
		return addPositive(x, y.Abs())
	default:
		// -a - b = -(a + b)
		return addPositive(x.Abs(), y).Neg()
	}
}

// addPositive returns a+b for positive a and b. The sum is computed with
// 2n+1 digits: the cross products need 2n digits and the extra digit holds
// the carry of the numerator sum.
func addPositive(a, b Rat) Rat {
	n := a.Width()
	a, b = sameDenominator(a.widen(2*n+1), b.widen(2*n+1))
	a.num = must(a.num.Add(b.num))
	return a.Reduce().Resize(n)
}

// subPositive returns a-b for positive a and b. The sign of the result is
// Negative if b > a.
func subPositive(a, b Rat) Rat {
	sign := Positive
	if b.Cmp(a) > 0 {
		a, b = b, a
		sign = Negative
	}
	n := a.Width()
	a, b = sameDenominator(a.widen(2*n+1), b.widen(2*n+1))
	a.num = a.num.sub(b.num)
	a.sign = sign
	return a.Reduce().Resize(n)
}

// Mul returns the reduced product x*y.
func (x Rat) Mul(y Rat) Rat {
	n := x.sameWidth("Mul", y)
	a, b := x.widen(2*n), y.widen(2*n)
	z := Rat{
		sign: a.sign.Mul(b.sign),
		num:  must(a.num.Mul(b.num)),
		den:  must(a.den.Mul(b.den)),
	}
	return z.Resize(n).Reduce()
}

// Div returns the reduced quotient x/y. If y is zero, Div returns an error
// wrapping ErrDivideByZero.
func (x Rat) Div(y Rat) (Rat, error) {
	x.sameWidth("Div", y)
	inv, err := y.Inv()
	if err != nil {
		return Rat{}, err
	}
	return x.Mul(inv), nil
}
