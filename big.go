// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions from and to math/big values.

package large

import (
	"math/big"

	"github.com/pkg/errors"
)

// BigInt returns the value of x as a *big.Int.
func (x Uint) BigInt() *big.Int {
	n := len(x.w)
	buf := make([]byte, 4*n)
	for i, w := range x.w {
		j := 4 * (n - 1 - i)
		buf[j] = byte(w >> 24)
		buf[j+1] = byte(w >> 16)
		buf[j+2] = byte(w >> 8)
		buf[j+3] = byte(w)
	}
	return new(big.Int).SetBytes(buf)
}

// UintFromBig returns the absolute value of x as a Uint of the given width. If
// width is 0, the result has the smallest width that holds the value. If |x|
// does not fit width digits, UintFromBig returns an error wrapping
// ErrOverflow.
func UintFromBig(width int, x *big.Int) (Uint, error) {
	if width < 0 {
		checkWidth(width)
	}
	buf := x.Bytes() // big-endian |x|
	sig := max((len(buf)+3)/4, 1)
	if width == 0 {
		width = sig
	} else if sig > width {
		return Uint{}, overflow("conversion", width)
	}
	z := New(width)
	for i, j := 0, len(buf)-1; j >= 0; i, j = i+1, j-1 {
		z.w[i/4] |= Word(buf[j]) << (8 * (i % 4))
	}
	return z, nil
}

// BigRat returns the value of x as a *big.Rat. The sign of -0 is lost.
func (x Rat) BigRat() *big.Rat {
	num := x.num.BigInt()
	if x.sign == Negative {
		num.Neg(num)
	}
	return new(big.Rat).SetFrac(num, x.den.BigInt())
}

// RatFromBig returns x as a Rat of the given width. If width is 0, the result
// has the smallest width that holds the numerator and denominator of x. If
// they do not fit, RatFromBig returns an error wrapping ErrOverflow; no
// approximation takes place.
func RatFromBig(width int, x *big.Rat) (Rat, error) {
	if width == 0 {
		width = max((x.Num().BitLen()+_W-1)/_W, (x.Denom().BitLen()+_W-1)/_W, 1)
	}
	num, err := UintFromBig(width, x.Num())
	if err != nil {
		return Rat{}, errors.WithMessage(err, "large: numerator")
	}
	den, err := UintFromBig(width, x.Denom())
	if err != nil {
		return Rat{}, errors.WithMessage(err, "large: denominator")
	}
	z := Rat{Positive, num, den}
	if x.Sign() < 0 {
		z.sign = Negative
	}
	return z, nil
}
