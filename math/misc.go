// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math provides functions over large.Uint and large.Rat values that
// are not part of their method sets, and a generic complex number type.
package math

import (
	"github.com/db47h/large"
)

// Pow returns x**n. Pow(x, 0) is 1 for any x, 0 included. Intermediate
// products are approximated as by (large.Rat).Mul when they do not fit the
// width of x.
func Pow(x large.Rat, n uint64) large.Rat {
	y := large.RatFromInt(x.Width(), 1)
	if n == 0 {
		return y
	}
	// Russian peasant method
	z := x
	for n > 1 {
		if n%2 != 0 {
			y = y.Mul(z)
		}
		z = z.Mul(z)
		if z.IsZero() {
			return z
		}
		n /= 2
	}
	return z.Mul(y)
}

// PowUint returns x**n. If the result does not fit the width of x, PowUint
// returns an error wrapping large.ErrOverflow.
func PowUint(x large.Uint, n uint64) (large.Uint, error) {
	y := large.FromUint(x.Width(), uint(1))
	if n == 0 {
		return y, nil
	}
	z := x
	var err error
	for n > 1 {
		if n%2 != 0 {
			if y, err = y.Mul(z); err != nil {
				return large.Uint{}, err
			}
		}
		if z, err = z.Mul(z); err != nil {
			return large.Uint{}, err
		}
		n /= 2
	}
	return z.Mul(y)
}
