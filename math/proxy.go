// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/db47h/large"

// Sqrt returns ⌊√x⌋.
//
// This function is a proxy for x.Sqrt().
func Sqrt(x large.Uint) large.Uint {
	return x.Sqrt()
}

// Gcd returns the greatest common divisor of x and y.
//
// This function is a proxy for x.GcdBinary(y).
func Gcd(x, y large.Uint) large.Uint {
	return x.GcdBinary(y)
}

// Lcm returns the least common multiple of x and y.
//
// This function is a proxy for x.Lcm(y)
func Lcm(x, y large.Uint) (large.Uint, error) {
	return x.Lcm(y)
}
