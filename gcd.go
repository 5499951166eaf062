// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package large

// GcdEuclid returns the greatest common divisor of x and y using Euclid's
// algorithm. GcdEuclid(0, 0) is 0.
func (x Uint) GcdEuclid(y Uint) Uint {
	sameWidth("GcdEuclid", x, y)
	a, b := x, y
	for !b.IsZero() {
		a, b = b, must(a.Rem(b))
	}
	return a
}

// GcdBinary returns the greatest common divisor of x and y using Stein's
// binary GCD algorithm: only shifts, subtractions and parity tests.
// GcdBinary(0, 0) is 0.
func (x Uint) GcdBinary(y Uint) Uint {
	sameWidth("GcdBinary", x, y)
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}

	// gcd(2ⁱu, 2ʲv) = 2ᵏ gcd(u, v) with u, v odd and k = min(i, j)
	i, j := x.TrailingZeros(), y.TrailingZeros()
	u, v := x.Rsh(i), y.Rsh(j)
	k := min(i, j)

	for {
		// u and v are odd
		if u.Cmp(v) > 0 {
			u, v = v, u
		}
		// gcd(u, v) = gcd(u, v-u); v-u is even
		v = v.sub(u)
		if v.IsZero() {
			return u.Lsh(k)
		}
		// gcd(u, 2ʲv) = gcd(u, v) for odd u
		v = v.Rsh(v.TrailingZeros())
	}
}

// Lcm returns the least common multiple of x and y, computed as
// x*y/GcdEuclid(x, y) without widening: if x*y does not fit, Lcm returns an
// error wrapping ErrOverflow. If both x and y are zero, Lcm returns an error
// wrapping ErrDivideByZero.
func (x Uint) Lcm(y Uint) (Uint, error) {
	p, err := x.Mul(y)
	if err != nil {
		return Uint{}, err
	}
	return p.Div(x.GcdEuclid(y))
}
