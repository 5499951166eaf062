// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the digit-vector primitives the Uint operations are
// built upon. Vectors are little-endian: x[0] is the least significant digit.

package large

import "math/bits"

// A Word represents a single digit of a Uint.
type Word uint32

const (
	_W = 32            // word size in bits
	_B = 1 << _W       // digit base
	_M = _B - 1        // digit mask
	_H = 1 << (_W - 1) // half the digit base
)

//-----------------------------------------------------------------------------
// Elementary operations on words
//

// z1<<_W + z0 = x*y + c
func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	hi, lo := bits.Mul32(uint32(x), uint32(y))
	lo, cc := bits.Add32(lo, uint32(c), 0)
	return Word(hi + cc), Word(lo)
}

// q = (u1<<_W + u0 - r)/v. u1 must be < v.
func divWW(u1, u0, v Word) (q, r Word) {
	qq, rr := bits.Div32(uint32(u1), uint32(u0), uint32(v))
	return Word(qq), Word(rr)
}

// join returns hi<<_W + lo.
func join(hi, lo Word) uint64 {
	return uint64(hi)<<_W | uint64(lo)
}

//-----------------------------------------------------------------------------
// Arithmetic on vectors
//

// The resulting carry c is either 0 or 1.
func addVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Add32(uint32(x[i]), uint32(y[i]), uint32(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// The resulting borrow c is either 0 or 1.
func subVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Sub32(uint32(x[i]), uint32(y[i]), uint32(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// mulAddVWW sets z to x*y + r and returns the carry out of the most
// significant digit.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// shlVU sets z to x<<s, 0 <= s < _W, and returns the bits shifted out of the
// most significant digit.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	ŝ := _W - s
	mask := Word(1<<s - 1) << ŝ // high s bits of a digit
	for i := 0; i < len(z) && i < len(x); i++ {
		w := x[i]
		z[i] = w<<s | c
		c = (w & mask) >> ŝ
	}
	return
}

// shrVU sets z to x>>s, 0 <= s < _W, and returns the bits shifted out of the
// least significant digit, left-aligned.
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	ŝ := _W - s
	mask := Word(1<<s - 1) // low s bits of a digit
	for i := len(z) - 1; i >= 0; i-- {
		w := x[i]
		z[i] = w>>s | c
		c = (w & mask) << ŝ
	}
	return
}

// divWVW sets z to (xn<<(_W*len(x)) + x)/y and returns the remainder.
// xn must be < y.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return
}

// cmpVV compares two vectors of the same length.
func cmpVV(x, y []Word) int {
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// msd returns the index of the most significant non-zero digit of x, or 0 if
// x is zero.
func msd(x []Word) int {
	i := len(x) - 1
	for i > 0 && x[i] == 0 {
		i--
	}
	return i
}

// maxPow returns (b**n, n) such that b**n is the largest power b**n <= _M.
// In other words, at most n digits in base b fit into a Word.
func maxPow(b Word) (p Word, n int) {
	p, n = b, 1
	for lim := _M / b; p <= lim; {
		p *= b
		n++
	}
	return
}
