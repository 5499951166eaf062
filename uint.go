// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package large

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// A Uint is an unsigned integer of a fixed number of 32 bits digits, its
// width:
//
//	x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B and n the width of x. Unlike the nat type of math/big,
// a Uint is never normalized: leading zero digits are kept so that the width
// of a value never changes by itself. Widths only change through Resize.
//
// Uint values are immutable: all operations return new values and never
// modify their operands. The zero value has width 0 and is not a valid
// operand; use New or one of the From functions.
type Uint struct {
	w []Word
}

// New returns a zero Uint of the given width.
func New(width int) Uint {
	checkWidth(width)
	return Uint{make([]Word, width)}
}

// Max returns the largest Uint of the given width.
func Max(width int) Uint {
	z := New(width)
	for i := range z.w {
		z.w[i] = _M
	}
	return z
}

// FromDigits returns a Uint with the given digits, most significant first.
// The width of the result is len(digits).
func FromDigits(digits ...Word) Uint {
	n := len(digits)
	z := New(n)
	for i, d := range digits {
		z.w[n-1-i] = d
	}
	return z
}

// FromUint returns a Uint of the given width set to v. The value is placed in
// the least significant digits. FromUint panics if v does not fit.
func FromUint[T constraints.Unsigned](width int, v T) Uint {
	x := uint64(v)
	return FromUint128(width, 0, x)
}

// FromUint128 returns a Uint of the given width set to hi<<64 + lo.
// FromUint128 panics if the value does not fit.
func FromUint128(width int, hi, lo uint64) Uint {
	z := New(width)
	ws := [4]Word{Word(lo), Word(lo >> 32), Word(hi), Word(hi >> 32)}
	for i, w := range ws {
		if i < width {
			z.w[i] = w
		} else if w != 0 {
			panic(fmt.Sprintf("large: %#x%016x does not fit in %d digits", hi, lo, width))
		}
	}
	return z
}

// one returns 1 with the given width.
func one(width int) Uint {
	z := New(width)
	z.w[0] = 1
	return z
}

// Width returns the number of digits of x.
func (x Uint) Width() int {
	return len(x.w)
}

// Digits returns the digits of x, most significant first. The result always
// has x.Width() elements.
func (x Uint) Digits() []Word {
	n := len(x.w)
	d := make([]Word, n)
	for i, w := range x.w {
		d[n-1-i] = w
	}
	return d
}

// SignificantDigits returns the number of digits from the most significant
// non-zero digit of x to its least significant digit. The result is 1 when x
// is zero.
func (x Uint) SignificantDigits() int {
	return msd(x.w) + 1
}

// Msd returns the most significant non-zero digit of x, or 0 if x is zero.
func (x Uint) Msd() Word {
	checkWidth(len(x.w))
	return x.w[msd(x.w)]
}

// IsZero reports whether x is zero.
func (x Uint) IsZero() bool {
	for _, w := range x.w {
		if w != 0 {
			return false
		}
	}
	return true
}

func (x Uint) isOne() bool {
	return x.w[0] == 1 && msd(x.w) == 0
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// x and y must have the same width.
func (x Uint) Cmp(y Uint) int {
	sameWidth("Cmp", x, y)
	return cmpVV(x.w, y.w)
}

// Equal reports whether x == y. x and y must have the same width.
func (x Uint) Equal(y Uint) bool {
	return x.Cmp(y) == 0
}

// Uint64 returns the value of x and true if x fits in an uint64. Otherwise it
// returns (0, false).
func (x Uint) Uint64() (uint64, bool) {
	hi, lo, ok := x.Uint128()
	if !ok || hi != 0 {
		return 0, false
	}
	return lo, true
}

// Uint128 returns the value of x as a (hi, lo) pair and true if x has no more
// than four significant digits. Otherwise it returns (0, 0, false).
func (x Uint) Uint128() (hi, lo uint64, ok bool) {
	if x.SignificantDigits() > 4 {
		return 0, 0, false
	}
	var ws [4]Word
	copy(ws[:], x.w)
	return join(ws[3], ws[2]), join(ws[1], ws[0]), true
}

// Resize returns x with the given width, behaving like a conversion between
// native integer types: widening adds leading zero digits, narrowing drops
// the most significant digits of x whether they are zero or not.
func (x Uint) Resize(width int) Uint {
	z := New(width)
	copy(z.w, x.w)
	return z
}

// shlDigits returns x*_B^n, dropping the n most significant digits of x.
func (x Uint) shlDigits(n int) Uint {
	z := New(len(x.w))
	if n < len(x.w) {
		copy(z.w[n:], x.w)
	}
	return z
}

// shrDigits returns x/_B^n.
func (x Uint) shrDigits(n int) Uint {
	z := New(len(x.w))
	if n < len(x.w) {
		copy(z.w, x.w[n:])
	}
	return z
}

// Lsh returns x<<s. Bits shifted out of the most significant digit are lost.
func (x Uint) Lsh(s uint) Uint {
	checkWidth(len(x.w))
	if s == 0 {
		return x
	}
	z := x.shlDigits(int(min(s/_W, uint(len(x.w)))))
	shlVU(z.w, z.w, s%_W)
	return z
}

// Rsh returns x>>s.
func (x Uint) Rsh(s uint) Uint {
	checkWidth(len(x.w))
	if s == 0 {
		return x
	}
	z := x.shrDigits(int(min(s/_W, uint(len(x.w)))))
	shrVU(z.w, z.w, s%_W)
	return z
}

// TrailingZeros returns the number of consecutive least significant zero
// bits of x. The result is x.Width()*32 if x is zero.
func (x Uint) TrailingZeros() uint {
	var n uint
	for _, w := range x.w {
		tz := uint(bits.TrailingZeros32(uint32(w)))
		n += tz
		if tz < _W {
			break
		}
	}
	return n
}

// BitLen returns the length of the absolute value of x in bits. The bit
// length of 0 is 0.
func (x Uint) BitLen() int {
	i := msd(x.w)
	return i*_W + bits.Len32(uint32(x.w[i]))
}
