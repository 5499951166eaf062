// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements helpers that check Uint and Rat operations against
// math/big, an independent (albeit slower) implementation.

package large

import (
	"math/big"
	"math/rand"
)

var rnd = rand.New(rand.NewSource(0xdecaf))

// rndUint returns a random Uint of the given width with a random number of
// significant digits. Digits are biased towards 0 and _M to hit carry
// propagation and normalization corner cases.
func rndUint(width int) Uint {
	z := New(width)
	n := rnd.Intn(width) + 1
	for i := 0; i < n; i++ {
		switch rnd.Intn(8) {
		case 0:
			z.w[i] = 0
		case 1:
			z.w[i] = _M
		case 2:
			z.w[i] = _H + Word(rnd.Intn(4))
		default:
			z.w[i] = Word(rnd.Uint32())
		}
	}
	return z
}

// rndUint1 is like rndUint but the result is guaranteed to be > 0.
func rndUint1(width int) Uint {
	z := rndUint(width)
	if z.IsZero() {
		z.w[0] = 1
	}
	return z
}

// rndRat returns a random Rat of the given width with num and den of up to
// sig significant digits.
func rndRat(width, sig int) Rat {
	z := Rat{
		sign: Positive,
		num:  rndUint(sig).Resize(width),
		den:  rndUint1(sig).Resize(width),
	}
	if rnd.Intn(2) == 0 {
		z.sign = Negative
	}
	return z
}

func bigOf(x Uint) *big.Int { return x.BigInt() }

// bigMax returns _B**width - 1.
func bigMax(width int) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(width*_W))
	return m.Sub(m, big.NewInt(1))
}

// bigWrap returns x modulo _B**width.
func bigWrap(x *big.Int, width int) *big.Int {
	return new(big.Int).And(x, bigMax(width))
}

func ratOf(x Rat) *big.Rat { return x.BigRat() }
