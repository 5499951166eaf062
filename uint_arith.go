// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package large

// AddCarry returns x+y modulo _B^n, n being the width of x and y, and the
// carry out of the most significant digit, either 0 or 1.
func (x Uint) AddCarry(y Uint) (Uint, Word) {
	z := New(sameWidth("Add", x, y))
	c := addVV(z.w, x.w, y.w)
	return z, c
}

// Add returns x+y. If the sum does not fit the width of x and y, Add returns
// an error wrapping ErrOverflow.
func (x Uint) Add(y Uint) (Uint, error) {
	z, c := x.AddCarry(y)
	if c != 0 {
		return Uint{}, overflow("add", len(z.w))
	}
	return z, nil
}

// SubBorrow returns x-y modulo _B^n, n being the width of x and y, and the
// borrow out of the most significant digit, either 0 or 1.
func (x Uint) SubBorrow(y Uint) (Uint, Word) {
	z := New(sameWidth("Sub", x, y))
	c := subVV(z.w, x.w, y.w)
	return z, c
}

// Sub returns x-y. If y > x, Sub returns an error wrapping ErrOverflow.
func (x Uint) Sub(y Uint) (Uint, error) {
	z, c := x.SubBorrow(y)
	if c != 0 {
		return Uint{}, overflow("sub", len(z.w))
	}
	return z, nil
}

// MulWordCarry returns x*y modulo _B^n, n being the width of x, and the digit
// carried out of the most significant digit.
func (x Uint) MulWordCarry(y Word) (Uint, Word) {
	checkWidth(len(x.w))
	z := New(len(x.w))
	c := mulAddVWW(z.w, x.w, y, 0)
	return z, c
}

// MulWord returns x*y. If the product does not fit the width of x, MulWord
// returns an error wrapping ErrOverflow.
func (x Uint) MulWord(y Word) (Uint, error) {
	z, c := x.MulWordCarry(y)
	if c != 0 {
		return Uint{}, overflow("mul", len(z.w))
	}
	return z, nil
}

// Mul returns x*y using schoolbook multiplication. If the product does not fit
// the width of x and y, Mul returns an error wrapping ErrOverflow. Callers
// that need the full product should use MulFull or widen the operands first.
func (x Uint) Mul(y Uint) (Uint, error) {
	n := sameWidth("Mul", x, y)
	z := New(n)
	row := make([]Word, n)
	for j, d := range y.w {
		if d == 0 {
			continue
		}
		// row = x*d
		if mulAddVWW(row, x.w, d, 0) != 0 {
			return Uint{}, overflow("mul", n)
		}
		// shifting row left by j digits must not drop any non-zero digit
		for _, w := range row[n-j:] {
			if w != 0 {
				return Uint{}, overflow("mul", n)
			}
		}
		if addVV(z.w[j:], z.w[j:], row[:n-j]) != 0 {
			return Uint{}, overflow("mul", n)
		}
	}
	return z, nil
}

// MulFull returns the product x*y with twice the width of x and y.
func (x Uint) MulFull(y Uint) Uint {
	n := sameWidth("MulFull", x, y)
	return must(x.Resize(2 * n).Mul(y.Resize(2 * n)))
}

// sub returns x-y for x >= y.
func (x Uint) sub(y Uint) Uint {
	z, c := x.SubBorrow(y)
	if debugLarge && c != 0 {
		panic("large: BUG: negative difference")
	}
	return z
}
