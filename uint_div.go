// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements long division of Uint values, Algorithm D from
// Knuth, The Art of Computer Programming, Vol. 2, section 4.3.1.

package large

// DivRem returns the quotient x/y and the remainder x%y. If y is zero, DivRem
// returns an error wrapping ErrDivideByZero. x and y must have the same width.
func (x Uint) DivRem(y Uint) (q, r Uint, err error) {
	return x.divRem("divrem", y, true)
}

// Div returns the quotient x/y. If y is zero, Div returns an error wrapping
// ErrDivideByZero.
func (x Uint) Div(y Uint) (Uint, error) {
	q, _, err := x.divRem("div", y, false)
	return q, err
}

// Rem returns the remainder x%y. If y is zero, Rem returns an error wrapping
// ErrDivideByZero.
func (x Uint) Rem(y Uint) (Uint, error) {
	_, r, err := x.divRem("rem", y, true)
	return r, err
}

// divRem returns (x/y, x%y). If rem is false, the remainder is not computed
// by the general algorithm and the returned remainder is zero.
func (x Uint) divRem(op string, y Uint, rem bool) (q, r Uint, err error) {
	n := sameWidth(op, x, y)
	if y.IsZero() {
		return Uint{}, Uint{}, divByZero(op, n)
	}
	if y.isOne() {
		return x, New(n), nil
	}
	switch cmpVV(x.w, y.w) {
	case -1:
		return New(n), x, nil
	case 0:
		return one(n), New(n), nil
	}
	if msd(y.w) == 0 {
		// single digit divisor
		q = New(n)
		r = New(n)
		r.w[0] = divWVW(q.w, 0, x.w, y.w[0])
		return q, r, nil
	}
	qw, rw := divLarge(x.w, y.w, rem)
	return Uint{qw}, Uint{rw}, nil
}

// divLarge returns the quotient and remainder of u/v with u > v > 1. Both
// slices must have the same length n. The returned slices have length n; if
// rem is false the remainder is left zero.
func divLarge(u, v []Word, rem bool) (q, r []Word) {
	n := len(u)

	// One extra digit of headroom so that normalization cannot overflow.
	a := make([]Word, n+1)
	b := make([]Word, n+1)
	copy(a, u)
	copy(b, v)

	// normalize so that the leading digit of b is >= _B/2
	bs := msd(b) + 1
	f := Word(1)
	if bs > 1 && b[bs-1] < _H {
		f = Word(_B / (uint64(b[bs-1]) + 1))
		if mulAddVWW(a, a, f, 0) != 0 || mulAddVWW(b, b, f, 0) != 0 {
			panic("large: BUG: overflow while normalizing divisor")
		}
	}
	bd := b[bs-1]
	as := msd(a) + 1

	// The trial remainder window holds bs+1 digits, left-padded with zeros.
	// It is seeded with a 0 followed by the bs leading digits of a.
	idd := make([]Word, n+1)
	copy(idd, a[as-bs:as])
	next := as - bs // a[next-1] is the next digit to bring down

	// quotient digits, most significant first
	qd := make([]Word, 0, as-bs+1)
	t := make([]Word, n+1)
	for {
		// estimate from the two leading digits of the window
		d := Word(_M)
		if e := join(idd[bs], idd[bs-1]) / uint64(bd); e < _M {
			d = Word(e)
		}
		d = correctDigit(d, b, idd, t)
		subVV(idd, idd, t)
		qd = append(qd, d)

		if next == 0 {
			break
		}
		next--
		// bring down the next digit of a
		if debugLarge && idd[n] != 0 {
			panic("large: BUG: trial remainder window overflow")
		}
		copy(idd[1:], idd[:n])
		idd[0] = a[next]
	}

	// right-align the quotient digits
	q = make([]Word, n)
	m := len(qd)
	for i := 0; i < m; i++ {
		d := qd[m-1-i]
		if i < n {
			q[i] = d
		} else if d != 0 {
			panic("large: BUG: quotient overflow")
		}
	}

	r = make([]Word, n)
	if rem {
		divWVW(r, 0, idd[:n], f)
	}
	return q, r
}

// correctDigit returns the quotient digit d corrected so that b*d <= idd and
// leaves b*d in t. The estimate d is never more than 2 above the true digit;
// a third correction means that the algorithm is broken.
func correctDigit(d Word, b, idd, t []Word) Word {
	if mulAddVWW(t, b, d, 0) != 0 {
		panic("large: BUG: trial product overflow")
	}
	for k := 0; cmpVV(t, idd) > 0; k++ {
		if k == 2 {
			panic("large: BUG: more than two quotient digit corrections")
		}
		d--
		subVV(t, t, b)
	}
	return d
}
