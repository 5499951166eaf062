// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package large

// Sqrt returns ⌊√x⌋.
func (x Uint) Sqrt() Uint {
	n := len(x.w)
	checkWidth(n)
	if x.SignificantDigits() == 1 && x.w[0] < 2 {
		return x
	}

	// Newton's method on f(t) = t² - x, starting above the root:
	//   t' = ⌊(t + ⌊x/t⌋) / 2⌋
	// decreases until it reaches ⌊√x⌋. One extra digit holds the sum.
	a := x.Resize(n + 1)
	z1 := one(n + 1).Lsh(uint(x.BitLen()+1) / 2)
	for {
		q := must(a.Div(z1))
		z2 := must(z1.Add(q)).Rsh(1)
		if z2.Cmp(z1) >= 0 {
			// z1 is ⌊√x⌋
			return z1.Resize(n)
		}
		z1 = z2
	}
}
