// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package large

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	x := FromDigits(1, 2, 3)
	assert.Equal(t, 3, x.Width())
	assert.Equal(t, []Word{1, 2, 3}, x.Digits())
	assert.Equal(t, []Word{3, 2, 1}, x.w)
	assert.Equal(t, 3, x.SignificantDigits())
	assert.Equal(t, Word(1), x.Msd())

	z := New(5)
	assert.True(t, z.IsZero())
	assert.Equal(t, 1, z.SignificantDigits())
	assert.Equal(t, Word(0), z.Msd())

	assert.Equal(t, "42", FromUint(1, uint8(42)).String())
	assert.Equal(t, "18446744073709551615", FromUint(2, ^uint64(0)).String())
	assert.Equal(t, "340282366920938463463374607431768211455", FromUint128(4, ^uint64(0), ^uint64(0)).String())
	assert.Equal(t, Max(4), FromUint128(4, ^uint64(0), ^uint64(0)))

	assert.Panics(t, func() { New(0) })
	assert.Panics(t, func() { FromDigits() })
	assert.Panics(t, func() { FromUint(1, uint64(1<<32)) })
	assert.Panics(t, func() { FromUint128(2, 1, 0) })
	assert.Panics(t, func() { FromUint128(3, 1<<32, 0) })
	assert.Equal(t, "18446744073709551616", FromUint128(3, 1, 0).String())
	assert.NotPanics(t, func() { FromUint128(3, 0xffffffff, 0) })
	assert.Panics(t, func() { Uint{}.Msd() })
}

func TestUint128(t *testing.T) {
	td := []struct {
		x      Uint
		hi, lo uint64
		ok     bool
	}{
		{FromUint(1, uint(7)), 0, 7, true},
		{FromUint128(8, 1, 2), 1, 2, true},
		{Max(4).Resize(10), ^uint64(0), ^uint64(0), true},
		{Max(5), 0, 0, false},
		{FromDigits(1, 0, 0, 0, 0, 0), 0, 0, false},
	}
	for _, d := range td {
		hi, lo, ok := d.x.Uint128()
		assert.Equal(t, d.ok, ok, "%v", d.x)
		assert.Equal(t, d.hi, hi, "%v", d.x)
		assert.Equal(t, d.lo, lo, "%v", d.x)
	}

	v, ok := FromUint128(4, 0, 42).Uint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(42), v)
	_, ok = FromUint128(4, 1, 42).Uint64()
	assert.False(t, ok)
}

func TestResize(t *testing.T) {
	x := FromDigits(1, 2, 3, 4)
	assert.Equal(t, []Word{0, 0, 1, 2, 3, 4}, x.Resize(6).Digits())
	// narrowing drops the most significant digits
	assert.Equal(t, []Word{3, 4}, x.Resize(2).Digits())
	assert.Equal(t, x, x.Resize(6).Resize(4))
	assert.Panics(t, func() { x.Resize(0) })
}

func TestImmutable(t *testing.T) {
	x := FromDigits(1, 2, 3, 4)
	y := FromDigits(0, 0, 0, 2)
	saved := x.Digits()
	_, _ = x.Add(y)
	_, _ = x.Mul(y)
	_, _, _ = x.DivRem(y)
	_ = x.Lsh(40)
	_ = x.Rsh(40)
	_ = x.Resize(8)
	_ = x.GcdBinary(y)
	assert.Equal(t, saved, x.Digits())
	assert.Equal(t, []Word{0, 0, 0, 2}, y.Digits())
}

func TestMismatchedWidths(t *testing.T) {
	x, y := New(2), New(3)
	assert.Panics(t, func() { _, _ = x.Add(y) })
	assert.Panics(t, func() { _, _ = x.Mul(y) })
	assert.Panics(t, func() { _, _ = x.Div(y) })
	assert.Panics(t, func() { x.Cmp(y) })
	assert.Panics(t, func() { x.GcdEuclid(y) })
	assert.Panics(t, func() { _, _ = Uint{}.Add(Uint{}) })
}

func TestAddSub(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8} {
		for i := 0; i < 500; i++ {
			x, y := rndUint(n), rndUint(n)
			bx, by := bigOf(x), bigOf(y)

			s, c := x.AddCarry(y)
			e := new(big.Int).Add(bx, by)
			assert.Equal(t, bigWrap(e, n).String(), s.String())
			assert.Equal(t, e.Cmp(bigMax(n)) > 0, c == 1)
			_, err := x.Add(y)
			assert.Equal(t, c == 1, errors.Is(err, ErrOverflow))

			d, b := x.SubBorrow(y)
			e = new(big.Int).Sub(bx, by)
			assert.Equal(t, bigWrap(e, n).String(), d.String())
			assert.Equal(t, e.Sign() < 0, b == 1)
			_, err = x.Sub(y)
			assert.Equal(t, b == 1, errors.Is(err, ErrOverflow))
		}
	}
}

func TestOverflowScenarios(t *testing.T) {
	one := FromUint(4, uint(1))
	_, err := Max(4).Add(one)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverflow))
	assert.Contains(t, err.Error(), "add of 4-digit values")

	z, c := Max(4).AddCarry(one)
	assert.True(t, z.IsZero())
	assert.Equal(t, Word(1), c)

	_, err = New(4).Sub(one)
	assert.True(t, errors.Is(err, ErrOverflow))
	z, b := New(4).SubBorrow(one)
	assert.Equal(t, Max(4), z)
	assert.Equal(t, Word(1), b)

	_, err = Max(2).MulWord(2)
	assert.True(t, errors.Is(err, ErrOverflow))
	z, c = Max(2).MulWordCarry(2)
	assert.Equal(t, Word(1), c)
	assert.Equal(t, []Word{_M, _M - 1}, z.Digits())

	// 2^64 * 2^64 does not fit in 128 bits
	x := FromUint128(4, 1, 0)
	_, err = x.Mul(x)
	assert.True(t, errors.Is(err, ErrOverflow))
	assert.Equal(t, "340282366920938463463374607431768211456", x.MulFull(x).Rsh(128).Lsh(128).String())
}

func TestMul(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8} {
		for i := 0; i < 500; i++ {
			x, y := rndUint(n), rndUint(n)
			e := new(big.Int).Mul(bigOf(x), bigOf(y))
			z, err := x.Mul(y)
			if e.Cmp(bigMax(n)) > 0 {
				assert.True(t, errors.Is(err, ErrOverflow), "%v * %v", x, y)
			} else {
				require.NoError(t, err)
				assert.Equal(t, e.String(), z.String())
			}
			f := x.MulFull(y)
			assert.Equal(t, 2*n, f.Width())
			assert.Equal(t, e.String(), f.String())

			w := rndW()
			e = new(big.Int).Mul(bigOf(x), big.NewInt(int64(w)))
			z, c := x.MulWordCarry(w)
			assert.Equal(t, bigWrap(e, n).String(), z.String())
			assert.Equal(t, new(big.Int).Rsh(e, uint(n*_W)).Uint64(), uint64(c))
		}
	}
}

func TestShifts(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		for i := 0; i < 200; i++ {
			x := rndUint(n)
			s := uint(rnd.Intn(n*_W + 40))
			e := bigWrap(new(big.Int).Lsh(bigOf(x), s), n)
			assert.Equal(t, e.String(), x.Lsh(s).String(), "%v << %d", x, s)
			e = new(big.Int).Rsh(bigOf(x), s)
			assert.Equal(t, e.String(), x.Rsh(s).String(), "%v >> %d", x, s)
		}
	}
}

func TestBits(t *testing.T) {
	td := []struct {
		x  Uint
		tz uint
		bl int
	}{
		{New(3), 96, 0},
		{FromUint(3, uint(1)), 0, 1},
		{FromUint(3, uint(1)).Lsh(70), 70, 71},
		{FromUint(3, uint(12)), 2, 4},
		{Max(3), 0, 96},
	}
	for _, d := range td {
		assert.Equal(t, d.tz, d.x.TrailingZeros(), "TrailingZeros(%v)", d.x)
		assert.Equal(t, d.bl, d.x.BitLen(), "BitLen(%v)", d.x)
	}
}

func TestCmp(t *testing.T) {
	for i := 0; i < 500; i++ {
		x, y := rndUint(4), rndUint(4)
		assert.Equal(t, bigOf(x).Cmp(bigOf(y)), x.Cmp(y))
		assert.Equal(t, 0, x.Cmp(x))
		assert.True(t, x.Equal(x))
	}
}
