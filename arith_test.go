// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package large

import (
	"math/big"
	"math/bits"
	"reflect"
	"strconv"
	"testing"
)

func rndW() Word {
	return Word(rnd.Uint32())
}

func rndV(n int) []Word {
	v := make([]Word, n)
	for i := range v {
		v[i] = rndW()
	}
	return v
}

// vBig converts a little-endian vector to a big.Int.
func vBig(v []Word) *big.Int {
	return Uint{v}.BigInt()
}

func TestAddVV(t *testing.T) {
	td := []struct {
		x, y []Word
		z    []Word
		c    Word
	}{
		{[]Word{_M, _M}, []Word{1, 0}, []Word{0, 0}, 1},
		{[]Word{_M, 0}, []Word{1, 0}, []Word{0, 1}, 0},
		{[]Word{1, 2}, []Word{3, 4}, []Word{4, 6}, 0},
		{[]Word{_M, _M}, []Word{_M, _M}, []Word{_M - 1, _M}, 1},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := make([]Word, len(d.x))
			c := addVV(z, d.x, d.y)
			if !reflect.DeepEqual(z, d.z) || c != d.c {
				t.Fatalf("addVV(%v, %v) = %v, %d; expected %v, %d", d.x, d.y, z, c, d.z, d.c)
			}
			// x = z - y
			b := subVV(z, z, d.y)
			if !reflect.DeepEqual(z, d.x) || b != d.c {
				t.Fatalf("subVV(%v, %v) = %v, %d; expected %v, %d", d.z, d.y, z, b, d.x, d.c)
			}
		})
	}
}

func TestMulAddVWW(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := rndV(rnd.Intn(8) + 1)
		y, r := rndW(), rndW()
		z := make([]Word, len(x))
		c := mulAddVWW(z, x, y, r)

		e := new(big.Int).Mul(vBig(x), big.NewInt(int64(y)))
		e.Add(e, big.NewInt(int64(r)))
		got := vBig(append(z, c))
		if got.Cmp(e) != 0 {
			t.Fatalf("mulAddVWW(%v, %d, %d) = %v; expected %v", x, y, r, got, e)
		}
	}
}

func TestShlShrVU(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := rndV(rnd.Intn(8) + 1)
		s := uint(rnd.Intn(_W))
		n := len(x)

		z := make([]Word, n)
		c := shlVU(z, x, s)
		e := new(big.Int).Lsh(vBig(x), s)
		if got := vBig(append(z, c)); got.Cmp(e) != 0 {
			t.Fatalf("shlVU(%v, %d) = %v; expected %v", x, s, got, e)
		}

		shrVU(z, x, s)
		e = new(big.Int).Rsh(vBig(x), s)
		if got := vBig(z); got.Cmp(e) != 0 {
			t.Fatalf("shrVU(%v, %d) = %v; expected %v", x, s, got, e)
		}
	}
}

func TestDivWVW(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := rndV(rnd.Intn(8) + 1)
		y := rndW() | 1
		z := make([]Word, len(x))
		r := divWVW(z, 0, x, y)

		q, rr := new(big.Int).QuoRem(vBig(x), big.NewInt(int64(y)), new(big.Int))
		if vBig(z).Cmp(q) != 0 || uint64(r) != rr.Uint64() {
			t.Fatalf("divWVW(%v, %d) = %v, %d; expected %v, %v", x, y, z, r, q, rr)
		}
	}
}

func TestDivWW(t *testing.T) {
	for i := 0; i < 1e5; i++ {
		v := rndW() | _H
		u1 := rndW() % v
		u0 := rndW()
		q, r := divWW(u1, u0, v)
		qq, rr := bits.Div32(uint32(u1), uint32(u0), uint32(v))
		if q != Word(qq) || r != Word(rr) {
			t.Fatalf("Got (%d,%d)/%d = %d, %d. Expected %d %d", u1, u0, v, q, r, qq, rr)
		}
	}
}

func TestMaxPow(t *testing.T) {
	for b := 2; b <= MaxBase; b++ {
		p, n := maxPow(Word(b))
		if pow(Word(b), n) != p {
			t.Fatalf("maxPow(%d) = %d, %d; pow(%d, %d) = %d", b, p, n, b, n, pow(Word(b), n))
		}
		// p*b must overflow a Word
		if uint64(p)*uint64(b) <= _M {
			t.Fatalf("maxPow(%d) = %d, %d is not the largest power", b, p, n)
		}
	}
}

func TestMsd(t *testing.T) {
	td := []struct {
		x []Word
		i int
	}{
		{[]Word{0}, 0},
		{[]Word{0, 0, 0}, 0},
		{[]Word{1, 0, 0}, 0},
		{[]Word{0, 1, 0}, 1},
		{[]Word{0, 0, _M}, 2},
	}
	for _, d := range td {
		if i := msd(d.x); i != d.i {
			t.Errorf("msd(%v) = %d; expected %d", d.x, i, d.i)
		}
	}
}

var benchW Word

func BenchmarkMulAddVWW(b *testing.B) {
	x := rndV(100)
	z := make([]Word, len(x))
	y := rndW()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchW = mulAddVWW(z, x, y, 0)
	}
}
