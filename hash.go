// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package large

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64 bits hash of the value of x. Only significant digits are
// hashed: equal values of different widths have the same hash.
func (x Uint) Hash() uint64 {
	d := xxhash.New()
	x.writeHash(d)
	return d.Sum64()
}

func (x Uint) writeHash(d *xxhash.Digest) {
	var buf [4]byte
	for _, w := range x.w[:msd(x.w)+1] {
		binary.LittleEndian.PutUint32(buf[:], uint32(w))
		_, _ = d.Write(buf[:])
	}
}

// Hash returns a 64 bits hash of x. Rats that are Equal have the same hash,
// regardless of their width: the hash is computed on the reduced form of x,
// and both signs of zero hash the same as +0/1.
func (x Rat) Hash() uint64 {
	x = x.Reduce()
	d := xxhash.New()
	if x.sign == Negative && !x.IsZero() {
		_, _ = d.Write([]byte{'-'})
	}
	x.num.writeHash(d)
	_, _ = d.Write([]byte{'/'})
	x.den.writeHash(d)
	return d.Sum64()
}
