// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Uint and Rat values.

package large

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const uintGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. The width of x is
// marshaled along with its digits.
func (x Uint) GobEncode() ([]byte, error) {
	n := len(x.w)
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, 1+4+n*4)
	buf[0] = uintGobVersion
	binary.BigEndian.PutUint32(buf[1:], uint32(n))
	for i, w := range x.w {
		binary.BigEndian.PutUint32(buf[len(buf)-4*(i+1):], uint32(w))
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface. The decoded value
// keeps its encoded width.
func (z *Uint) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a zero-width value.
		*z = Uint{}
		return nil
	}
	if buf[0] != uintGobVersion {
		return errors.Errorf("large: Uint.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 5 {
		return errors.New("large: Uint.GobDecode: short buffer")
	}
	n := int(binary.BigEndian.Uint32(buf[1:]))
	if n < 1 || len(buf) != 5+4*n {
		return errors.Errorf("large: Uint.GobDecode: invalid width %d for %d bytes", n, len(buf))
	}
	w := make([]Word, n)
	for i := range w {
		w[i] = Word(binary.BigEndian.Uint32(buf[len(buf)-4*(i+1):]))
	}
	z.w = w
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. Only the
// value of x is marshaled, in decimal; its width is not.
func (x Uint) MarshalText() (text []byte, err error) {
	return x.Append(nil, 10), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. z keeps
// its width unless it is 0, in which case z gets the smallest width that
// holds the value. The text may use a base prefix.
func (z *Uint) UnmarshalText(text []byte) error {
	x, err := ParseUint(len(z.w), string(text), 0)
	if err != nil {
		return errors.WithMessagef(err, "large: cannot unmarshal %q into a *large.Uint", text)
	}
	*z = x
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The result is
// the same as x.String().
func (x Rat) MarshalText() (text []byte, err error) {
	return x.appendRat(nil, true), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. Like
// Uint.UnmarshalText, a zero-width z gets the smallest width that holds the
// value.
func (z *Rat) UnmarshalText(text []byte) error {
	x, err := ParseRat(z.Width(), string(text))
	if err != nil {
		return errors.WithMessagef(err, "large: cannot unmarshal %q into a *large.Rat", text)
	}
	*z = x
	return nil
}
