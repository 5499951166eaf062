// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between Rat values and strings.

package large

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// String returns x in the form "n/d", preceded by a minus sign if x is
// negative, -0 included.
func (x Rat) String() string {
	return string(x.appendRat(nil, true))
}

// RatString returns x in the form "n/d" if the denominator of x is not 1, and
// in the form "n" otherwise.
func (x Rat) RatString() string {
	return string(x.appendRat(nil, !x.IsInt()))
}

func (x Rat) appendRat(buf []byte, withDen bool) []byte {
	if x.sign == Negative {
		buf = append(buf, '-')
	}
	buf = x.num.Append(buf, 10)
	if withDen {
		buf = append(buf, '/')
		buf = x.den.Append(buf, 10)
	}
	return buf
}

// scanRat reads "[+-]num[/den]" from r. num and den are scanned with base
// prefix detection. A missing denominator is 1. If width is 0, the result has
// the smallest width that holds both num and den.
func scanRat(r io.ByteScanner, width int) (Rat, error) {
	neg, err := scanSign(r)
	if err != nil {
		return Rat{}, err
	}
	num, _, _, err := scanUint(r, width, 0)
	if err != nil {
		return Rat{}, err
	}
	den := one(len(num.w))
	ch, err := r.ReadByte()
	switch {
	case err == io.EOF:
		// no denominator
	case err != nil:
		return Rat{}, err
	case ch == '/':
		if den, _, _, err = scanUint(r, width, 0); err != nil {
			return Rat{}, err
		}
		if den.IsZero() {
			return Rat{}, divByZero("scan", len(den.w))
		}
	default:
		if err = r.UnreadByte(); err != nil {
			return Rat{}, err
		}
	}
	if width == 0 {
		width = max(num.SignificantDigits(), den.SignificantDigits())
		num, den = num.Resize(width), den.Resize(width)
	}
	z := Rat{Positive, num, den}
	if neg {
		z.sign = Negative
	}
	return z, nil
}

// ParseRat returns the value of s as a Rat of the given width. s must be of
// the form "[+-]num[/den]" where num and den are unsigned integers as
// accepted by ParseUint with base 0. The entire string must be valid. If width
// is 0, the result has the smallest width that holds both num and den.
//
// ParseRat returns an error wrapping ErrOverflow if num or den do not fit the
// width, and an error wrapping ErrDivideByZero if den is zero.
func ParseRat(width int, s string) (Rat, error) {
	if width < 0 {
		checkWidth(width)
	}
	r := strings.NewReader(s)
	z, err := scanRat(r, width)
	if err == nil {
		err = expectEOF(r)
	}
	if err != nil {
		return Rat{}, errors.WithMessagef(err, "large: parsing %q", s)
	}
	return z, nil
}

var _ fmt.Scanner = (*Rat)(nil)

// Scan is a support routine for fmt.Scanner. It accepts the formats 's' and
// 'v'. z keeps its width unless it is 0, in which case z gets the smallest
// width that holds the scanned value.
func (z *Rat) Scan(s fmt.ScanState, ch rune) error {
	if ch != 's' && ch != 'v' {
		return errors.New("large: Rat.Scan: invalid verb")
	}
	s.SkipSpace()
	x, err := scanRat(byteReader{s}, z.Width())
	if err != nil {
		return err
	}
	*z = x
	return nil
}
