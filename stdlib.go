// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package large

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// debugLarge enables internal consistency checks that are too expensive for
// the hot paths of release code.
const debugLarge = false

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// MaxBase is the largest number base accepted for string conversions.
const MaxBase = 10 + ('z' - 'a' + 1)

// Errors returned by arithmetic operations. They are always returned wrapped
// with the name of the failing operation; use errors.Is to test for them.
var (
	// ErrDivideByZero is returned when the divisor of a division, remainder
	// or reciprocal is zero.
	ErrDivideByZero = errors.New("division by zero")
	// ErrOverflow is returned when a sum, difference or product does not fit
	// the width of its operands.
	ErrOverflow = errors.New("capacity overflow")
)

// scan errors
var (
	errNoDigits = errors.New("number has no digits")
	errInvalSep = errors.New("'_' must separate successive digits")
)

func overflow(op string, width int) error {
	return errors.Wrapf(ErrOverflow, "large: %s of %d-digit values", op, width)
}

func divByZero(op string, width int) error {
	return errors.Wrapf(ErrDivideByZero, "large: %s of %d-digit values", op, width)
}

// must unwraps the result of an operation that cannot fail because its
// operands were widened beforehand.
func must(z Uint, err error) Uint {
	if err != nil {
		panic(fmt.Sprintf("large: BUG: %v", err))
	}
	return z
}

func checkWidth(n int) {
	if n < 1 {
		panic(fmt.Sprintf("large: invalid width %d", n))
	}
}

// sameWidth returns the common width of x and y and panics if they differ.
func sameWidth(op string, x, y Uint) int {
	if len(x.w) != len(y.w) {
		panic(fmt.Sprintf("large: %s: mismatched widths %d and %d", op, len(x.w), len(y.w)))
	}
	checkWidth(len(x.w))
	return len(x.w)
}

// byteReader is a local wrapper around fmt.ScanState;
// it implements the ByteReader interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = errors.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}

// expectEOF reports an error if r has unread input.
func expectEOF(r io.ByteScanner) error {
	ch, err := r.ReadByte()
	if err == nil {
		return errors.Errorf("expected end of string, found %q", ch)
	}
	if err != io.EOF {
		return err
	}
	return nil
}

// pow returns x**n for n > 0, and 1 otherwise.
func pow(x Word, n int) (p Word) {
	// n == sum of bi * 2**i, for 0 <= i < imax, and bi is 0 or 1
	// thus x**n == product of x**(2**i) for all i where bi == 1
	// (Russian Peasant Method for exponentiation)
	p = 1
	for n > 0 {
		if n&1 != 0 {
			p *= x
		}
		x *= x
		n >>= 1
	}
	return
}
