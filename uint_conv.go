// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between Uint values and their textual
// representation.

package large

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// decimal rendering works on chunks of 9 decimal digits
const (
	decChunk      = 1000000000
	decChunkWidth = 9
)

// DigitsLE returns the digits of x in the given base, least significant
// first. The sequence always yields at least one digit; zero yields a single
// 0. Each iteration over the returned sequence starts over from x.
//
// DigitsLE panics if base < 2.
func (x Uint) DigitsLE(base Word) iter.Seq[Word] {
	if base < 2 {
		panic(fmt.Sprintf("large: invalid base %d", base))
	}
	n := len(x.w)
	b := FromUint(n, base)
	return func(yield func(Word) bool) {
		v := x
		for first := true; first || !v.IsZero(); first = false {
			q, r := must2(v.DivRem(b))
			v = q
			// r < base, so it fits in one digit
			if !yield(r.w[0]) {
				return
			}
		}
	}
}

func must2(q, r Uint, err error) (Uint, Uint) {
	if err != nil {
		panic(fmt.Sprintf("large: BUG: %v", err))
	}
	return q, r
}

// String returns the decimal representation of x.
func (x Uint) String() string {
	return string(x.Append(nil, 10))
}

// Text returns the string representation of x in the given base. Base must be
// between 2 and MaxBase, inclusive. The result uses the lower-case letters
// 'a' to 'z' for digit values 10 to 35. No prefix (such as "0x") is added.
func (x Uint) Text(base int) string {
	return string(x.Append(nil, base))
}

// Append appends the string representation of x, as generated by x.Text(base),
// to buf and returns the extended buffer.
func (x Uint) Append(buf []byte, base int) []byte {
	if base < 2 || base > MaxBase {
		panic(fmt.Sprintf("large: invalid base %d", base))
	}
	if len(x.w) == 0 {
		return append(buf, '0')
	}
	if base == 10 {
		return x.appendDecimal(buf)
	}
	i := len(buf)
	for d := range x.DigitsLE(Word(base)) {
		buf = append(buf, digits[d])
	}
	slices.Reverse(buf[i:])
	return buf
}

// appendDecimal renders x in chunks of 9 decimal digits. The most significant
// chunk is printed as is, the others are zero-padded.
func (x Uint) appendDecimal(buf []byte) []byte {
	var chunks []Word
	for d := range x.DigitsLE(decChunk) {
		chunks = append(chunks, d)
	}
	i := len(chunks) - 1
	buf = strconv.AppendUint(buf, uint64(chunks[i]), 10)
	for i--; i >= 0; i-- {
		var t [decChunkWidth]byte
		for j, d := len(t)-1, chunks[i]; j >= 0; j-- {
			t[j] = '0' + byte(d%10)
			d /= 10
		}
		buf = append(buf, t[:]...)
	}
	return buf
}

var _ fmt.Formatter = Uint{}

// Format implements fmt.Formatter. It accepts the formats
// 'b' (binary), 'o' (octal with 0 prefix), 'O' (octal with 0o prefix),
// 'd' (decimal), 'x' (lowercase hexadecimal), and
// 'X' (uppercase hexadecimal).
// Also supported are the full suite of package fmt's format
// flags for integral types, except for '+' and ' ': '#' for alternate
// forms, '0' for zero padding and '-' for left or right justification.
func (x Uint) Format(s fmt.State, ch rune) {
	var base int
	switch ch {
	case 'b':
		base = 2
	case 'o', 'O':
		base = 8
	case 'd', 's', 'v':
		base = 10
	case 'x', 'X':
		base = 16
	default:
		// unknown format
		fmt.Fprintf(s, "%%!%c(large.Uint=%s)", ch, x.String())
		return
	}

	prefix := ""
	if s.Flag('#') {
		switch ch {
		case 'b':
			prefix = "0b"
		case 'o':
			prefix = "0"
		case 'x':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}
	if ch == 'O' {
		prefix = "0o"
	}

	buf := x.Append(nil, base)
	if ch == 'X' {
		buf = bytes.ToUpper(buf)
	}

	// number of characters for the three classes of number padding
	var left, zeros, right int
	length := len(prefix) + len(buf)
	if width, ok := s.Width(); ok && length < width {
		switch d := width - length; {
		case s.Flag('-'):
			right = d
		case s.Flag('0'):
			zeros = d
		default:
			left = d
		}
	}

	writeMultiple(s, " ", left)
	writeMultiple(s, prefix, 1)
	writeMultiple(s, "0", zeros)
	_, _ = s.Write(buf)
	writeMultiple(s, " ", right)
}

// write count copies of text to s
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			_, _ = s.Write(b)
		}
	}
}

// scanUint reads the longest prefix of r representing an unsigned integer in
// the given base and returns it as a Uint of the given width, the actual base
// and the number of digits read. If width is 0, the result has the smallest
// width that holds the value.
//
// For base 0, the number prefix determines the actual base: A prefix of
// "0b" or "0B" selects base 2, "0", "0o" or "0O" selects base 8, and "0x" or
// "0X" selects base 16. Otherwise the selected base is 10 and no prefix is
// accepted. For base 0, an underscore character "_" may appear between a
// base prefix and an adjacent digit, and between successive digits.
//
// If the value does not fit a non-zero width, scanUint reads it entirely and
// returns an error wrapping ErrOverflow.
func scanUint(r io.ByteScanner, width, base int) (z Uint, b, count int, err error) {
	if base != 0 && (base < 2 || base > MaxBase) {
		panic(fmt.Sprintf("large: invalid number base %d", base))
	}
	grow := width == 0
	if grow {
		width = 1
	}

	// prev encodes the previously seen char: it is one
	// of '_', '0' (a digit), or '.' (anything else). A
	// valid separator '_' may only occur after a digit
	// and if base == 0.
	prev := '.'
	invalSep := false

	// one char look-ahead
	ch, err := r.ReadByte()

	// determine actual base
	b, prefix := base, 0
	if base == 0 {
		// actual base is 10 unless there's a base prefix
		b = 10
		if err == nil && ch == '0' {
			prev = '0'
			count = 1
			ch, err = r.ReadByte()
			if err == nil {
				// possibly one of 0b, 0B, 0o, 0O, 0x, 0X
				switch ch {
				case 'b', 'B':
					b, prefix = 2, 'b'
				case 'o', 'O':
					b, prefix = 8, 'o'
				case 'x', 'X':
					b, prefix = 16, 'x'
				default:
					b, prefix = 8, '0'
				}
				if prefix != 0 {
					count = 0 // prefix is not counted
					if prefix != '0' {
						ch, err = r.ReadByte()
					}
				}
			}
		}
	}

	acc := make([]Word, width)
	ovf := false
	mulAdd := func(m, a Word) {
		c := mulAddVWW(acc, acc, m, a)
		if c == 0 {
			return
		}
		if grow {
			acc = append(acc, c)
		} else {
			ovf = true
		}
	}

	// convert string
	// Algorithm: Collect digits in groups of at most n digits in di
	// and then use mulAddVWW for every such group to add them to the
	// result.
	b1 := Word(b)
	bn, n := maxPow(b1) // at most n digits in base b1 fit into Word
	di := Word(0)       // 0 <= di < b1**i < bn
	i := 0              // 0 <= i < n
	for err == nil {
		if ch == '_' && base == 0 {
			if prev != '0' {
				invalSep = true
			}
			prev = '_'
		} else {
			// convert rune into digit value d1
			var d1 Word
			switch {
			case '0' <= ch && ch <= '9':
				d1 = Word(ch - '0')
			case 'a' <= ch && ch <= 'z':
				d1 = Word(ch - 'a' + 10)
			case 'A' <= ch && ch <= 'Z':
				d1 = Word(ch - 'A' + 10)
			default:
				d1 = MaxBase + 1
			}
			if d1 >= b1 {
				err = r.UnreadByte() // ch does not belong to number anymore
				break
			}
			prev = '0'
			count++

			// collect d1 in di
			di = di*b1 + d1
			i++

			// if di is "full", add it to the result
			if i == n {
				mulAdd(bn, di)
				di = 0
				i = 0
			}
		}

		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}

	// other errors take precedence over invalid separators
	if err == nil && (invalSep || prev == '_') {
		err = errInvalSep
	}

	if count == 0 {
		// no digits found
		if prefix == '0' {
			// there was only the octal prefix 0 (possibly followed by separators and digits > 7);
			// interpret as decimal 0
			return Uint{acc}, 10, 1, err
		}
		err = errNoDigits // fall through; result will be 0
	}

	// add remaining digits to result
	if i > 0 {
		mulAdd(pow(b1, i), di)
	}
	if ovf && err == nil {
		err = overflow("scan", width)
	}
	return Uint{acc}, b, count, err
}

// ParseUint returns the value of s in the given base as a Uint of the given
// width. The entire string (not just a prefix) must be valid. Base prefixes
// and separators are accepted as for fmt's %v verb when base is 0 (see
// scanUint). If width is 0, the result has the smallest width that holds the
// value.
//
// If the value does not fit the width, ParseUint returns an error wrapping
// ErrOverflow.
func ParseUint(width int, s string, base int) (Uint, error) {
	if width < 0 {
		checkWidth(width)
	}
	r := strings.NewReader(s)
	z, _, _, err := scanUint(r, width, base)
	if err == nil {
		err = expectEOF(r)
	}
	if err != nil {
		return Uint{}, errors.WithMessagef(err, "large: parsing %q", s)
	}
	return z, nil
}

var _ fmt.Scanner = (*Uint)(nil)

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned number. It accepts the formats 'b' (binary), 'o' (octal),
// 'd' (decimal), 'x' (lowercase hexadecimal), 'X' (uppercase hexadecimal),
// 's' and 'v' (base prefix detection). z keeps its width, unless it is 0 in
// which case z gets the smallest width that holds the value.
func (z *Uint) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace() // skip leading space characters
	base := 0
	switch ch {
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'd':
		base = 10
	case 'x', 'X':
		base = 16
	case 's', 'v':
		// let scan determine the base
	default:
		return errors.New("large: Uint.Scan: invalid verb")
	}
	x, _, _, err := scanUint(byteReader{s}, len(z.w), base)
	if err != nil {
		return err
	}
	*z = x
	return nil
}
