// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package large

import "fmt"

// A Sign is the sign of a Rat. Negative orders below Positive.
type Sign int8

// Signs.
const (
	Negative Sign = -1
	Positive Sign = 1
)

// Mul returns the sign of the product of two values with signs s and t.
func (s Sign) Mul(t Sign) Sign {
	return s * t
}

// Neg returns the opposite of s.
func (s Sign) Neg() Sign {
	return -s
}

// Cmp compares s and t and returns -1, 0 or +1.
func (s Sign) Cmp(t Sign) int {
	switch {
	case s < t:
		return -1
	case s > t:
		return 1
	}
	return 0
}

func (s Sign) String() string {
	switch s {
	case Negative:
		return "-"
	case Positive:
		return "+"
	}
	return fmt.Sprintf("Sign(%d)", int8(s))
}

func (s Sign) valid() bool {
	return s == Negative || s == Positive
}
