// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides error latching calculators for large.Uint and
// large.Rat values.
//
// A Context has a working width. Operands are converted to that width before
// each operation: Uint operands that would lose significant digits cause an
// overflow error, while Rat operands are approximated as by
// (large.Rat).Resize. A Rat operand whose approximation has a zero
// denominator is an overflow error.
//
// A Context catches errors: if an operation fails, it returns a zero value of
// the context's width. Further operations with the context will be no-ops
// (they simply return zero values) until (*Context).Err is called to check
// for errors. This allows writing a sequence of operations and checking for
// errors once at the end:
//
//	c := context.New(4)
//	x := c.Mul(c.Uint(6), c.Uint(7))
//	y := c.Div(x, c.Uint(0))
//	if err := c.Err(); err != nil {
//		// division by zero
//	}
//
// Each latched error is logged at debug level to the context's logger.
package context

import (
	"fmt"

	"github.com/db47h/large"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// A Context is a wrapper around Uint and Rat operations that facilitates
// management of the working width and error handling. A Context must not be
// used concurrently by multiple goroutines.
type Context struct {
	width int
	err   error
	log   *zap.Logger
}

// New creates a new context with the given working width.
func New(width int) *Context {
	return new(Context).SetLogger(nil).SetWidth(width)
}

// Width returns the working width of c.
func (c *Context) Width() int {
	return c.width
}

// SetWidth sets c's working width and returns c. It panics if width < 1.
func (c *Context) SetWidth(width int) *Context {
	if width < 1 {
		panic(fmt.Sprintf("context: invalid width %d", width))
	}
	c.width = width
	return c
}

// SetLogger sets the logger used to report latched errors and returns c. A
// nil logger disables logging.
func (c *Context) SetLogger(log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	c.log = log
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

func (c *Context) fail(op string, err error) {
	c.err = err
	c.log.Debug("operation failed",
		zap.String("op", op),
		zap.Int("width", c.width),
		zap.Error(err))
}

func (c *Context) zero() large.Uint {
	return large.New(c.width)
}

func (c *Context) zeroRat() large.Rat {
	return large.NewRat(large.Positive, large.New(c.width), large.FromUint(c.width, uint(1)))
}

// fit converts x to c's width. It fails if x has more significant digits
// than the working width.
func (c *Context) fit(op string, x large.Uint) (large.Uint, bool) {
	if n := x.SignificantDigits(); n > c.width {
		c.fail(op, errors.Wrapf(large.ErrOverflow, "context: %s: operand with %d significant digits", op, n))
		return large.Uint{}, false
	}
	return x.Resize(c.width), true
}

// fitRat converts x to c's width. It fails if the numerator or denominator of
// x has more significant digits than the working width.
func (c *Context) fitRat(op string, x large.Rat) (large.Rat, bool) {
	if n := max(x.Num().SignificantDigits(), x.Den().SignificantDigits()); n > c.width {
		c.fail(op, errors.Wrapf(large.ErrOverflow, "context: %s: operand with %d significant digits", op, n))
		return c.zeroRat(), false
	}
	return x.Resize(c.width), true
}

// Uint returns v as a Uint of c's width.
func (c *Context) Uint(v uint64) large.Uint {
	if c.err != nil {
		return c.zero()
	}
	z, ok := c.fit("uint", large.FromUint(2, v))
	if !ok {
		return c.zero()
	}
	return z
}

// Rat returns num/den as a Rat of c's width. A zero denominator is an
// error.
func (c *Context) Rat(num int64, den uint64) large.Rat {
	if c.err != nil {
		return c.zeroRat()
	}
	if den == 0 {
		c.fail("rat", errors.Wrap(large.ErrDivideByZero, "context: rat"))
		return c.zeroRat()
	}
	x, _ := c.fitRat("rat", large.RatFromFrac(max(c.width, 2), num, den))
	return x
}

// ParseUint returns the value of s, as accepted by large.ParseUint with base
// 0, as a Uint of c's width.
func (c *Context) ParseUint(s string) large.Uint {
	if c.err != nil {
		return c.zero()
	}
	z, err := large.ParseUint(c.width, s, 0)
	if err != nil {
		c.fail("parse", err)
		return c.zero()
	}
	return z
}

// ParseRat returns the value of s, as accepted by large.ParseRat, as a Rat of
// c's width.
func (c *Context) ParseRat(s string) large.Rat {
	if c.err != nil {
		return c.zeroRat()
	}
	z, err := large.ParseRat(0, s)
	if err != nil {
		c.fail("parse", err)
		return c.zeroRat()
	}
	z, _ = c.fitRat("parse", z)
	return z
}

func (c *Context) binop(op string, x, y large.Uint, f func(x, y large.Uint) (large.Uint, error)) large.Uint {
	if c.err != nil {
		return c.zero()
	}
	x, ok := c.fit(op, x)
	if !ok {
		return c.zero()
	}
	if y, ok = c.fit(op, y); !ok {
		return c.zero()
	}
	z, err := f(x, y)
	if err != nil {
		c.fail(op, err)
		return c.zero()
	}
	return z
}

// Add returns x+y.
func (c *Context) Add(x, y large.Uint) large.Uint {
	return c.binop("add", x, y, large.Uint.Add)
}

// Sub returns x-y.
func (c *Context) Sub(x, y large.Uint) large.Uint {
	return c.binop("sub", x, y, large.Uint.Sub)
}

// Mul returns x*y.
func (c *Context) Mul(x, y large.Uint) large.Uint {
	return c.binop("mul", x, y, large.Uint.Mul)
}

// Div returns x/y.
func (c *Context) Div(x, y large.Uint) large.Uint {
	return c.binop("div", x, y, large.Uint.Div)
}

// Rem returns x%y.
func (c *Context) Rem(x, y large.Uint) large.Uint {
	return c.binop("rem", x, y, large.Uint.Rem)
}

// Gcd returns the greatest common divisor of x and y.
func (c *Context) Gcd(x, y large.Uint) large.Uint {
	return c.binop("gcd", x, y, func(x, y large.Uint) (large.Uint, error) {
		return x.GcdBinary(y), nil
	})
}

// Lcm returns the least common multiple of x and y.
func (c *Context) Lcm(x, y large.Uint) large.Uint {
	return c.binop("lcm", x, y, large.Uint.Lcm)
}

// Sqrt returns ⌊√x⌋.
func (c *Context) Sqrt(x large.Uint) large.Uint {
	if c.err != nil {
		return c.zero()
	}
	x, ok := c.fit("sqrt", x)
	if !ok {
		return c.zero()
	}
	return x.Sqrt()
}

func (c *Context) ratop(op string, x, y large.Rat, f func(x, y large.Rat) (large.Rat, error)) large.Rat {
	if c.err != nil {
		return c.zeroRat()
	}
	x, y = x.Resize(c.width), y.Resize(c.width)
	if x.Den().IsZero() || y.Den().IsZero() {
		c.fail(op, errors.Wrapf(large.ErrOverflow, "context: %s: operand does not fit %d digits", op, c.width))
		return c.zeroRat()
	}
	z, err := f(x, y)
	if err != nil {
		c.fail(op, err)
		return c.zeroRat()
	}
	return z
}

// AddRat returns x+y.
func (c *Context) AddRat(x, y large.Rat) large.Rat {
	return c.ratop("add", x, y, func(x, y large.Rat) (large.Rat, error) {
		return x.Add(y), nil
	})
}

// SubRat returns x-y.
func (c *Context) SubRat(x, y large.Rat) large.Rat {
	return c.ratop("sub", x, y, func(x, y large.Rat) (large.Rat, error) {
		return x.Sub(y), nil
	})
}

// MulRat returns x*y.
func (c *Context) MulRat(x, y large.Rat) large.Rat {
	return c.ratop("mul", x, y, func(x, y large.Rat) (large.Rat, error) {
		return x.Mul(y), nil
	})
}

// DivRat returns x/y.
func (c *Context) DivRat(x, y large.Rat) large.Rat {
	return c.ratop("div", x, y, large.Rat.Div)
}
