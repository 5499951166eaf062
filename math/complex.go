// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "fmt"

// A Field is a number type closed under addition, subtraction and
// multiplication, like large.Rat.
type Field[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
}

// A Complex is the complex number R + I·i.
type Complex[T Field[T]] struct {
	R, I T
}

// Add returns x+y.
func (x Complex[T]) Add(y Complex[T]) Complex[T] {
	return Complex[T]{x.R.Add(y.R), x.I.Add(y.I)}
}

// Sub returns x-y.
func (x Complex[T]) Sub(y Complex[T]) Complex[T] {
	return Complex[T]{x.R.Sub(y.R), x.I.Sub(y.I)}
}

// Mul returns x*y.
func (x Complex[T]) Mul(y Complex[T]) Complex[T] {
	// (a + bi)(c + di) = (ac - bd) + (bc + ad)i
	return Complex[T]{
		R: x.R.Mul(y.R).Sub(x.I.Mul(y.I)),
		I: x.I.Mul(y.R).Add(x.R.Mul(y.I)),
	}
}

// AbsSquared returns |x|², R² + I².
func (x Complex[T]) AbsSquared() T {
	return x.R.Mul(x.R).Add(x.I.Mul(x.I))
}

func (x Complex[T]) String() string {
	return fmt.Sprintf("%v + %vi", x.R, x.I)
}
