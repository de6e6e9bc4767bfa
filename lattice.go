// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"fmt"
)

// A Product is the result of a lattice multiplication. It keeps the grid the
// result was summed from.
type Product struct {
	number
	grid Grid
}

// Mul multiplies x by y. If either operand is invalid, it returns a nil
// *Product and an error wrapping ErrInvalidOperand.
func Mul(x, y Operand) (*Product, error) {
	l, err := x.normalize()
	if err != nil {
		return nil, err
	}
	r, err := y.normalize()
	if err != nil {
		return nil, err
	}

	z := &Product{grid: buildGrid(l.digits, r.digits)}
	z.digits = sumDiagonals(z.grid, len(l.digits), len(r.digits))
	z.scale = l.scale + r.scale
	z.neg = l.neg != r.neg
	z.trim()
	if z.isZero() {
		z.neg = false
	}
	return z, nil
}

// Multiply returns the product of x and y as minimal decimal text: no leading
// zeros except a single 0 before the decimal point, no trailing zeros after
// it, and a leading '-' if and only if the product is strictly negative.
func Multiply(x, y Operand) (string, error) {
	z, err := Mul(x, y)
	if err != nil {
		return "", err
	}
	return z.String(), nil
}

// MustMultiply is like Multiply but panics if either operand is invalid.
func MustMultiply(x, y Operand) string {
	s, err := Multiply(x, y)
	if err != nil {
		panic(err)
	}
	return s
}

// Grid returns the grid of digit products x was computed from. The grid is
// shared with x and must not be modified.
func (x *Product) Grid() Grid {
	return x.grid
}

// Sign returns -1, 0 or +1 depending on whether x is negative, zero or
// positive.
func (x *Product) Sign() int {
	switch {
	case x.isZero():
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// Scale returns the number of digits after the decimal point in the minimal
// representation of x.
func (x *Product) Scale() int {
	return x.scale
}

// Append appends the decimal text of x to buf and returns the extended buffer.
func (x *Product) Append(buf []byte) []byte {
	return x.number.append(buf)
}

// String returns x as minimal decimal text, or "<nil>" for a nil x.
func (x *Product) String() string {
	if x == nil {
		return "<nil>"
	}
	return x.number.String()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Product) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.Append(nil), nil
}

var _ fmt.Formatter = (*Product)(nil)

// Format implements fmt.Formatter. The 'v' and 's' verbs print the decimal
// text of x. With the '+' flag, %+v prints the grid first, followed by a line
// of the form "= 476".
func (x *Product) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
	default:
		fmt.Fprintf(s, "%%!%c(*lattice.Product=%s)", verb, x.String())
		return
	}
	if x == nil {
		s.Write([]byte("<nil>"))
		return
	}
	if verb == 'v' && s.Flag('+') {
		s.Write([]byte(x.grid.String()))
		s.Write([]byte("= "))
	}
	s.Write(x.Append(nil))
}
