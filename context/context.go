// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides error-accumulating contexts for lattice
// multiplications.
//
// A Context catches invalid operands: if a multiplication fails, it returns a
// zero result and records the error. Further operations with the context are
// no-ops until (*Context).Err is called to check for errors. This allows a
// sequence of multiplications to be written without checking an error after
// each step:
//
//	ctx := context.New()
//	a := ctx.Mul(lattice.Text(price), lattice.Int(qty))
//	b := ctx.Mul(lattice.Text(a), lattice.Text(rate))
//	if err := ctx.Err(); err != nil {
//		// handle err
//	}
//
// A Context is not safe for concurrent use.
package context

import (
	"github.com/db47h/lattice"
)

// A Context wraps lattice multiplications and keeps the first error they
// report.
type Context struct {
	err error
	n   int // multiplications performed since the last call to Err
}

// New returns a new Context with no error.
func New() *Context {
	return new(Context)
}

// Mul returns the decimal text of x × y. If c holds an error, or if x or y is
// invalid, Mul returns "".
func (c *Context) Mul(x, y lattice.Operand) string {
	if z := c.Product(x, y); z != nil {
		return z.String()
	}
	return ""
}

// Product is like Mul but returns the full *lattice.Product. It returns nil if
// c holds an error or if x or y is invalid.
func (c *Context) Product(x, y lattice.Operand) *lattice.Product {
	if c.err != nil {
		return nil
	}
	z, err := lattice.Mul(x, y)
	if err != nil {
		c.err = err
		return nil
	}
	c.n++
	return z
}

// Count returns the number of successful multiplications since the last call
// to Err.
func (c *Context) Count() int {
	return c.n
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	c.n = 0
	return
}
