// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lattice implements exact multiplication of decimal numbers using the
lattice (grid) method.

Each operand is reduced to an unsigned sequence of decimal digits, a scale (the
number of digits after the decimal point) and a sign. The digits of both
operands are then multiplied pairwise into a grid where every cell holds the
tens and ones digits of a one-digit by one-digit product:

	    1   7
	  +---+---+
	  |0/2|1/4| 2
	  +---+---+
	  |0/8|5/6| 8
	  +---+---+

The grid is then summed along its anti-diagonals, from the least significant
corner to the most significant one, propagating carries. The ones digit of a
cell lands on its own diagonal and the tens digit on the next, more significant
one. For 17 × 28 the diagonals read 6, then 8+4+5 = 17, then 2+0+1 plus the
carry = 4 and finally 0, which gives 476.

Operands are built with one of the constructors Int, Uint, Float, Float32,
BigInt or Text:

	s, err := lattice.Multiply(lattice.Text("1234567890123"), lattice.Float(13.23))
	// s == "16333333186327.29"

Floating-point operands are converted using the shortest decimal
representation that round-trips to the same value, so Float(0.1) is exactly
0.1 and not the binary approximation stored in the float64.

Results are always in minimal form: no leading zeros except a single 0 before
the decimal point, no trailing zeros after it, and a leading minus sign only if
the product is strictly negative.

Mul returns a *Product that also retains the grid, for display:

	p, _ := lattice.Mul(lattice.Int(17), lattice.Int(28))
	fmt.Printf("%+v\n", p)

prints

	(0/2)	(1/4)
	(0/8)	(5/6)
	= 476

All functions in this package are safe for concurrent use.
*/
package lattice
