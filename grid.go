// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"fmt"
	"strings"
)

// A Cell holds the product of two decimal digits, split into its tens and
// ones digits.
type Cell struct {
	Tens, Ones uint8
}

// A Grid is the lattice of digit products: g[row][col] is the product of the
// row-th digit of the right operand and the col-th digit of the left operand,
// both counted from the most significant digit.
type Grid [][]Cell

// buildGrid returns the len(r) × len(l) grid of digit products.
func buildGrid(l, r []byte) Grid {
	g := make(Grid, len(r))
	cells := make([]Cell, len(r)*len(l))
	for row, rd := range r {
		g[row], cells = cells[:len(l):len(l)], cells[len(l):]
		for col, ld := range l {
			if ld > 9 || rd > 9 {
				panic(fmt.Sprintf("lattice: invalid digit in grid (%d, %d)", ld, rd))
			}
			p := ld * rd
			g[row][col] = Cell{p / 10, p % 10}
		}
	}
	return g
}

// Rows returns the number of rows in g, that is the digit count of the right
// operand.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns in g, that is the digit count of the left
// operand.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// String renders g one row per line, with cells printed as "(tens/ones)" and
// separated by tabs.
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		for col, c := range row {
			if col > 0 {
				b.WriteByte('\t')
			}
			b.WriteByte('(')
			b.WriteByte('0' + c.Tens)
			b.WriteByte('/')
			b.WriteByte('0' + c.Ones)
			b.WriteByte(')')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
