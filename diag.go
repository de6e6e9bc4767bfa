// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

// sumDiagonals adds up the cells of the lcols × rrows grid g along its
// anti-diagonals and returns the digits of the product, most significant
// first. The result has lcols+rrows digits, possibly with leading zeros. An
// empty grid sums to a single 0.
//
// Position ix (0 being the least significant digit) receives the ones digits
// of the cells on diagonal ix and the tens digits of the cells on diagonal
// ix-1, where cell [row][col] lies on diagonal (rrows-1-row) + (lcols-1-col).
func sumDiagonals(g Grid, lcols, rrows int) []byte {
	if lcols == 0 || rrows == 0 {
		return []byte{0}
	}
	n := lcols + rrows
	z := make([]byte, n) // least significant first
	carry := 0
	for ix := 0; ix < n; ix++ {
		var sum int
		if ix < lcols {
			sum = sumInside(g, lcols, rrows, ix)
		} else {
			sum = sumOutside(g, lcols, rrows, ix)
		}
		sum += carry
		z[ix] = byte(sum % 10)
		carry = sum / 10
	}
	if carry != 0 {
		// cannot happen for a product of lcols by rrows digits
		if carry >= 10 {
			panic("lattice: carry overflow")
		}
		z = append(z, byte(carry))
	}

	// reverse
	for i, j := 0, len(z)-1; i < j; i, j = i+1, j-1 {
		z[i], z[j] = z[j], z[i]
	}
	return z
}

// sumInside returns the sum for a position ix < lcols. The diagonal still
// starts on the bottom row, so it is walked up from there: k rows above the
// bottom, the diagonal crosses column lcols-1-ix+k.
func sumInside(g Grid, lcols, rrows, ix int) int {
	sum := 0
	top := ix
	if top > rrows-1 {
		top = rrows - 1
	}
	for k := 0; k <= top; k++ {
		row := rrows - 1 - k
		col := lcols - 1 - ix + k
		sum += int(g[row][col].Ones)
		// the cell to the right is on diagonal ix-1
		if col+1 < lcols {
			sum += int(g[row][col+1].Tens)
		}
	}
	return sum
}

// sumOutside returns the sum for a position ix >= lcols. The diagonal has left
// the bottom row and starts on the leftmost column, so it is walked down row
// by row from the top.
func sumOutside(g Grid, lcols, rrows, ix int) int {
	sum := 0
	last := rrows - 1 - (ix - lcols)
	for row := 0; row <= last; row++ {
		// column of the cell on diagonal ix-1; its left neighbour is on
		// diagonal ix.
		col := lcols + rrows - 1 - ix - row
		if col < lcols {
			sum += int(g[row][col].Tens)
		}
		if col-1 >= 0 && col-1 < lcols {
			sum += int(g[row][col-1].Ones)
		}
	}
	return sum
}
