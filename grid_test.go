// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildGrid(t *testing.T) {
	for _, d := range []struct {
		l, r string
		want Grid
	}{
		{"17", "28", Grid{
			{{0, 2}, {1, 4}},
			{{0, 8}, {5, 6}},
		}},
		{"9", "9", Grid{{{8, 1}}}},
		{"1716", "8", Grid{
			{{0, 8}, {5, 6}, {0, 8}, {4, 8}},
		}},
		{"8", "1716", Grid{
			{{0, 8}},
			{{5, 6}},
			{{0, 8}},
			{{4, 8}},
		}},
		{"305", "20", Grid{
			{{0, 6}, {0, 0}, {1, 0}},
			{{0, 0}, {0, 0}, {0, 0}},
		}},
		{"", "12", Grid{{}, {}}},
		{"12", "", Grid{}},
	} {
		g := buildGrid(digits(d.l), digits(d.r))
		if diff := cmp.Diff(d.want, g); diff != "" {
			t.Errorf("%s × %s: grid mismatch (-want +got):\n%s", d.l, d.r, diff)
		}
		if g.Rows() != len(d.r) {
			t.Errorf("%s × %s: Rows() = %d. Want %d", d.l, d.r, g.Rows(), len(d.r))
		}
		if len(d.r) > 0 && g.Cols() != len(d.l) {
			t.Errorf("%s × %s: Cols() = %d. Want %d", d.l, d.r, g.Cols(), len(d.l))
		}
	}
}

func TestBuildGridCells(t *testing.T) {
	// every pair of digits
	all := digits("0123456789")
	g := buildGrid(all, all)
	for row := range g {
		for col, c := range g[row] {
			if p := row * col; int(c.Tens) != p/10 || int(c.Ones) != p%10 {
				t.Errorf("%d × %d = (%d/%d)", col, row, c.Tens, c.Ones)
			}
		}
	}
}

func TestBuildGridInvalidDigit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for digit 10")
		}
	}()
	buildGrid([]byte{1, 10}, []byte{1})
}

func TestGridString(t *testing.T) {
	g := buildGrid(digits("17"), digits("28"))
	want := "(0/2)\t(1/4)\n(0/8)\t(5/6)\n"
	if s := g.String(); s != want {
		t.Errorf("String() = %q. Want %q", s, want)
	}
	if s := (Grid{}).String(); s != "" {
		t.Errorf("empty grid String() = %q", s)
	}
}
