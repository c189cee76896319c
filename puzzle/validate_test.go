package puzzle

import (
	"testing"
)

/*

Reference grids for the validator, each with exactly one kind of
violation.  The expected reasons are the solver's reference
diagnostic messages and must be reproduced byte for byte.

*/

var badRowGrid = Grid{
	{0, 0, 0, 0, 0, 7, 0, 0, 0},
	{0, 0, 0, 0, 0, 9, 5, 0, 4},
	{0, 0, 0, 0, 5, 0, 1, 6, 9},
	{0, 8, 0, 0, 0, 0, 3, 0, 5},
	{0, 7, 5, 0, 0, 2, 2, 9, 0},
	{4, 0, 6, 0, 0, 0, 0, 8, 0},
	{7, 6, 2, 0, 8, 0, 0, 0, 0},
	{1, 0, 3, 9, 0, 0, 0, 0, 0},
	{0, 0, 0, 6, 0, 0, 0, 0, 0},
}

var badColGrid = Grid{
	{0, 0, 0, 0, 0, 7, 5, 0, 0},
	{0, 0, 0, 0, 0, 9, 0, 0, 4},
	{0, 0, 0, 0, 5, 0, 1, 6, 9},
	{0, 8, 0, 0, 0, 0, 3, 0, 5},
	{0, 7, 5, 0, 0, 0, 2, 9, 0},
	{4, 0, 6, 0, 0, 0, 0, 8, 0},
	{7, 6, 2, 0, 8, 0, 0, 0, 0},
	{1, 0, 3, 9, 0, 0, 5, 0, 0},
	{0, 0, 0, 6, 0, 0, 0, 0, 0},
}

var badBoxGrid = Grid{
	{0, 0, 0, 0, 0, 7, 5, 0, 0},
	{0, 0, 0, 0, 0, 9, 0, 5, 4},
	{0, 0, 0, 0, 5, 0, 1, 6, 9},
	{0, 8, 0, 0, 0, 0, 3, 0, 5},
	{0, 7, 5, 0, 0, 0, 2, 9, 0},
	{4, 0, 6, 0, 0, 0, 0, 8, 0},
	{7, 6, 2, 0, 8, 0, 0, 0, 0},
	{1, 0, 3, 9, 0, 0, 0, 0, 0},
	{0, 0, 0, 6, 0, 0, 0, 0, 0},
}

func TestCheckViolations(t *testing.T) {
	cases := []struct {
		name string
		grid Grid
		want string
	}{
		{"duplicate in row", badRowGrid, "There are too many 2's in row 5"},
		{"duplicate in column", badColGrid, "There are too many 5's in column 7"},
		{"duplicate in box", badBoxGrid, "There are too many 5's in box [1,3]"},
	}
	for _, tc := range cases {
		valid, reason := tc.grid.Check(false)
		if valid {
			t.Errorf("%s: Check reported valid", tc.name)
			continue
		}
		if reason != tc.want {
			t.Errorf("%s: Check gave reason %q, expected %q", tc.name, reason, tc.want)
		}
	}
}

func TestCheckValid(t *testing.T) {
	for _, g := range []*Grid{&sudoku1, &solvedGrid} {
		valid, reason := g.Check(false)
		if !valid {
			t.Errorf("Check reported invalid: %s", reason)
		}
		if reason != ValidReason {
			t.Errorf("Check gave reason %q, expected the %q sentinel", reason, ValidReason)
		}
	}
}

func TestCheckRequireComplete(t *testing.T) {
	if valid, _ := solvedGrid.Check(true); !valid {
		t.Errorf("Check(true) rejected a complete valid grid")
	}
	valid, reason := sudoku1.Check(true)
	if valid {
		t.Errorf("Check(true) accepted an incomplete grid")
	}
	want := "The sudoku is not complete, there are still empty cells"
	if reason != want {
		t.Errorf("Check(true) gave reason %q, expected %q", reason, want)
	}
}
