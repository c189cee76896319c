package puzzle

import (
	"reflect"
	"testing"
)

// unsolvableGrid leaves no possible digit at (1,6): its row
// holds 9, 4, 5, its column 1, 6, 7, 8, and its box the rest.
var unsolvableGrid = Grid{
	{0, 0, 0, 0, 0, 0, 1, 2, 3},
	{0, 0, 9, 0, 0, 0, 0, 4, 5},
	{0, 0, 0, 0, 0, 0, 6, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 7, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 8, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

func TestIntsetRangeRemove(t *testing.T) {
	ps := newIntsetRange(SideLen)
	if got := []int(ps); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Fatalf("newIntsetRange(9) = %v", got)
	}
	if !ps.remove(5) {
		t.Errorf("remove(5) reported absent")
	}
	if ps.remove(5) {
		t.Errorf("second remove(5) reported present")
	}
	if ps.remove(10) {
		t.Errorf("remove(10) reported present")
	}
	if got := []int(ps); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 6, 7, 8, 9}) {
		t.Errorf("after removals the set is %v", got)
	}
}

func TestNewMarkupCandidates(t *testing.T) {
	g := sudoku1.Copy()
	m, diags, err := NewMarkup(g)
	if err != nil {
		t.Fatalf("NewMarkup failed: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("NewMarkup gave diagnostics %v for a 26-clue grid", diags)
	}
	cases := []struct {
		row, col int
		want     []int
	}{
		{0, 6, []int{8}},
		{4, 3, []int{1, 3, 4, 8}},
	}
	for _, tc := range cases {
		got := m.Candidates(tc.row, tc.col)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("candidates of (%d,%d) are %v, expected %v",
				tc.row, tc.col, got, tc.want)
		}
	}
}

func TestNewMarkupFilledSingleton(t *testing.T) {
	g := sudoku1.Copy()
	m, _, err := NewMarkup(g)
	if err != nil {
		t.Fatalf("NewMarkup failed: %v", err)
	}
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if v := g[r][c]; v != 0 {
				if want := []int{v}; !reflect.DeepEqual(m.Candidates(r, c), want) {
					t.Errorf("filled cell (%d,%d) has candidates %v, expected %v",
						r, c, m.Candidates(r, c), want)
				}
			}
		}
	}
}

func TestNewMarkupFewClues(t *testing.T) {
	var empty Grid
	m, diags, err := NewMarkup(&empty)
	if err != nil {
		t.Fatalf("NewMarkup of empty grid failed: %v", err)
	}
	if len(diags) != 1 || diags[0].Condition != MultipleSolutionsCondition {
		t.Fatalf("NewMarkup of empty grid gave diagnostics %v, "+
			"expected one multiple-solutions warning", diags)
	}
	all := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := m.Candidates(4, 4); !reflect.DeepEqual(got, all) {
		t.Errorf("empty-grid candidates are %v, expected all nine digits", got)
	}
}

func TestNewMarkupContradiction(t *testing.T) {
	g := unsolvableGrid.Copy()
	m, _, err := NewMarkup(g)
	if err == nil {
		t.Fatalf("NewMarkup of unsolvable grid succeeded: %v", m)
	}
	if m != nil {
		t.Errorf("NewMarkup returned a partial markup alongside the error")
	}
	pe, ok := err.(Error)
	if !ok {
		t.Fatalf("NewMarkup gave a non-puzzle error: %v", err)
	}
	if pe.Scope != CellScope || pe.Condition != ContradictionCondition {
		t.Errorf("NewMarkup gave scope %v condition %v, expected a cell contradiction",
			pe.Scope, pe.Condition)
	}
	// one-based coordinates of the doomed cell
	if want := (ErrorData{2, 7}); !reflect.DeepEqual(pe.Values, want) {
		t.Errorf("contradiction located at %v, expected %v", pe.Values, want)
	}
}

func TestNewMarkupAlreadySolved(t *testing.T) {
	g := solvedGrid.Copy()
	_, _, err := NewMarkup(g)
	if err == nil {
		t.Fatalf("NewMarkup of a solved grid succeeded")
	}
	pe, ok := err.(Error)
	if !ok {
		t.Fatalf("NewMarkup gave a non-puzzle error: %v", err)
	}
	if pe.Condition != AlreadySolvedCondition {
		t.Errorf("NewMarkup gave condition %v, expected already-solved", pe.Condition)
	}
}
