package puzzle

import (
	"strings"
	"testing"
)

/*

Test grids

sudoku1 and its text form come from the solver's reference
puzzle; the invalid and solved grids exercise the validator and
the markup preconditions.

*/

var sudoku1Text = "000|007|000\n" +
	"000|009|504\n" +
	"000|050|169\n" +
	"---+---+---\n" +
	"080|000|305\n" +
	"075|000|290\n" +
	"406|000|080\n" +
	"---+---+---\n" +
	"762|080|000\n" +
	"103|900|000\n" +
	"000|600|000"

var sudoku1 = Grid{
	{0, 0, 0, 0, 0, 7, 0, 0, 0},
	{0, 0, 0, 0, 0, 9, 5, 0, 4},
	{0, 0, 0, 0, 5, 0, 1, 6, 9},
	{0, 8, 0, 0, 0, 0, 3, 0, 5},
	{0, 7, 5, 0, 0, 0, 2, 9, 0},
	{4, 0, 6, 0, 0, 0, 0, 8, 0},
	{7, 6, 2, 0, 8, 0, 0, 0, 0},
	{1, 0, 3, 9, 0, 0, 0, 0, 0},
	{0, 0, 0, 6, 0, 0, 0, 0, 0},
}

var solvedGrid = Grid{
	{1, 2, 3, 4, 5, 6, 7, 8, 9},
	{7, 8, 9, 1, 2, 3, 4, 5, 6},
	{4, 5, 6, 7, 8, 9, 1, 2, 3},
	{3, 1, 2, 6, 4, 5, 9, 7, 8},
	{6, 4, 5, 9, 7, 8, 3, 1, 2},
	{9, 7, 8, 3, 1, 2, 6, 4, 5},
	{2, 3, 1, 5, 6, 4, 8, 9, 7},
	{5, 6, 4, 8, 9, 7, 2, 3, 1},
	{8, 9, 7, 2, 3, 1, 5, 6, 4},
}

func TestParse(t *testing.T) {
	g, err := Parse(sudoku1Text)
	if err != nil {
		t.Fatalf("Parse of reference text failed: %v", err)
	}
	if *g != sudoku1 {
		t.Errorf("Parse gave %v, expected %v", *g, sudoku1)
	}
}

func TestParseSurroundingBlankLines(t *testing.T) {
	g, err := Parse("\n" + sudoku1Text + "\n\n")
	if err != nil {
		t.Fatalf("Parse with blank surround failed: %v", err)
	}
	if *g != sudoku1 {
		t.Errorf("Parse gave %v, expected %v", *g, sudoku1)
	}
}

func TestParseErrors(t *testing.T) {
	bad := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"truncated", strings.Join(strings.Split(sudoku1Text, "\n")[:10], "\n")},
		{"bad separator", strings.Replace(sudoku1Text, "---+---+---", "-----------", 1)},
		{"missing pipe", strings.Replace(sudoku1Text, "000|007|000", "000 007 000", 1)},
		{"short row", strings.Replace(sudoku1Text, "000|007|000", "000|007|00", 1)},
		{"non-digit", strings.Replace(sudoku1Text, "000|007|000", "000|0x7|000", 1)},
	}
	for _, tc := range bad {
		g, err := Parse(tc.text)
		if err == nil {
			t.Errorf("Parse of %s text succeeded: %v", tc.name, g)
			continue
		}
		pe, ok := err.(Error)
		if !ok {
			t.Errorf("Parse of %s text gave a non-puzzle error: %v", tc.name, err)
			continue
		}
		if pe.Scope != FormatScope || pe.Condition != BadFormatCondition {
			t.Errorf("Parse of %s text gave scope %v condition %v, expected format error",
				tc.name, pe.Scope, pe.Condition)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	g, err := Parse(sudoku1Text)
	if err != nil {
		t.Fatalf("Parse of reference text failed: %v", err)
	}
	if out := g.Format(); out != sudoku1Text {
		t.Errorf("Format gave:\n%s\nexpected:\n%s", out, sudoku1Text)
	}
}

func TestLoad(t *testing.T) {
	g, err := Load(strings.NewReader(sudoku1Text))
	if err != nil {
		t.Fatalf("Load of reference text failed: %v", err)
	}
	if *g != sudoku1 {
		t.Errorf("Load gave %v, expected %v", *g, sudoku1)
	}
}
