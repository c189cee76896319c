package puzzle

/*

Sudoku grid representation

*/

// Dimensions of the (only) supported geometry.  The solver is
// deliberately specialized to the classic 9x9 board with 3x3
// boxes; nothing in the pipeline allocates per-cell beyond the
// candidate sets.
const (
	SideLen   = 9
	BoxLen    = 3
	CellCount = SideLen * SideLen
)

// MinClues is the smallest number of starting values known to
// admit a uniquely-solvable 9x9 Sudoku.  Grids with fewer clues
// are still solved, but they get a multiple-solutions diagnostic.
const MinClues = 17

// A Grid is a 9x9 Sudoku board in row-major order.  Assigned
// cell values range from 1 through 9; a value of 0 marks an
// empty cell.  Grids are mutated in place by the propagation
// loop and the backtracking search, so callers who need to keep
// the starting position should take a Copy first.
type Grid [SideLen][SideLen]int

// A Cell locates one square of a Grid by zero-based row and
// column.  The one-based form used in messages is derived, never
// stored.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Copy returns a grid with the same values that shares no
// storage with the original.
func (g *Grid) Copy() *Grid {
	c := *g
	return &c
}

// Complete reports whether every cell has an assigned value.
func (g *Grid) Complete() bool {
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// FilledCount returns the number of cells with assigned values.
func (g *Grid) FilledCount() (count int) {
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if g[r][c] != 0 {
				count++
			}
		}
	}
	return count
}

/*

Unit views

Rows, columns, and boxes are the three kinds of constraint unit.
They are derived views over the grid, never stored separately.

*/

// boxOrigin returns the top-left cell of the box containing
// (row, col).
func boxOrigin(row, col int) (int, int) {
	return row - row%BoxLen, col - col%BoxLen
}

// used fills a presence table with the assigned values of the
// row, column, and box containing (row, col).  Index 0 of the
// table is never set.
func (g *Grid) used(row, col int) (table [SideLen + 1]bool) {
	for i := 0; i < SideLen; i++ {
		if v := g[row][i]; v != 0 {
			table[v] = true
		}
		if v := g[i][col]; v != 0 {
			table[v] = true
		}
	}
	br, bc := boxOrigin(row, col)
	for r := br; r < br+BoxLen; r++ {
		for c := bc; c < bc+BoxLen; c++ {
			if v := g[r][c]; v != 0 {
				table[v] = true
			}
		}
	}
	return table
}

// allowed reports whether value val can be assigned at
// (row, col) without duplicating a value already assigned in the
// cell's row, column, or box.  The cell's own current value is
// not excluded, so allowed is only meaningful for empty cells.
func (g *Grid) allowed(row, col, val int) bool {
	for i := 0; i < SideLen; i++ {
		if g[row][i] == val || g[i][col] == val {
			return false
		}
	}
	br, bc := boxOrigin(row, col)
	for r := br; r < br+BoxLen; r++ {
		for c := bc; c < bc+BoxLen; c++ {
			if g[r][c] == val {
				return false
			}
		}
	}
	return true
}
