package puzzle

import (
	"fmt"
)

/*

Grid validation

Check is run at three pipeline checkpoints: after load, after
propagation, and (requiring completeness) after search.  The
check order is fixed so that diagnostic messages are reproducible
run to run: digits ascending, and for each digit the rows,
columns, and box bands in reading order, stopping at the first
violation.

*/

// ValidReason is the sentinel reason returned by Check for a
// valid grid.
const ValidReason = "_"

// Check verifies that no digit occurs twice in any row, column,
// or box.  With requireComplete it additionally demands that no
// cell be empty.  It returns validity plus a human-readable
// reason; a valid grid gets the ValidReason sentinel.  Unit
// indices in reasons are one-based.
func (g *Grid) Check(requireComplete bool) (bool, string) {
	if requireComplete && !g.Complete() {
		return false, "The sudoku is not complete, there are still empty cells"
	}
	for v := 1; v <= SideLen; v++ {
		for i := 0; i < SideLen; i++ {
			count := 0
			for c := 0; c < SideLen; c++ {
				if g[i][c] == v {
					count++
				}
			}
			if count > 1 {
				return false, fmt.Sprintf("There are too many %d's in row %d", v, i+1)
			}
			count = 0
			for r := 0; r < SideLen; r++ {
				if g[r][i] == v {
					count++
				}
			}
			if count > 1 {
				return false, fmt.Sprintf("There are too many %d's in column %d", v, i+1)
			}
			// at each band start, the three boxes spanning the band
			if i%BoxLen == 0 {
				band := i / BoxLen
				for bc := 0; bc < BoxLen; bc++ {
					count = 0
					for r := i; r < i+BoxLen; r++ {
						for c := bc * BoxLen; c < (bc+1)*BoxLen; c++ {
							if g[r][c] == v {
								count++
							}
						}
					}
					if count > 1 {
						return false, fmt.Sprintf(
							"There are too many %d's in box [%d,%d]", v, band+1, bc+1)
					}
				}
			}
		}
	}
	return true, ValidReason
}
