package puzzle

/*

Markup: per-cell candidate sets

A Markup is a snapshot: once computed it does not track later
grid changes, and the propagation loop recomputes it each round
to stay consistent.  The backtracking search keeps one final
snapshot alive read-only, to restrict each cell's trial values,
while re-checking live legality against the evolving grid.

*/

// An intset is a set of small integers, represented as a sorted
// slice.  Candidate sets hold at most nine digits, so linear
// operations are fine.
type intset []int

// newIntsetRange makes an intset of the values 1 to max.
func newIntsetRange(max int) intset {
	out := make(intset, max)
	for i := 0; i < max; i++ {
		out[i] = i + 1
	}
	return out
}

// newIntsetCopy makes a copy of an intset.
func newIntsetCopy(in intset) intset {
	if in == nil {
		return nil
	}
	out := make(intset, len(in))
	copy(out, in)
	return out
}

// remove takes value v out of the set, reporting whether it was
// there.
func (ps *intset) remove(v int) bool {
	end := len(*ps)
	for i := 0; i < end; i++ {
		pv := (*ps)[i]
		if pv == v {
			copy((*ps)[i:], (*ps)[i+1:])
			*ps = (*ps)[:end-1]
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}

// equal reports whether two intsets hold the same values.
func (ps intset) equal(os intset) bool {
	if len(ps) != len(os) {
		return false
	}
	for i := range ps {
		if ps[i] != os[i] {
			return false
		}
	}
	return true
}

// A Markup maps each cell of a grid to its candidate set: the
// digits consistent with the cell's row, column, and box at the
// time the markup was computed.  A filled cell maps to the
// singleton of its value, so downstream code can treat filled
// and empty cells uniformly.
type Markup [SideLen][SideLen]intset

// NewMarkup computes the markup of a grid.  It fails with an
// already-solved Error when called on a complete grid (a usage
// error: there is nothing left to mark up), and with a
// contradiction Error when some empty cell has no possible value
// (the grid is unsolvable as filled; no partial markup is
// returned).  When the grid has fewer than MinClues filled
// cells, a non-fatal multiple-solutions Diagnostic accompanies
// the markup.
func NewMarkup(g *Grid) (*Markup, []Diagnostic, error) {
	if g.Complete() {
		return nil, nil, alreadySolvedError()
	}
	var diags []Diagnostic
	if clues := g.FilledCount(); clues < MinClues {
		diags = append(diags, multipleSolutionsDiagnostic(clues))
	}

	m := &Markup{}
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if v := g[r][c]; v != 0 {
				m[r][c] = intset{v}
				continue
			}
			used := g.used(r, c)
			cands := newIntsetRange(SideLen)
			for v := 1; v <= SideLen; v++ {
				if used[v] {
					cands.remove(v)
				}
			}
			if len(cands) == 0 {
				return nil, diags, contradictionError(Cell{r, c})
			}
			m[r][c] = cands
		}
	}
	return m, diags, nil
}

// equal reports whether two markups hold the same candidate set
// for every cell.
func (m *Markup) equal(o *Markup) bool {
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if !m[r][c].equal(o[r][c]) {
				return false
			}
		}
	}
	return true
}

// Candidates returns the candidate set for a cell.  The returned
// slice does not share storage with the markup.
func (m *Markup) Candidates(row, col int) []int {
	return newIntsetCopy(m[row][col])
}
