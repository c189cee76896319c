package puzzle

import (
	"time"
)

/*

Sudoku solver

Solving happens in two phases.

Phase 1 is constraint propagation: compute the markup, write
every naked single (a cell with exactly one candidate) into the
grid, and repeat until the grid is complete or a round leaves the
markup unchanged.  Propagation never guesses, so it never needs
to backtrack; the only failure it can hit is a contradiction
discovered while recomputing the markup.

Phase 2, reached only when propagation stops at a fixed point
with empty cells remaining, is a chronological depth-first search
over the ambiguous cells, in a configurable order.  Each cell is
tried with the candidates from the final propagation snapshot,
filtered against the live grid (earlier trial assignments change
what is legal now).  A failed branch resets its cell to empty
before returning, so the grid is restored exactly on backtrack.
The first satisfying assignment wins; the search is not
exhaustive.

*/

// Reduce mutates a grid in place by repeatedly resolving naked
// singles until the grid is complete or a fixed point is
// reached.  It returns the markup snapshot at the point it
// stopped (the input to any subsequent search), along with the
// diagnostics from the markup of the original grid.  Errors are
// the markup errors: contradiction, or already-solved when
// called on a complete grid.
func Reduce(g *Grid) (*Markup, []Diagnostic, error) {
	cur, diags, err := NewMarkup(g)
	if err != nil {
		return nil, diags, err
	}
	for {
		for r := 0; r < SideLen; r++ {
			for c := 0; c < SideLen; c++ {
				if g[r][c] == 0 && len(cur[r][c]) == 1 {
					g[r][c] = cur[r][c][0]
				}
			}
		}
		if g.Complete() {
			return cur, diags, nil
		}
		next, _, err := NewMarkup(g)
		if err != nil {
			return nil, diags, err
		}
		if cur.equal(next) {
			// fixed point: the remaining cells are ambiguous
			return next, diags, nil
		}
		cur = next
	}
}

// A Tracer observes the backtracking search.  Assign is called
// when a trial value is written into a cell, Retract when a
// failed branch resets it.  Tracers are called synchronously
// from the search, so they must be fast.
type Tracer interface {
	Assign(cell Cell, value int)
	Retract(cell Cell, value int)
}

// Backtrack runs the depth-first search over cells[index:],
// mutating g in place.  It returns true when every cell from
// index onward has been assigned consistently, leaving g
// complete.  It returns false, with the grid restored, when no
// candidate works at some position ("backtrack and continue").
// The one error case is an empty candidate list at index 0,
// which means the search failed before its very first choice:
// that is reported as an unsolvable Error rather than a normal
// negative result.
func Backtrack(g *Grid, m *Markup, cells []Cell, index int) (bool, error) {
	return backtrack(g, m, cells, index, nil)
}

func backtrack(g *Grid, m *Markup, cells []Cell, index int, tr Tracer) (bool, error) {
	if index == len(cells) {
		return true, nil
	}
	cell := cells[index]

	// snapshot candidates, filtered against the live grid
	var cands intset
	for _, v := range m[cell.Row][cell.Col] {
		if g.allowed(cell.Row, cell.Col, v) {
			cands = append(cands, v)
		}
	}
	if len(cands) == 0 {
		if index == 0 {
			return false, unsolvableError(cell)
		}
		return false, nil
	}

	for _, v := range cands {
		g[cell.Row][cell.Col] = v
		if tr != nil {
			tr.Assign(cell, v)
		}
		solved, err := backtrack(g, m, cells, index+1, tr)
		if solved || err != nil {
			return solved, err
		}
		g[cell.Row][cell.Col] = 0
		if tr != nil {
			tr.Retract(cell, v)
		}
	}
	return false, nil
}

/*

The solve pipeline

*/

// A Result reports the outcome of a successful Solve.
type Result struct {
	Grid        *Grid         `json:"grid"`
	Diagnostics []Diagnostic  `json:"diagnostics,omitempty"`
	Order       SearchOrder   `json:"-"`
	Propagated  int           `json:"propagated"` // cells filled by propagation
	Searched    int           `json:"searched"`   // cells filled by search
	Complete    bool          `json:"complete"`
	Elapsed     time.Duration `json:"-"`
}

// Solve runs the full pipeline on a grid, mutating it in place:
// validate, propagate, validate, search (unless propagateOnly or
// already complete), and a final validation that requires
// completeness when the search ran.  All failures come back as
// typed Errors; the pipeline never retries with alternate
// strategies and never terminates the process.
func Solve(g *Grid, order SearchOrder, propagateOnly bool) (*Result, error) {
	return SolveObserved(g, order, propagateOnly, nil)
}

// SolveObserved is Solve with a Tracer observing the search
// phase.  A nil tracer is allowed.
func SolveObserved(g *Grid, order SearchOrder, propagateOnly bool, tr Tracer) (*Result, error) {
	start := time.Now()
	if ok, reason := g.Check(false); !ok {
		return nil, validationError("not valid at loading time", reason)
	}

	before := g.FilledCount()
	markup, diags, err := Reduce(g)
	if err != nil {
		return nil, err
	}
	if ok, reason := g.Check(false); !ok {
		return nil, validationError("no longer valid after markup", reason)
	}

	res := &Result{
		Grid:        g,
		Diagnostics: diags,
		Order:       order,
		Propagated:  g.FilledCount() - before,
	}
	if !g.Complete() && !propagateOnly {
		cells := markup.SearchCells(order)
		solved, err := backtrack(g, markup, cells, 0, tr)
		if err != nil {
			return nil, err
		}
		if !solved {
			return nil, exhaustedError()
		}
		res.Searched = len(cells)
	}
	if ok, reason := g.Check(!propagateOnly); !ok {
		return nil, validationError("no longer valid or not solved after backtracking", reason)
	}
	res.Complete = g.Complete()
	res.Elapsed = time.Since(start)
	return res, nil
}
