package puzzle

import (
	"fmt"
	"sort"
)

/*

Search orderings

After propagation stabilizes, the cells whose candidate sets
still hold more than one value go to the backtracking search.
The order in which they are tried is configurable.

*/

// A SearchOrder selects how the ambiguous cells remaining after
// propagation are sequenced for the backtracking search.
type SearchOrder int

const (
	// ForwardOrder tries cells in reading order, top-left to
	// bottom-right.
	ForwardOrder SearchOrder = iota
	// BackwardOrder tries cells in reverse reading order.
	BackwardOrder
	// OrderedOrder tries the most constrained cells first:
	// ascending candidate count, ties in reading order.
	OrderedOrder
)

var orderNames = map[SearchOrder]string{
	ForwardOrder:  "forward",
	BackwardOrder: "backward",
	OrderedOrder:  "ordered",
}

func (o SearchOrder) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("SearchOrder(%d)", int(o))
}

// ParseSearchOrder maps the configuration names "forward",
// "backward", and "ordered" to their SearchOrder values.
func ParseSearchOrder(name string) (SearchOrder, error) {
	for o, n := range orderNames {
		if n == name {
			return o, nil
		}
	}
	return ForwardOrder, Error{
		Scope:     ArgumentScope,
		Condition: GeneralCondition,
		Values: ErrorData{fmt.Sprintf(
			"unknown search order %q (want forward, backward, or ordered)", name)},
	}
}

// SearchCells returns the cells whose candidate sets hold more
// than one value, sequenced by the given order.  The list is
// built once before search begins; only the grid mutates during
// search.
func (m *Markup) SearchCells(order SearchOrder) []Cell {
	var cells []Cell
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if len(m[r][c]) > 1 {
				cells = append(cells, Cell{r, c})
			}
		}
	}
	switch order {
	case BackwardOrder:
		for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
			cells[i], cells[j] = cells[j], cells[i]
		}
	case OrderedOrder:
		// stable: ties keep their reading-order relative position
		sort.SliceStable(cells, func(i, j int) bool {
			return len(m[cells[i].Row][cells[i].Col]) < len(m[cells[j].Row][cells[j].Col])
		})
	}
	return cells
}
