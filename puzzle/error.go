// Sudoku-Solver - a constraint-propagation and backtracking Sudoku solver.
// Copyright (C) 2023-2024 T. Breitburd.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a grid or a requested solver
// operation.  It can produce an error message in English, but it
// also carries typed condition data so callers (the CLI, the
// solve service) can react to specific failures without matching
// on message text.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	FormatScope
	ArgumentScope
	CellScope
	GridScope
	SolverScope
	MaxScope
)

// The ErrorCondition is the predicate that the scoped thing
// failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	BadFormatCondition
	TooSmallCondition
	TooLargeCondition
	ContradictionCondition
	AlreadySolvedCondition
	InvalidGridCondition
	IncompleteCondition
	UnsolvableCondition
	ExhaustedCondition
	MultipleSolutionsCondition
	MaxCondition
)

// The ErrorData provides details about the thing that failed to
// meet the predicate.  Every item is required to be
// JSON-serializable, so errors can be returned to web clients.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case FormatScope:
		es = "Invalid puzzle text: "
	case ArgumentScope:
		es = "Invalid argument: "
	case CellScope:
		es = fmt.Sprintf("Problem in cell (%v,%v): ", nextVal(), nextVal())
	case GridScope:
		es = "Problem in sudoku: "
	case SolverScope:
		es = "Solver failure: "
	default:
		es = "Unknown error: "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case BadFormatCondition:
		es += fmt.Sprint(nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case ContradictionCondition:
		es += "No possible value remains for this cell"
	case AlreadySolvedCondition:
		es += "The sudoku is already solved"
	case InvalidGridCondition:
		es += fmt.Sprintf("The sudoku is %v: %v", nextVal(), nextVal())
	case IncompleteCondition:
		es += "The sudoku is not complete, there are still empty cells"
	case UnsolvableCondition:
		es += fmt.Sprintf("No candidate fits the first search cell (%v,%v); "+
			"the sudoku is unsolvable", nextVal(), nextVal())
	case ExhaustedCondition:
		es += "The backtracking algorithm failed to solve the sudoku. " +
			"Please try a different backtracking order. " +
			"If the issue persists, the sudoku may be unsolvable."
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

/*

Error constructors

The constructors encode the failure taxonomy of the solve
pipeline: text format problems, contradictions discovered during
markup, the already-solved precondition, validation failures at
the three pipeline checkpoints, and the two terminal search
failures (unsolvable from the first choice, search space
exhausted).

*/

// formatError describes malformed puzzle text.
func formatError(detail string) Error {
	return Error{
		Scope:     FormatScope,
		Condition: BadFormatCondition,
		Values:    ErrorData{detail},
	}
}

// contradictionError reports an empty cell with no possible
// values.  Cell coordinates in the error data are one-based, as
// in all user-facing messages.
func contradictionError(cell Cell) Error {
	return Error{
		Scope:     CellScope,
		Condition: ContradictionCondition,
		Values:    ErrorData{cell.Row + 1, cell.Col + 1},
	}
}

// alreadySolvedError reports the markup precondition violation:
// candidate computation on a fully-filled grid.
func alreadySolvedError() Error {
	return Error{
		Scope:     GridScope,
		Condition: AlreadySolvedCondition,
	}
}

// validationError wraps a Check failure found at one of the
// pipeline checkpoints.  The stage reads as part of the message,
// e.g. "not valid at loading time".
func validationError(stage, reason string) Error {
	return Error{
		Scope:     GridScope,
		Condition: InvalidGridCondition,
		Values:    ErrorData{stage, reason},
	}
}

// unsolvableError reports that the very first search cell had no
// legal candidate, which indicates a contradictory input rather
// than ordinary backtracking.
func unsolvableError(cell Cell) Error {
	return Error{
		Scope:     SolverScope,
		Condition: UnsolvableCondition,
		Values:    ErrorData{cell.Row + 1, cell.Col + 1},
	}
}

// exhaustedError reports that the search tried every candidate
// at every position without reaching a solution.
func exhaustedError() Error {
	return Error{
		Scope:     SolverScope,
		Condition: ExhaustedCondition,
	}
}

/*

Diagnostics

Diagnostics are non-fatal findings surfaced alongside results,
returned as values rather than emitted through a process-level
warning channel.  Callers decide whether to log them.

*/

// A Diagnostic is a non-fatal warning about a grid.
type Diagnostic struct {
	Condition ErrorCondition `json:"condition"`
	Message   string         `json:"message"`
}

// multipleSolutionsDiagnostic warns that a grid with fewer than
// MinClues starting values may admit more than one solution.
func multipleSolutionsDiagnostic(clues int) Diagnostic {
	return Diagnostic{
		Condition: MultipleSolutionsCondition,
		Message: fmt.Sprintf("The sudoku has only %d starting values; "+
			"it may have multiple solutions, and the result will be "+
			"just one of them", clues),
	}
}
