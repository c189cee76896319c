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
	"io"
	"strings"
)

/*

Text form of grids

The canonical text convention packs each row as three groups of
three digits separated by pipes, with a band separator line
between boxes:

	000|007|000
	000|009|504
	000|050|169
	---+---+---
	080|000|305
	075|000|290
	406|000|080
	---+---+---
	762|080|000
	103|900|000
	000|600|000

Parse and Format are exact inverses over well-formed text.

*/

const bandSeparator = "---+---+---"

// Parse reads a grid from its canonical text form.  Leading and
// trailing blank lines are tolerated; everything else about the
// format is enforced with a descriptive error, so an ill-formed
// file never reaches the solver.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	// strip blank lines around the payload
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) != 11 {
		return nil, formatError(fmt.Sprintf(
			"expected 11 lines (9 rows and 2 separators), got %d", len(lines)))
	}

	g := &Grid{}
	row := 0
	for n, line := range lines {
		if n == 3 || n == 7 {
			if line != bandSeparator {
				return nil, formatError(fmt.Sprintf(
					"line %d: expected separator %q, got %q", n+1, bandSeparator, line))
			}
			continue
		}
		if err := parseRow(g, row, n, line); err != nil {
			return nil, err
		}
		row++
	}
	return g, nil
}

// parseRow fills one grid row from a "ddd|ddd|ddd" line.
func parseRow(g *Grid, row, n int, line string) error {
	if len(line) != 11 || line[3] != '|' || line[7] != '|' {
		return formatError(fmt.Sprintf(
			"line %d: expected 3 groups of 3 digits separated by '|', got %q", n+1, line))
	}
	col := 0
	for i := 0; i < len(line); i++ {
		if i == 3 || i == 7 {
			continue
		}
		ch := line[i]
		if ch < '0' || ch > '9' {
			return formatError(fmt.Sprintf(
				"line %d: cell %d is %q, want a digit 0-9", n+1, col+1, string(ch)))
		}
		g[row][col] = int(ch - '0')
		col++
	}
	return nil
}

// Load reads a grid from a reader holding its canonical text
// form.
func Load(r io.Reader) (*Grid, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, formatError(fmt.Sprintf("read failure: %v", err))
	}
	return Parse(string(text))
}

// Format renders a grid in the canonical text convention, with
// no trailing newline, so that Format(Parse(text)) == text for
// any well-formed text.
func (g *Grid) Format() string {
	var b strings.Builder
	for r := 0; r < SideLen; r++ {
		if r == 3 || r == 6 {
			b.WriteString(bandSeparator)
			b.WriteByte('\n')
		}
		for c := 0; c < SideLen; c++ {
			if c == 3 || c == 6 {
				b.WriteByte('|')
			}
			b.WriteByte(byte('0' + g[r][c]))
		}
		if r != SideLen-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String gives the canonical text form; any prettier rendering
// is the caller's business.
func (g *Grid) String() string {
	return g.Format()
}
