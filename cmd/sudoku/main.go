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

// The sudoku command solves 9x9 sudoku puzzles from text files,
// serves the solver over HTTP, and manages the solver's backing
// storage.
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "sudoku",
})

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "A constraint-propagation and backtracking sudoku solver",
	Long: `sudoku solves 9x9 sudoku puzzles written in the
digits-and-pipes text form:

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

Solving first fills every cell whose candidates reduce to a
single value, then (when needed) falls back to a backtracking
search over the remaining cells, in a choosable order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}
