package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tbreitburd/Sudoku-Solver/puzzle"
)

var gridText = "123|456|789\n" +
	"789|123|456\n" +
	"456|789|123\n" +
	"---+---+---\n" +
	"312|645|978\n" +
	"978|312|645\n" +
	"645|978|312\n" +
	"---+---+---\n" +
	"231|564|897\n" +
	"897|231|564\n" +
	"564|897|231"

func TestRenderGridPlain(t *testing.T) {
	g, err := puzzle.Parse(gridText)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if out := renderGrid(g, g, true); out != gridText {
		t.Errorf("plain render gave:\n%s\nexpected:\n%s", out, gridText)
	}
}

func TestWriteSolutionName(t *testing.T) {
	dir := t.TempDir()
	old := solveOutputDir
	solveOutputDir = dir
	defer func() { solveOutputDir = old }()

	if err := writeSolution("puzzles/sudoku1.txt", gridText); err != nil {
		t.Fatalf("writeSolution failed: %v", err)
	}
	out := filepath.Join(dir, "sudoku1_solution.txt")
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("solution file not written: %v", err)
	}
	if string(data) != gridText+"\n" {
		t.Errorf("solution file content mismatch")
	}
}
