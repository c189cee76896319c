package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tbreitburd/Sudoku-Solver/puzzle"
	"github.com/tbreitburd/Sudoku-Solver/storage"
)

var (
	solveOrder     string
	propagateOnly  bool
	solveOutputDir string
	solvePlain     bool
	solveNoCache   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <puzzle-file>",
	Short: "Solve a sudoku read from a text file",
	Long: `Solve reads a puzzle in the digits-and-pipes text form,
solves it, prints the solution, and writes it to a file in the
output directory named after the input file.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveOrder, "order", "forward",
		"backtracking search order: forward, backward, or ordered")
	solveCmd.Flags().BoolVar(&propagateOnly, "propagate-only", false,
		"only fill unambiguous cells; skip the backtracking search")
	solveCmd.Flags().StringVar(&solveOutputDir, "output-dir", "sudoku_solutions",
		"directory the solution file is written to")
	solveCmd.Flags().BoolVar(&solvePlain, "plain", false,
		"print the solution without styling")
	solveCmd.Flags().BoolVar(&solveNoCache, "no-cache", false,
		"skip the solution cache")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	order, err := puzzle.ParseSearchOrder(solveOrder)
	if err != nil {
		return err
	}
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	g, err := puzzle.Load(file)
	file.Close()
	if err != nil {
		return err
	}
	given := g.Copy()
	text := g.Format()

	ctx := context.Background()
	useStorage := !solveNoCache && !propagateOnly
	if useStorage {
		if cacheID, databaseID, err := storage.Connect(ctx); err != nil {
			logger.Warn("storage unavailable, continuing without it", "err", err)
			useStorage = false
		} else {
			defer storage.Close()
			logger.Debug("storage connected", "cache", cacheID, "database", databaseID)
		}
	}

	if useStorage {
		if solution, found, err := storage.CachedSolution(text, order.String()); err != nil {
			logger.Warn("cache lookup failed", "err", err)
		} else if found {
			logger.Info("solution found in cache", "order", order)
			solved, err := puzzle.Parse(solution)
			if err != nil {
				return err
			}
			fmt.Println(renderGrid(given, solved, solvePlain))
			return writeSolution(args[0], solution)
		}
	}

	res, err := puzzle.Solve(g, order, propagateOnly)
	if err != nil {
		recordOutcome(ctx, useStorage, text, order, nil)
		return err
	}
	for _, d := range res.Diagnostics {
		logger.Warn(d.Message)
	}
	logger.Info("solved", "order", order,
		"propagated", res.Propagated, "searched", res.Searched,
		"elapsed", res.Elapsed)
	fmt.Println(renderGrid(given, res.Grid, solvePlain))
	if !res.Complete {
		logger.Warn("propagation alone could not complete the sudoku",
			"remaining", puzzle.CellCount-res.Grid.FilledCount())
		return nil
	}

	solution := res.Grid.Format()
	if useStorage {
		if err := storage.CacheSolution(text, order.String(), solution); err != nil {
			logger.Warn("cache store failed", "err", err)
		}
	}
	recordOutcome(ctx, useStorage, text, order, res)
	return writeSolution(args[0], solution)
}

// recordOutcome appends the solve attempt to the history;
// failures are logged, never returned.
func recordOutcome(ctx context.Context, useStorage bool, text string,
	order puzzle.SearchOrder, res *puzzle.Result) {
	if !useStorage {
		return
	}
	rec := &storage.SolveRecord{
		Puzzle:        text,
		Order:         order.String(),
		PropagateOnly: propagateOnly,
		Solved:        res != nil && res.Complete,
	}
	if rec.Solved {
		rec.Solution = res.Grid.Format()
		rec.Elapsed = res.Elapsed
	}
	if err := storage.RecordSolve(ctx, rec); err != nil {
		logger.Warn("history record failed", "err", err)
	}
}

// writeSolution writes the solution text next to the other
// solutions, named after the puzzle file.
func writeSolution(puzzlePath, solution string) error {
	if err := os.MkdirAll(solveOutputDir, 0o755); err != nil {
		return err
	}
	base := filepath.Base(puzzlePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	out := filepath.Join(solveOutputDir, stem+"_solution.txt")
	if err := os.WriteFile(out, []byte(solution+"\n"), 0o644); err != nil {
		return err
	}
	logger.Info("solution written", "file", out)
	return nil
}

/*

Grid rendering

*/

var (
	givenStyle  = lipgloss.NewStyle().Faint(true)
	solvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	frameStyle  = lipgloss.NewStyle().Faint(true)
)

// renderGrid prints a grid in the canonical text layout.  Unless
// plain is set, values filled in by the solver are highlighted
// against the original clues.
func renderGrid(given, solved *puzzle.Grid, plain bool) string {
	if plain {
		return solved.Format()
	}
	var b strings.Builder
	for r := 0; r < puzzle.SideLen; r++ {
		if r > 0 && r%puzzle.BoxLen == 0 {
			b.WriteString(frameStyle.Render("---+---+---"))
			b.WriteByte('\n')
		}
		for c := 0; c < puzzle.SideLen; c++ {
			if c > 0 && c%puzzle.BoxLen == 0 {
				b.WriteString(frameStyle.Render("|"))
			}
			digit := fmt.Sprintf("%d", solved[r][c])
			if given[r][c] != 0 {
				b.WriteString(givenStyle.Render(digit))
			} else {
				b.WriteString(solvedStyle.Render(digit))
			}
		}
		if r < puzzle.SideLen-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
