package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbreitburd/Sudoku-Solver/storage"
)

var prepareReset bool

var prepareCmd = &cobra.Command{
	Use:   "prepare-storage",
	Short: "Create or reset the solver's backing storage",
	Long: `Prepare-storage applies the database migrations to the
database named by DATABASE_URL.  With --reset, it first clears
the solution cache and the solve history.`,
	Args: cobra.NoArgs,
	RunE: runPrepare,
}

func init() {
	prepareCmd.Flags().BoolVar(&prepareReset, "reset", false,
		"clear the solution cache and solve history first")
	rootCmd.AddCommand(prepareCmd)
}

func runPrepare(cmd *cobra.Command, args []string) error {
	cacheID, databaseID, err := storage.Connect(context.Background())
	if err != nil {
		return err
	}
	defer storage.Close()
	logger.Info("storage connected", "cache", cacheID, "database", databaseID)
	if databaseID == storage.MemoryID {
		return fmt.Errorf("no database to prepare: DATABASE_URL is not set")
	}

	if prepareReset {
		if err := storage.ReinitializeAll(); err != nil {
			return err
		}
		logger.Info("storage reset complete")
		return nil
	}
	if err := storage.EnsureSchema(); err != nil {
		return err
	}
	logger.Info("schema up to date")
	return nil
}
