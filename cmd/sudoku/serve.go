package main

import (
	"context"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/tbreitburd/Sudoku-Solver/server"
	"github.com/tbreitburd/Sudoku-Solver/storage"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver over HTTP",
	Long: `Serve starts the solve API: POST /api/solve, the solve
history at GET /api/solves, a health check at GET /api/health,
and a websocket stream of search steps at GET /api/solve/live.

The listen address comes from --addr, or from the PORT
environment variable when --addr is not given.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, e.g. :8080")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := serveAddr
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8080"
		}
	}
	cacheID, databaseID, err := storage.Connect(context.Background())
	if err != nil {
		return err
	}
	defer storage.Close()
	logger.Info("storage connected", "cache", cacheID, "database", databaseID)

	srv := server.New(logger.With("component", "server"))
	logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, srv.Handler())
}
