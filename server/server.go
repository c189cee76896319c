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

// Package server exposes the solver over HTTP: a JSON solve
// endpoint, the recent solve history, and a websocket stream of
// search steps for watching a solve live.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tbreitburd/Sudoku-Solver/puzzle"
	"github.com/tbreitburd/Sudoku-Solver/storage"
)

// A Server holds the handler state: a logger and the startup
// time for the health report.
type Server struct {
	logger  *log.Logger
	started time.Time
}

// New returns a Server logging through the given logger.
func New(logger *log.Logger) *Server {
	return &Server{logger: logger, started: time.Now()}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/solve", s.handleSolve)
	mux.HandleFunc("/api/solves", s.handleRecent)
	mux.HandleFunc("/api/solve/live", s.handleLive)
	return mux
}

/*

Solve endpoint

*/

// A SolveRequest asks for one puzzle to be solved.  The puzzle
// is the canonical text form; the order defaults to "forward".
type SolveRequest struct {
	Puzzle        string `json:"puzzle"`
	Order         string `json:"order,omitempty"`
	PropagateOnly bool   `json:"propagateOnly,omitempty"`
}

// A SolveResponse reports a solve outcome.
type SolveResponse struct {
	Solution    string              `json:"solution"`
	Complete    bool                `json:"complete"`
	Propagated  int                 `json:"propagated"`
	Searched    int                 `json:"searched"`
	Diagnostics []puzzle.Diagnostic `json:"diagnostics,omitempty"`
	ElapsedMS   int64               `json:"elapsedMs"`
	Cached      bool                `json:"cached"`
}

// handleSolve is a POST handler that solves the posted puzzle.
// Malformed requests get a 400 with the typed Error; puzzles the
// solver rejects (contradiction, unsolvable, exhausted,
// validation failure) get a 422.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, puzzle.Error{
			Scope:     puzzle.ArgumentScope,
			Condition: puzzle.GeneralCondition,
			Values:    puzzle.ErrorData{"request decode failure: " + err.Error()},
		})
		return
	}
	order, g, derr := s.decodeSolveRequest(&req)
	if derr != nil {
		s.writeError(w, http.StatusBadRequest, *derr)
		return
	}

	text := g.Format()
	if !req.PropagateOnly {
		if solution, found, err := storage.CachedSolution(text, order.String()); err != nil {
			s.logger.Warn("cache lookup failed", "err", err)
		} else if found {
			s.writeJSON(w, http.StatusOK, SolveResponse{
				Solution: solution,
				Complete: true,
				Cached:   true,
			})
			return
		}
	}

	res, err := puzzle.Solve(g, order, req.PropagateOnly)
	s.recordSolve(r, text, order, req.PropagateOnly, res, err)
	if err != nil {
		status := http.StatusUnprocessableEntity
		perr, ok := err.(puzzle.Error)
		if !ok {
			perr = puzzle.Error{
				Scope:     puzzle.SolverScope,
				Condition: puzzle.GeneralCondition,
				Values:    puzzle.ErrorData{err.Error()},
			}
		}
		s.writeError(w, status, perr)
		return
	}

	solution := res.Grid.Format()
	if res.Complete {
		if err := storage.CacheSolution(text, order.String(), solution); err != nil {
			s.logger.Warn("cache store failed", "err", err)
		}
	}
	s.logger.Info("solved",
		"order", order, "propagateOnly", req.PropagateOnly,
		"propagated", res.Propagated, "searched", res.Searched,
		"elapsed", res.Elapsed)
	s.writeJSON(w, http.StatusOK, SolveResponse{
		Solution:    solution,
		Complete:    res.Complete,
		Propagated:  res.Propagated,
		Searched:    res.Searched,
		Diagnostics: res.Diagnostics,
		ElapsedMS:   res.Elapsed.Milliseconds(),
	})
}

// decodeSolveRequest turns a SolveRequest into a search order
// and a parsed grid, or a client error.
func (s *Server) decodeSolveRequest(req *SolveRequest) (puzzle.SearchOrder, *puzzle.Grid, *puzzle.Error) {
	orderName := req.Order
	if orderName == "" {
		orderName = "forward"
	}
	order, err := puzzle.ParseSearchOrder(orderName)
	if err != nil {
		perr := err.(puzzle.Error)
		return 0, nil, &perr
	}
	g, err := puzzle.Parse(req.Puzzle)
	if err != nil {
		if perr, ok := err.(puzzle.Error); ok {
			return 0, nil, &perr
		}
		perr := puzzle.Error{
			Scope:     puzzle.FormatScope,
			Condition: puzzle.BadFormatCondition,
			Values:    puzzle.ErrorData{err.Error()},
		}
		return 0, nil, &perr
	}
	return order, g, nil
}

// recordSolve appends to the solve history; history failures are
// logged, never surfaced to the client.
func (s *Server) recordSolve(r *http.Request, text string, order puzzle.SearchOrder,
	propagateOnly bool, res *puzzle.Result, err error) {
	rec := &storage.SolveRecord{
		Puzzle:        text,
		Order:         order.String(),
		PropagateOnly: propagateOnly,
		Solved:        err == nil && res != nil && res.Complete,
	}
	if rec.Solved {
		rec.Solution = res.Grid.Format()
		rec.Elapsed = res.Elapsed
	}
	if herr := storage.RecordSolve(r.Context(), rec); herr != nil {
		s.logger.Warn("history record failed", "err", herr)
	}
}

/*

Health and history endpoints

*/

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.started).String(),
	})
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if arg := r.URL.Query().Get("limit"); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > 200 {
			s.writeError(w, http.StatusBadRequest, puzzle.Error{
				Scope:     puzzle.ArgumentScope,
				Condition: puzzle.GeneralCondition,
				Values:    puzzle.ErrorData{"limit must be an integer from 1 to 200"},
			})
			return
		}
		limit = n
	}
	recs, err := storage.RecentSolves(r.Context(), limit)
	if err != nil {
		s.logger.Error("history read failed", "err", err)
		http.Error(w, "history unavailable", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, recs)
}

/*

Response helpers

*/

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, perr puzzle.Error) {
	perr.Message = perr.Error() // verbalize for the client
	s.writeJSON(w, status, perr)
}
