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

package storage

import (
	"context"
	"sync"
	"time"
)

/*

Solve history

Every solve run is recorded, successful or not, so a deployment
can see what it has been asked to solve.  The memory fallback
holds records for the life of the process only.

*/

// A SolveRecord describes one solve run.
type SolveRecord struct {
	ID            int64         `json:"id"`
	Puzzle        string        `json:"puzzle"`
	Solution      string        `json:"solution,omitempty"`
	Order         string        `json:"order"`
	PropagateOnly bool          `json:"propagateOnly"`
	Solved        bool          `json:"solved"`
	Elapsed       time.Duration `json:"elapsed"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// memory fallback
var (
	memSolves      []SolveRecord
	memSolvesMutex sync.Mutex
	memNextID      int64 = 1
)

// RecordSolve appends a record to the solve history, filling in
// its ID and CreatedAt.
func RecordSolve(ctx context.Context, rec *SolveRecord) error {
	pool := historyPool()
	if pool == nil {
		memSolvesMutex.Lock()
		defer memSolvesMutex.Unlock()
		rec.ID = memNextID
		memNextID++
		rec.CreatedAt = time.Now()
		memSolves = append(memSolves, *rec)
		return nil
	}
	return pool.QueryRow(ctx,
		`INSERT INTO solves
		   (puzzle, solution, search_order, propagate_only, solved, elapsed_ms)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		rec.Puzzle, rec.Solution, rec.Order, rec.PropagateOnly,
		rec.Solved, rec.Elapsed.Milliseconds(),
	).Scan(&rec.ID, &rec.CreatedAt)
}

// RecentSolves returns up to limit records, newest first.
func RecentSolves(ctx context.Context, limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	pool := historyPool()
	if pool == nil {
		memSolvesMutex.Lock()
		defer memSolvesMutex.Unlock()
		recs := make([]SolveRecord, 0, limit)
		for i := len(memSolves) - 1; i >= 0 && len(recs) < limit; i-- {
			recs = append(recs, memSolves[i])
		}
		return recs, nil
	}
	rows, err := pool.Query(ctx,
		`SELECT id, puzzle, solution, search_order, propagate_only,
		        solved, elapsed_ms, created_at
		   FROM solves
		  ORDER BY created_at DESC, id DESC
		  LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var recs []SolveRecord
	for rows.Next() {
		var rec SolveRecord
		var elapsedMS int64
		if err := rows.Scan(&rec.ID, &rec.Puzzle, &rec.Solution, &rec.Order,
			&rec.PropagateOnly, &rec.Solved, &elapsedMS, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// ClearHistory drops every solve record.
func ClearHistory(ctx context.Context) error {
	pool := historyPool()
	if pool == nil {
		memSolvesMutex.Lock()
		defer memSolvesMutex.Unlock()
		memSolves = nil
		memNextID = 1
		return nil
	}
	_, err := pool.Exec(ctx, `DELETE FROM solves`)
	return err
}
