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

// Package storage keeps solved puzzles around: a Redis cache of
// solutions keyed by puzzle text, and a Postgres history of
// solve runs.  Both backends are optional; when REDIS_URL or
// DATABASE_URL is not set the corresponding store degrades to an
// in-process memory implementation, so the CLI works with no
// services running.
package storage

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MemoryID is the backend identifier reported by Connect for a
// store running on the in-process fallback.
const MemoryID = "memory"

// Connect brings up the cache and history backends according to
// the environment.  It returns an identifier for each backend
// (the connection URL, or MemoryID for a fallback).  A set but
// unreachable URL is an error: silently degrading in that case
// would hide a misconfiguration.
func Connect(ctx context.Context) (cacheID, databaseID string, err error) {
	rdInit()
	rdMutex.Lock()
	cacheID, err = rdConnect()
	rdMutex.Unlock()
	if err != nil {
		return "", "", err
	}

	pgMutex.Lock()
	pgInit()
	databaseID, err = pgConnect(ctx)
	pgMutex.Unlock()
	if err != nil {
		rdMutex.Lock()
		rdClose()
		rdMemory = true
		rdMutex.Unlock()
		return "", "", err
	}
	if databaseID != MemoryID {
		if err = EnsureSchema(); err != nil {
			Close()
			return "", "", fmt.Errorf("couldn't prepare database schema: %v", err)
		}
	}
	return cacheID, databaseID, nil
}

// Close shuts down whichever backends Connect brought up,
// returning both stores to the memory fallback.
func Close() {
	pgMutex.Lock()
	pgClose()
	pgMutex.Unlock()
	rdMutex.Lock()
	rdClose()
	rdMemory = true
	rdMutex.Unlock()
}

// cacheMemory reports whether the cache is on the in-process
// fallback.
func cacheMemory() bool {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	return rdMemory
}

/*

cache using Redis

*/

// Redis connection data.  The single connection is guarded by a
// mutex; solver traffic is far too light to need a pool.  The
// backend choice (Redis vs the memory fallback) is made at
// Connect time and recorded in rdMemory, so a reconnect in
// flight (rdc transiently nil) never reroutes traffic to the
// memory map.  All of these fields are read and written under
// rdMutex.
var (
	rdc      redis.Conn // open connection, if any
	rdURL    string     // URL for the open connection
	rdMemory = true     // memory fallback until Connect says otherwise
	rdMutex  sync.Mutex // prevents concurrent connection use
)

// rdInit - look up Redis info from the environment.
func rdInit() {
	rdURL = os.Getenv("REDIS_URL")
	if rdURL == "" {
		// the name our original Heroku-style deployments used
		rdURL = os.Getenv("REDISTOGO_URL")
	}
}

// rdConnect connects to the configured Redis URL, if any.
// Returns the connection id if successful, MemoryID if no URL is
// configured, an error otherwise.
func rdConnect() (string, error) {
	if rdURL == "" {
		rdMemory = true
		return MemoryID, nil
	}
	conn, err := redis.DialURL(rdURL)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to cache at %q: %v", rdURL, err)
	}
	rdc = conn
	rdMemory = false
	return rdURL, nil
}

// rdClose closes the Redis connection, if open.
func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute runs the body with the Redis mutex held.  Because
// Redis connections can go away without warning, it pings first
// and reconnects if the ping fails.
func rdExecute(body func(conn redis.Conn) error) error {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	if rdc == nil {
		return fmt.Errorf("no cache connection")
	}
	if _, err := rdc.Do("PING"); err != nil {
		rdClose()
		if _, err := rdConnect(); err != nil {
			return fmt.Errorf("failed to reconnect to cache at %q: %v", rdURL, err)
		}
	}
	return body(rdc)
}

/*

persistence using Postgres

*/

// Postgres connection data.  The pool handles its own
// concurrency; pgMutex only guards the dispatch fields, which
// change at Connect and Close.
var (
	pgPool  *pgxpool.Pool // open pool, if any
	pgURL   string        // URL for the open pool
	pgMutex sync.Mutex
)

// historyPool returns the open Postgres pool, or nil when the
// history is on the in-process fallback.
func historyPool() *pgxpool.Pool {
	pgMutex.Lock()
	defer pgMutex.Unlock()
	return pgPool
}

// pgInit - look up Postgres info from the environment.
func pgInit() {
	pgURL = os.Getenv("DATABASE_URL")
}

// pgConnect opens the Postgres pool, if a URL is configured.
// Returns the pool id if successful, MemoryID if no URL is
// configured, an error otherwise.
func pgConnect(ctx context.Context) (string, error) {
	if pgURL == "" {
		return MemoryID, nil
	}
	pool, err := pgxpool.New(ctx, pgURL)
	if err != nil {
		return "", fmt.Errorf("couldn't open database at %q: %v", pgURL, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return "", fmt.Errorf("couldn't reach database at %q: %v", pgURL, err)
	}
	pgPool = pool
	return pgURL, nil
}

// pgClose closes the Postgres pool, if open.
func pgClose() {
	if pgPool != nil {
		pgPool.Close()
		pgPool = nil
	}
}
