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
	"strings"
	"sync"

	"github.com/gomodule/redigo/redis"
)

/*

Solution cache

Solving is deterministic for a given puzzle and order, so the
cache key is the compacted puzzle text plus the order name.
Entries never expire: a solution does not go stale.

*/

// memory fallback
var (
	memCache      = make(map[string]string)
	memCacheMutex sync.Mutex
)

// cacheKey compacts a puzzle's canonical text (separators and
// newlines dropped) and appends the order name, giving a short
// stable Redis key.
func cacheKey(puzzle, order string) string {
	var b strings.Builder
	b.WriteString("solution:")
	for _, ch := range puzzle {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	b.WriteByte(':')
	b.WriteString(order)
	return b.String()
}

// CacheSolution stores the solution text for a puzzle solved
// with the given search order.
func CacheSolution(puzzle, order, solution string) error {
	key := cacheKey(puzzle, order)
	if cacheMemory() {
		memCacheMutex.Lock()
		defer memCacheMutex.Unlock()
		memCache[key] = solution
		return nil
	}
	return rdExecute(func(conn redis.Conn) error {
		_, err := conn.Do("SET", key, solution)
		return err
	})
}

// CachedSolution looks up a previously stored solution.  The
// second return value reports whether one was found.
func CachedSolution(puzzle, order string) (string, bool, error) {
	key := cacheKey(puzzle, order)
	if cacheMemory() {
		memCacheMutex.Lock()
		defer memCacheMutex.Unlock()
		solution, found := memCache[key]
		return solution, found, nil
	}
	var solution string
	var found bool
	err := rdExecute(func(conn redis.Conn) error {
		reply, err := redis.String(conn.Do("GET", key))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			return err
		}
		solution, found = reply, true
		return nil
	})
	return solution, found, err
}

// ClearCache drops every cached solution.
func ClearCache() error {
	if cacheMemory() {
		memCacheMutex.Lock()
		defer memCacheMutex.Unlock()
		memCache = make(map[string]string)
		return nil
	}
	return rdExecute(func(conn redis.Conn) error {
		keys, err := redis.Strings(conn.Do("KEYS", "solution:*"))
		if err != nil {
			return err
		}
		for _, key := range keys {
			if _, err := conn.Do("DEL", key); err != nil {
				return err
			}
		}
		return nil
	})
}
