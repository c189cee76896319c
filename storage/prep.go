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
	"embed"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

/*

Schema preparation

The migrations ship embedded in the binary, so a deployment
needs no files on disk: `sudoku prepare-storage` (or the first
Connect against a fresh database) brings the schema up to date.

*/

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrator builds a migrate instance over the embedded
// migrations and the configured database.
func migrator() (*migrate.Migrate, error) {
	if pgURL == "" {
		return nil, fmt.Errorf("no database configured (DATABASE_URL is not set)")
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("couldn't read embedded migrations: %v", err)
	}
	// the migrate pgx driver registers the pgx5 URL scheme
	url := pgURL
	for _, scheme := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(url, scheme) {
			url = "pgx5://" + strings.TrimPrefix(url, scheme)
			break
		}
	}
	return migrate.NewWithSourceInstance("iofs", src, url)
}

// EnsureSchema brings the database schema up to the current
// version.  An already-current schema is not an error.
func EnsureSchema() error {
	m, err := migrator()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("couldn't install schema: %v", err)
	}
	return nil
}

// RemoveSchema tears the schema all the way down.
func RemoveSchema() error {
	m, err := migrator()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("couldn't remove schema: %v", err)
	}
	return nil
}

// ReinitializeAll clears the cache and rebuilds the database
// from scratch.
func ReinitializeAll() error {
	if err := ClearCache(); err != nil {
		return fmt.Errorf("couldn't clear cache: %v", err)
	}
	if err := RemoveSchema(); err != nil {
		return fmt.Errorf("couldn't clear database: %v", err)
	}
	if err := EnsureSchema(); err != nil {
		return fmt.Errorf("couldn't load database: %v", err)
	}
	return nil
}
