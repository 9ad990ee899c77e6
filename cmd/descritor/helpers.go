package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/granabr/descritor/internal/common"
	"github.com/granabr/descritor/internal/config"
	"github.com/granabr/descritor/internal/storage"
	"github.com/granabr/descritor/internal/tables"
)

// loadTables returns the reference tables: the file configured under
// tables.path when set, the built-in defaults otherwise.
func loadTables() (*tables.Tables, error) {
	path := viper.GetString("tables.path")
	if path == "" {
		return tables.Default(), nil
	}
	t, err := tables.Load(config.ExpandPath(path))
	if err != nil {
		return nil, common.NewUserError("could not load reference tables", err)
	}
	return t, nil
}

// openStore opens the SQLite store at the configured path. Callers run
// migrations before first use.
func openStore() (*storage.SQLiteStore, error) {
	path := viper.GetString("storage.path")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, ".local", "share", "descritor", "descritor.db")
	}

	store, err := storage.NewSQLiteStore(config.ExpandPath(path))
	if err != nil {
		return nil, common.NewUserError("could not open database", err)
	}
	return store, nil
}
