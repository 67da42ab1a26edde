// Package storage provides progress storage backend selection and implementations.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rlacademy/rl-academy/internal/colors"
	"github.com/rlacademy/rl-academy/internal/config"
	"github.com/rlacademy/rl-academy/internal/progress"
	"github.com/rlacademy/rl-academy/internal/storage/sqlite"
)

const (
	// BackendJSON selects the flat JSON file store.
	BackendJSON = config.BackendJSON
	// BackendSQLite selects the SQLite store.
	BackendSQLite = config.BackendSQLite

	// FileModeDir is the permission for state directories.
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for state files.
	FileModeFile os.FileMode = 0644

	progressDBFileName = "progress.db"
)

var _ progress.Store = (*sqlite.SQLiteStorage)(nil)

// NewFromConfig creates the progress store selected by configuration.
func NewFromConfig() (progress.Store, error) {
	return NewForBackend(
		config.Get("progress_backend", BackendJSON),
		config.Get("state_dir", ""),
		config.Get("progress_namespace", "rlacademy.progress"),
	)
}

// NewForBackend creates a progress store for the named backend.
// SQLite failures fall back to the JSON store with a warning.
func NewForBackend(backend, stateDir, namespace string) (progress.Store, error) {
	if stateDir == "" {
		return nil, fmt.Errorf("storage: state directory is not configured")
	}
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendJSON:
		return NewJSONStore(stateDir, namespace)
	case BackendSQLite:
		dbPath := filepath.Join(stateDir, progressDBFileName)
		jsonStore, err := NewJSONStore(stateDir, namespace)
		if err != nil {
			return nil, err
		}
		dbExisted, err := pathExists(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to check sqlite database, falling back to json: %v", err))
			return jsonStore, nil
		}
		sqliteStorage, err := sqlite.NewSQLiteStorage(dbPath, namespace)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to json: %v", err))
			return jsonStore, nil
		}
		if !dbExisted {
			if err := migrateJSONToSQLite(jsonStore, sqliteStorage); err != nil {
				colors.Warning(fmt.Sprintf("progress migration to sqlite failed: %v", err))
			}
		}
		return sqliteStorage, nil
	default:
		colors.Warning(fmt.Sprintf("unknown progress backend '%s', falling back to json", backend))
		return NewJSONStore(stateDir, namespace)
	}
}

// migrateJSONToSQLite copies existing JSON progress into a fresh database.
func migrateJSONToSQLite(from *JSONStore, to progress.Store) error {
	entries, err := from.Load()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	colors.Info("Detected JSON progress. Importing into SQLite...")
	if err := to.Update(func([]progress.Entry) []progress.Entry { return entries }); err != nil {
		return fmt.Errorf("import progress: %w", err)
	}
	colors.Success(fmt.Sprintf("SQLite migration complete: %d entries imported", len(entries)))
	return nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
