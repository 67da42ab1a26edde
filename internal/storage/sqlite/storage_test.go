package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/rlacademy/rl-academy/internal/progress"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, dbPath, namespace string) *SQLiteStorage {
	t.Helper()

	s, err := NewSQLiteStorage(dbPath, namespace)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestNewSQLiteStorageValidation(t *testing.T) {
	_, err := NewSQLiteStorage("", "ns")
	require.Error(t, err)

	_, err = NewSQLiteStorage(filepath.Join(t.TempDir(), "p.db"), " ")
	require.ErrorIs(t, err, ErrEmptyNamespace)
}

func TestLoadEmpty(t *testing.T) {
	s := newTestStorage(t, filepath.Join(t.TempDir(), "progress.db"), "rlacademy.progress")
	entries, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestUpdatePreservesOrder(t *testing.T) {
	s := newTestStorage(t, filepath.Join(t.TempDir(), "nested", "progress.db"), "rlacademy.progress")

	want := []progress.Entry{
		{Key: "z:1", Completed: true},
		{Key: "a:1", Completed: true},
		{Key: "m:2", Completed: false},
	}
	require.NoError(t, s.Update(func(current []progress.Entry) []progress.Entry {
		require.Empty(t, current)
		return want
	}))

	got, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.NoError(t, s.Update(func(current []progress.Entry) []progress.Entry {
		require.Equal(t, want, current)
		return append(current, progress.Entry{Key: "b:1", Completed: true})
	}))
	got, err = s.Load()
	require.NoError(t, err)
	require.Len(t, got, 4)
	require.Equal(t, "b:1", got[3].Key)
}

func TestNamespacesAreIsolated(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "progress.db")
	a := newTestStorage(t, dbPath, "ns-a")
	require.NoError(t, a.Update(func([]progress.Entry) []progress.Entry {
		return []progress.Entry{{Key: "x:1", Completed: true}}
	}))

	b := newTestStorage(t, dbPath, "ns-b")
	entries, err := b.Load()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestLedgerOverSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "progress.db")
	s := newTestStorage(t, dbPath, "rlacademy.progress")

	ledger := progress.Load(s)
	require.NoError(t, ledger.MarkCompleted(progress.NewKey("courseA", "l1")))
	require.NoError(t, ledger.MarkCompleted(progress.NewKey("courseA", "l1")))

	reloaded := progress.Load(s)
	require.Equal(t, map[string]bool{"courseA:l1": true}, reloaded.Snapshot())
}
