package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabledReturnsNoop(t *testing.T) {
	l, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, noopLogger{}, l)
	assert.NoError(t, l.Shutdown())
}

func TestInitWritesJSONLines(t *testing.T) {
	dir := t.TempDir()
	l, err := Init(Config{Enabled: true, Level: "debug", MaxFiles: 3, Dir: dir, Command: "list", PID: 42})
	require.NoError(t, err)

	l.With("item", "courseA").Info("lesson opened", "lesson", "l1")
	require.NoError(t, l.Shutdown())

	files, err := filepath.Glob(filepath.Join(dir, "rl-academy_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "lesson opened", entry["msg"])
	assert.Equal(t, "courseA", entry["item"])
	assert.Equal(t, "l1", entry["lesson"])
	assert.Equal(t, "list", entry["command"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, clog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, clog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, clog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, clog.InfoLevel, parseLevel("bogus"))
}

func TestRotateKeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"rl-academy_a.log", "rl-academy_b.log", "rl-academy_c.log", "other.log"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, nil, 0600))
		mt := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, mt, mt))
	}

	require.NoError(t, rotate(dir, 2))

	left, err := filepath.Glob(filepath.Join(dir, "*.log"))
	require.NoError(t, err)
	var names []string
	for _, p := range left {
		names = append(names, filepath.Base(p))
	}
	assert.ElementsMatch(t, []string{"rl-academy_c.log", "other.log"}, names)
}

func TestGlobalDefaultsToNoop(t *testing.T) {
	SetGlobal(nil)
	assert.IsType(t, noopLogger{}, GetGlobal())
	assert.Equal(t, "", CurrentLogFile())
	Info("ignored")
	assert.NoError(t, ShutdownGlobal())
}
