package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `{"items":[]}`

func TestFetchPrimaryURL(t *testing.T) {
	var fallbackHits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/content.json":
			_, _ = w.Write([]byte(doc))
		default:
			fallbackHits++
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	data, err := NewFetcher(time.Second).Fetch(context.Background(), srv.URL+"/content.json", "data/content.json")
	require.NoError(t, err)
	assert.Equal(t, doc, string(data))
	assert.Zero(t, fallbackHits)
}

func TestFetchFallsBackOnStatus(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/data/content.json" {
			_, _ = w.Write([]byte(doc))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	data, err := NewFetcher(time.Second).Fetch(context.Background(), srv.URL+"/content.json", "data/content.json")
	require.NoError(t, err)
	assert.Equal(t, doc, string(data))
	assert.Equal(t, []string{"/content.json", "/data/content.json"}, paths)
}

func TestFetchBothFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewFetcher(time.Second).Fetch(context.Background(), srv.URL+"/a.json", srv.URL+"/b.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	require.Len(t, loadErr.Attempts, 2)
	assert.Equal(t, srv.URL+"/a.json", loadErr.Attempts[0].Location)
	assert.Equal(t, srv.URL+"/b.json", loadErr.Attempts[1].Location)

	var statusErr *StatusError
	require.True(t, errors.As(loadErr.Attempts[1].Err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestFetchLocalFiles(t *testing.T) {
	dir := t.TempDir()
	fallback := filepath.Join(dir, "fallback.json")
	require.NoError(t, os.WriteFile(fallback, []byte(doc), 0o644))

	data, err := NewFetcher(0).Fetch(context.Background(), filepath.Join(dir, "missing.json"), fallback)
	require.NoError(t, err)
	assert.Equal(t, doc, string(data))
}

func TestFetchNoFallback(t *testing.T) {
	_, err := NewFetcher(0).Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.json"), "")

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Len(t, loadErr.Attempts, 1)
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewFetcher(50*time.Millisecond).Fetch(context.Background(), srv.URL+"/slow.json", "")
	assert.ErrorIs(t, err, ErrLoad)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "https://example.com/site/data/content.json",
		resolve("https://example.com/site/content.json", "data/content.json"))
	assert.Equal(t, "https://cdn.example.com/c.json",
		resolve("https://example.com/content.json", "https://cdn.example.com/c.json"))
	assert.Equal(t, "data/content.json", resolve("content.json", "data/content.json"))
}
