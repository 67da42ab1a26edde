// Package source fetches the content document from its primary location,
// falling back to a second location once.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rlacademy/rl-academy/internal/config"
	"github.com/rlacademy/rl-academy/internal/logging"
)

// DefaultTimeout bounds a single HTTP request.
const DefaultTimeout = 10 * time.Second

// ErrLoad matches every document fetch failure.
var ErrLoad = errors.New("content document could not be loaded")

// Attempt records one failed location.
type Attempt struct {
	Location string
	Err      error
}

// LoadError reports that every location failed. It matches ErrLoad.
type LoadError struct {
	Attempts []Attempt
}

func (e *LoadError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Location, a.Err))
	}
	return fmt.Sprintf("%v (%s)", ErrLoad, strings.Join(parts, "; "))
}

// Is reports whether target is ErrLoad.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// StatusError is a non-success HTTP response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// Fetcher reads documents from HTTP(S) URLs or local paths.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a fetcher whose HTTP requests time out after timeout.
// A non-positive timeout uses DefaultTimeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewFetcherFromConfig creates a fetcher using fetch_timeout_seconds.
func NewFetcherFromConfig() *Fetcher {
	seconds := config.GetInt("fetch_timeout_seconds", int(DefaultTimeout/time.Second))
	return NewFetcher(time.Duration(seconds) * time.Second)
}

// Fetch reads primary and, if that fails, fallback. A relative fallback is
// resolved against a URL primary. The returned error is a *LoadError.
func (f *Fetcher) Fetch(ctx context.Context, primary, fallback string) ([]byte, error) {
	locations := []string{primary}
	if fallback != "" && fallback != primary {
		locations = append(locations, resolve(primary, fallback))
	}

	loadErr := &LoadError{}
	for _, loc := range locations {
		data, err := f.fetchOne(ctx, loc)
		if err == nil {
			logging.Debug("content document loaded", "location", loc, "bytes", len(data))
			return data, nil
		}
		logging.Warn("content location failed", "location", loc, "error", err)
		loadErr.Attempts = append(loadErr.Attempts, Attempt{Location: loc, Err: err})
		if ctx.Err() != nil {
			break
		}
	}
	return nil, loadErr
}

func (f *Fetcher) fetchOne(ctx context.Context, loc string) ([]byte, error) {
	if !isURL(loc) {
		data, err := os.ReadFile(loc)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

func isURL(loc string) bool {
	return strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://")
}

func resolve(primary, fallback string) string {
	if !isURL(primary) || isURL(fallback) {
		return fallback
	}
	base, err := url.Parse(primary)
	if err != nil {
		return fallback
	}
	ref, err := url.Parse(fallback)
	if err != nil {
		return fallback
	}
	return base.ResolveReference(ref).String()
}
