package storage

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	lockTimeout = 10 * time.Second
	lockRetry   = 50 * time.Millisecond
	// Locks older than this are assumed abandoned by a crashed process.
	lockStaleAfter = 30 * time.Second
)

// ErrLockTimeout indicates the lock could not be acquired in time.
var ErrLockTimeout = errors.New("timed out waiting for lock")

// Lock represents a directory-based lock. Creating the directory acquires it.
type Lock struct {
	dir string
}

// NewLock creates a new lock at the given directory path.
func NewLock(dir string) *Lock {
	return &Lock{dir: dir}
}

// Acquire attempts to acquire the lock, retrying until timeout.
func (l *Lock) Acquire() error {
	start := time.Now()
	for {
		err := os.Mkdir(l.dir, FileModeDir)
		if err == nil {
			return nil
		}
		if !os.IsExist(err) {
			return fmt.Errorf("create lock directory: %w", err)
		}
		if info, statErr := os.Stat(l.dir); statErr == nil && time.Since(info.ModTime()) > lockStaleAfter {
			_ = os.Remove(l.dir)
			continue
		}
		if time.Since(start) > lockTimeout {
			return fmt.Errorf("%w: %s", ErrLockTimeout, l.dir)
		}
		time.Sleep(lockRetry)
	}
}

// Release releases the lock by removing the directory.
func (l *Lock) Release() error {
	return os.Remove(l.dir)
}

// WithLock executes fn while holding the lock.
func WithLock(dir string, fn func() error) error {
	lock := NewLock(dir)
	if err := lock.Acquire(); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer lock.Release()
	return fn()
}
