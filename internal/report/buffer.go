package report

import (
	"sync"
	"time"
)

// Kind classifies a notice.
type Kind int

const (
	KindError Kind = iota
	KindWarning
	KindInfo
	KindSuccess
)

// Notice is a buffered message.
type Notice struct {
	Text string
	Kind Kind
	At   time.Time
}

// Buffer keeps notices in memory for display inside the TUI.
type Buffer struct {
	mu       sync.RWMutex
	notices  []Notice
	onNotice func(Notice)
	now      func() time.Time
}

var _ Reporter = (*Buffer)(nil)

// NewBuffer creates a buffer. onNotice, when set, is called for every notice.
func NewBuffer(onNotice func(Notice)) *Buffer {
	return &Buffer{onNotice: onNotice, now: time.Now}
}

func (b *Buffer) Error(msg string)   { b.add(msg, KindError) }
func (b *Buffer) Warning(msg string) { b.add(msg, KindWarning) }
func (b *Buffer) Info(msg string)    { b.add(msg, KindInfo) }
func (b *Buffer) Success(msg string) { b.add(msg, KindSuccess) }

func (b *Buffer) add(msg string, kind Kind) {
	b.mu.Lock()
	n := Notice{Text: msg, Kind: kind, At: b.now()}
	b.notices = append(b.notices, n)
	cb := b.onNotice
	b.mu.Unlock()

	if cb != nil {
		cb(n)
	}
}

// Latest returns the most recent notice since the last Clear.
func (b *Buffer) Latest() (Notice, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.notices) == 0 {
		return Notice{}, false
	}
	return b.notices[len(b.notices)-1], true
}

// All returns a copy of the buffered notices, oldest first.
func (b *Buffer) All() []Notice {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Notice, len(b.notices))
	copy(out, b.notices)
	return out
}

// Clear drops all buffered notices.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = nil
}
