package report

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rlacademy/rl-academy/internal/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOutput struct {
	calls []string
}

func (r *recordingOutput) Error(msgs ...string)   { r.calls = append(r.calls, "error:"+strings.Join(msgs, " ")) }
func (r *recordingOutput) Warning(msgs ...string) { r.calls = append(r.calls, "warning:"+strings.Join(msgs, " ")) }
func (r *recordingOutput) Info(msgs ...string)    { r.calls = append(r.calls, "info:"+strings.Join(msgs, " ")) }
func (r *recordingOutput) Success(msgs ...string) { r.calls = append(r.calls, "success:"+strings.Join(msgs, " ")) }

func TestConsoleReporterForwards(t *testing.T) {
	out := &recordingOutput{}
	r := NewConsole(out)
	r.Error("e")
	r.Warning("w")
	r.Info("i")
	r.Success("s")
	assert.Equal(t, []string{"error:e", "warning:w", "info:i", "success:s"}, out.calls)
}

func TestConsoleWritesThroughColors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	colors.SetOutput(&stdout, &stderr)
	defer colors.SetOutput(nil, nil)

	Console().Warning("tracks missing")
	Console().Error("boom")
	assert.Contains(t, stderr.String(), "tracks missing")
	assert.Contains(t, stderr.String(), "boom")
}

func TestBufferLatestAndClear(t *testing.T) {
	b := NewBuffer(nil)
	_, ok := b.Latest()
	assert.False(t, ok)

	b.Warning("first")
	b.Success("second")
	latest, ok := b.Latest()
	require.True(t, ok)
	assert.Equal(t, "second", latest.Text)
	assert.Equal(t, KindSuccess, latest.Kind)

	all := b.All()
	require.Len(t, all, 2)
	assert.Equal(t, KindWarning, all[0].Kind)

	b.Clear()
	assert.Empty(t, b.All())
}

func TestBufferCallback(t *testing.T) {
	var got []Notice
	b := NewBuffer(func(n Notice) { got = append(got, n) })
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	b.now = func() time.Time { return fixed }

	b.Error("failed")
	b.Info("hello")
	require.Len(t, got, 2)
	assert.Equal(t, Notice{Text: "failed", Kind: KindError, At: fixed}, got[0])
	assert.Equal(t, KindInfo, got[1].Kind)
}

func TestBufferConcurrentAccess(t *testing.T) {
	b := NewBuffer(nil)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Info("x")
			b.Latest()
		}()
	}
	wg.Wait()
	assert.Len(t, b.All(), 20)
}
