package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/rlacademy/rl-academy/internal/navigation"
	"github.com/rlacademy/rl-academy/internal/progress"
	"github.com/rlacademy/rl-academy/internal/report"
	"github.com/rlacademy/rl-academy/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contentDoc = `{
  "items": [
    {"id": "intro", "title": "Intro to RL", "level": "beginner", "type": "aula", "tags": ["rl"], "youtubeId": "v-intro"},
    {"id": "courseA", "title": "Value Methods", "type": "curso", "lessons": [
      {"id": "lesson1", "title": "Bellman", "youtubeId": "v1"},
      {"id": "lesson2", "title": "Q-learning", "youtubeId": "v2"}
    ]}
  ],
  "tracks": [{"id": "start", "title": "Getting started", "items": ["courseA", "intro"]}]
}`

func writeContent(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestAcademyLoadsFromFallback(t *testing.T) {
	path := writeContent(t, contentDoc)
	a := NewAcademy(Options{
		Primary:  filepath.Join(t.TempDir(), "missing.json"),
		Fallback: path,
		Store:    progress.NewMemoryStore(),
	})

	view, err := a.Browse(context.Background(), Initial())
	require.NoError(t, err)
	assert.Equal(t, TitleHighlights, view.Title)
	assert.Equal(t, []string{"intro", "courseA"}, itemIDs(view.Items))

	tracks, err := a.Tracks(context.Background())
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "Getting started", tracks[0].Title)
}

func TestAcademyLoadErrorIsTerminal(t *testing.T) {
	a := NewAcademy(Options{Primary: filepath.Join(t.TempDir(), "missing.json")})

	_, err := a.Catalog(context.Background())
	assert.ErrorIs(t, err, source.ErrLoad)

	_, _, err = a.Open(context.Background(), "intro")
	assert.ErrorIs(t, err, source.ErrLoad)
	assert.Nil(t, a.Ledger())
}

func TestAcademySchemaError(t *testing.T) {
	a := NewAcademy(Options{Primary: writeContent(t, `{"tracks": []}`)})
	_, err := a.Catalog(context.Background())
	assert.ErrorIs(t, err, catalog.ErrSchema)
}

func TestAcademyMissingTracksWarning(t *testing.T) {
	notices := report.NewBuffer(nil)
	a := NewAcademy(Options{Primary: writeContent(t, `{"items": []}`), Reporter: notices})
	tracks, err := a.Tracks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tracks)

	latest, ok := notices.Latest()
	require.True(t, ok)
	assert.Equal(t, report.KindWarning, latest.Kind)
	assert.Equal(t, string(catalog.MissingTracksWarning), latest.Text)

	warnings, err := a.Warnings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []catalog.Warning{catalog.MissingTracksWarning}, warnings)
}

func TestAcademyBrowseUnknownTrack(t *testing.T) {
	a := NewWithCatalog(testCatalog(), nil, nil)

	_, err := a.Browse(context.Background(), Initial().SelectTrack("typo"))
	assert.ErrorIs(t, err, ErrTrackNotFound)
	assert.ErrorContains(t, err, `"typo"`)

	view, err := a.Browse(context.Background(), Initial().SelectTrack("start"))
	require.NoError(t, err)
	assert.Equal(t, "Getting started", view.Title)
}

func TestAcademyOpenAndMarkDone(t *testing.T) {
	store := progress.NewMemoryStore()
	a := NewAcademy(Options{Primary: writeContent(t, contentDoc), Store: store})
	ctx := context.Background()

	pb, status, err := a.Open(ctx, "courseA")
	require.NoError(t, err)
	assert.Equal(t, "Value Methods — Bellman", pb.Title())
	assert.Equal(t, progress.StatusNotCompleted, status)

	done, err := a.MarkDone(ctx, "courseA", "")
	require.NoError(t, err)
	assert.Equal(t, "lesson1", done.Lesson.ID)

	_, err = a.MarkDone(ctx, "courseA", "lesson2")
	require.NoError(t, err)

	_, status, err = a.LessonStatus(ctx, "courseA", "lesson2")
	require.NoError(t, err)
	assert.Equal(t, progress.StatusCompleted, status)

	items, keys, err := a.Completed(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"courseA"}, itemIDs(items))
	assert.Equal(t, []progress.Key{
		progress.NewKey("courseA", "lesson1"),
		progress.NewKey("courseA", "lesson2"),
	}, keys)

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, persisted, 2)
}

func TestAcademyLessonErrors(t *testing.T) {
	a := NewWithCatalog(testCatalog(), nil, nil)
	ctx := context.Background()

	_, err := a.MarkDone(ctx, "courseA", "lesson9")
	assert.ErrorIs(t, err, ErrLessonNotFound)

	_, err = a.MarkDone(ctx, "ghost", "")
	assert.ErrorIs(t, err, navigation.ErrItemNotFound)

	_, _, err = a.Open(ctx, "empty")
	assert.ErrorIs(t, err, navigation.ErrNothingToPlay)
	assert.Equal(t, 0, a.Ledger().Len())
}

func TestAcademyMarkDoneRejectsLessonWithoutVideo(t *testing.T) {
	cat := catalog.New([]catalog.Item{
		{ID: "draft", Title: "Draft", Type: catalog.TypeLesson, Content: catalog.LessonContent{}},
	}, nil)
	a := NewWithCatalog(cat, nil, nil)

	_, err := a.MarkDone(context.Background(), "draft", "draft")
	assert.ErrorIs(t, err, ErrLessonNotFound)
	assert.Equal(t, 0, a.Ledger().Len())
}

func TestAcademyMarkDonePersistFailure(t *testing.T) {
	store := progress.NewMemoryStore()
	a := NewWithCatalog(testCatalog(), progress.Load(store), nil)
	store.FailWith(errors.New("disk full"))

	_, err := a.MarkDone(context.Background(), "intro", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestAcademyClose(t *testing.T) {
	assert.NoError(t, NewAcademy(Options{}).Close())
}
