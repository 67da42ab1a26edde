package app

import (
	"testing"

	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/rlacademy/rl-academy/internal/filter"
	"github.com/rlacademy/rl-academy/internal/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	items := []catalog.Item{
		{ID: "intro", Title: "Intro to RL", Level: "beginner", Type: catalog.TypeLesson, Tags: []string{"rl", "basics"},
			Content: catalog.LessonContent{VideoID: "v-intro"}},
		{ID: "courseA", Title: "Value Methods", Level: "intermediate", Type: catalog.TypeCourse,
			Content: catalog.CourseContent{Lessons: []catalog.Video{
				{ID: "lesson1", Title: "Bellman", VideoID: "v1"},
				{ID: "lesson2", Title: "Q-learning", VideoID: "v2"},
			}}},
		{ID: "empty", Title: "Coming soon", Level: "advanced", Type: catalog.TypePlaylist,
			Content: catalog.PlaylistContent{}},
	}
	tracks := []catalog.Track{
		{ID: "start", Title: "Getting started", ItemIDs: []string{"courseA", "ghost", "intro"}},
	}
	return catalog.New(items, tracks)
}

func itemIDs(items []catalog.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestStateTransitionsDoNotMutate(t *testing.T) {
	s := Initial()
	next := s.SetSearch("rl").SetLevel("beginner").SelectTrack("start")

	assert.Equal(t, Initial(), s)
	assert.Equal(t, filter.Selection{Search: "rl", Level: "beginner", Track: "start"}, next.Selection)
	assert.Equal(t, ModeTrack, next.Mode)
}

func TestSetSearchClearsTrack(t *testing.T) {
	s := Initial().SelectTrack("start").SetSearch("value")
	assert.Empty(t, s.Selection.Track)
	assert.Equal(t, ModeBrowse, s.Mode)
}

func TestViewTitles(t *testing.T) {
	cat := testCatalog()
	engine := filter.NewEngine(nil)
	ledger := progress.Load(progress.NewMemoryStore())

	tests := []struct {
		name  string
		state State
		title string
		ids   []string
	}{
		{name: "initial", state: Initial(), title: TitleHighlights, ids: []string{"intro", "courseA", "empty"}},
		{name: "search", state: Initial().SetSearch("BASICS"), title: TitleResults, ids: []string{"intro"}},
		{name: "search cleared", state: Initial().SetSearch("x").SetSearch(""), title: TitleHighlights, ids: []string{"intro", "courseA", "empty"}},
		{name: "level", state: Initial().SetLevel("intermediate"), title: TitleFiltered, ids: []string{"courseA"}},
		{name: "type", state: Initial().SetType("playlist"), title: TitleFiltered, ids: []string{"empty"}},
		{name: "track", state: Initial().SelectTrack("start"), title: "Getting started", ids: []string{"courseA", "intro"}},
		{name: "unknown track", state: Initial().SelectTrack("nope"), title: "nope", ids: []string{}},
		{name: "completed", state: Initial().ShowCompleted(), title: TitleCompleted, ids: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := tt.state.View(cat, engine, ledger)
			assert.Equal(t, tt.title, view.Title)
			assert.Equal(t, tt.ids, itemIDs(view.Items))
		})
	}
}

func TestTrackViewIgnoresFilters(t *testing.T) {
	cat := testCatalog()
	view := Initial().SetLevel("advanced").SelectTrack("start").View(cat, filter.NewEngine(nil), nil)
	assert.Equal(t, []string{"courseA", "intro"}, itemIDs(view.Items))
}

func TestCompletedView(t *testing.T) {
	cat := testCatalog()
	ledger := progress.Load(progress.NewMemoryStore())
	require.NoError(t, ledger.MarkCompleted(progress.NewKey("courseA", "lesson1")))
	require.NoError(t, ledger.MarkCompleted(progress.NewKey("courseA", "lesson2")))

	view := Initial().ShowCompleted().View(cat, filter.NewEngine(nil), ledger)
	assert.Equal(t, []string{"courseA"}, itemIDs(view.Items))
}
