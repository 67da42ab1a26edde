package navigation

import (
	"testing"

	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/rlacademy/rl-academy/internal/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var courseA = catalog.Item{
	ID:    "courseA",
	Title: "Value Methods",
	Type:  catalog.TypeCourse,
	Content: catalog.CourseContent{Lessons: []catalog.Video{
		{ID: "L1", Title: "Bellman", VideoID: "v1"},
		{ID: "L2", Title: "Q-learning", VideoID: "v2"},
	}},
}

func TestResolveLesson(t *testing.T) {
	tests := []struct {
		name     string
		item     catalog.Item
		expected *Lesson
	}{
		{
			name: "lesson plays itself",
			item: catalog.Item{ID: "intro", Title: "Intro to RL", Type: catalog.TypeLesson,
				Content: catalog.LessonContent{VideoID: "abc"}},
			expected: &Lesson{ID: "intro", Title: "Intro to RL", VideoID: "abc", ItemID: "intro"},
		},
		{
			name:     "course starts at first lesson",
			item:     courseA,
			expected: &Lesson{ID: "L1", Title: "Bellman", VideoID: "v1", ItemID: "courseA"},
		},
		{
			name: "playlist starts at first video",
			item: catalog.Item{ID: "pl", Type: catalog.TypePlaylist, Content: catalog.PlaylistContent{
				Videos: []catalog.Video{{ID: "p1", Title: "One", VideoID: "x"}},
			}},
			expected: &Lesson{ID: "p1", Title: "One", VideoID: "x", ItemID: "pl"},
		},
		{
			name: "empty course",
			item: catalog.Item{ID: "empty", Type: catalog.TypeCourse, Content: catalog.CourseContent{}},
		},
		{
			name: "empty playlist",
			item: catalog.Item{ID: "empty", Type: catalog.TypePlaylist, Content: catalog.PlaylistContent{}},
		},
		{
			name: "lesson without video",
			item: catalog.Item{ID: "novideo", Type: catalog.TypeLesson, Content: catalog.LessonContent{}},
		},
		{
			name: "unknown type",
			item: catalog.Item{ID: "art", Type: catalog.Type("article")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveLesson(tt.item))
		})
	}
}

func TestResolveLessonIgnoresProgress(t *testing.T) {
	ledger := progress.Load(progress.NewMemoryStore())
	require.NoError(t, ledger.MarkCompleted(progress.NewKey("courseA", "L1")))

	lesson := ResolveLesson(courseA)
	require.NotNil(t, lesson)
	assert.Equal(t, "L1", lesson.ID)
}

func TestOpen(t *testing.T) {
	empty := catalog.Item{ID: "empty", Title: "Empty", Type: catalog.TypeCourse, Content: catalog.CourseContent{}}
	cat := catalog.New([]catalog.Item{courseA, empty}, nil)

	pb, err := Open(cat, "courseA")
	require.NoError(t, err)
	assert.Equal(t, "Value Methods — Bellman", pb.Title())
	assert.Equal(t, progress.NewKey("courseA", "L1"), pb.Key())

	_, err = Open(cat, "empty")
	assert.ErrorIs(t, err, ErrNothingToPlay)

	_, err = Open(cat, "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestOpenEmptyCourseLeavesLedgerUntouched(t *testing.T) {
	store := progress.NewMemoryStore()
	ledger := progress.Load(store)
	cat := catalog.New([]catalog.Item{{ID: "empty", Type: catalog.TypeCourse, Content: catalog.CourseContent{}}}, nil)

	_, err := Open(cat, "empty")
	require.Error(t, err)
	assert.Equal(t, 0, ledger.Len())
	assert.Equal(t, 0, store.Saves())
}

func TestFindLesson(t *testing.T) {
	lesson := FindLesson(courseA, "L2")
	require.NotNil(t, lesson)
	assert.Equal(t, Lesson{ID: "L2", Title: "Q-learning", VideoID: "v2", ItemID: "courseA"}, *lesson)
	assert.Nil(t, FindLesson(courseA, "L3"))

	single := catalog.Item{ID: "intro", Title: "Intro", Type: catalog.TypeLesson, Content: catalog.LessonContent{VideoID: "x"}}
	require.NotNil(t, FindLesson(single, "intro"))
	assert.Nil(t, FindLesson(single, "other"))

	noVideo := catalog.Item{ID: "draft", Title: "Draft", Type: catalog.TypeLesson, Content: catalog.LessonContent{}}
	assert.Nil(t, FindLesson(noVideo, "draft"))
}

func TestEmbedURL(t *testing.T) {
	lesson := Lesson{VideoID: "dQw4w9WgXcQ"}
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0&modestbranding=1", lesson.EmbedURL())
}

func TestStatusLabel(t *testing.T) {
	ledger := progress.Load(progress.NewMemoryStore())
	lesson := Lesson{ID: "L1", ItemID: "courseA"}

	assert.Equal(t, "not completed", StatusLabel(ledger, lesson))
	require.NoError(t, ledger.MarkCompleted(lesson.Key()))
	assert.Equal(t, "completed", StatusLabel(ledger, lesson))
	assert.Equal(t, "not completed", StatusLabel(nil, lesson))
}
