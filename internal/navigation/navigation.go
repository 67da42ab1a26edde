// Package navigation resolves an opened catalog item into the lesson to play.
package navigation

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/rlacademy/rl-academy/internal/progress"
)

// EmbedBase is the player URL prefix; the video identifier is appended.
const EmbedBase = "https://www.youtube.com/embed/"

var (
	// ErrItemNotFound is returned when the opened identifier is not in the catalog.
	ErrItemNotFound = errors.New("item not found")
	// ErrNothingToPlay is returned when the item has no playable lesson.
	ErrNothingToPlay = errors.New("item has no playable lesson")
)

// Lesson is the atomic playable unit, tagged with its owning item.
type Lesson struct {
	ID      string
	Title   string
	VideoID string
	ItemID  string
}

// Key returns the progress key addressing this lesson.
func (l Lesson) Key() progress.Key {
	return progress.NewKey(l.ItemID, l.ID)
}

// EmbedURL returns the player URL for the lesson's video.
func (l Lesson) EmbedURL() string {
	return EmbedBase + url.PathEscape(l.VideoID) + "?rel=0&modestbranding=1"
}

// ResolveLesson picks the lesson an item opens to.
// Lessons play themselves; courses and playlists always start at their first
// sub-lesson. Returns nil when there is nothing to play.
func ResolveLesson(item catalog.Item) *Lesson {
	switch c := item.Content.(type) {
	case catalog.LessonContent:
		if c.VideoID == "" {
			return nil
		}
		return &Lesson{ID: item.ID, Title: item.Title, VideoID: c.VideoID, ItemID: item.ID}
	case catalog.CourseContent:
		return first(item.ID, c.Lessons)
	case catalog.PlaylistContent:
		return first(item.ID, c.Videos)
	default:
		return nil
	}
}

// FindLesson returns the lesson of item with the given identifier, or nil.
// A standalone lesson is addressed by its own item identifier and, as with
// ResolveLesson, needs a video identifier.
func FindLesson(item catalog.Item, lessonID string) *Lesson {
	if c, ok := item.Content.(catalog.LessonContent); ok {
		if lessonID != item.ID || c.VideoID == "" {
			return nil
		}
		return &Lesson{ID: item.ID, Title: item.Title, VideoID: c.VideoID, ItemID: item.ID}
	}
	for _, v := range item.Lessons() {
		if v.ID == lessonID {
			return &Lesson{ID: v.ID, Title: v.Title, VideoID: v.VideoID, ItemID: item.ID}
		}
	}
	return nil
}

func first(itemID string, videos []catalog.Video) *Lesson {
	if len(videos) == 0 {
		return nil
	}
	v := videos[0]
	return &Lesson{ID: v.ID, Title: v.Title, VideoID: v.VideoID, ItemID: itemID}
}

// Playback is a resolved lesson together with its owning item.
type Playback struct {
	Item   catalog.Item
	Lesson Lesson
}

// Title returns the player heading joining the item and lesson titles.
func (p Playback) Title() string {
	return fmt.Sprintf("%s — %s", p.Item.Title, p.Lesson.Title)
}

// Key returns the progress key of the lesson being played.
func (p Playback) Key() progress.Key {
	return p.Lesson.Key()
}

// Open looks up itemID and resolves its lesson.
func Open(cat *catalog.Catalog, itemID string) (Playback, error) {
	item, ok := cat.Item(itemID)
	if !ok {
		return Playback{}, fmt.Errorf("%w: %q", ErrItemNotFound, itemID)
	}
	lesson := ResolveLesson(item)
	if lesson == nil {
		return Playback{}, fmt.Errorf("%w: %q", ErrNothingToPlay, itemID)
	}
	return Playback{Item: item, Lesson: *lesson}, nil
}

// StatusLabel derives the completion label of a lesson from the ledger.
func StatusLabel(ledger *progress.Ledger, lesson Lesson) string {
	if ledger == nil {
		return progress.StatusNotCompleted
	}
	return ledger.Status(lesson.Key())
}
