// Package catalog holds the immutable set of items and tracks loaded from the
// content document.
package catalog

import "fmt"

// Type is the item variant tag as it appears in the content document.
type Type string

// Known item types.
const (
	TypeLesson   Type = "lesson"
	TypeCourse   Type = "course"
	TypePlaylist Type = "playlist"
)

// typeAliases maps alternative spellings found in older documents.
var typeAliases = map[string]Type{
	"aula":  TypeLesson,
	"curso": TypeCourse,
}

// ParseType normalizes a raw type value. Unknown values are returned as-is.
func ParseType(raw string) Type {
	if t, ok := typeAliases[raw]; ok {
		return t
	}
	return Type(raw)
}

// IsKnown reports whether t is one of the three supported variants.
func (t Type) IsKnown() bool {
	switch t {
	case TypeLesson, TypeCourse, TypePlaylist:
		return true
	default:
		return false
	}
}

// String returns the raw type value.
func (t Type) String() string {
	return string(t)
}

// Video is a lesson sub-record nested in a course or playlist.
type Video struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	VideoID string `json:"videoId"`
}

// Content is the variant-specific payload of an Item.
// Implementations are LessonContent, CourseContent and PlaylistContent.
type Content interface {
	contentType() Type
}

// LessonContent is the payload of a standalone lesson.
type LessonContent struct {
	VideoID string
}

// CourseContent is the payload of a course: an ordered lesson sequence.
type CourseContent struct {
	Lessons []Video
}

// PlaylistContent is the payload of a playlist: an ordered video sequence.
type PlaylistContent struct {
	Videos []Video
}

func (LessonContent) contentType() Type   { return TypeLesson }
func (CourseContent) contentType() Type   { return TypeCourse }
func (PlaylistContent) contentType() Type { return TypePlaylist }

// Item is a unit of content in the catalog.
// Content is nil when Type is not one of the known variants.
type Item struct {
	ID      string
	Title   string
	Level   string
	Type    Type
	Tags    []string
	Thumb   string
	Content Content
}

// Lessons returns the ordered sub-lessons of a course or playlist, or nil.
func (i Item) Lessons() []Video {
	switch c := i.Content.(type) {
	case CourseContent:
		return c.Lessons
	case PlaylistContent:
		return c.Videos
	default:
		return nil
	}
}

// Meta returns the short size description shown next to an item.
func (i Item) Meta() string {
	switch c := i.Content.(type) {
	case CourseContent:
		return fmt.Sprintf("%d lessons", len(c.Lessons))
	case PlaylistContent:
		return fmt.Sprintf("%d videos", len(c.Videos))
	default:
		return "Single lesson"
	}
}

// Track is a named, ordered grouping of item identifiers.
type Track struct {
	ID      string
	Title   string
	ItemIDs []string
}
