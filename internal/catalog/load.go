package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrSchema indicates the document lacks a valid items collection.
	ErrSchema = errors.New("invalid content document")
	// ErrDuplicateID indicates two items share an identifier.
	ErrDuplicateID = errors.New("duplicate item id")
)

// Warning is a non-fatal load condition to surface to the user.
type Warning string

// MissingTracksWarning is reported when the tracks collection is absent or not a list.
const MissingTracksWarning Warning = "'tracks' missing; the track list will be empty"

type rawDocument struct {
	Items  json.RawMessage `json:"items"`
	Tracks json.RawMessage `json:"tracks"`
}

type rawVideo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	YoutubeID string `json:"youtubeId"`
	VideoID   string `json:"videoId"`
}

type rawItem struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Level     string     `json:"level"`
	Type      string     `json:"type"`
	Tags      []string   `json:"tags"`
	Thumb     string     `json:"thumb"`
	YoutubeID string     `json:"youtubeId"`
	VideoID   string     `json:"videoId"`
	Lessons   []rawVideo `json:"lessons"`
	List      []rawVideo `json:"list"`
}

type rawTrack struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Load parses a content document into a Catalog.
// A missing or malformed items collection fails with ErrSchema. A missing
// tracks collection yields an empty track list and MissingTracksWarning.
func Load(raw []byte) (*Catalog, []Warning, error) {
	var doc rawDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if !isArray(doc.Items) {
		return nil, nil, fmt.Errorf("%w: 'items' missing or not a list", ErrSchema)
	}

	var rawItems []rawItem
	if err := json.Unmarshal(doc.Items, &rawItems); err != nil {
		return nil, nil, fmt.Errorf("%w: items: %v", ErrSchema, err)
	}

	items := make([]Item, 0, len(rawItems))
	seen := make(map[string]struct{}, len(rawItems))
	for _, ri := range rawItems {
		if _, dup := seen[ri.ID]; dup {
			return nil, nil, fmt.Errorf("%w: %w: %q", ErrSchema, ErrDuplicateID, ri.ID)
		}
		seen[ri.ID] = struct{}{}
		items = append(items, ri.toItem())
	}

	var warnings []Warning
	tracks := []Track{}
	var rawTracks []rawTrack
	if !isArray(doc.Tracks) || json.Unmarshal(doc.Tracks, &rawTracks) != nil {
		warnings = append(warnings, MissingTracksWarning)
	} else {
		for _, rt := range rawTracks {
			tracks = append(tracks, Track{ID: rt.ID, Title: rt.Title, ItemIDs: rt.Items})
		}
	}

	return New(items, tracks), warnings, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func (ri rawItem) toItem() Item {
	item := Item{
		ID:    ri.ID,
		Title: ri.Title,
		Level: ri.Level,
		Type:  ParseType(ri.Type),
		Tags:  ri.Tags,
		Thumb: ri.Thumb,
	}
	switch item.Type {
	case TypeLesson:
		item.Content = LessonContent{VideoID: firstNonEmpty(ri.YoutubeID, ri.VideoID)}
	case TypeCourse:
		item.Content = CourseContent{Lessons: toVideos(ri.Lessons, ri.List)}
	case TypePlaylist:
		item.Content = PlaylistContent{Videos: toVideos(ri.List, ri.Lessons)}
	}
	return item
}

// toVideos converts the preferred sequence, falling back to the alternate key.
func toVideos(preferred, alternate []rawVideo) []Video {
	src := preferred
	if len(src) == 0 {
		src = alternate
	}
	videos := make([]Video, 0, len(src))
	for _, rv := range src {
		videos = append(videos, Video{
			ID:      rv.ID,
			Title:   rv.Title,
			VideoID: firstNonEmpty(rv.YoutubeID, rv.VideoID),
		})
	}
	return videos
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
