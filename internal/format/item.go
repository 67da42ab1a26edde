package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/rlacademy/rl-academy/internal/colors"
)

// SimpleFormatter formats one line per item under a section title.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a new SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

// FormatItems formats items in simple format.
func (f *SimpleFormatter) FormatItems(title string, items []catalog.Item, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "%s%s%s\n", colors.Blue, title, colors.Reset); err != nil {
		return err
	}
	if len(items) == 0 {
		return writeEmpty(writer)
	}
	for _, item := range items {
		line := fmt.Sprintf("%-16s  %-8s  %-12s  %-12s  %s", item.ID, TypeBadge(item), LevelLabel(item), item.Meta(), Title(item))
		if tags := TagLine(item.Tags); tags != "" {
			line += "  " + tags
		}
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatTracks formats tracks in simple format.
func (f *SimpleFormatter) FormatTracks(tracks []catalog.Track, writer io.Writer) error {
	if len(tracks) == 0 {
		_, err := fmt.Fprintf(writer, "%s%s%s\n", colors.Blue, "No tracks", colors.Reset)
		return err
	}
	for _, t := range tracks {
		if _, err := fmt.Fprintf(writer, "%-16s  %s (%d)\n", t.ID, t.Title, len(t.ItemIDs)); err != nil {
			return err
		}
	}
	return nil
}

func writeEmpty(writer io.Writer) error {
	_, err := fmt.Fprintf(writer, "%s\n%s\n", EmptyTitle, EmptyHint)
	return err
}

// JSONFormatter formats listings as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonLesson struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	VideoID string `json:"videoId"`
}

type jsonItem struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Level   string       `json:"level,omitempty"`
	Type    string       `json:"type"`
	Tags    []string     `json:"tags"`
	Thumb   string       `json:"thumb"`
	Meta    string       `json:"meta"`
	VideoID string       `json:"videoId,omitempty"`
	Lessons []jsonLesson `json:"lessons,omitempty"`
}

type jsonListing struct {
	Title string     `json:"title"`
	Items []jsonItem `json:"items"`
}

type jsonTrack struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

func toJSONItem(item catalog.Item) jsonItem {
	out := jsonItem{
		ID:    item.ID,
		Title: item.Title,
		Level: item.Level,
		Type:  item.Type.String(),
		Tags:  item.Tags,
		Thumb: Thumb(item),
		Meta:  item.Meta(),
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if c, ok := item.Content.(catalog.LessonContent); ok {
		out.VideoID = c.VideoID
	}
	for _, v := range item.Lessons() {
		out.Lessons = append(out.Lessons, jsonLesson(v))
	}
	return out
}

// FormatItems formats a listing as JSON.
func (f *JSONFormatter) FormatItems(title string, items []catalog.Item, writer io.Writer) error {
	listing := jsonListing{Title: title, Items: make([]jsonItem, 0, len(items))}
	for _, item := range items {
		listing.Items = append(listing.Items, toJSONItem(item))
	}
	return writeJSON(listing, writer)
}

// FormatTracks formats tracks as JSON.
func (f *JSONFormatter) FormatTracks(tracks []catalog.Track, writer io.Writer) error {
	out := make([]jsonTrack, 0, len(tracks))
	for _, t := range tracks {
		ids := t.ItemIDs
		if ids == nil {
			ids = []string{}
		}
		out = append(out, jsonTrack{ID: t.ID, Title: t.Title, Items: ids})
	}
	return writeJSON(out, writer)
}

func writeJSON(v any, writer io.Writer) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(writer)
	return err
}
