// Package format provides output formatting functionality for CLI commands.
// It includes formatters for catalog listings, tracks, playback and progress.
package format

import (
	"io"
	"strings"

	"github.com/rlacademy/rl-academy/internal/catalog"
)

// PlaceholderThumb is shown for items without a thumbnail.
const PlaceholderThumb = "https://placehold.co/800x450/png?text=RL+Academy"

// Empty listing texts.
const (
	EmptyTitle = "Nothing here"
	EmptyHint  = "Try clearing the filters, searching for something else or opening a track."
)

// MissingLevel is shown for items without a level.
const MissingLevel = "—"

// Formatter defines the interface for output formatters.
type Formatter interface {
	// FormatItems formats a titled item listing and writes to the writer.
	FormatItems(title string, items []catalog.Item, writer io.Writer) error

	// FormatTracks formats the track list and writes to the writer.
	FormatTracks(tracks []catalog.Track, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple displays one line per item.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeTable displays items in a table format with headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeJSON displays items in JSON format.
	FormatterTypeJSON FormatterType = "json"
)

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeTable:
		return NewTableFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		// Default to simple formatter for unknown types
		return NewSimpleFormatter()
	}
}

// LevelLabel returns the item level or MissingLevel.
func LevelLabel(item catalog.Item) string {
	if item.Level == "" {
		return MissingLevel
	}
	return item.Level
}

// TypeBadge returns the capitalized item type, or "Item" when absent.
func TypeBadge(item catalog.Item) string {
	t := item.Type.String()
	if t == "" {
		return "Item"
	}
	return strings.ToUpper(t[:1]) + t[1:]
}

// Thumb returns the item thumbnail or the placeholder.
func Thumb(item catalog.Item) string {
	if item.Thumb == "" {
		return PlaceholderThumb
	}
	return item.Thumb
}

// Title returns the item title, or a stand-in when absent.
func Title(item catalog.Item) string {
	if item.Title == "" {
		return "Untitled"
	}
	return item.Title
}

// TagLine renders tags as "#a #b".
func TagLine(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, "#"+t)
	}
	return strings.Join(parts, " ")
}
