// Package search provides the text matching strategies used to filter catalog
// items. All strategies share the Provider interface so the CLI and the TUI
// filter the same way.
package search

import (
	"strings"

	"github.com/rlacademy/rl-academy/internal/catalog"
)

// Searchable fields.
const (
	FieldTitle = "title"
	FieldTags  = "tags"
)

// Provider defines the interface for search providers.
type Provider interface {
	// Match returns true if the item matches the search query.
	// An empty query matches every item.
	Match(item catalog.Item, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool     // If true, searches ignore case
	Fields          []string // Fields to search in, in haystack order
}

// DefaultOptions returns the default search options: case-insensitive over
// the title followed by the tags.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
		Fields:          []string{FieldTitle, FieldTags},
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
// Valid fields: "title", "tags".
func WithFields(fields []string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// haystack joins the configured fields with single spaces: the title first,
// then the tags in their original order.
func haystack(item catalog.Item, o Options) string {
	parts := make([]string, 0, 1+len(item.Tags))
	for _, field := range o.Fields {
		switch field {
		case FieldTitle:
			parts = append(parts, item.Title)
		case FieldTags:
			parts = append(parts, item.Tags...)
		}
	}
	text := strings.Join(parts, " ")
	if o.CaseInsensitive {
		text = strings.ToLower(text)
	}
	return text
}

// ForMode returns the provider for a configured search mode.
// Unknown modes get the substring provider.
func ForMode(mode string, opts ...Option) Provider {
	switch mode {
	case "token":
		return NewTokenProvider(opts...)
	case "regex":
		return NewRegexProvider(opts...)
	default:
		return NewSubstringProvider(opts...)
	}
}
