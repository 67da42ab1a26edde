package search

import (
	"testing"

	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Item used across tests
var testItem = catalog.Item{
	ID:      "intro",
	Title:   "Intro to RL",
	Level:   "beginner",
	Type:    catalog.TypeLesson,
	Tags:    []string{"rl", "basics"},
	Content: catalog.LessonContent{VideoID: "abc123"},
}

var untaggedItem = catalog.Item{
	ID:    "ppo",
	Title: "Proximal Policy Optimization",
	Level: "advanced",
	Type:  catalog.TypeCourse,
}

// TestDefaultOptions verifies default option values.
func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.True(t, opts.CaseInsensitive, "default should be case-insensitive")
	assert.Equal(t, []string{FieldTitle, FieldTags}, opts.Fields)
}

// TestOptions verifies option application.
func TestOptions(t *testing.T) {
	opts := DefaultOptions()
	WithCaseInsensitive(false)(&opts)
	WithFields([]string{FieldTags})(&opts)

	assert.False(t, opts.CaseInsensitive)
	assert.Equal(t, []string{FieldTags}, opts.Fields)
}

// TestSubstringProvider tests substring-based search.
func TestSubstringProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider Provider
		item     catalog.Item
		query    string
		expected bool
	}{
		{name: "empty query matches all", provider: NewSubstringProvider(), item: testItem, query: "", expected: true},
		{name: "mixed case title", provider: NewSubstringProvider(), item: testItem, query: "INTRO", expected: true},
		{name: "tag", provider: NewSubstringProvider(), item: testItem, query: "basics", expected: true},
		{name: "spans title and first tag", provider: NewSubstringProvider(), item: testItem, query: "to rl rl", expected: true},
		{name: "spans tags", provider: NewSubstringProvider(), item: testItem, query: "rl basics", expected: true},
		{name: "absent text", provider: NewSubstringProvider(), item: testItem, query: "ppo", expected: false},
		{name: "untagged item", provider: NewSubstringProvider(), item: untaggedItem, query: "policy", expected: true},
		{name: "untagged item no trailing space", provider: NewSubstringProvider(), item: untaggedItem, query: "optimization ", expected: false},
		{
			name:     "case-sensitive miss",
			provider: NewSubstringProvider(WithCaseInsensitive(false)),
			item:     testItem,
			query:    "intro",
			expected: false,
		},
		{
			name:     "tags only",
			provider: NewSubstringProvider(WithFields([]string{FieldTags})),
			item:     testItem,
			query:    "intro",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.provider.Match(tt.item, tt.query))
		})
	}
}

// TestTokenProvider tests token-based search with AND logic.
func TestTokenProvider(t *testing.T) {
	provider := NewTokenProvider()

	tests := []struct {
		name     string
		query    string
		expected bool
	}{
		{name: "blank query", query: "   ", expected: true},
		{name: "single token", query: "intro", expected: true},
		{name: "tokens out of order", query: "basics intro", expected: true},
		{name: "one token missing", query: "basics ppo", expected: false},
		{name: "extra whitespace", query: "  RL\tbasics ", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, provider.Match(testItem, tt.query))
		})
	}
}

// TestRegexProvider tests regex-based search.
func TestRegexProvider(t *testing.T) {
	provider := NewRegexProvider()

	assert.True(t, provider.Match(testItem, ""))
	assert.True(t, provider.Match(testItem, "^intro"))
	assert.True(t, provider.Match(testItem, "rl basics$"))
	assert.False(t, provider.Match(testItem, "^basics"))
	assert.False(t, provider.Match(testItem, "[invalid"), "invalid pattern matches nothing")

	strict := NewRegexProvider(WithCaseInsensitive(false))
	assert.False(t, strict.Match(testItem, "^intro"))
}

// TestRegexProviderCache verifies compiled patterns are reused.
func TestRegexProviderCache(t *testing.T) {
	provider := NewRegexProvider().(*RegexProvider)

	provider.Match(testItem, "intro")
	provider.Match(untaggedItem, "intro")

	assert.Len(t, provider.cache, 1)
}

// TestProviderNames verifies provider names.
func TestProviderNames(t *testing.T) {
	assert.Equal(t, "substring", NewSubstringProvider().Name())
	assert.Equal(t, "token", NewTokenProvider().Name())
	assert.Equal(t, "regex", NewRegexProvider().Name())
}

// TestForMode verifies mode selection.
func TestForMode(t *testing.T) {
	assert.Equal(t, "token", ForMode("token").Name())
	assert.Equal(t, "regex", ForMode("regex").Name())
	assert.Equal(t, "substring", ForMode("substring").Name())
	assert.Equal(t, "substring", ForMode("fuzzy").Name())
}

// TestMockProvider verifies the mock satisfies Provider.
func TestMockProvider(t *testing.T) {
	m := new(MockProvider)
	m.On("Match", mock.Anything, "x").Return(true)
	m.On("Name").Return("mock")

	var p Provider = m
	assert.True(t, p.Match(testItem, "x"))
	assert.Equal(t, "mock", p.Name())
	m.AssertExpectations(t)
}
