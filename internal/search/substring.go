package search

import (
	"strings"

	"github.com/rlacademy/rl-academy/internal/catalog"
)

// SubstringProvider matches when the whole query is a substring of the
// joined title and tags.
type SubstringProvider struct {
	opts Options
}

// NewSubstringProvider creates a new substring search provider.
func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if the joined fields contain the query.
func (p *SubstringProvider) Match(item catalog.Item, query string) bool {
	if query == "" {
		return true
	}
	if p.opts.CaseInsensitive {
		query = strings.ToLower(query)
	}
	return strings.Contains(haystack(item, p.opts), query)
}

// Name returns the provider name.
func (p *SubstringProvider) Name() string {
	return "substring"
}
