package search

import (
	"strings"

	"github.com/rlacademy/rl-academy/internal/catalog"
)

// TokenProvider provides token-based search.
// The query is split into whitespace-separated tokens and every token must
// appear somewhere in the joined fields (AND logic), in any order.
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if all tokens are found.
func (p *TokenProvider) Match(item catalog.Item, query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return true
	}
	text := haystack(item, p.opts)
	for _, token := range tokens {
		if p.opts.CaseInsensitive {
			token = strings.ToLower(token)
		}
		if !strings.Contains(text, token) {
			return false
		}
	}
	return true
}

// Name returns the provider name.
func (p *TokenProvider) Name() string {
	return "token"
}
