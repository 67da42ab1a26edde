package search

import (
	"regexp"
	"sync"

	"github.com/rlacademy/rl-academy/internal/catalog"
)

// RegexProvider provides regex-based search over the joined fields.
type RegexProvider struct {
	opts    Options
	cache   map[string]*regexp.Regexp
	cacheMu sync.RWMutex
}

// NewRegexProvider creates a new regex search provider.
func NewRegexProvider(opts ...Option) Provider {
	return &RegexProvider{
		opts:  applyOptions(opts),
		cache: make(map[string]*regexp.Regexp),
	}
}

// Match returns true if the joined fields match the pattern.
// An invalid pattern matches nothing.
func (p *RegexProvider) Match(item catalog.Item, query string) bool {
	if query == "" {
		return true
	}
	re, err := p.getRegex(query)
	if err != nil {
		return false
	}
	return re.MatchString(haystack(item, p.opts))
}

// Name returns the provider name.
func (p *RegexProvider) Name() string {
	return "regex"
}

// getRegex compiles the pattern once per query string.
func (p *RegexProvider) getRegex(pattern string) (*regexp.Regexp, error) {
	p.cacheMu.RLock()
	re, ok := p.cache[pattern]
	p.cacheMu.RUnlock()
	if ok {
		return re, nil
	}

	expr := pattern
	if p.opts.CaseInsensitive {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	p.cacheMu.Lock()
	p.cache[pattern] = re
	p.cacheMu.Unlock()
	return re, nil
}
