package sniffkit

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Filter decides whether a detected MIME type is acceptable. Patterns use
// glob syntax with '/' as the separator, so "image/*" covers image/png but
// not image/svg+xml/anything-nested, and "application/vnd.ms-*" covers the
// vendor range.
//
// A Filter with an empty allow list accepts everything that is not
// blocked. Block patterns always win over allow patterns.
//
// Filters are immutable after construction and safe for concurrent use.
type Filter struct {
	allowed []compiledPattern
	blocked []compiledPattern
}

type compiledPattern struct {
	source string
	glob   glob.Glob
}

// NewFilter compiles the given allow and block patterns into a Filter.
// Pattern matching is case-insensitive. Returns a pattern error when a
// pattern does not compile.
func NewFilter(allowed, blocked []string) (*Filter, error) {
	f := &Filter{}

	var err error
	if f.allowed, err = compilePatterns(allowed); err != nil {
		return nil, err
	}
	if f.blocked, err = compilePatterns(blocked); err != nil {
		return nil, err
	}
	return f, nil
}

func compilePatterns(patterns []string) ([]compiledPattern, error) {
	var compiled []compiledPattern
	for _, pattern := range patterns {
		pattern = strings.ToLower(strings.TrimSpace(pattern))
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, WrapSniffError(ErrorTypePattern,
				fmt.Sprintf("invalid type pattern %q", pattern), err)
		}
		compiled = append(compiled, compiledPattern{source: pattern, glob: g})
	}
	return compiled, nil
}

// Allowed reports whether mimeType passes the filter.
func (f *Filter) Allowed(mimeType string) bool {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))

	for _, p := range f.blocked {
		if p.glob.Match(mimeType) {
			return false
		}
	}

	if len(f.allowed) == 0 {
		return true
	}
	for _, p := range f.allowed {
		if p.glob.Match(mimeType) {
			return true
		}
	}
	return false
}

// Check returns a filter error when mimeType does not pass, nil otherwise.
func (f *Filter) Check(mimeType string) error {
	if !f.Allowed(mimeType) {
		return NewSniffError(ErrorTypeFilter,
			fmt.Sprintf("content type %s is not allowed", mimeType))
	}
	return nil
}

// AllowedPatterns returns the compiled allow patterns, for diagnostics.
func (f *Filter) AllowedPatterns() []string {
	return patternSources(f.allowed)
}

// BlockedPatterns returns the compiled block patterns, for diagnostics.
func (f *Filter) BlockedPatterns() []string {
	return patternSources(f.blocked)
}

func patternSources(patterns []compiledPattern) []string {
	if len(patterns) == 0 {
		return nil
	}
	sources := make([]string, len(patterns))
	for i, p := range patterns {
		sources[i] = p.source
	}
	return sources
}
