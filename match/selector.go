package match

import (
	"fmt"

	"github.com/gouline/sumem/process"
)

// Selector combines an inclusion term with any number of exclusion patterns.
// A process is kept when the inclusion term matches it and no exclusion does.
type Selector struct {
	include  *Matcher
	excludes []*Matcher
}

// NewSelector compiles the inclusion term and exclusion patterns.
// Any empty term or pattern is rejected with ErrEmptyTerm.
func NewSelector(term string, excludes ...string) (*Selector, error) {
	include, err := NewMatcher(term)
	if err != nil {
		return nil, fmt.Errorf("invalid search term: %w", err)
	}

	s := &Selector{include: include}
	for i, pattern := range excludes {
		m, err := NewMatcher(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern #%d: %w", i+1, err)
		}
		s.excludes = append(s.excludes, m)
	}

	return s, nil
}

// Keep reports whether p is selected
func (s *Selector) Keep(p process.ProcessInfo) bool {
	return s.include.MatchProcess(p) && !anyMatch(s.excludes, p)
}

// Select returns the selected processes in their original order
func (s *Selector) Select(processes []process.ProcessInfo) []process.ProcessInfo {
	return keep(processes, s.Keep)
}
