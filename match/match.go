// Package match selects processes by case-insensitive whole-word search terms.
//
// A term matches a text when it occurs in it, ignoring case, with either the
// edge of the text or a character outside [A-Za-z0-9] on each side. Spaces,
// punctuation, path separators, underscores, hyphens and parentheses all
// count as boundaries, so "code" matches "/usr/bin/code" and "Code Helper"
// but not "codehelper" or "encoder". Terms are literal text, never patterns.
package match

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gouline/sumem/process"
)

// ErrEmptyTerm is returned when a search term or exclusion pattern is empty.
var ErrEmptyTerm = errors.New("search term must not be empty")

const boundaryClass = `[^a-zA-Z0-9]`

// Matcher is a compiled whole-word search term
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles term. An empty term is rejected with ErrEmptyTerm.
func NewMatcher(term string) (*Matcher, error) {
	if term == "" {
		return nil, ErrEmptyTerm
	}

	re, err := regexp.Compile(`(?:^|` + boundaryClass + `)` + foldCase(term) + `(?:` + boundaryClass + `|$)`)
	if err != nil {
		return nil, fmt.Errorf("invalid search term %q: %w", term, err)
	}

	return &Matcher{re: re}, nil
}

// foldCase quotes term for a regexp and makes it match regardless of case.
// ASCII letters only fold to each other and non-ASCII letters only fold to
// other non-ASCII letters, so "k" never matches the Kelvin sign and "s"
// never matches "ſ".
func foldCase(term string) string {
	var sb strings.Builder

	for i := 0; i < len(term); {
		r, size := utf8.DecodeRuneInString(term[i:])
		if r == utf8.RuneError && size == 1 {
			// invalid UTF-8 is left for the regexp compiler to reject
			sb.WriteString(term[i : i+size])
			i += size
			continue
		}
		i += size

		class := []rune{r}
		for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
			if (f < utf8.RuneSelf) == (r < utf8.RuneSelf) {
				class = append(class, f)
			}
		}

		if len(class) == 1 {
			sb.WriteString(regexp.QuoteMeta(string(r)))
			continue
		}
		sb.WriteString("[" + string(class) + "]")
	}

	return sb.String()
}

// MatchString reports whether the term occurs in text as a whole word
func (m *Matcher) MatchString(text string) bool {
	return m.re.MatchString(text)
}

// MatchProcess reports whether the term matches the process name or its command line
func (m *Matcher) MatchProcess(p process.ProcessInfo) bool {
	return m.MatchString(p.Name) || m.MatchString(p.Command)
}

// MatchesWholeWord reports whether term occurs in text as a whole word, ignoring case.
// An empty term never matches.
func MatchesWholeWord(text, term string) bool {
	m, err := NewMatcher(term)
	if err != nil {
		return false
	}
	return m.MatchString(text)
}

// FilterProcesses returns the processes whose name or command matches term,
// in their original order.
func FilterProcesses(processes []process.ProcessInfo, term string) []process.ProcessInfo {
	m, err := NewMatcher(term)
	if err != nil {
		return []process.ProcessInfo{}
	}
	return keep(processes, m.MatchProcess)
}

// ExcludeProcesses drops every process matched by any of patterns.
// Empty patterns exclude nothing.
func ExcludeProcesses(processes []process.ProcessInfo, patterns ...string) []process.ProcessInfo {
	var excludes []*Matcher
	for _, pattern := range patterns {
		if m, err := NewMatcher(pattern); err == nil {
			excludes = append(excludes, m)
		}
	}

	return keep(processes, func(p process.ProcessInfo) bool {
		return !anyMatch(excludes, p)
	})
}

func anyMatch(matchers []*Matcher, p process.ProcessInfo) bool {
	for _, m := range matchers {
		if m.MatchProcess(p) {
			return true
		}
	}
	return false
}

func keep(processes []process.ProcessInfo, pred func(process.ProcessInfo) bool) []process.ProcessInfo {
	result := make([]process.ProcessInfo, 0, len(processes))
	for _, p := range processes {
		if pred(p) {
			result = append(result, p)
		}
	}
	return result
}
