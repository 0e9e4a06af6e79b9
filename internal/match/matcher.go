package match

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Matcher replaces occurrences of one string with another according to a
// fixed set of options. A Matcher is immutable and safe to reuse across
// many calls.
type Matcher struct {
	caseSensitive bool
	fullWord      bool

	// boundary classifies a single neighbouring character as word-forming.
	// Only set when fullWord is enabled.
	boundary *regexp.Regexp
}

// New creates a Matcher. boundaryPattern is only compiled when fullWord is
// true; an empty pattern matches every character, so in full-word mode only
// matches that touch both edges of the input qualify.
func New(caseSensitive, fullWord bool, boundaryPattern string) (*Matcher, error) {
	m := &Matcher{caseSensitive: caseSensitive, fullWord: fullWord}
	if fullWord {
		re, err := regexp.Compile(boundaryPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid full-word pattern %q: %w", boundaryPattern, err)
		}
		m.boundary = re
	}
	return m, nil
}

// Replace is a convenience wrapper that builds a Matcher and applies it once.
func Replace(content, from, to string, caseSensitive, fullWord bool, boundaryPattern string) (string, int, error) {
	m, err := New(caseSensitive, fullWord, boundaryPattern)
	if err != nil {
		return "", 0, err
	}
	result, n := m.Replace(content, from, to)
	return result, n, nil
}

// Replace substitutes every qualifying occurrence of from in content with to
// and returns the new content together with the number of occurrences
// replaced. An empty from never matches.
func (m *Matcher) Replace(content, from, to string) (string, int) {
	if from == "" || content == "" {
		return content, 0
	}

	var b strings.Builder
	occurrences := 0
	pos := 0

	for pos < len(content) {
		start, end := m.index(content, from, pos)
		if start < 0 {
			break
		}

		if m.qualifies(content, start, end) {
			b.WriteString(content[pos:start])
			b.WriteString(to)
			occurrences++
		} else {
			b.WriteString(content[pos:end])
		}
		pos = end
	}

	if occurrences == 0 {
		return content, 0
	}

	b.WriteString(content[pos:])
	return b.String(), occurrences
}

// Count reports how many occurrences Replace would substitute.
func (m *Matcher) Count(content, from string) int {
	_, n := m.Replace(content, from, from)
	return n
}

// qualifies reports whether the match content[start:end] counts as an
// occurrence under the full-word rule.
func (m *Matcher) qualifies(content string, start, end int) bool {
	if !m.fullWord {
		return true
	}

	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(content[:start])
		if m.boundary.MatchString(string(r)) {
			return false
		}
	}

	if end < len(content) {
		r, _ := utf8.DecodeRuneInString(content[end:])
		if m.boundary.MatchString(string(r)) {
			return false
		}
	}

	return true
}

// index returns the byte span of the first match of substr in s at or after
// offset, or -1, -1 when there is none. Both ends always fall on rune
// boundaries.
func (m *Matcher) index(s, substr string, offset int) (int, int) {
	if m.caseSensitive {
		i := strings.Index(s[offset:], substr)
		if i < 0 {
			return -1, -1
		}
		return offset + i, offset + i + len(substr)
	}
	return indexFold(s, substr, offset)
}

// indexFold is a case-insensitive strings.Index. The matched span in s may
// differ in byte length from substr (e.g. 'K' vs the Kelvin sign), so the
// window is measured in runes rather than bytes.
func indexFold(s, substr string, offset int) (int, int) {
	runes := utf8.RuneCountInString(substr)

	for i := offset; i < len(s); {
		j := i
		for k := 0; k < runes && j < len(s); k++ {
			_, size := utf8.DecodeRuneInString(s[j:])
			j += size
		}
		if strings.EqualFold(s[i:j], substr) {
			return i, j
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}

	return -1, -1
}
