package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordChars = `[A-Za-z0-9]`

// TestReplace covers the core substitution rules in one table: case
// handling, full-word boundaries and the single-pass guarantee.
func TestReplace(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		from          string
		to            string
		caseSensitive bool
		fullWord      bool
		pattern       string
		want          string
		wantCount     int
	}{
		{
			name:    "case insensitive replaces every casing",
			content: "Cat cat CAT", from: "cat", to: "dog",
			want: "dog dog dog", wantCount: 3,
		},
		{
			name:    "case sensitive replaces exact casing only",
			content: "Cat cat CAT", from: "cat", to: "dog", caseSensitive: true,
			want: "Cat dog CAT", wantCount: 1,
		},
		{
			name:    "full word skips embedded matches",
			content: "catalog cat scatter", from: "cat", to: "dog",
			fullWord: true, pattern: wordChars,
			want: "catalog dog scatter", wantCount: 1,
		},
		{
			name:    "full word accepts matches at both edges",
			content: "cat", from: "cat", to: "dog",
			fullWord: true, pattern: wordChars,
			want: "dog", wantCount: 1,
		},
		{
			name:    "full word with punctuation neighbours",
			content: "(cat),cat.cats", from: "cat", to: "dog",
			fullWord: true, pattern: wordChars,
			want: "(dog),dog.cats", wantCount: 2,
		},
		{
			name:    "adjacent matches are all replaced",
			content: "catcatcat", from: "cat", to: "dog", caseSensitive: true,
			want: "dogdogdog", wantCount: 3,
		},
		{
			name:    "replacement text is not rescanned",
			content: "aa", from: "aa", to: "aaa", caseSensitive: true,
			want: "aaa", wantCount: 1,
		},
		{
			name:    "no match returns content unchanged",
			content: "nothing here", from: "cat", to: "dog",
			want: "nothing here", wantCount: 0,
		},
		{
			name:    "empty from is a no-op",
			content: "some text", from: "", to: "x",
			want: "some text", wantCount: 0,
		},
		{
			name:    "empty content",
			content: "", from: "cat", to: "dog",
			want: "", wantCount: 0,
		},
		{
			name:    "replacing with empty deletes",
			content: "a-cat-b", from: "cat", to: "", caseSensitive: true,
			want: "a--b", wantCount: 1,
		},
		{
			name:    "multibyte case folding",
			content: "Ärger ärger", from: "ÄRGER", to: "joy",
			want: "joy joy", wantCount: 2,
		},
		{
			name:    "multibyte neighbours in full word mode",
			content: "écat cat", from: "cat", to: "dog",
			fullWord: true, pattern: `[\p{L}\p{N}_]`,
			want: "écat dog", wantCount: 1,
		},
		{
			name:    "empty boundary pattern in full word mode disqualifies inner matches",
			content: "cat x cat", from: "cat", to: "dog",
			fullWord: true, pattern: "",
			want: "cat x cat", wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, err := Replace(tt.content, tt.from, tt.to, tt.caseSensitive, tt.fullWord, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, n)
		})
	}
}

// TestReplace_InvalidPattern verifies that a bad boundary pattern is
// reported instead of panicking.
func TestReplace_InvalidPattern(t *testing.T) {
	_, _, err := Replace("x", "x", "y", true, true, "[a-")
	assert.Error(t, err)

	// The pattern is ignored entirely when full-word mode is off.
	_, err = New(true, false, "[a-")
	assert.NoError(t, err)
}

// TestReplace_CountMatchesInsertions checks that for non-overlapping from/to
// the returned count equals the number of inserted to strings.
func TestReplace_CountMatchesInsertions(t *testing.T) {
	m, err := New(true, false, "")
	require.NoError(t, err)

	inputs := []string{
		"foo bar foo baz foofoo",
		"no hits at all",
		"foo",
		"xfoox\nfoo\tfoo",
	}
	for _, in := range inputs {
		got, n := m.Replace(in, "foo", "QQ")
		assert.Equal(t, strings.Count(got, "QQ"), n, in)
		assert.Equal(t, strings.Count(in, "foo"), n, in)
	}
}

// TestReplace_Idempotence covers from == to counting and the second-pass
// no-op property.
func TestReplace_Idempotence(t *testing.T) {
	m, err := New(false, false, "")
	require.NoError(t, err)

	same, n := m.Replace("Cat cat", "cat", "cat")
	assert.Equal(t, 2, n)
	assert.Equal(t, "cat cat", same)
	assert.Equal(t, 2, m.Count("Cat cat", "cat"))

	first, n := m.Replace("cat and cat", "cat", "dog")
	require.Equal(t, 2, n)
	second, n := m.Replace(first, "cat", "dog")
	assert.Equal(t, 0, n)
	assert.Equal(t, first, second)
}

// TestIndexFold exercises the rune-measured window directly.
func TestIndexFold(t *testing.T) {
	start, end := indexFold("xxKELVINxx", "kelvin", 0)
	assert.Equal(t, 2, start)
	assert.Equal(t, 8, end)

	// U+212A KELVIN SIGN folds to 'k' but is three bytes long.
	s := "aKb"
	start, end = indexFold(s, "k", 0)
	assert.Equal(t, 1, start)
	assert.Equal(t, 4, end)

	start, end = indexFold("abc", "abcd", 0)
	assert.Equal(t, -1, start)
	assert.Equal(t, -1, end)

	start, _ = indexFold("abcabc", "ABC", 1)
	assert.Equal(t, 3, start)
}
