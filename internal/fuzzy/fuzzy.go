// Package fuzzy provides edit-distance suggestions for unknown parameter names.
// Used by argp/errors.go; parsing itself never matches fuzzily.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher ranks candidates by edit distance to an input
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a new fuzzy matcher with the given max edit distance
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // Don't suggest for very short inputs
	}
}

// Match represents a fuzzy match result
type Match struct {
	Value    string
	Distance int
	Prefix   int // length of the common prefix with the input
}

// FindBest returns the best candidate, or "" if none is within range.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within range, best first. Ties are
// broken by longer common prefix and then by candidate order.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len([]rune(input)) < m.minLength {
		return nil
	}

	in := []rune(strings.ToLower(input))
	var matches []Match
	for _, candidate := range candidates {
		c := []rune(strings.ToLower(candidate))
		if string(c) == string(in) {
			continue // exact matches are not suggestions
		}
		if d := m.distance(in, c); d <= m.maxDistance {
			matches = append(matches, Match{Value: candidate, Distance: d, Prefix: commonPrefix(in, c)})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Prefix > matches[j].Prefix
	})
	return matches
}

// distance is the Levenshtein distance over runes, cut short at
// maxDistance+1 once no row can come back under the limit.
func (m *Matcher) distance(a, b []rune) int {
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b []rune) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// Closest finds the best matching name within maxDistance
func Closest(input string, names []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, names)
}

// Suggestions returns up to limit names within maxDistance, best first
func Suggestions(input string, names []string, maxDistance, limit int) []string {
	if limit <= 0 {
		return nil
	}
	matches := NewMatcher(maxDistance).FindMatches(input, names)
	out := make([]string, 0, min(len(matches), limit))
	for _, match := range matches[:min(len(matches), limit)] {
		out = append(out, match.Value)
	}
	return out
}
