package benchmark

import (
	"testing"

	"github.com/dzonerzy/snapargs/internal/fuzzy"
)

// Category: fuzzy

var suggestionNames = []string{
	"help", "version", "verbose", "config", "output", "input",
	"force", "debug", "port", "host", "timeout", "retry",
}

func BenchmarkMatcher_FindBest(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.FindBest("hep", suggestionNames)
	}
}

func BenchmarkMatcher_FindMatches(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.FindMatches("ver", suggestionNames)
	}
}

func BenchmarkConvenienceFunctions(b *testing.B) {
	b.Run("Closest", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			fuzzy.Closest("hep", suggestionNames, 2)
		}
	})
	b.Run("Suggestions", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			fuzzy.Suggestions("ver", suggestionNames, 2, 3)
		}
	})
}
