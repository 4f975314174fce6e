package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases and trims", in: "  Tomato ", want: "tomato"},
		{name: "singularizes plural", in: "tomatoes", want: "tomato"},
		{name: "ies plural", in: "strawberries", want: "strawberry"},
		{name: "keeps double s", in: "swiss", want: "swiss"},
		{name: "drops leading count", in: "2 eggs", want: "egg"},
		{name: "drops quantity words", in: "a dozen eggs", want: "egg"},
		{name: "drops fresh prefix", in: "fresh basil", want: "basil"},
		{name: "punctuation becomes space", in: "bone-in chicken", want: "bone in chicken"},
		{name: "multiword survives", in: "Green Beans", want: "green bean"},
		{name: "empty input", in: "   ", want: ""},
		{name: "quantity word alone is kept", in: "half", want: "half"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestLevenshteinMatcherScore(t *testing.T) {
	m := NewLevenshteinMatcher()

	t.Run("identical strings score 1", func(t *testing.T) {
		assert.Equal(t, 1.0, m.Score("tomato", "tomato"))
	})

	t.Run("empty string scores 0", func(t *testing.T) {
		assert.Equal(t, 0.0, m.Score("", "tomato"))
		assert.Equal(t, 0.0, m.Score("tomato", ""))
	})

	t.Run("single typo scores high", func(t *testing.T) {
		score := m.Score("tomato", "tomatp")
		assert.Greater(t, score, 0.8)
		assert.Less(t, score, 1.0)
	})

	t.Run("containment halves the distance", func(t *testing.T) {
		contained := m.Score("chicken breast", "chicken")
		plain := m.Score("chicken breast", "chicpen")
		assert.Greater(t, contained, plain)
	})

	t.Run("unrelated strings score low", func(t *testing.T) {
		assert.Less(t, m.Score("watermelon", "soy sauce"), 0.3)
	})

	t.Run("score never negative", func(t *testing.T) {
		assert.GreaterOrEqual(t, m.Score("ab", "xyzqrstuv"), 0.0)
	})
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"tomato", "tomato", 0},
		{"tomato", "tomatos", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}
