package ingredient

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMatchThreshold is the minimum similarity score a fuzzy candidate
// must reach before it is accepted over the default reference. Tunable via
// IMPACT_MATCH_THRESHOLD.
const DefaultMatchThreshold = 0.72

type (
	// Matcher scores how well a reference candidate matches a query.
	// Both strings are expected to be normalized. Scores are in [0, 1],
	// 1 meaning identical.
	Matcher interface {
		Score(candidate, query string) float64
	}

	levenshteinMatcher struct{}
)

func NewLevenshteinMatcher() Matcher {
	return &levenshteinMatcher{}
}

func (m *levenshteinMatcher) Score(candidate, query string) float64 {
	if candidate == query {
		return 1
	}
	if candidate == "" || query == "" {
		return 0
	}

	dist := float64(levenshtein(candidate, query))
	if strings.Contains(candidate, query) || strings.Contains(query, candidate) {
		dist *= 0.5
	}

	longest := utf8.RuneCountInString(candidate)
	if n := utf8.RuneCountInString(query); n > longest {
		longest = n
	}
	score := 1 - dist/float64(longest)
	if score < 0 {
		return 0
	}
	return score
}

// levenshtein computes edit distance over runes with a two-row table.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	prev := make([]int, len(br)+1)
	cur := make([]int, len(br)+1)
	for j := 0; j <= len(br); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ar); i++ {
		cur[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			cur[j] = minInt(prev[j]+1, minInt(cur[j-1]+1, prev[j-1]+cost))
		}
		prev, cur = cur, prev
	}
	return prev[len(br)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

var quantityWords = map[string]struct{}{
	"a": {}, "an": {}, "of": {}, "some": {}, "fresh": {},
	"one": {}, "two": {}, "three": {}, "four": {}, "five": {},
	"six": {}, "seven": {}, "eight": {}, "nine": {}, "ten": {},
	"half": {}, "quarter": {}, "dozen": {},
}

// Normalize folds an ingredient name to its canonical lookup form:
// lowercase, combining marks stripped, only letters/digits/spaces kept,
// leading quantity tokens dropped, trailing plurals singularized.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	for len(fields) > 1 {
		head := fields[0]
		if isNumeric(head) {
			fields = fields[1:]
			continue
		}
		if _, ok := quantityWords[head]; ok {
			fields = fields[1:]
			continue
		}
		break
	}

	for i, w := range fields {
		fields[i] = singularize(w)
	}
	return strings.Join(fields, " ")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return len(s) > 0
}

func singularize(w string) string {
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 3:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "oes") && len(w) > 3:
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ss"):
		return w
	case strings.HasSuffix(w, "s") && len(w) > 2:
		return w[:len(w)-1]
	}
	return w
}
