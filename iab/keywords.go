package iab

import (
	"regexp"
	"sort"
	"strings"
)

// Confidence constants for deterministic matching. The per-keyword bump and
// its cap are hand-tuned values carried over from taxonomy 2.0 tooling; do
// not re-derive them.
const (
	exactMatchConfidence = 0.95
	matchCountBump       = 0.01
	maxConfidence        = 0.99
)

// Match is a single category match with its confidence and the evidence
// that produced it.
type Match struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Tier       int      `json:"tier"`
	Parent     int      `json:"parent,omitempty"`
	Confidence float64  `json:"confidence"`
	MatchCount int      `json:"match_count,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
	Sources    []string `json:"sources,omitempty"`
}

// MatchKeyword maps a single keyword or phrase to a category. Matching is
// exact after lowercasing and trimming; a hit carries a fixed confidence of
// 0.95, leaving headroom for multi-keyword corroboration.
func MatchKeyword(keyword string) (Match, bool) {
	normalized := strings.ToLower(strings.TrimSpace(keyword))
	id, ok := keywordToCategory[normalized]
	if !ok {
		return Match{}, false
	}
	c, ok := categoryByID[id]
	if !ok {
		return Match{}, false
	}
	return Match{
		ID:         c.ID,
		Name:       c.Name,
		Tier:       c.Tier,
		Parent:     c.Parent,
		Confidence: exactMatchConfidence,
	}, true
}

// MatchKeywords maps a list of keywords and aggregates hits by category.
// Each corroborating keyword bumps the category's confidence by 0.01 up to
// a cap of 0.99. Results are ordered by match count descending, then by
// tier descending so the most specific category wins a tie; remaining
// ties keep encounter order.
func MatchKeywords(keywords []string) []Match {
	var matches []Match
	index := make(map[int]int)

	for _, kw := range keywords {
		m, ok := MatchKeyword(kw)
		if !ok {
			continue
		}
		if i, seen := index[m.ID]; seen {
			matches[i].MatchCount++
			matches[i].Keywords = append(matches[i].Keywords, kw)
		} else {
			m.MatchCount = 1
			m.Keywords = []string{kw}
			index[m.ID] = len(matches)
			matches = append(matches, m)
		}
	}

	for i := range matches {
		matches[i].Confidence = exactMatchConfidence + float64(matches[i].MatchCount-1)*matchCountBump
		if matches[i].Confidence > maxConfidence {
			matches[i].Confidence = maxConfidence
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchCount != matches[j].MatchCount {
			return matches[i].MatchCount > matches[j].MatchCount
		}
		return matches[i].Tier > matches[j].Tier
	})
	return matches
}

var nonWordRe = regexp.MustCompile(`[^\w\s-]`)

// tokenize splits text into lowercase words, dropping punctuation and
// tokens of two characters or fewer.
func tokenize(text string) []string {
	words := strings.Fields(nonWordRe.ReplaceAllString(strings.ToLower(text), " "))
	out := words[:0]
	for _, w := range words {
		if len(w) > 2 {
			out = append(out, w)
		}
	}
	return out
}

// FindBestMatch scans free text for the first keyword hit: single tokens
// left to right, then consecutive two-token phrases. First match wins by
// design (not highest score); token order in the input is significant.
func FindBestMatch(text string) (Match, bool) {
	words := tokenize(text)

	for _, w := range words {
		if m, ok := MatchKeyword(w); ok {
			return m, true
		}
	}

	for i := 0; i+1 < len(words); i++ {
		if m, ok := MatchKeyword(words[i] + " " + words[i+1]); ok {
			return m, true
		}
	}

	return Match{}, false
}

// KeywordsForCategory returns every keyword mapped to a category, in table
// order. Intended for introspection and debugging.
func KeywordsForCategory(id int) []string {
	var out []string
	for _, kw := range keywordOrder {
		if keywordToCategory[kw] == id {
			out = append(out, kw)
		}
	}
	return out
}

// AllKeywords returns every mapped keyword in table order.
func AllKeywords() []string {
	out := make([]string, len(keywordOrder))
	copy(out, keywordOrder)
	return out
}
