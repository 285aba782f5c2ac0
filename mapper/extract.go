package mapper

import (
	"regexp"
	"sort"
	"strings"
)

const maxExtractedKeywords = 20

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "as": {}, "is": {}, "was": {}, "are": {}, "were": {},
	"been": {}, "be": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "it": {}, "its": {}, "they": {}, "them": {},
	"what": {}, "which": {}, "who": {}, "where": {}, "when": {}, "why": {},
	"how": {}, "all": {}, "each": {}, "every": {}, "both": {}, "few": {},
	"more": {}, "most": {}, "other": {}, "some": {}, "no": {}, "not": {},
	"only": {}, "own": {}, "same": {}, "so": {}, "than": {}, "too": {},
	"very": {},
}

var (
	controlRe    = regexp.MustCompile(`[\x00-\x1F\x7F]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^\w\s-]`)
)

// sanitize strips control characters, collapses whitespace and caps the
// length of a text field.
func sanitize(text string, maxLength int) string {
	text = controlRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return truncate(strings.TrimSpace(text), maxLength)
}

// extractKeywords pulls up to 20 candidate keywords from free text, ranked
// by frequency with ties broken by first appearance. Stop words and tokens
// of two characters or fewer are dropped.
func extractKeywords(text string) []string {
	if text == "" {
		return nil
	}

	words := strings.Fields(nonWordRe.ReplaceAllString(strings.ToLower(text), " "))

	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	for _, w := range words {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, seen := freq[w]; !seen {
			firstSeen[w] = len(order)
			order = append(order, w)
		}
		freq[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if freq[order[i]] != freq[order[j]] {
			return freq[order[i]] > freq[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > maxExtractedKeywords {
		order = order[:maxExtractedKeywords]
	}
	return order
}
