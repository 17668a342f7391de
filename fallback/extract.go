// Package fallback is the heuristic analysis engine used when the Gemini
// path is unreachable or returns unparseable output. Everything in this
// package is a pure function over the document text: no I/O, no shared
// state, deterministic for identical input.
package fallback

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxParties  = 5
	maxAmounts  = 3
	maxDates    = 3
	maxPurposes = 3
)

var (
	sentenceBoundary = regexp.MustCompile(`[.!?]+`)

	// Three party pattern families: role nouns with a trailing word run,
	// capitalized name + legal suffix, and "between X and Y" constructs.
	rolePartyPattern    = regexp.MustCompile(`(?i)\b(?:party|parties|company|corporation|individual|entity|client|customer|vendor|contractor|employee|employer)[ \t\w]*`)
	namedPartyPattern   = regexp.MustCompile(`\b[A-Z][a-z]+\s+(?:Inc|LLC|Corp|Company|Ltd|Limited)\b`)
	betweenPartyPattern = regexp.MustCompile(`(?i)(?:between|among)\s+[^.]+?(?:and|&)`)

	amountPattern = regexp.MustCompile(`(?i)\$[\d,]+(?:\.\d{2})?|\b\d+(?:,\d{3})*(?:\.\d{2})?\s*(?:dollars?|USD|cents?)\b`)
	datePattern   = regexp.MustCompile(`(?i)\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\w+\s+\d{1,2},?\s+\d{4}|\d{1,2}\s+\w+\s+\d{4})\b`)
)

var purposeKeywords = []string{
	"purpose", "objective", "intent", "goal",
	"agreement", "contract", "service", "product", "work",
}

// splitSentences breaks raw text on sentence boundaries and discards
// fragments of 20 characters or fewer, which filters headers and noise
// while retaining substantive clauses.
func splitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if len(strings.TrimSpace(part)) > 20 {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

func extractParties(text string) []string {
	var parties []string
	for _, pattern := range []*regexp.Regexp{rolePartyPattern, namedPartyPattern, betweenPartyPattern} {
		matches := pattern.FindAllString(text, -1)
		if len(matches) > 3 {
			matches = matches[:3]
		}
		parties = append(parties, matches...)
	}
	return dedupe(parties, maxParties)
}

func extractAmounts(text string) []string {
	return dedupe(amountPattern.FindAllString(text, -1), maxAmounts)
}

func extractDates(text string) []string {
	return dedupe(datePattern.FindAllString(text, -1), maxDates)
}

// extractPurposes keeps sentences that mention a purpose-bearing keyword,
// truncated to 100 characters each.
func extractPurposes(sentences []string) []string {
	purposes := make([]string, 0, maxPurposes)
	for _, sentence := range sentences {
		if len(purposes) == maxPurposes {
			break
		}
		lower := strings.ToLower(sentence)
		if containsAny(lower, purposeKeywords...) {
			purposes = append(purposes, truncate(strings.TrimSpace(sentence), 100))
		}
	}
	return purposes
}

// dedupe keeps the first occurrence of each value, capped at limit.
func dedupe(values []string, limit int) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// truncate cuts at n bytes, backing up so the cut never lands inside a
// multi-byte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// ellipsize truncates and marks the cut with an ellipsis.
func ellipsize(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return truncate(s, n) + "..."
}

func head(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
