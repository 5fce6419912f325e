// Package keywords extracts significant terms from free text and matches resumes against a
// static technical vocabulary.
package keywords

import (
	"strings"
	"unicode"
)

// minKeywordLength is the shortest token kept by Extract; shorter tokens are noise.
const minKeywordLength = 4

// Matcher holds an immutable vocabulary. It is safe for concurrent use.
type Matcher struct {
	terms   []string
	phrases []string
	index   map[string]bool
}

// NewMatcher creates a Matcher over the given vocabulary. A nil or empty vocabulary
// falls back to the built-in technical vocabulary.
func NewMatcher(vocabulary []string) *Matcher {
	if len(vocabulary) == 0 {
		vocabulary = defaultVocabulary
	}

	m := &Matcher{index: make(map[string]bool, len(vocabulary))}
	for _, term := range vocabulary {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || m.index[term] {
			continue
		}
		m.index[term] = true
		m.terms = append(m.terms, term)
		if strings.Contains(term, " ") {
			m.phrases = append(m.phrases, term)
		}
	}
	return m
}

// Vocabulary returns a copy of the matcher's terms in match order.
func (m *Matcher) Vocabulary() []string {
	out := make([]string, len(m.terms))
	copy(out, m.terms)
	return out
}

// Extract returns the significant keywords of text: whitespace tokens, lowercased,
// stripped of surrounding punctuation, longer than three characters and not stop words.
// Keywords are deduplicated and returned in first-seen order.
func Extract(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, field := range strings.Fields(text) {
		token := normalizeToken(field)
		if len([]rune(token)) < minKeywordLength || stopWords[token] || seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, token)
	}
	return out
}

// MatchVocabulary returns the vocabulary terms found in text, in vocabulary order.
// Single-word terms match whole tokens (after alias normalization); multi-word terms
// match as substrings of the whitespace-collapsed, lowercased text.
func (m *Matcher) MatchVocabulary(text string) []string {
	found := make(map[string]bool)
	fields := strings.Fields(text)
	for _, field := range fields {
		token := normalizeToken(field)
		if canonical, ok := aliases[token]; ok {
			token = canonical
		}
		if m.index[token] {
			found[token] = true
		}
	}

	if len(m.phrases) > 0 {
		collapsed := strings.ToLower(strings.Join(fields, " "))
		for _, phrase := range m.phrases {
			if strings.Contains(collapsed, phrase) {
				found[phrase] = true
			}
		}
	}

	matched := make([]string, 0, len(found))
	for _, term := range m.terms {
		if found[term] {
			matched = append(matched, term)
		}
	}
	return matched
}

// normalizeToken lowercases a token and trims surrounding punctuation while keeping the
// characters that carry meaning in technology names (c++, c#, node.js, ci/cd).
func normalizeToken(token string) string {
	token = strings.ToLower(token)
	token = strings.TrimRightFunc(token, func(r rune) bool {
		return !keepRune(r)
	})
	trimmed := strings.TrimLeftFunc(token, func(r rune) bool {
		return !keepRune(r)
	})
	if trimmed == "net" && strings.HasSuffix(token, ".net") {
		return ".net"
	}
	return trimmed
}

func keepRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#'
}
