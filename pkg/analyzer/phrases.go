package analyzer

import (
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Minimum joined lengths for an n-gram window to qualify as a phrase
// candidate.
const (
	minTrigramLength = 8
	minBigramLength  = 5
)

// KeyPhrases extracts the most frequent two- and three-word contiguous
// phrases from a description. Text is split into sentences on ./!/?
// boundaries; within each sentence, stopwords and short tokens are
// dropped before sliding the n-gram windows. A trigram and the bigrams
// it contains are all emitted into the same pool; overlapping windows
// are deliberately not deduplicated against each other. Phrases are
// ranked by frequency with first-occurrence order breaking ties.
// KeyPhrases never fails: unusable input yields an empty slice.
func (e *Engine) KeyPhrases(description string, maxPhrases int) (phrases []string) {
	phrases = []string{}
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Warn("key-phrase extraction failed, returning no phrases")
			phrases = []string{}
		}
	}()

	if maxPhrases <= 0 {
		maxPhrases = DefaultMaxPhrases
	}
	text := strings.TrimSpace(stripMarkup(description))
	if text == "" {
		return phrases
	}

	counts := make(map[string]int)
	var order []string
	emit := func(p string) {
		if counts[p] == 0 {
			order = append(order, p)
		}
		counts[p]++
	}

	for _, sent := range splitSentences(text) {
		words := contentTokens(strings.Fields(normalizeText(sent)), false)
		for i := range words {
			if i+2 < len(words) {
				tri := strings.Join(words[i:i+3], " ")
				if len(tri) > minTrigramLength {
					emit(tri)
				}
			}
			if i+1 < len(words) {
				bi := strings.Join(words[i:i+2], " ")
				if len(bi) > minBigramLength {
					emit(bi)
				}
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxPhrases {
		order = order[:maxPhrases]
	}
	phrases = order
	return phrases
}

// splitSentences breaks text on terminal punctuation, discarding
// empty segments.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
