package analyzer

import (
	"strings"

	"github.com/neurosnap/sentences"
	log "github.com/sirupsen/logrus"
)

// DefaultExcerptSentences is used when Excerpt is called with a
// non-positive maxSentences.
const DefaultExcerptSentences = 2

// Excerpt returns the first maxSentences sentences of a description,
// for use as a vlog preview in listings. Sentence boundaries come from
// the sentences tokenizer; on tokenizer failure the ./!/? split used
// by KeyPhrases is applied instead. Excerpt never fails: unusable
// input yields an empty string.
func (e *Engine) Excerpt(description string, maxSentences int) (excerpt string) {
	excerpt = ""
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Warn("excerpt generation failed, returning empty excerpt")
			excerpt = ""
		}
	}()

	if maxSentences <= 0 {
		maxSentences = DefaultExcerptSentences
	}
	text := strings.TrimSpace(stripMarkup(description))
	if text == "" {
		return excerpt
	}

	sents := tokenizeSentences(text)
	if len(sents) > maxSentences {
		sents = sents[:maxSentences]
	}
	excerpt = strings.TrimSpace(strings.Join(sents, " "))
	return excerpt
}

// tokenizeSentences segments text with the default-locale sentence
// tokenizer, falling back to punctuation splitting when the tokenizer
// yields nothing usable.
func tokenizeSentences(text string) (sents []string) {
	defer func() {
		if r := recover(); r != nil {
			sents = splitSentences(text)
		}
	}()

	tokenizer := sentences.NewSentenceTokenizer(nil)
	if tokenizer == nil {
		return splitSentences(text)
	}
	for _, s := range tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			sents = append(sents, t)
		}
	}
	if len(sents) == 0 {
		return splitSentences(text)
	}
	return sents
}
