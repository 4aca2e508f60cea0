package analyzer

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// Sentiment labels returned by Engine.Sentiment.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Polarity thresholds on the per-token average score.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Sentiment classifies a description as positive, negative or neutral
// using a lexicon polarity average: each token's AFINN-style score
// (stemmed-form fallback) is summed and divided by the total token
// count. Sentiment never fails: empty or unusable input is neutral.
func (e *Engine) Sentiment(description string) (label string) {
	label = SentimentNeutral
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Warn("sentiment analysis failed, returning neutral")
			label = SentimentNeutral
		}
	}()

	words := strings.Fields(normalizeText(stripMarkup(description)))
	if len(words) == 0 {
		return label
	}

	var total float64
	for _, w := range words {
		total += polarity(w)
	}
	score := total / float64(len(words))

	switch {
	case score > positiveThreshold:
		label = SentimentPositive
	case score < negativeThreshold:
		label = SentimentNegative
	}
	return label
}
