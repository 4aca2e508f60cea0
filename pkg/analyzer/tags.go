package analyzer

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// GenerateTags derives up to maxTags lowercase tags from a vlog
// description. Candidates are drawn, in priority order, from the
// category keyword table, from frequency-ranked content words that
// overlap the common-tag vocabulary, and from common-tag entries
// appearing literally in the text. Output is deduplicated, at most
// maxTags long and every tag is at least three characters.
//
// A non-positive maxTags applies DefaultMaxTags. An unknown category
// falls back to the "other" keyword list. GenerateTags never fails:
// empty or unusable input yields an empty slice.
func (e *Engine) GenerateTags(description, category string, maxTags int) (tags []string) {
	tags = []string{}
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Warn("tag generation failed, returning no tags")
			tags = []string{}
		}
	}()

	if maxTags <= 0 {
		maxTags = DefaultMaxTags
	}
	text := normalizeText(stripMarkup(description))
	if text == "" {
		return tags
	}

	words := contentTokens(strings.Fields(text), true)
	top := topByFrequency(words, topTokenLimit)

	// Category keywords qualify when they appear literally in the
	// text or substring-overlap one of the top frequency tokens.
	keywords := keywordsFor(category)
	keywordSet := make(map[string]struct{}, len(keywords))
	matched := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		keywordSet[kw] = struct{}{}
		if strings.Contains(text, kw) || overlapsAny(kw, top) {
			matched = append(matched, kw)
		}
	}

	// Candidate pool in fixed priority order: matched category
	// keywords, then frequency tokens overlapping the common-tag
	// vocabulary, then common tags found literally in the text.
	pool := make([]string, 0, len(matched)+len(top)+len(commonTags))
	pool = append(pool, matched...)
	for _, t := range top {
		if _, ok := keywordSet[t]; ok {
			continue
		}
		if overlapsAny(t, commonTags) {
			pool = append(pool, t)
		}
	}
	for _, ct := range commonTags {
		if strings.Contains(text, ct) {
			pool = append(pool, ct)
		}
	}

	seen := make(map[string]struct{}, len(pool))
	unique := make([]string, 0, len(pool))
	for _, c := range pool {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}

	// Truncate before the length filter; the original pipeline does
	// the same, so output may come up short of maxTags.
	if len(unique) > maxTags {
		unique = unique[:maxTags]
	}
	for _, c := range unique {
		if len([]rune(c)) >= minTagLength {
			tags = append(tags, c)
		}
	}
	return tags
}
