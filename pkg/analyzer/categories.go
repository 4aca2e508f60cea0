package analyzer

import (
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// SuggestCategories ranks the fixed taxonomy against a description and
// its tags, most relevant first, returning at most three category
// names. A category scores one point per associated keyword appearing
// as a substring of the combined text, regardless of repetition;
// zero-score categories are excluded. Ties keep the fixed table order.
// SuggestCategories never fails: unusable input yields an empty slice.
func (e *Engine) SuggestCategories(description string, tags []string) (names []string) {
	names = []string{}
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Warn("category suggestion failed, returning no categories")
			names = []string{}
		}
	}()

	blob := strings.ToLower(strings.TrimSpace(stripMarkup(description) + " " + strings.Join(tags, " ")))
	if blob == "" {
		return names
	}

	type scored struct {
		name  string
		score int
	}
	ranked := make([]scored, 0, len(categoryTable))
	for _, cat := range categoryTable {
		score := 0
		for _, kw := range cat.Keywords {
			if strings.Contains(blob, kw) {
				score++
			}
		}
		if score > 0 {
			ranked = append(ranked, scored{name: cat.Name, score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	for i := 0; i < len(ranked) && i < maxSuggestedCategories; i++ {
		names = append(names, ranked[i].name)
	}
	return names
}
