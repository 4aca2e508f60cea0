// Package analyzer derives descriptive tags, category suggestions,
// sentiment labels and key phrases from free-text vlog descriptions.
//
// Every public function is total: malformed input or an internal panic
// degrades to the documented fallback value (an empty slice, or
// "neutral" for sentiment) and is never surfaced as an error. Callers
// therefore cannot distinguish "nothing found" from "analysis failed";
// both yield the fallback.
//
// All lookup tables are immutable package-level data initialized at
// process start, so an Engine is safe for unlimited concurrent use.
package analyzer

const (
	// DefaultMaxTags is used when GenerateTags is called with a
	// non-positive maxTags.
	DefaultMaxTags = 8
	// DefaultMaxPhrases is used when KeyPhrases is called with a
	// non-positive maxPhrases.
	DefaultMaxPhrases = 5

	// minTagLength is the shortest tag the generator will emit.
	minTagLength = 3
	// topTokenLimit caps how many frequency-ranked tokens feed the
	// tag candidate pool.
	topTokenLimit = 15
	// maxSuggestedCategories caps SuggestCategories output.
	maxSuggestedCategories = 3
)

// Engine bundles the four analysis functions. It holds no state of its
// own; it exists so callers can depend on an interface and swap the
// implementation in tests.
type Engine struct{}

// New returns a ready-to-use Engine.
func New() *Engine {
	return &Engine{}
}

var defaultEngine = New()

// GenerateTags calls Engine.GenerateTags on a shared default engine.
func GenerateTags(description, category string, maxTags int) []string {
	return defaultEngine.GenerateTags(description, category, maxTags)
}

// SuggestCategories calls Engine.SuggestCategories on a shared default engine.
func SuggestCategories(description string, tags []string) []string {
	return defaultEngine.SuggestCategories(description, tags)
}

// Sentiment calls Engine.Sentiment on a shared default engine.
func Sentiment(description string) string {
	return defaultEngine.Sentiment(description)
}

// KeyPhrases calls Engine.KeyPhrases on a shared default engine.
func KeyPhrases(description string, maxPhrases int) []string {
	return defaultEngine.KeyPhrases(description, maxPhrases)
}

// Excerpt calls Engine.Excerpt on a shared default engine.
func Excerpt(description string, maxSentences int) string {
	return defaultEngine.Excerpt(description, maxSentences)
}
