package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidTags(t *testing.T, tags []string, maxTags int) {
	t.Helper()
	assert.LessOrEqual(t, len(tags), maxTags, "tag count exceeds limit")
	seen := make(map[string]struct{})
	for _, tag := range tags {
		assert.GreaterOrEqual(t, len([]rune(tag)), 3, "tag %q shorter than 3 chars", tag)
		assert.Equal(t, strings.ToLower(tag), tag, "tag %q not lowercase", tag)
		_, dup := seen[tag]
		assert.False(t, dup, "duplicate tag %q", tag)
		seen[tag] = struct{}{}
	}
}

func TestGenerateTags_TechnologyDescription(t *testing.T) {
	e := New()
	tags := e.GenerateTags("I love building AI apps with React and Node tutorials", "technology", 8)

	require.NotEmpty(t, tags)
	assertValidTags(t, tags, 8)

	// Category keyword matches must surface: "tutorial" appears as a
	// substring of the text, "app" as a substring of "apps".
	assert.Contains(t, tags, "tutorial")
	assert.Contains(t, tags, "app")
}

func TestGenerateTags_EmptyInput(t *testing.T) {
	e := New()

	assert.Empty(t, e.GenerateTags("", "technology", 8))
	assert.Empty(t, e.GenerateTags("   \t\n  ", "travel", 8))
	assert.Empty(t, e.GenerateTags("!!! ??? ...", "", 8))
}

func TestGenerateTags_OnlyStopwordsAndDigits(t *testing.T) {
	e := New()
	tags := e.GenerateTags("the and 12345 with 99 from", "other", 8)
	assert.Empty(t, tags)
}

func TestGenerateTags_UnknownCategoryFallsBack(t *testing.T) {
	e := New()
	tags := e.GenerateTags("my daily vlog update from the city", "not-a-real-category", 8)

	require.NotEmpty(t, tags)
	assertValidTags(t, tags, 8)
	// "vlog" and "update" come from the fallback keyword list,
	// "daily" from the common-tag vocabulary.
	assert.Contains(t, tags, "vlog")
	assert.Contains(t, tags, "daily")
}

func TestGenerateTags_RespectsMaxTags(t *testing.T) {
	e := New()
	desc := "travel trip adventure destination journey explore vacation tour backpacking vlog daily update"

	tags := e.GenerateTags(desc, "travel", 3)
	assertValidTags(t, tags, 3)
	require.NotEmpty(t, tags)
}

func TestGenerateTags_DefaultMaxTags(t *testing.T) {
	e := New()
	desc := "travel trip adventure destination journey explore vacation tour backpacking vlog daily update"

	tags := e.GenerateTags(desc, "travel", 0)
	assertValidTags(t, tags, DefaultMaxTags)

	negative := e.GenerateTags(desc, "travel", -5)
	assert.Equal(t, tags, negative, "non-positive maxTags should behave like the default")
}

func TestGenerateTags_StripsMarkup(t *testing.T) {
	e := New()
	plain := e.GenerateTags("my workout routine at the gym", "fitness", 8)
	marked := e.GenerateTags("<p>my <b>workout</b> routine at the gym</p>", "fitness", 8)
	assert.Equal(t, plain, marked)
}

func TestGenerateTags_Idempotent(t *testing.T) {
	e := New()
	desc := "cooking a new recipe in my kitchen, baking bread and tasting food"
	first := e.GenerateTags(desc, "food", 8)
	second := e.GenerateTags(desc, "food", 8)
	assert.Equal(t, first, second)
}
