package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcerpt_TakesLeadingSentences(t *testing.T) {
	e := New()
	got := e.Excerpt("First part of the story. Second part follows. Third never shows.", 2)

	assert.True(t, strings.HasPrefix(got, "First part of the story"), "excerpt %q should start with the first sentence", got)
	assert.NotContains(t, got, "Third never shows")
}

func TestExcerpt_EmptyInput(t *testing.T) {
	e := New()
	assert.Equal(t, "", e.Excerpt("", 2))
	assert.Equal(t, "", e.Excerpt("   ", 2))
}

func TestExcerpt_DefaultSentenceCount(t *testing.T) {
	e := New()
	desc := "One sentence here."
	assert.Equal(t, e.Excerpt(desc, DefaultExcerptSentences), e.Excerpt(desc, 0))
}

func TestExcerpt_StripsMarkup(t *testing.T) {
	e := New()
	got := e.Excerpt("<p>Hello there viewers.</p>", 1)
	assert.NotContains(t, got, "<p>")
	assert.Contains(t, got, "Hello there viewers")
}
