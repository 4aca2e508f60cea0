package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"vlogtagger/internal/models"
	"vlogtagger/internal/store"
)

// Analyzer is the subset of the analysis engine the services depend
// on. pkg/analyzer.Engine satisfies it; tests substitute fakes.
type Analyzer interface {
	GenerateTags(description, category string, maxTags int) []string
	SuggestCategories(description string, tags []string) []string
	Sentiment(description string) string
	KeyPhrases(description string, maxPhrases int) []string
	Excerpt(description string, maxSentences int) string
}

// AnalysisService exposes the analysis engine to the CLI and HTTP
// layers and records each invocation in the local history store.
type AnalysisService struct {
	engine  Analyzer
	history store.AnalysisHistoryStore // optional; nil disables recording
}

func NewAnalysisService(engine Analyzer, history store.AnalysisHistoryStore) *AnalysisService {
	return &AnalysisService{engine: engine, history: history}
}

// Tags runs the tag generator.
func (s *AnalysisService) Tags(ctx context.Context, description, category string, maxTags int) []string {
	tags := s.engine.GenerateTags(description, category, maxTags)
	s.record(ctx, "tags", len(description), len(tags))
	return tags
}

// Categories runs the category suggester.
func (s *AnalysisService) Categories(ctx context.Context, description string, tags []string) []string {
	cats := s.engine.SuggestCategories(description, tags)
	s.record(ctx, "categories", len(description), len(cats))
	return cats
}

// Sentiment runs the sentiment classifier.
func (s *AnalysisService) Sentiment(ctx context.Context, description string) string {
	label := s.engine.Sentiment(description)
	s.record(ctx, "sentiment", len(description), 1)
	return label
}

// Phrases runs the key-phrase extractor.
func (s *AnalysisService) Phrases(ctx context.Context, description string, maxPhrases int) []string {
	phrases := s.engine.KeyPhrases(description, maxPhrases)
	s.record(ctx, "phrases", len(description), len(phrases))
	return phrases
}

// record appends to the analysis history. Failures are logged and
// swallowed; history must never fail a request.
func (s *AnalysisService) record(ctx context.Context, operation string, inputChars, resultCount int) {
	if s.history == nil {
		return
	}
	rec := &models.AnalysisRecord{
		Operation:   operation,
		InputChars:  inputChars,
		ResultCount: resultCount,
	}
	if err := s.history.Record(ctx, rec); err != nil {
		log.WithError(err).WithField("operation", operation).Warn("failed to record analysis history")
	}
}
