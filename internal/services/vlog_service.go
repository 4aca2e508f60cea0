package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"vlogtagger/internal/models"
	"vlogtagger/internal/store"
)

// AutoTagSettings control the tag-generation integration points.
type AutoTagSettings struct {
	Enabled bool
	// MinDescriptionLength gates generation on creation only.
	MinDescriptionLength int
	MaxTags              int
}

// VlogService owns vlog persistence and the auto-tagging hooks that
// run on creation and update.
type VlogService struct {
	store    store.VlogStore
	tagger   Analyzer
	settings AutoTagSettings
}

func NewVlogService(vs store.VlogStore, tagger Analyzer, settings AutoTagSettings) *VlogService {
	return &VlogService{store: vs, tagger: tagger, settings: settings}
}

// CreateVlogParams are the caller-supplied fields of a new vlog.
type CreateVlogParams struct {
	Title       string
	Description string
	Category    string
	Tags        []string
}

// UpdateVlogParams carry partial updates; nil fields are untouched.
type UpdateVlogParams struct {
	Title       *string
	Description *string
	Category    *string
	Tags        *[]string
}

// VlogSummary is a listing row: the vlog plus a short text preview.
type VlogSummary struct {
	Vlog    *models.Vlog `json:"vlog"`
	Excerpt string       `json:"excerpt"`
}

// CreateVlog stores a new vlog. When auto-tagging is enabled and the
// description meets the configured minimum length, generated tags are
// appended to the user-supplied ones and AutoTagged is set.
func (s *VlogService) CreateVlog(ctx context.Context, params CreateVlogParams) (*models.Vlog, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, errors.New("title is required")
	}

	v := &models.Vlog{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		Category:    params.Category,
		Tags:        cleanTags(params.Tags),
	}

	if s.settings.Enabled && len(params.Description) >= s.settings.MinDescriptionLength {
		generated := s.tagger.GenerateTags(params.Description, params.Category, s.settings.MaxTags)
		v.Tags = mergeTags(v.Tags, generated)
		v.AutoTagged = len(generated) > 0
	}
	v.Sentiment = s.tagger.Sentiment(params.Description)

	if err := s.store.CreateVlog(ctx, v); err != nil {
		return nil, fmt.Errorf("create vlog: %w", err)
	}
	return v, nil
}

// UpdateVlog applies a partial update. When auto-tagging is enabled
// and the description changed, tags are regenerated from the new text
// regardless of its length.
func (s *VlogService) UpdateVlog(ctx context.Context, id uuid.UUID, params UpdateVlogParams) (*models.Vlog, error) {
	v, err := s.store.GetVlog(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load vlog for update: %w", err)
	}

	if params.Title != nil {
		v.Title = *params.Title
	}
	if params.Category != nil {
		v.Category = *params.Category
	}
	if params.Tags != nil {
		v.Tags = cleanTags(*params.Tags)
		v.AutoTagged = false
	}
	if params.Description != nil {
		v.Description = *params.Description
		v.Sentiment = s.tagger.Sentiment(v.Description)
		if s.settings.Enabled && v.Description != "" {
			generated := s.tagger.GenerateTags(v.Description, v.Category, s.settings.MaxTags)
			v.Tags = mergeTags(v.Tags, generated)
			if len(generated) > 0 {
				v.AutoTagged = true
			}
		}
	}

	if err := s.store.UpdateVlog(ctx, v); err != nil {
		return nil, fmt.Errorf("update vlog: %w", err)
	}
	return v, nil
}

// RetagVlog re-runs the tag generator against a vlog's current
// description and persists the refreshed tags. Used by the background
// re-analysis worker; ignores the creation-time length gate.
func (s *VlogService) RetagVlog(ctx context.Context, id uuid.UUID) (*models.Vlog, error) {
	v, err := s.store.GetVlog(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load vlog for retag: %w", err)
	}
	if v.Description == "" {
		return v, nil
	}

	generated := s.tagger.GenerateTags(v.Description, v.Category, s.settings.MaxTags)
	v.Tags = mergeTags(v.Tags, generated)
	if len(generated) > 0 {
		v.AutoTagged = true
	}
	v.Sentiment = s.tagger.Sentiment(v.Description)

	if err := s.store.UpdateVlog(ctx, v); err != nil {
		return nil, fmt.Errorf("persist retagged vlog: %w", err)
	}
	return v, nil
}

// GetVlog fetches a vlog by ID.
func (s *VlogService) GetVlog(ctx context.Context, id uuid.UUID) (*models.Vlog, error) {
	return s.store.GetVlog(ctx, id)
}

// ListVlogs returns vlogs newest-first with a generated excerpt.
func (s *VlogService) ListVlogs(ctx context.Context, limit, offset int) ([]VlogSummary, error) {
	vlogs, err := s.store.ListVlogs(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	summaries := make([]VlogSummary, len(vlogs))
	for i, v := range vlogs {
		summaries[i] = VlogSummary{
			Vlog:    v,
			Excerpt: s.tagger.Excerpt(v.Description, 0),
		}
	}
	return summaries, nil
}

// ListVlogIDs returns every stored vlog ID.
func (s *VlogService) ListVlogIDs(ctx context.Context) ([]uuid.UUID, error) {
	return s.store.ListVlogIDs(ctx)
}

// cleanTags trims and lowercases user tags and drops empties.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// mergeTags appends generated tags after the existing ones,
// deduplicating while preserving order.
func mergeTags(existing, generated []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(generated))
	out := make([]string, 0, len(existing)+len(generated))
	for _, t := range existing {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	for _, t := range generated {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
