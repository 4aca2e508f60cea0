package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vlogtagger/internal/models"
	"vlogtagger/internal/store"
	"vlogtagger/pkg/analyzer"
)

// fakeVlogStore is an in-memory store.VlogStore for service tests.
type fakeVlogStore struct {
	vlogs map[uuid.UUID]*models.Vlog
	order []uuid.UUID
}

func newFakeVlogStore() *fakeVlogStore {
	return &fakeVlogStore{vlogs: make(map[uuid.UUID]*models.Vlog)}
}

func (f *fakeVlogStore) CreateVlog(ctx context.Context, v *models.Vlog) error {
	cp := *v
	f.vlogs[v.ID] = &cp
	f.order = append(f.order, v.ID)
	return nil
}

func (f *fakeVlogStore) UpdateVlog(ctx context.Context, v *models.Vlog) error {
	if _, ok := f.vlogs[v.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *v
	f.vlogs[v.ID] = &cp
	return nil
}

func (f *fakeVlogStore) GetVlog(ctx context.Context, id uuid.UUID) (*models.Vlog, error) {
	v, ok := f.vlogs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVlogStore) ListVlogs(ctx context.Context, limit, offset int) ([]*models.Vlog, error) {
	var out []*models.Vlog
	for _, id := range f.order {
		cp := *f.vlogs[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeVlogStore) ListVlogIDs(ctx context.Context) ([]uuid.UUID, error) {
	return append([]uuid.UUID(nil), f.order...), nil
}

func (f *fakeVlogStore) Ping(ctx context.Context) error { return nil }
func (f *fakeVlogStore) Close()                         {}

func newTestService(settings AutoTagSettings) (*VlogService, *fakeVlogStore) {
	fs := newFakeVlogStore()
	return NewVlogService(fs, analyzer.New(), settings), fs
}

const taggableDescription = "my daily vlog update from the city"

func TestCreateVlog_AutoTagsLongDescription(t *testing.T) {
	svc, _ := newTestService(AutoTagSettings{Enabled: true, MinDescriptionLength: 10, MaxTags: 8})

	v, err := svc.CreateVlog(context.Background(), CreateVlogParams{
		Title:       "city day",
		Description: taggableDescription,
		Tags:        []string{"Mine"},
	})
	require.NoError(t, err)

	assert.True(t, v.AutoTagged)
	// User tags come first, machine tags are appended.
	require.NotEmpty(t, v.Tags)
	assert.Equal(t, "mine", v.Tags[0])
	assert.Contains(t, v.Tags, "vlog")
	assert.NotEmpty(t, v.Sentiment)
}

func TestCreateVlog_ShortDescriptionSkipsGeneration(t *testing.T) {
	svc, _ := newTestService(AutoTagSettings{Enabled: true, MinDescriptionLength: 500, MaxTags: 8})

	v, err := svc.CreateVlog(context.Background(), CreateVlogParams{
		Title:       "short one",
		Description: taggableDescription,
		Tags:        []string{"mine"},
	})
	require.NoError(t, err)

	assert.False(t, v.AutoTagged)
	assert.Equal(t, []string{"mine"}, v.Tags)
}

func TestCreateVlog_FeatureFlagDisabled(t *testing.T) {
	svc, _ := newTestService(AutoTagSettings{Enabled: false, MinDescriptionLength: 1, MaxTags: 8})

	v, err := svc.CreateVlog(context.Background(), CreateVlogParams{
		Title:       "no autotag",
		Description: taggableDescription,
	})
	require.NoError(t, err)

	assert.False(t, v.AutoTagged)
	assert.Empty(t, v.Tags)
}

func TestCreateVlog_RequiresTitle(t *testing.T) {
	svc, _ := newTestService(AutoTagSettings{Enabled: true, MinDescriptionLength: 1, MaxTags: 8})

	_, err := svc.CreateVlog(context.Background(), CreateVlogParams{Description: "x"})
	assert.Error(t, err)
}

func TestUpdateVlog_DescriptionChangeSkipsLengthGate(t *testing.T) {
	// Creation is gated on length; the update path is not.
	svc, _ := newTestService(AutoTagSettings{Enabled: true, MinDescriptionLength: 500, MaxTags: 8})

	created, err := svc.CreateVlog(context.Background(), CreateVlogParams{Title: "t"})
	require.NoError(t, err)
	require.False(t, created.AutoTagged)

	desc := taggableDescription
	updated, err := svc.UpdateVlog(context.Background(), created.ID, UpdateVlogParams{Description: &desc})
	require.NoError(t, err)

	assert.True(t, updated.AutoTagged)
	assert.Contains(t, updated.Tags, "vlog")
}

func TestUpdateVlog_NoDescriptionLeavesTags(t *testing.T) {
	svc, _ := newTestService(AutoTagSettings{Enabled: true, MinDescriptionLength: 1, MaxTags: 8})

	created, err := svc.CreateVlog(context.Background(), CreateVlogParams{
		Title: "t", Description: taggableDescription,
	})
	require.NoError(t, err)

	title := "renamed"
	updated, err := svc.UpdateVlog(context.Background(), created.ID, UpdateVlogParams{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, created.Tags, updated.Tags)
}

func TestUpdateVlog_NotFound(t *testing.T) {
	svc, _ := newTestService(AutoTagSettings{Enabled: true, MinDescriptionLength: 1, MaxTags: 8})

	desc := "whatever"
	_, err := svc.UpdateVlog(context.Background(), uuid.New(), UpdateVlogParams{Description: &desc})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRetagVlog_RefreshesTags(t *testing.T) {
	svc, fs := newTestService(AutoTagSettings{Enabled: false, MinDescriptionLength: 1, MaxTags: 8})

	created, err := svc.CreateVlog(context.Background(), CreateVlogParams{
		Title: "t", Description: taggableDescription,
	})
	require.NoError(t, err)
	require.Empty(t, created.Tags)

	retagged, err := svc.RetagVlog(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, retagged.AutoTagged)
	assert.Contains(t, retagged.Tags, "vlog")

	stored, err := fs.GetVlog(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, retagged.Tags, stored.Tags)
}

func TestListVlogs_IncludesExcerpt(t *testing.T) {
	svc, _ := newTestService(AutoTagSettings{Enabled: false, MinDescriptionLength: 1, MaxTags: 8})

	_, err := svc.CreateVlog(context.Background(), CreateVlogParams{
		Title: "t", Description: "First sentence here. Second sentence there.",
	})
	require.NoError(t, err)

	summaries, err := svc.ListVlogs(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.NotEmpty(t, summaries[0].Excerpt)
}

func TestMergeTags(t *testing.T) {
	got := mergeTags([]string{"one", "two"}, []string{"two", "three"})
	assert.Equal(t, []string{"one", "two", "three"}, got)
}

func TestCleanTags(t *testing.T) {
	got := cleanTags([]string{" One ", "", "TWO", "  "})
	assert.Equal(t, []string{"one", "two"}, got)
}
