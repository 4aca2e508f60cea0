package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vlogtagger/internal/models"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, &models.AnalysisRecord{Operation: "tags", InputChars: 42, ResultCount: 3}))
	require.NoError(t, s.Record(ctx, &models.AnalysisRecord{Operation: "sentiment", InputChars: 10, ResultCount: 1}))

	recs, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// Newest first.
	assert.Equal(t, "sentiment", recs[0].Operation)
	assert.Equal(t, "tags", recs[1].Operation)
	assert.Equal(t, 42, recs[1].InputChars)
	assert.Equal(t, 3, recs[1].ResultCount)
	assert.False(t, recs[0].CreatedAt.IsZero())
}

func TestList_RespectsLimit(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, &models.AnalysisRecord{Operation: "phrases", InputChars: i, ResultCount: i}))
	}

	recs, err := s.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, recs, 3)
}

func TestList_EmptyStore(t *testing.T) {
	s := setupStore(t)
	recs, err := s.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
