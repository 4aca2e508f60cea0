package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vlogtagger/internal/models"
	"vlogtagger/internal/store"
	"vlogtagger/internal/tasks"
)

type fakeRetagger struct {
	called []uuid.UUID
	err    error
}

func (f *fakeRetagger) RetagVlog(ctx context.Context, id uuid.UUID) (*models.Vlog, error) {
	f.called = append(f.called, id)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Vlog{ID: id, Tags: []string{"vlog"}}, nil
}

func TestRetagHandler_ProcessTask(t *testing.T) {
	fake := &fakeRetagger{}
	h := NewRetagHandler(fake)

	id := uuid.New()
	task, err := tasks.NewRetagTask(id)
	require.NoError(t, err)

	require.NoError(t, h.ProcessTask(context.Background(), task))
	assert.Equal(t, []uuid.UUID{id}, fake.called)
}

func TestRetagHandler_MissingVlogIsSkipped(t *testing.T) {
	fake := &fakeRetagger{err: store.ErrNotFound}
	h := NewRetagHandler(fake)

	task, err := tasks.NewRetagTask(uuid.New())
	require.NoError(t, err)

	// Missing vlogs must not bubble up as retryable failures.
	assert.NoError(t, h.ProcessTask(context.Background(), task))
}

func TestRetagHandler_StoreErrorIsRetryable(t *testing.T) {
	fake := &fakeRetagger{err: errors.New("connection refused")}
	h := NewRetagHandler(fake)

	task, err := tasks.NewRetagTask(uuid.New())
	require.NoError(t, err)

	assert.Error(t, h.ProcessTask(context.Background(), task))
}

func TestRetagHandler_BadPayloadSkipsRetry(t *testing.T) {
	h := NewRetagHandler(&fakeRetagger{})
	err := h.ProcessTask(context.Background(), asynq.NewTask(tasks.TypeVlogRetag, []byte("garbage")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
