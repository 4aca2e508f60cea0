// Package worker registers the Asynq handlers for background
// re-analysis of stored vlogs.
package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"vlogtagger/internal/models"
	"vlogtagger/internal/store"
	"vlogtagger/internal/tasks"
)

// VlogRetagger is the slice of the vlog service the worker needs.
type VlogRetagger interface {
	RetagVlog(ctx context.Context, id uuid.UUID) (*models.Vlog, error)
}

// RetagHandler processes vlog:retag tasks.
type RetagHandler struct {
	svc VlogRetagger
}

// NewRetagHandler builds a handler around the vlog service.
func NewRetagHandler(svc VlogRetagger) *RetagHandler {
	return &RetagHandler{svc: svc}
}

// RegisterHandlers wires every task type onto the mux.
func RegisterHandlers(mux *asynq.ServeMux, h *RetagHandler) {
	mux.HandleFunc(tasks.TypeVlogRetag, h.ProcessTask)
}

// ProcessTask re-runs tag generation for the vlog named in the
// payload. Malformed payloads and missing vlogs are not retried.
func (h *RetagHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	p, err := tasks.ParseRetagPayload(t)
	if err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	v, err := h.svc.RetagVlog(ctx, p.VlogID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.WithField("vlog_id", p.VlogID).Warn("retag task for missing vlog, skipping")
			return nil
		}
		return fmt.Errorf("retag vlog %s: %w", p.VlogID, err)
	}

	log.WithFields(log.Fields{
		"vlog_id":   v.ID,
		"tag_count": len(v.Tags),
	}).Info("vlog retagged")
	return nil
}
