// Package tasks defines the Asynq task types and payloads shared by
// the enqueueing commands and the worker.
package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	// TypeVlogRetag re-runs tag generation against one vlog.
	TypeVlogRetag = "vlog:retag"
)

// RetagPayload identifies the vlog to re-analyze.
type RetagPayload struct {
	VlogID uuid.UUID `json:"vlog_id"`
}

// NewRetagTask builds a vlog:retag task for the given vlog.
func NewRetagTask(vlogID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(RetagPayload{VlogID: vlogID})
	if err != nil {
		return nil, fmt.Errorf("marshal retag payload: %w", err)
	}
	return asynq.NewTask(TypeVlogRetag, payload), nil
}

// ParseRetagPayload decodes a vlog:retag task payload.
func ParseRetagPayload(t *asynq.Task) (RetagPayload, error) {
	var p RetagPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("unmarshal retag payload: %w", err)
	}
	if p.VlogID == uuid.Nil {
		return p, fmt.Errorf("retag payload missing vlog id")
	}
	return p, nil
}
