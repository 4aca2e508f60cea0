package store

import (
	"context"

	"github.com/google/uuid"
	"vlogtagger/internal/models"
)

// VlogStore persists vlogs.
type VlogStore interface {
	CreateVlog(ctx context.Context, v *models.Vlog) error
	UpdateVlog(ctx context.Context, v *models.Vlog) error
	GetVlog(ctx context.Context, id uuid.UUID) (*models.Vlog, error)
	ListVlogs(ctx context.Context, limit, offset int) ([]*models.Vlog, error)
	// ListVlogIDs returns every stored vlog ID, for batch re-analysis.
	ListVlogIDs(ctx context.Context) ([]uuid.UUID, error)
	Ping(ctx context.Context) error
	Close()
}

// AnalysisHistoryStore records analysis invocations locally. Recording
// is best-effort; callers log and continue on error.
type AnalysisHistoryStore interface {
	Record(ctx context.Context, rec *models.AnalysisRecord) error
	List(ctx context.Context, limit int) ([]*models.AnalysisRecord, error)
	Close() error
}
