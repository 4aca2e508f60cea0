package primary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vlogtagger/internal/models"
	"vlogtagger/internal/store"
)

// StoreImpl implements store.VlogStore on PostgreSQL.
type StoreImpl struct {
	db *pgxpool.Pool
}

// NewVlogStore opens a connection pool against the given DSN and
// verifies connectivity.
func NewVlogStore(ctx context.Context, dsn string) (*StoreImpl, error) {
	if dsn == "" {
		return nil, errors.New("database DSN cannot be empty")
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database DSN: %w", err)
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &StoreImpl{db: dbpool}, nil
}

// Ping checks the database connection.
func (s *StoreImpl) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close closes the connection pool.
func (s *StoreImpl) Close() {
	s.db.Close()
}

// EnsureSchema creates the vlogs table when it does not exist yet.
func (s *StoreImpl) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS vlogs (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT 'other',
			tags TEXT[] NOT NULL DEFAULT '{}',
			auto_tagged BOOLEAN NOT NULL DEFAULT FALSE,
			sentiment TEXT NOT NULL DEFAULT 'neutral',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure vlogs schema: %w", err)
	}
	return nil
}

const vlogColumns = "id, title, description, category, tags, auto_tagged, sentiment, created_at, updated_at"

func scanVlog(row pgx.Row, dest *models.Vlog) error {
	return row.Scan(
		&dest.ID,
		&dest.Title,
		&dest.Description,
		&dest.Category,
		&dest.Tags,
		&dest.AutoTagged,
		&dest.Sentiment,
		&dest.CreatedAt,
		&dest.UpdatedAt,
	)
}

// CreateVlog inserts a vlog, filling CreatedAt/UpdatedAt.
func (s *StoreImpl) CreateVlog(ctx context.Context, v *models.Vlog) error {
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now

	_, err := s.db.Exec(ctx,
		`INSERT INTO vlogs (id, title, description, category, tags, auto_tagged, sentiment, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		v.ID, v.Title, v.Description, v.Category, v.Tags, v.AutoTagged, v.Sentiment, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vlog: %w", err)
	}
	return nil
}

// UpdateVlog persists changes to an existing vlog and bumps UpdatedAt.
func (s *StoreImpl) UpdateVlog(ctx context.Context, v *models.Vlog) error {
	v.UpdatedAt = time.Now().UTC()

	tag, err := s.db.Exec(ctx,
		`UPDATE vlogs
		 SET title = $2, description = $3, category = $4, tags = $5, auto_tagged = $6, sentiment = $7, updated_at = $8
		 WHERE id = $1`,
		v.ID, v.Title, v.Description, v.Category, v.Tags, v.AutoTagged, v.Sentiment, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vlog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// GetVlog fetches a single vlog by ID.
func (s *StoreImpl) GetVlog(ctx context.Context, id uuid.UUID) (*models.Vlog, error) {
	var v models.Vlog
	row := s.db.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM vlogs WHERE id = $1", vlogColumns), id)
	if err := scanVlog(row, &v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get vlog %s: %w", id, err)
	}
	return &v, nil
}

// ListVlogs returns vlogs newest-first.
func (s *StoreImpl) ListVlogs(ctx context.Context, limit, offset int) ([]*models.Vlog, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.Query(ctx,
		fmt.Sprintf("SELECT %s FROM vlogs ORDER BY created_at DESC LIMIT $1 OFFSET $2", vlogColumns),
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vlogs: %w", err)
	}
	defer rows.Close()

	vlogs := make([]*models.Vlog, 0, limit)
	for rows.Next() {
		var v models.Vlog
		if err := scanVlog(rows, &v); err != nil {
			return nil, fmt.Errorf("scan vlog: %w", err)
		}
		vlogs = append(vlogs, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vlogs: %w", err)
	}
	return vlogs, nil
}

// ListVlogIDs returns every stored vlog ID.
func (s *StoreImpl) ListVlogIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := s.db.Query(ctx, "SELECT id FROM vlogs ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("list vlog ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan vlog id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vlog ids: %w", err)
	}
	return ids, nil
}
