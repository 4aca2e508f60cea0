package models

import (
	"time"

	"github.com/google/uuid"
)

// Vlog is a user-authored post: title, free-text description, tags and
// a taxonomy category. Tags may be user-supplied, machine-generated,
// or both; AutoTagged records whether the tag generator contributed.
type Vlog struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	Tags        []string  `db:"tags" json:"tags"`
	AutoTagged  bool      `db:"auto_tagged" json:"auto_tagged"`
	Sentiment   string    `db:"sentiment" json:"sentiment"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// AnalysisRecord is one row of local analysis history: which function
// ran, how large the input was and how many results came back.
type AnalysisRecord struct {
	ID          int64     `db:"id" json:"id"`
	Operation   string    `db:"operation" json:"operation"`
	InputChars  int       `db:"input_chars" json:"input_chars"`
	ResultCount int       `db:"result_count" json:"result_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
