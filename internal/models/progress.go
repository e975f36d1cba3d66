package models

import (
	"time"

	"github.com/google/uuid"
)

// Metric is the aggregate part of a subject progress row.
type Metric struct {
	CompletedTopics int     `db:"completed_topics" json:"completed_topics"`
	AccuracyRate    float64 `db:"accuracy_rate" json:"accuracy_rate"`
	TimeSpent       int64   `db:"time_spent" json:"time_spent"`
}

type SubjectProgress struct {
	UserID    int64     `db:"user_id" json:"user_id"`
	SubjectID uuid.UUID `db:"subject_id" json:"subject_id"`
	Metric
	Version   int64     `db:"version" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type MetricRequest struct {
	SubjectID       string  `json:"subject_id" validate:"required,uuid"`
	CompletedTopics int     `json:"completed_topics" validate:"min=0"`
	AccuracyRate    float64 `json:"accuracy_rate" validate:"min=0,max=1"`
	TimeSpent       int64   `json:"time_spent" validate:"min=0"`
}
