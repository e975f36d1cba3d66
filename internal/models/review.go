package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewParams are the scheduling parameters the SM-2 update reads and writes.
type ReviewParams struct {
	Interval   int       `db:"interval" json:"interval"`
	Repetition int       `db:"repetition" json:"repetition"`
	EF         float64   `db:"ef" json:"ef"`
	NextReview time.Time `db:"next_review" json:"nextReview"`
}

// ReviewState is the persisted review state of one user for one flashcard.
type ReviewState struct {
	UserID      int64     `db:"user_id" json:"user_id"`
	FlashcardID uuid.UUID `db:"flashcard_id" json:"flashcard_id"`
	ReviewParams
	TimeSpent int64     `db:"time_spent" json:"time_spent"`
	Version   int64     `db:"version" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DueCount is the number of due cards of one user.
type DueCount struct {
	UserID int64 `db:"user_id"`
	Count  int   `db:"due_count"`
}
