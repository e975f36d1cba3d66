package repository

import (
	"context"
	"time"

	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/google/uuid"
)

type ReviewR struct {
	db QueryI
}

func NewReviewRepository(db QueryI) *ReviewR {
	return &ReviewR{db: db}
}

const reviewColumns = `user_id, flashcard_id, "interval", repetition, ef, next_review, time_spent, version, updated_at`

func (r *ReviewR) ReviewState(ctx context.Context, userID int64, flashcardID uuid.UUID) (models.ReviewState, error) {
	query := `SELECT ` + reviewColumns + ` FROM review_state WHERE user_id = $1 AND flashcard_id = $2`

	var state models.ReviewState
	if err := r.db.GetContext(ctx, &state, query, userID, flashcardID); err != nil {
		return models.ReviewState{}, storageErr("get review state", err)
	}

	return state, nil
}

// UpsertReviewState writes the state in one statement, guarded by the version
// the caller read. expectedVersion 0 means the caller saw no row. A concurrent
// writer that got there first makes this return ErrConflict.
func (r *ReviewR) UpsertReviewState(ctx context.Context, state models.ReviewState, expectedVersion int64, now time.Time) (models.ReviewState, error) {
	query := `
		INSERT INTO review_state (` + reviewColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8)
		ON CONFLICT (user_id, flashcard_id) DO UPDATE SET
			"interval" = excluded."interval",
			repetition = excluded.repetition,
			ef = excluded.ef,
			next_review = excluded.next_review,
			time_spent = excluded.time_spent,
			version = review_state.version + 1,
			updated_at = excluded.updated_at
		WHERE review_state.version = $9
		RETURNING version`

	var version int64
	err := r.db.GetContext(ctx, &version, query,
		state.UserID,
		state.FlashcardID,
		state.Interval,
		state.Repetition,
		state.EF,
		state.NextReview.UTC(),
		state.TimeSpent,
		now.UTC(),
		expectedVersion,
	)
	if err != nil {
		return models.ReviewState{}, casErr("upsert review state", err)
	}

	state.NextReview = state.NextReview.UTC()
	state.Version = version
	state.UpdatedAt = now.UTC()

	return state, nil
}

// DueCounts lists users having at least one card due at now.
func (r *ReviewR) DueCounts(ctx context.Context, now time.Time) ([]models.DueCount, error) {
	query := `
		SELECT user_id, COUNT(*) AS due_count
		FROM review_state
		WHERE next_review <= $1
		GROUP BY user_id
		ORDER BY user_id`

	var counts []models.DueCount
	if err := r.db.SelectContext(ctx, &counts, query, now.UTC()); err != nil {
		return nil, storageErr("count due cards", err)
	}

	return counts, nil
}
