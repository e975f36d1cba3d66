package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/google/uuid"
)

type ProgressR struct {
	db QueryI
}

func NewProgressRepository(db QueryI) *ProgressR {
	return &ProgressR{db: db}
}

const progressColumns = `user_id, subject_id, completed_topics, accuracy_rate, time_spent, version, updated_at`

func (p *ProgressR) SubjectProgress(ctx context.Context, userID int64, subjectID uuid.UUID) (models.SubjectProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM subject_progress WHERE user_id = $1 AND subject_id = $2`

	var progress models.SubjectProgress
	if err := p.db.GetContext(ctx, &progress, query, userID, subjectID); err != nil {
		return models.SubjectProgress{}, storageErr("get subject progress", err)
	}

	return progress, nil
}

func (p *ProgressR) SubjectProgresses(ctx context.Context, userID int64) ([]models.SubjectProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM subject_progress WHERE user_id = $1 ORDER BY subject_id`

	progresses := make([]models.SubjectProgress, 0)
	if err := p.db.SelectContext(ctx, &progresses, query, userID); err != nil {
		return nil, storageErr("list subject progress", err)
	}

	return progresses, nil
}

// UpsertSubjectProgress is the compare-and-set write used after each answer:
// it only applies when the stored version still equals expectedVersion.
func (p *ProgressR) UpsertSubjectProgress(ctx context.Context, progress models.SubjectProgress, expectedVersion int64, now time.Time) (models.SubjectProgress, error) {
	query := `
		INSERT INTO subject_progress (` + progressColumns + `)
		VALUES ($1, $2, $3, $4, $5, 1, $6)
		ON CONFLICT (user_id, subject_id) DO UPDATE SET
			completed_topics = excluded.completed_topics,
			accuracy_rate = excluded.accuracy_rate,
			time_spent = excluded.time_spent,
			version = subject_progress.version + 1,
			updated_at = excluded.updated_at
		WHERE subject_progress.version = $7
		RETURNING version`

	var version int64
	err := p.db.GetContext(ctx, &version, query,
		progress.UserID,
		progress.SubjectID,
		progress.CompletedTopics,
		progress.AccuracyRate,
		progress.TimeSpent,
		now.UTC(),
		expectedVersion,
	)
	if err != nil {
		return models.SubjectProgress{}, casErr("upsert subject progress", err)
	}

	return stamped(progress, version, now), nil
}

// CreateSubjectProgress inserts a new row and fails with ErrAlreadyExists when
// the user already has one for the subject.
func (p *ProgressR) CreateSubjectProgress(ctx context.Context, progress models.SubjectProgress, now time.Time) (models.SubjectProgress, error) {
	query := `
		INSERT INTO subject_progress (` + progressColumns + `)
		VALUES ($1, $2, $3, $4, $5, 1, $6)
		ON CONFLICT (user_id, subject_id) DO NOTHING
		RETURNING version`

	var version int64
	err := p.db.GetContext(ctx, &version, query,
		progress.UserID,
		progress.SubjectID,
		progress.CompletedTopics,
		progress.AccuracyRate,
		progress.TimeSpent,
		now.UTC(),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SubjectProgress{}, fmt.Errorf("create subject progress: %w", models.ErrAlreadyExists)
		}
		return models.SubjectProgress{}, storageErr("create subject progress", err)
	}

	return stamped(progress, version, now), nil
}

// SaveSubjectProgress overwrites the row unconditionally.
func (p *ProgressR) SaveSubjectProgress(ctx context.Context, progress models.SubjectProgress, now time.Time) (models.SubjectProgress, error) {
	query := `
		INSERT INTO subject_progress (` + progressColumns + `)
		VALUES ($1, $2, $3, $4, $5, 1, $6)
		ON CONFLICT (user_id, subject_id) DO UPDATE SET
			completed_topics = excluded.completed_topics,
			accuracy_rate = excluded.accuracy_rate,
			time_spent = excluded.time_spent,
			version = subject_progress.version + 1,
			updated_at = excluded.updated_at
		RETURNING version`

	var version int64
	err := p.db.GetContext(ctx, &version, query,
		progress.UserID,
		progress.SubjectID,
		progress.CompletedTopics,
		progress.AccuracyRate,
		progress.TimeSpent,
		now.UTC(),
	)
	if err != nil {
		return models.SubjectProgress{}, storageErr("save subject progress", err)
	}

	return stamped(progress, version, now), nil
}

// DeleteSubjectProgress removes the row and returns the metric it held.
func (p *ProgressR) DeleteSubjectProgress(ctx context.Context, userID int64, subjectID uuid.UUID) (models.Metric, error) {
	query := `
		DELETE FROM subject_progress
		WHERE user_id = $1 AND subject_id = $2
		RETURNING completed_topics, accuracy_rate, time_spent`

	var deleted models.Metric
	if err := p.db.GetContext(ctx, &deleted, query, userID, subjectID); err != nil {
		return models.Metric{}, storageErr("delete subject progress", err)
	}

	return deleted, nil
}

func stamped(progress models.SubjectProgress, version int64, now time.Time) models.SubjectProgress {
	progress.Version = version
	progress.UpdatedAt = now.UTC()
	return progress
}
