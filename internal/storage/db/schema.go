package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is written in the subset of SQL shared by postgres and sqlite.
var schema = []struct {
	name string
	stmt string
}{
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id BIGINT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			refresh_hash TEXT,
			created_at TIMESTAMP NOT NULL
		)`},
	{"subjects", `
		CREATE TABLE IF NOT EXISTS subjects (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`},
	{"topics", `
		CREATE TABLE IF NOT EXISTS topics (
			id TEXT PRIMARY KEY,
			subject_id TEXT NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			UNIQUE (subject_id, name)
		)`},
	{"flashcards", `
		CREATE TABLE IF NOT EXISTS flashcards (
			id TEXT PRIMARY KEY,
			topic_id TEXT NOT NULL REFERENCES topics(id) ON DELETE CASCADE,
			question TEXT NOT NULL,
			UNIQUE (topic_id, question)
		)`},
	{"answers", `
		CREATE TABLE IF NOT EXISTS answers (
			id TEXT PRIMARY KEY,
			flashcard_id TEXT NOT NULL REFERENCES flashcards(id) ON DELETE CASCADE,
			text TEXT NOT NULL,
			is_correct BOOLEAN NOT NULL DEFAULT FALSE
		)`},
	{"review_state", `
		CREATE TABLE IF NOT EXISTS review_state (
			user_id BIGINT NOT NULL,
			flashcard_id TEXT NOT NULL REFERENCES flashcards(id) ON DELETE CASCADE,
			"interval" INTEGER NOT NULL DEFAULT 0,
			repetition INTEGER NOT NULL DEFAULT 0,
			ef DOUBLE PRECISION NOT NULL DEFAULT 2.5,
			next_review TIMESTAMP NOT NULL,
			time_spent BIGINT NOT NULL DEFAULT 0,
			version BIGINT NOT NULL DEFAULT 1,
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (user_id, flashcard_id)
		)`},
	{"review_state_due_idx", `
		CREATE INDEX IF NOT EXISTS review_state_due_idx ON review_state (user_id, next_review)`},
	{"subject_progress", `
		CREATE TABLE IF NOT EXISTS subject_progress (
			user_id BIGINT NOT NULL,
			subject_id TEXT NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
			completed_topics INTEGER NOT NULL DEFAULT 0,
			accuracy_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
			time_spent BIGINT NOT NULL DEFAULT 0,
			version BIGINT NOT NULL DEFAULT 1,
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (user_id, subject_id)
		)`},
	{"study_plans", `
		CREATE TABLE IF NOT EXISTS study_plans (
			id TEXT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			subject_id TEXT NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
			message TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`},
	{"plan_topics", `
		CREATE TABLE IF NOT EXISTS plan_topics (
			id TEXT PRIMARY KEY,
			plan_id TEXT NOT NULL REFERENCES study_plans(id) ON DELETE CASCADE,
			topic_id TEXT NOT NULL,
			name TEXT NOT NULL,
			position INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'PENDING'
		)`},
}

// Migrate creates every table that does not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, s := range schema {
		if _, err := db.ExecContext(ctx, s.stmt); err != nil {
			return fmt.Errorf("failed to create %s: %w", s.name, err)
		}
	}

	return nil
}
