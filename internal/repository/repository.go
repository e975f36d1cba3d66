package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/jmoiron/sqlx"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

type TxBeginner interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// DBI is satisfied by *sqlx.DB.
type DBI interface {
	QueryI
	TxBeginner
}

type Repository struct {
	*CatalogR
	*ReviewR
	*ProgressR
	*StudyPlanR
	*UserR
}

func NewRepository(db DBI) Repository {
	return Repository{
		CatalogR:   NewCatalogRepository(db),
		ReviewR:    NewReviewRepository(db),
		ProgressR:  NewProgressRepository(db),
		StudyPlanR: NewStudyPlanRepository(db),
		UserR:      NewUserRepository(db),
	}
}

func withTx(ctx context.Context, begin TxBeginner, fn func(q QueryI) error) error {
	if begin == nil {
		return fmt.Errorf("%w: transactions unavailable", models.ErrStorage)
	}

	tx, err := begin.BeginTxx(ctx, nil)
	if err != nil {
		return storageErr("begin tx", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit tx", err)
	}

	return nil
}

// storageErr classifies a driver error: no rows becomes ErrNotFound, anything
// else ErrStorage.
func storageErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
}

// casErr is storageErr for compare-and-set upserts, where no returned row means
// the expected version was already gone.
func casErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, models.ErrConflict)
	}
	return fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
}
