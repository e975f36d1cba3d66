package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanRulev/uniprep.git/internal/models"
)

type UserR struct {
	db QueryI
}

func NewUserRepository(db QueryI) *UserR {
	return &UserR{db: db}
}

const userColumns = `id, email, password_hash, refresh_hash, created_at`

// CreateUser fails with ErrAlreadyExists when the email is taken.
func (u *UserR) CreateUser(ctx context.Context, user models.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
		RETURNING id`

	var id int64
	err := u.db.GetContext(ctx, &id, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.RefreshHash,
		user.CreatedAt.UTC(),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("create user: %w", models.ErrAlreadyExists)
		}
		return storageErr("create user", err)
	}

	return nil
}

func (u *UserR) UserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.User
	if err := u.db.GetContext(ctx, &user, query, email); err != nil {
		return models.User{}, storageErr("get user by email", err)
	}

	return user, nil
}

func (u *UserR) UserByID(ctx context.Context, id int64) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	if err := u.db.GetContext(ctx, &user, query, id); err != nil {
		return models.User{}, storageErr("get user", err)
	}

	return user, nil
}

// SetRefreshHash replaces the stored refresh token hash. An invalid hash
// clears it, which logs the user out.
func (u *UserR) SetRefreshHash(ctx context.Context, id int64, hash sql.NullString) error {
	query := `UPDATE users SET refresh_hash = $1 WHERE id = $2 RETURNING id`

	var updated int64
	if err := u.db.GetContext(ctx, &updated, query, hash, id); err != nil {
		return storageErr("set refresh token", err)
	}

	return nil
}
