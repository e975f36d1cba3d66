package service

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/uniprep.git/internal/config"
	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/DanRulev/uniprep.git/pkg/validator"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Telegram user ids fit in 52 bits, so web accounts are numbered above that
// and never collide with a bot user.
const accountIDBase int64 = 1 << 52

const (
	tokenAccess  = "access"
	tokenRefresh = "refresh"
)

var ErrNoSecret = errors.New("auth.jwt_secret is not set")

type UserRI interface {
	CreateUser(ctx context.Context, user models.User) error
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, id int64) (models.User, error)
	SetRefreshHash(ctx context.Context, id int64, hash sql.NullString) error
}

type tokenClaims struct {
	Email string `json:"email"`
	Type  string `json:"typ"`
	jwt.RegisteredClaims
}

type AuthS struct {
	users  UserRI
	secret []byte
	cfg    config.AuthConfig
	now    func() time.Time
	newID  func() int64
	log    *zap.Logger
}

func NewAuthService(users UserRI, cfg config.AuthConfig, log *zap.Logger) *AuthS {
	return &AuthS{
		users:  users,
		secret: []byte(cfg.JWTSecret),
		cfg:    cfg,
		now:    time.Now,
		newID:  accountID,
		log:    log,
	}
}

func accountID() int64 {
	return accountIDBase + rand.Int64N(math.MaxInt64-accountIDBase)
}

func (a *AuthS) SignUp(ctx context.Context, req models.SignUpRequest) (models.Tokens, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return models.Tokens{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.cfg.BcryptCost)
	switch {
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		return models.Tokens{}, fmt.Errorf("%w: password is longer than 72 bytes", models.ErrValidation)
	case err != nil:
		return models.Tokens{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           a.newID(),
		Email:        normalizeEmail(req.Email),
		PasswordHash: string(hash),
		CreatedAt:    a.now().UTC(),
	}
	if err := a.users.CreateUser(ctx, user); err != nil {
		return models.Tokens{}, err
	}

	a.log.Info("user signed up", zap.Int64("user_id", user.ID))

	return a.issue(ctx, user)
}

func (a *AuthS) SignIn(ctx context.Context, req models.SignInRequest) (models.Tokens, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return models.Tokens{}, err
	}

	user, err := a.users.UserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return models.Tokens{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return models.Tokens{}, fmt.Errorf("%w: invalid password", models.ErrForbidden)
	}

	return a.issue(ctx, user)
}

// Refresh rotates the token pair. Only the refresh token issued last is
// accepted.
func (a *AuthS) Refresh(ctx context.Context, req models.RefreshRequest) (models.Tokens, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return models.Tokens{}, err
	}

	userID, err := a.parse(req.RefreshToken, tokenRefresh)
	if err != nil {
		return models.Tokens{}, fmt.Errorf("%w: access denied", models.ErrForbidden)
	}

	user, err := a.users.UserByID(ctx, userID)
	switch {
	case errors.Is(err, models.ErrNotFound):
		return models.Tokens{}, fmt.Errorf("%w: access denied", models.ErrForbidden)
	case err != nil:
		return models.Tokens{}, err
	}

	if !user.RefreshHash.Valid {
		return models.Tokens{}, fmt.Errorf("%w: access denied", models.ErrForbidden)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.RefreshHash.String), digest(req.RefreshToken)); err != nil {
		return models.Tokens{}, fmt.Errorf("%w: access denied", models.ErrForbidden)
	}

	return a.issue(ctx, user)
}

func (a *AuthS) Logout(ctx context.Context, userID int64) error {
	if err := a.users.SetRefreshHash(ctx, userID, sql.NullString{}); err != nil {
		return err
	}

	a.log.Info("user logged out", zap.Int64("user_id", userID))

	return nil
}

func (a *AuthS) Me(ctx context.Context, userID int64) (models.User, error) {
	return a.users.UserByID(ctx, userID)
}

// Authenticate verifies an access token and returns the user id it carries.
func (a *AuthS) Authenticate(token string) (int64, error) {
	id, err := a.parse(token, tokenAccess)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrUnauthorized, err)
	}
	return id, nil
}

func (a *AuthS) issue(ctx context.Context, user models.User) (models.Tokens, error) {
	access, err := a.sign(user, tokenAccess, a.cfg.AccessTTL)
	if err != nil {
		return models.Tokens{}, err
	}
	refresh, err := a.sign(user, tokenRefresh, a.cfg.RefreshTTL)
	if err != nil {
		return models.Tokens{}, err
	}

	hash, err := bcrypt.GenerateFromPassword(digest(refresh), a.cfg.BcryptCost)
	if err != nil {
		return models.Tokens{}, fmt.Errorf("hash refresh token: %w", err)
	}
	if err := a.users.SetRefreshHash(ctx, user.ID, sql.NullString{String: string(hash), Valid: true}); err != nil {
		return models.Tokens{}, err
	}

	return models.Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

func (a *AuthS) sign(user models.User, typ string, ttl time.Duration) (string, error) {
	if len(a.secret) == 0 {
		return "", ErrNoSecret
	}

	now := a.now()
	claims := tokenClaims{
		Email: user.Email,
		Type:  typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", typ, err)
	}

	return signed, nil
}

func (a *AuthS) parse(token, typ string) (int64, error) {
	if len(a.secret) == 0 {
		return 0, ErrNoSecret
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return 0, err
	}

	if claims.Type != typ {
		return 0, fmt.Errorf("expected %s token, got %q", typ, claims.Type)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad subject %q", claims.Subject)
	}

	return id, nil
}

// digest keeps the refresh token under bcrypt's 72 byte input limit.
func digest(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return []byte(hex.EncodeToString(sum[:]))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
