package models

import (
	"errors"

	"github.com/DanRulev/uniprep.git/pkg/validator"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = validator.ErrInvalid
	ErrConflict      = errors.New("concurrent update conflict")
	ErrAlreadyExists = errors.New("already exists")
	ErrForbidden     = errors.New("forbidden")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrStorage       = errors.New("storage unavailable")
	// ErrStaleProgress marks a submission whose review state was saved but whose
	// subject progress metric was not.
	ErrStaleProgress = errors.New("subject progress is stale")
)
