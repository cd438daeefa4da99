package services

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Sentinel errors for everything a user action can run into. Handlers match
// with errors.Is and translate to HTTP statuses; anything else is a storage
// failure that must not reach the client verbatim.
var (
	ErrValidation = errors.New("validation failed")
	ErrSelfTarget = errors.New("action cannot target yourself")
	ErrBlocked    = errors.New("messaging is blocked between these users")
	ErrConflict   = errors.New("already exists")
	ErrNotFound   = errors.New("not found")
)

const pgUniqueViolation = "23505"

// IsDuplicateKey reports whether err is a unique constraint violation.
// Postgres surfaces these as pgconn errors; the string fallback covers
// drivers that predate gorm's error translation.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}
