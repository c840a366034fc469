// Package repository provides database operations over database/sql.
package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors the service layer maps onto the HTTP taxonomy.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Repository provides database operations.
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// translate maps driver-level errors onto the repository sentinels. Unique
// constraint violations become ErrDuplicate so callers can answer 409 even
// when the application pre-check raced.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}
