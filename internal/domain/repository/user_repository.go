package repository

import (
	"context"
	"errors"

	"github.com/comsvc/users-service/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("user not found")
	// ErrNoRowReturned is returned when an insert completes without
	// handing back the generated row.
	ErrNoRowReturned = errors.New("insert returned no row")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// EnsureSchema idempotently creates the users table. Safe on every boot.
	EnsureSchema(ctx context.Context) error
	// Create appends one row and fills in the store-assigned id.
	Create(ctx context.Context, u *entity.User) error
	// List returns at most limit rows ordered by created_at descending,
	// skipping offset rows. The slice is never nil on success.
	List(ctx context.Context, limit, offset int) ([]entity.User, error)
	// GetByID returns the row with the matching id, or ErrNotFound.
	GetByID(ctx context.Context, id int64) (*entity.User, error)
}
