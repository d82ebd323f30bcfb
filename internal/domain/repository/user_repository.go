// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"mihrab/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user lookup matches nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	// CreateUser persists a new account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves an account by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves an account by its login email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateUser updates a previously persisted account.
	UpdateUser(ctx context.Context, user *entity.User) error
}
