package ports

import (
	"context"

	"github.com/issuetrack/reporting-system/internal/core/domain"
)

// UserRepository defines persistence for user records.
type UserRepository interface {
	// Create stores a new user. Returns domain.ErrUserExists when the email
	// is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns domain.ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
