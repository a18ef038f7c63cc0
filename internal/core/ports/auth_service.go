package ports

import (
	"context"

	"github.com/issuetrack/reporting-system/internal/core/domain"
)

// RegisterInput carries an employee registration request.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	EmployeeCode string
}

// AuthService authenticates employees and the shared-passcode admin.
// None of its operations establish a session; the transport layer turns the
// returned user into a session cookie.
type AuthService interface {
	RegisterEmployee(ctx context.Context, input RegisterInput) (*domain.User, error)
	LoginEmployee(ctx context.Context, email, password string) (*domain.User, error)
	// LoginAdmin compares passcode against the process-wide shared secret
	// and lazily creates the singleton admin user record on first use.
	LoginAdmin(ctx context.Context, passcode string) (*domain.User, error)
}
