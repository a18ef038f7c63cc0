package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/mail"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/issuetrack/reporting-system/internal/core/domain"
	"github.com/issuetrack/reporting-system/internal/core/ports"
)

const minPasswordLen = 6

// AdminConfig holds the shared-secret admin account settings.
type AdminConfig struct {
	Email    string
	Password string
	Passcode string
}

// AuthService implements employee registration/login and the shared-passcode
// admin login.
type AuthService struct {
	repo   ports.UserRepository
	admin  AdminConfig
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, admin AdminConfig, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, admin: admin, logger: logger}
}

// RegisterEmployee validates the input, rejects duplicate emails, and stores
// a new employee user with a bcrypt password hash. It does not establish a
// session; the caller is responsible for that.
func (s *AuthService) RegisterEmployee(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		EmployeeCode: input.EmployeeCode,
		PasswordHash: string(hash),
		Role:         domain.RoleEmployee,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("employee_code", created.EmployeeCode).Msg("employee registered")
	return created, nil
}

// LoginEmployee looks the user up by email and verifies the password.
// A missing user and a wrong password are reported distinctly so the
// transport layer can keep the source system's messaging.
func (s *AuthService) LoginEmployee(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// LoginAdmin compares the passcode against the process-wide shared secret.
// On first successful use the singleton admin user record is created; later
// logins fetch the existing record. No rate limiting or lockout applies.
func (s *AuthService) LoginAdmin(ctx context.Context, passcode string) (*domain.User, error) {
	if subtle.ConstantTimeCompare([]byte(passcode), []byte(s.admin.Passcode)) != 1 {
		return nil, domain.ErrInvalidPasscode
	}

	user, err := s.repo.FindByEmail(ctx, s.admin.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:         "Admin",
		Email:        s.admin.Email,
		EmployeeCode: "ADMIN",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		// Lost a race with a concurrent first login: the record exists now.
		if errors.Is(err, domain.ErrUserExists) {
			return s.repo.FindByEmail(ctx, s.admin.Email)
		}
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Msg("admin user created on first passcode login")
	return created, nil
}

func validateRegistration(input ports.RegisterInput) error {
	switch {
	case len(input.Name) < 2:
		return invalidf("name must be at least 2 characters")
	case input.EmployeeCode == "":
		return invalidf("employee code is required")
	case len(input.Password) < minPasswordLen:
		return invalidf("password must be at least %d characters", minPasswordLen)
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return invalidf("email is not valid")
	}
	return nil
}
