// Package memory provides in-memory implementations of the persistence
// ports. They are selected at startup when the external stores are not
// configured and exist for local development only: all state is lost on
// restart. Unlike the stores they stand in for, they must still be safe
// under the HTTP server's concurrent handlers, hence the mutexes.
package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/issuetrack/reporting-system/internal/core/domain"
)

// UserRepository is the in-memory fallback for ports.UserRepository.
type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]domain.User
	nextID  int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byEmail: make(map[string]domain.User), nextID: 1}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}

	created := *user
	created.ID = "user-" + strconv.Itoa(r.nextID)
	r.nextID++
	r.byEmail[created.Email] = created

	out := created
	return &out, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := user
	return &out, nil
}
