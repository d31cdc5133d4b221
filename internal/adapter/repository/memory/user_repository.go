package memory

import (
	"context"
	"sync"

	"github.com/kernel808/banknet/internal/domain"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.Username] = user
	return user, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return domain.User{}, domain.ErrRecordNotFound
	}
	return user, nil
}
