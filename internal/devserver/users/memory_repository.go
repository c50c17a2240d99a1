package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/portal/internal/common"
	"github.com/google/uuid"
)

// MemoryRepository is a Repository kept in process memory. It hands out
// copies, so callers never share a *User with the store.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]User)}
}

func (r *MemoryRepository) Create(_ context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conflicts(user, "") {
		return nil, common.ErrorAlreadyExists
	}

	u := *user
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = u
	return &u, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) GetUserByLogin(_ context.Context, login string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.UserName, login) {
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) Update(_ context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return common.ErrorNotFound
	}
	if r.conflicts(user, user.ID) {
		return common.ErrorAlreadyExists
	}

	u := *user
	u.UpdatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

// conflicts reports whether another user than skipID already holds user's
// username or email. Callers hold the lock.
func (r *MemoryRepository) conflicts(user *User, skipID string) bool {
	for id, u := range r.users {
		if id == skipID {
			continue
		}
		if strings.EqualFold(u.UserName, user.UserName) {
			return true
		}
		if user.Email != "" && strings.EqualFold(u.Email, user.Email) {
			return true
		}
	}
	return false
}
