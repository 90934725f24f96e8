package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/geovanereis/website-gsreistecnologia/internal/domain/entities"
	"github.com/geovanereis/website-gsreistecnologia/internal/usecase/interfaces"
)

// UserRepository stores users in a mutex-guarded map. Duplicate usernames
// are accepted; GetByUsername resolves them to the lowest id so repeated
// lookups stay stable.
type UserRepository struct {
	mu    sync.RWMutex
	items map[string]entities.User
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{items: map[string]entities.User{}}
}

func (r *UserRepository) Create(_ context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[u.ID] = u
	return u, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.items[id], nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if r.items[id].Username == username {
			return r.items[id], nil
		}
	}
	return entities.User{}, nil
}
