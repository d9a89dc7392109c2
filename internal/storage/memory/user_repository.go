package memory

import (
	"context"
	"sync"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
)

// userRepositoryInMemory хранит записи покупателей в памяти.
type userRepositoryInMemory struct {
	mu    sync.RWMutex
	users map[int64]domain.User
}

// NewUserRepository создаёт in-memory репозиторий покупателей
// с заданным начальным набором записей.
func NewUserRepository(users ...domain.User) domain.UserRepository {
	indexed := make(map[int64]domain.User, len(users))
	for _, user := range users {
		indexed[user.ID] = user
	}
	return &userRepositoryInMemory{users: indexed}
}

// Get возвращает покупателя или ErrUserNotFound, если его нет.
func (r *userRepositoryInMemory) Get(_ context.Context, id int64) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

var _ domain.UserRepository = (*userRepositoryInMemory)(nil)
