package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// userRepositoryInMemory — in-memory реализация UserRepository.
type userRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.User
}

// NewUserRepository возвращает in-memory хранилище пользователей.
func NewUserRepository() *userRepositoryInMemory {
	return &userRepositoryInMemory{
		items: make(map[string]domain.User),
	}
}

// Get возвращает пользователя вместе с копией корзины или ErrUserNotFound.
func (r *userRepositoryInMemory) Get(_ context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.items[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	// Отдаём копию корзины, чтобы мутации у вызывающего не трогали хранилище.
	user.Cart = user.Cart.Clone()
	return user, nil
}

// Create сохраняет нового пользователя; дубликат ID или email — ErrUserAlreadyExists.
func (r *userRepositoryInMemory) Create(_ context.Context, u domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[u.ID]; exists {
		return domain.ErrUserAlreadyExists
	}
	for _, existing := range r.items {
		if existing.Email == u.Email {
			return domain.ErrUserAlreadyExists
		}
	}
	u.Cart = u.Cart.Clone()
	r.items[u.ID] = u
	return nil
}

// SaveCart перезаписывает корзину пользователя.
func (r *userRepositoryInMemory) SaveCart(_ context.Context, userID string, cart domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.items[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.Cart = cart.Clone()
	r.items[userID] = user
	return nil
}

var _ domain.UserRepository = (*userRepositoryInMemory)(nil)
