package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// productRepositoryInMemory — простая in-memory реализация ProductRepository.
type productRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Product
}

// NewProductRepository возвращает in-memory каталог для локальной разработки и тестов.
func NewProductRepository() *productRepositoryInMemory {
	return &productRepositoryInMemory{
		items: make(map[string]domain.Product),
	}
}

// FindByID возвращает товар или ErrProductNotFound, если его нет.
func (r *productRepositoryInMemory) FindByID(_ context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

// FindAll возвращает каталог, отсортированный по дате создания (старые первыми).
func (r *productRepositoryInMemory) FindAll(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.items))
	for _, product := range r.items {
		result = append(result, product)
	}
	sortProducts(result)
	return result, nil
}

// FindByOwner возвращает товары, созданные указанным пользователем.
func (r *productRepositoryInMemory) FindByOwner(_ context.Context, ownerID string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.items))
	for _, product := range r.items {
		if product.OwnerID != ownerID {
			continue
		}
		result = append(result, product)
	}
	sortProducts(result)
	return result, nil
}

// Create сохраняет новый товар, если ID ещё не занят.
func (r *productRepositoryInMemory) Create(_ context.Context, p domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[p.ID]; exists {
		return domain.ErrProductAlreadyExists
	}
	r.items[p.ID] = p
	return nil
}

// Update перезаписывает товар по ID или возвращает ErrProductNotFound.
func (r *productRepositoryInMemory) Update(_ context.Context, p domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.items[p.ID] = p
	return nil
}

// DeleteOwned удаляет товар, только если он принадлежит ownerID.
// Отсутствие пары (id, owner) — не ошибка.
func (r *productRepositoryInMemory) DeleteOwned(_ context.Context, ownerID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.items[productID]
	if !ok || product.OwnerID != ownerID {
		return nil
	}
	delete(r.items, productID)
	return nil
}

func sortProducts(products []domain.Product) {
	sort.Slice(products, func(i, j int) bool {
		if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		}
		return products[i].ID < products[j].ID
	})
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
