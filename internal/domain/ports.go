package domain

import (
	"context"
	"time"
)

// ProductRepository описывает требования к хранилищу каталога.
type ProductRepository interface {
	// FindByID возвращает товар или ErrProductNotFound, если его нет.
	FindByID(ctx context.Context, id string) (Product, error)
	// FindAll возвращает весь каталог в стабильном порядке (по дате создания).
	FindAll(ctx context.Context) ([]Product, error)
	// FindByOwner возвращает товары, созданные пользователем.
	FindByOwner(ctx context.Context, ownerID string) ([]Product, error)
	// Create сохраняет новый товар. Возвращает ошибку, если ID уже занят.
	Create(ctx context.Context, p Product) error
	// Update перезаписывает поля товара по ID или возвращает ErrProductNotFound.
	Update(ctx context.Context, p Product) error
	// DeleteOwned удаляет товар, только если он принадлежит ownerID.
	// Отсутствие такой пары (id, owner) — не ошибка: наружу поведение неотличимо от успеха.
	DeleteOwned(ctx context.Context, ownerID, productID string) error
}

// UserRepository описывает хранилище пользователей с встроенной корзиной.
type UserRepository interface {
	// Get возвращает пользователя вместе с корзиной или ErrUserNotFound.
	Get(ctx context.Context, id string) (User, error)
	// Create сохраняет нового пользователя; дубликат ID или email — ErrUserAlreadyExists.
	Create(ctx context.Context, u User) error
	// SaveCart перезаписывает корзину как вложенный документ пользователя.
	SaveCart(ctx context.Context, userID string, cart Cart) error
}

// OrderRepository описывает хранилище заказов. Обновления не предусмотрены:
// заказ неизменяем после создания, и порт это закрепляет.
type OrderRepository interface {
	// Create сохраняет новый заказ. Возвращает ошибку, если запись с таким ID уже существует.
	Create(ctx context.Context, order Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(ctx context.Context, id string) (Order, error)
	// ListByUser возвращает заказы пользователя, свежие первыми, с опциональным лимитом.
	ListByUser(ctx context.Context, userID string, limit int) ([]Order, error)
}

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(event OutboxMessage) error
}

// OutboxRepository позволяет сохранять события для последующей публикации.
type OutboxRepository interface {
	Enqueue(ctx context.Context, msg OutboxMessage) (OutboxMessage, error)
	PullPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	Stats(ctx context.Context) (OutboxStats, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

// OutboxMessage хранит данные для публикуемого события.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

// OutboxStats описывает текущее состояние backlog transactional outbox.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}
