package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
	mongostore "github.com/vladislavdragonenkov/storefront/internal/storage/mongo"
)

// Dependencies содержит хранилища, от которых зависят сервисы витрины.
type Dependencies struct {
	Products domain.ProductRepository
	Users    domain.UserRepository
	Orders   domain.OrderRepository
	Outbox   domain.OutboxRepository

	// Store заполнен только при mongo-драйвере; используется для ping и закрытия.
	Store *mongostore.Store

	Logger *log.Entry
}

// initRuntimeDependencies собирает хранилища по выбранному драйверу.
func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	switch cfg.StorageDriver {
	case StorageDriverMemory:
		logger.Info("using in-memory storage")
		return &Dependencies{
			Products: memory.NewProductRepository(),
			Users:    memory.NewUserRepository(),
			Orders:   memory.NewOrderRepository(),
			Outbox:   memory.NewOutboxRepository(),
			Logger:   logger,
		}, nil

	case StorageDriverMongo:
		store, err := mongostore.Open(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, fmt.Errorf("open mongo storage: %w", err)
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			return nil, fmt.Errorf("ensure mongo indexes: %w", err)
		}
		logger.WithField("database", cfg.MongoDB).Info("using mongo storage")
		return &Dependencies{
			Products: mongostore.NewProductRepository(store),
			Users:    mongostore.NewUserRepository(store),
			Orders:   mongostore.NewOrderRepository(store),
			Outbox:   mongostore.NewOutboxRepository(store),
			Store:    store,
			Logger:   logger,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// Close освобождает ресурсы хранилища.
func (d *Dependencies) Close(ctx context.Context) error {
	if d.Store == nil {
		return nil
	}
	return d.Store.Close(ctx)
}
