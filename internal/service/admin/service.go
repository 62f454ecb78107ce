// Package admin реализует управление каталогом с проверкой владельца.
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Service выполняет операции владельца над товарами каталога.
type Service struct {
	products domain.ProductRepository
	logger   *log.Entry
	now      func() time.Time
}

// New создаёт админ-сервис каталога.
func New(products domain.ProductRepository, logger *log.Logger) *Service {
	return &Service{
		products: products,
		logger:   logger.WithField("component", "admin_service"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateProduct валидирует ввод и сохраняет новый товар с ownerID создателя.
// При нарушениях возвращает *domain.ValidationError со всеми сообщениями.
func (s *Service) CreateProduct(ctx context.Context, ownerID string, in domain.ProductInput) (domain.Product, error) {
	if violations := in.Validate(); len(violations) > 0 {
		return domain.Product{}, &domain.ValidationError{Violations: violations}
	}

	now := s.now()
	product := domain.Product{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		PriceMinor:  in.PriceMinor,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}

	s.logger.WithFields(log.Fields{
		"product_id": product.ID,
		"owner_id":   ownerID,
	}).Info("product created")

	return product, nil
}

// UpdateProduct обновляет товар после валидации и проверки владельца.
// Чужой товар — ErrNotOwner; транспорт превращает её в тихий no-op.
func (s *Service) UpdateProduct(ctx context.Context, actorID, productID string, in domain.ProductInput) (domain.Product, error) {
	if violations := in.Validate(); len(violations) > 0 {
		return domain.Product{}, &domain.ValidationError{Violations: violations}
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("load product %s: %w", productID, err)
	}
	if product.OwnerID != actorID {
		s.logger.WithFields(log.Fields{
			"product_id": productID,
			"actor_id":   actorID,
			"owner_id":   product.OwnerID,
		}).Warn("update rejected: acting user is not the owner")
		return domain.Product{}, domain.ErrNotOwner
	}

	product.Apply(in, s.now())
	if err := s.products.Update(ctx, product); err != nil {
		return domain.Product{}, fmt.Errorf("update product %s: %w", productID, err)
	}

	return product, nil
}

// DeleteProduct удаляет товар, если он принадлежит actorID.
// Чужой или отсутствующий товар удалению не подлежит, но наружу это неотличимо от успеха.
func (s *Service) DeleteProduct(ctx context.Context, actorID, productID string) error {
	if err := s.products.DeleteOwned(ctx, actorID, productID); err != nil {
		return fmt.Errorf("delete product %s: %w", productID, err)
	}
	return nil
}

// ListProducts возвращает товары, принадлежащие actorID.
func (s *Service) ListProducts(ctx context.Context, actorID string) ([]domain.Product, error) {
	products, err := s.products.FindByOwner(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("list products of %s: %w", actorID, err)
	}
	return products, nil
}
