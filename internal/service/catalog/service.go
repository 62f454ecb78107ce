// Package catalog отдаёт витрину магазина: список товаров и карточку товара.
package catalog

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Service — read-only доступ к каталогу для витрины.
type Service struct {
	products domain.ProductRepository
	logger   *log.Entry
}

// New создаёт сервис витрины.
func New(products domain.ProductRepository, logger *log.Logger) *Service {
	return &Service{
		products: products,
		logger:   logger.WithField("component", "catalog_service"),
	}
}

// ListProducts возвращает все товары каталога.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct возвращает карточку товара или ErrProductNotFound.
func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return product, nil
}
