// Package cart реализует операции над корзиной, встроенной в документ пользователя.
package cart

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Service управляет корзиной: чтение каталога и перезапись корзины в профиле пользователя.
type Service struct {
	products domain.ProductRepository
	users    domain.UserRepository
	logger   *log.Entry
}

// New создаёт сервис корзины.
func New(products domain.ProductRepository, users domain.UserRepository, logger *log.Logger) *Service {
	return &Service{
		products: products,
		users:    users,
		logger:   logger.WithField("component", "cart_service"),
	}
}

// AddToCart увеличивает количество товара в корзине на единицу
// (или добавляет строку с количеством 1). Возвращает обновлённую корзину.
func (s *Service) AddToCart(ctx context.Context, userID, productID string) (domain.Cart, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return domain.Cart{}, fmt.Errorf("resolve product %s: %w", productID, err)
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load user %s: %w", userID, err)
	}

	user.Cart.Add(productID)
	if err := s.users.SaveCart(ctx, userID, user.Cart); err != nil {
		return domain.Cart{}, fmt.Errorf("save cart for user %s: %w", userID, err)
	}

	s.logger.WithFields(log.Fields{
		"user_id":    userID,
		"product_id": productID,
		"quantity":   user.Cart.Quantity(productID),
	}).Info("product added to cart")

	return user.Cart, nil
}

// RemoveFromCart убирает товар из корзины. Отсутствие товара в корзине не считается ошибкой,
// корзина всё равно перезаписывается.
func (s *Service) RemoveFromCart(ctx context.Context, userID, productID string) (domain.Cart, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load user %s: %w", userID, err)
	}

	user.Cart.Remove(productID)
	if err := s.users.SaveCart(ctx, userID, user.Cart); err != nil {
		return domain.Cart{}, fmt.Errorf("save cart for user %s: %w", userID, err)
	}

	return user.Cart, nil
}

// SetQuantity устанавливает количество товара в корзине.
// Количество <= 0 удаляет строку; товар, которого нет в корзине, игнорируется.
func (s *Service) SetQuantity(ctx context.Context, userID, productID string, quantity int32) (domain.Cart, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load user %s: %w", userID, err)
	}

	user.Cart.SetQuantity(productID, quantity)
	if err := s.users.SaveCart(ctx, userID, user.Cart); err != nil {
		return domain.Cart{}, fmt.Errorf("save cart for user %s: %w", userID, err)
	}

	return user.Cart, nil
}

// ViewCart возвращает корзину пользователя с полными карточками товаров.
// Строки с исчезнувшими из каталога товарами в выдачу не попадают.
func (s *Service) ViewCart(ctx context.Context, userID string) ([]domain.ResolvedCartLine, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", userID, err)
	}
	return s.ResolveLines(ctx, user.Cart)
}

// ResolveLines превращает ссылки корзины в строки с карточками товаров.
// Товары, удалённые из каталога после добавления в корзину, молча пропускаются:
// это ожидаемое состояние, а не сбой.
func (s *Service) ResolveLines(ctx context.Context, cart domain.Cart) ([]domain.ResolvedCartLine, error) {
	lines := make([]domain.ResolvedCartLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if domain.IsNotFound(err) {
				s.logger.WithField("product_id", item.ProductID).
					Warn("cart references vanished product, dropping line")
				continue
			}
			return nil, fmt.Errorf("resolve product %s: %w", item.ProductID, err)
		}
		lines = append(lines, domain.ResolvedCartLine{
			Product:  product,
			Quantity: item.Quantity,
		})
	}
	return lines, nil
}
