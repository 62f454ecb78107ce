package domain_test

import (
	"testing"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// helper для создания товара каталога.
func makeProduct() domain.Product {
	now := time.Now().UTC()
	return domain.Product{
		ID:          "product-1",
		Title:       "Notebook",
		Description: "Plain dotted notebook",
		ImageURL:    "https://img.example/notebook.png",
		PriceMinor:  1000,
		OwnerID:     "user-admin",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestNewOrder_ComputesAmount(t *testing.T) {
	now := time.Now().UTC()
	product := makeProduct()
	lines := []domain.OrderLine{
		domain.NewOrderLine(product, 3),
		{ProductID: "product-2", Title: "Pen", PriceMinor: 500, Qty: 1},
	}

	order := domain.NewOrder("order-1", "user-1", "user@example.com", lines, now)

	if order.AmountMinor != 3500 {
		t.Fatalf("expected amount 3500, got %d", order.AmountMinor)
	}
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestNewOrder_EmptyLinesAllowed(t *testing.T) {
	order := domain.NewOrder("order-1", "user-1", "user@example.com", nil, time.Now().UTC())

	if order.AmountMinor != 0 {
		t.Fatalf("expected zero amount, got %d", order.AmountMinor)
	}
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("empty order must be valid, got %v", errs)
	}
}

func TestNewOrderLine_IsValueCopy(t *testing.T) {
	product := makeProduct()
	line := domain.NewOrderLine(product, 2)

	// Правки товара после снятия копии не должны отражаться на позиции.
	product.Title = "Renamed"
	product.PriceMinor = 9999

	if line.Title != "Notebook" {
		t.Fatalf("expected frozen title Notebook, got %s", line.Title)
	}
	if line.PriceMinor != 1000 {
		t.Fatalf("expected frozen price 1000, got %d", line.PriceMinor)
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
	}{
		{
			name: "no user",
			mut: func(o *domain.Order) {
				o.UserID = ""
			},
		},
		{
			name: "no email",
			mut: func(o *domain.Order) {
				o.Email = ""
			},
		},
		{
			name: "qty invalid",
			mut: func(o *domain.Order) {
				o.Lines[0].Qty = 0
			},
		},
		{
			name: "price invalid",
			mut: func(o *domain.Order) {
				o.Lines[0].PriceMinor = -5
			},
		},
		{
			name: "amount mismatch",
			mut: func(o *domain.Order) {
				o.AmountMinor = 999
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := domain.NewOrder(
				"order-1",
				"user-1",
				"user@example.com",
				[]domain.OrderLine{domain.NewOrderLine(makeProduct(), 2)},
				time.Now().UTC(),
			)
			tc.mut(&order)

			if len(order.ValidateInvariants()) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
		})
	}
}
