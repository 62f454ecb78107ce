package domain_test

import (
	"testing"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestCartAdd_IncrementsExistingItem(t *testing.T) {
	cart := domain.Cart{}

	cart.Add("product-1")
	cart.Add("product-1")

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 cart item, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
}

func TestCartAdd_KeepsInsertionOrder(t *testing.T) {
	cart := domain.Cart{}

	cart.Add("product-1")
	cart.Add("product-2")
	cart.Add("product-1")

	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 cart items, got %d", len(cart.Items))
	}
	if cart.Items[0].ProductID != "product-1" || cart.Items[1].ProductID != "product-2" {
		t.Fatalf("unexpected item order: %+v", cart.Items)
	}
}

func TestCartRemove_AbsentProductIsNoop(t *testing.T) {
	cart := domain.Cart{}
	cart.Add("product-1")

	cart.Remove("product-2")

	if len(cart.Items) != 1 {
		t.Fatalf("expected cart unchanged, got %+v", cart.Items)
	}
}

func TestCartRemove_DeletesItem(t *testing.T) {
	cart := domain.Cart{}
	cart.Add("product-1")
	cart.Add("product-2")

	cart.Remove("product-1")

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 cart item, got %d", len(cart.Items))
	}
	if cart.Items[0].ProductID != "product-2" {
		t.Fatalf("expected product-2 to survive, got %s", cart.Items[0].ProductID)
	}
}

func TestCartSetQuantity(t *testing.T) {
	cases := []struct {
		name     string
		quantity int32
		want     int32
		removed  bool
	}{
		{name: "positive updates", quantity: 5, want: 5},
		{name: "zero removes", quantity: 0, removed: true},
		{name: "negative removes", quantity: -3, removed: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cart := domain.Cart{}
			cart.Add("product-1")

			cart.SetQuantity("product-1", tc.quantity)

			if tc.removed {
				if !cart.IsEmpty() {
					t.Fatalf("expected empty cart, got %+v", cart.Items)
				}
				return
			}
			if got := cart.Quantity("product-1"); got != tc.want {
				t.Fatalf("expected quantity %d, got %d", tc.want, got)
			}
		})
	}
}

func TestCartSetQuantity_AbsentProductIsNoop(t *testing.T) {
	cart := domain.Cart{}
	cart.Add("product-1")

	cart.SetQuantity("product-2", 7)

	if len(cart.Items) != 1 || cart.Items[0].ProductID != "product-1" {
		t.Fatalf("expected cart unchanged, got %+v", cart.Items)
	}
}

func TestCartClear(t *testing.T) {
	cart := domain.Cart{}
	cart.Add("product-1")
	cart.Add("product-2")

	cart.Clear()

	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart after clear, got %+v", cart.Items)
	}
}

func TestCartClone_IsIndependent(t *testing.T) {
	cart := domain.Cart{}
	cart.Add("product-1")

	clone := cart.Clone()
	clone.Add("product-1")

	if cart.Quantity("product-1") != 1 {
		t.Fatalf("mutating clone must not touch the original, got qty %d", cart.Quantity("product-1"))
	}
	if clone.Quantity("product-1") != 2 {
		t.Fatalf("expected clone qty 2, got %d", clone.Quantity("product-1"))
	}
}
