package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func makeProduct(id, ownerID string, createdAt time.Time) domain.Product {
	return domain.Product{
		ID:          id,
		Title:       "Notebook",
		Description: "Plain dotted notebook",
		ImageURL:    "https://img.example/notebook.png",
		PriceMinor:  1000,
		OwnerID:     ownerID,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func TestProductRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	product := makeProduct("product-1", "user-1", time.Now().UTC())

	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	got, err := repo.FindByID(ctx, "product-1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got.Title != product.Title {
		t.Fatalf("expected title %s, got %s", product.Title, got.Title)
	}
}

func TestProductRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	product := makeProduct("product-1", "user-1", time.Now().UTC())

	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, product); !errors.Is(err, domain.ErrProductAlreadyExists) {
		t.Fatalf("expected ErrProductAlreadyExists, got %v", err)
	}
}

func TestProductRepository_FindByIDNotFound(t *testing.T) {
	repo := NewProductRepository()

	_, err := repo.FindByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepository_FindAllSortedByCreation(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	base := time.Now().UTC()

	_ = repo.Create(ctx, makeProduct("product-2", "user-1", base.Add(time.Minute)))
	_ = repo.Create(ctx, makeProduct("product-1", "user-1", base))

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
	if all[0].ID != "product-1" || all[1].ID != "product-2" {
		t.Fatalf("unexpected order: %s, %s", all[0].ID, all[1].ID)
	}
}

func TestProductRepository_FindByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	now := time.Now().UTC()

	_ = repo.Create(ctx, makeProduct("product-1", "user-1", now))
	_ = repo.Create(ctx, makeProduct("product-2", "user-2", now))

	owned, err := repo.FindByOwner(ctx, "user-1")
	if err != nil {
		t.Fatalf("find by owner failed: %v", err)
	}
	if len(owned) != 1 || owned[0].ID != "product-1" {
		t.Fatalf("expected only product-1, got %+v", owned)
	}
}

func TestProductRepository_UpdateMissing(t *testing.T) {
	repo := NewProductRepository()

	err := repo.Update(context.Background(), makeProduct("missing", "user-1", time.Now().UTC()))
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepository_DeleteOwned(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	now := time.Now().UTC()
	_ = repo.Create(ctx, makeProduct("product-1", "user-1", now))

	// Чужой владелец: товар остаётся, ошибки нет.
	if err := repo.DeleteOwned(ctx, "user-2", "product-1"); err != nil {
		t.Fatalf("delete by stranger must be silent, got %v", err)
	}
	if _, err := repo.FindByID(ctx, "product-1"); err != nil {
		t.Fatalf("product must survive stranger delete: %v", err)
	}

	// Несуществующий товар: тоже тишина.
	if err := repo.DeleteOwned(ctx, "user-1", "missing"); err != nil {
		t.Fatalf("delete of missing product must be silent, got %v", err)
	}

	// Настоящий владелец удаляет.
	if err := repo.DeleteOwned(ctx, "user-1", "product-1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, "product-1"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected product gone, got %v", err)
	}
}
