package admin

import (
	"context"
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func newService(t *testing.T) (*Service, domain.ProductRepository) {
	t.Helper()

	logger := log.New()
	logger.SetLevel(log.PanicLevel)

	products := memory.NewProductRepository()
	return New(products, logger), products
}

func validInput() domain.ProductInput {
	return domain.ProductInput{
		Title:       "Notebook",
		Description: "Plain dotted notebook",
		ImageURL:    "https://img.example/notebook.png",
		PriceMinor:  1000,
	}
}

func TestCreateProduct_SetsOwnerAndID(t *testing.T) {
	ctx := context.Background()
	service, products := newService(t)

	created, err := service.CreateProduct(ctx, "user-1", validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated product ID")
	}
	if created.OwnerID != "user-1" {
		t.Fatalf("expected owner user-1, got %s", created.OwnerID)
	}

	stored, err := products.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("product not persisted: %v", err)
	}
	if stored.Title != "Notebook" {
		t.Fatalf("unexpected stored title %s", stored.Title)
	}
}

func TestCreateProduct_ValidationErrorListsAllViolations(t *testing.T) {
	service, _ := newService(t)

	in := domain.ProductInput{Title: "ab", Description: "abc", PriceMinor: -1}
	_, err := service.CreateProduct(context.Background(), "user-1", in)

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Violations) != 4 {
		t.Fatalf("expected 4 violations, got %d", len(vErr.Violations))
	}
	if !errors.Is(vErr.Violations[0], domain.ErrTitleTooShort) {
		t.Fatalf("expected title violation first, got %v", vErr.Violations[0])
	}
}

func TestUpdateProduct_OwnerSucceeds(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)
	created, _ := service.CreateProduct(ctx, "user-1", validInput())

	in := validInput()
	in.Title = "Notebook v2"
	in.PriceMinor = 1500

	updated, err := service.UpdateProduct(ctx, "user-1", created.ID, in)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Notebook v2" || updated.PriceMinor != 1500 {
		t.Fatalf("unexpected updated product: %+v", updated)
	}
	if updated.OwnerID != "user-1" {
		t.Fatalf("owner must not change on update, got %s", updated.OwnerID)
	}
}

func TestUpdateProduct_StrangerGetsErrNotOwner(t *testing.T) {
	ctx := context.Background()
	service, products := newService(t)
	created, _ := service.CreateProduct(ctx, "user-1", validInput())

	in := validInput()
	in.Title = "Hijacked"

	_, err := service.UpdateProduct(ctx, "user-2", created.ID, in)
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	stored, _ := products.FindByID(ctx, created.ID)
	if stored.Title != "Notebook" {
		t.Fatalf("stranger update must not persist, got title %s", stored.Title)
	}
}

func TestDeleteProduct_StrangerIsSilentNoop(t *testing.T) {
	ctx := context.Background()
	service, products := newService(t)
	created, _ := service.CreateProduct(ctx, "user-1", validInput())

	if err := service.DeleteProduct(ctx, "user-2", created.ID); err != nil {
		t.Fatalf("stranger delete must look like success, got %v", err)
	}
	if _, err := products.FindByID(ctx, created.ID); err != nil {
		t.Fatalf("product must survive stranger delete: %v", err)
	}

	if err := service.DeleteProduct(ctx, "user-1", created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := products.FindByID(ctx, created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected product gone, got %v", err)
	}
}

func TestListProducts_OnlyOwned(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	_, _ = service.CreateProduct(ctx, "user-1", validInput())
	_, _ = service.CreateProduct(ctx, "user-2", validInput())

	owned, err := service.ListProducts(ctx, "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(owned) != 1 || owned[0].OwnerID != "user-1" {
		t.Fatalf("expected only user-1 products, got %+v", owned)
	}
}
