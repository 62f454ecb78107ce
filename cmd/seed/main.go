// Утилита наполнения MongoDB демо-данными: пользователь-владелец и несколько товаров.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	mongostore "github.com/vladislavdragonenkov/storefront/internal/storage/mongo"
)

func main() {
	uri := flag.String("mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI")
	database := flag.String("mongo-db", "storefront", "MongoDB database name")
	ownerEmail := flag.String("owner-email", "owner@example.com", "email of the seeded catalog owner")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger := log.WithField("component", "seed")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := mongostore.Open(ctx, *uri, *database)
	if err != nil {
		logger.WithError(err).Fatal("не удалось подключиться к MongoDB")
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.WithError(err).Warn("failed to close mongo store")
		}
	}()

	if err := store.EnsureIndexes(ctx); err != nil {
		logger.WithError(err).Fatal("не удалось создать индексы")
	}

	users := mongostore.NewUserRepository(store)
	products := mongostore.NewProductRepository(store)

	now := time.Now().UTC()
	owner := domain.User{
		ID:        uuid.NewString(),
		Email:     *ownerEmail,
		Name:      "Demo Owner",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := users.Create(ctx, owner); err != nil {
		logger.WithError(err).Fatal("не удалось создать пользователя-владельца")
	}
	logger.WithFields(log.Fields{"user_id": owner.ID, "email": owner.Email}).Info("owner created")

	demo := []domain.ProductInput{
		{Title: "Dotted notebook", Description: "A5 notebook, 120 pages of dotted paper", ImageURL: "https://img.example/notebook.png", PriceMinor: 1290},
		{Title: "Gel pen", Description: "Black gel pen with 0.5mm tip", ImageURL: "https://img.example/pen.png", PriceMinor: 350},
		{Title: "Desk lamp", Description: "Warm-light desk lamp with USB charging", ImageURL: "https://img.example/lamp.png", PriceMinor: 5990},
	}
	for _, in := range demo {
		product := domain.Product{
			ID:          uuid.NewString(),
			Title:       in.Title,
			Description: in.Description,
			ImageURL:    in.ImageURL,
			PriceMinor:  in.PriceMinor,
			OwnerID:     owner.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := products.Create(ctx, product); err != nil {
			logger.WithError(err).WithField("title", in.Title).Fatal("не удалось создать товар")
		}
		logger.WithFields(log.Fields{"product_id": product.ID, "title": product.Title}).Info("product created")
	}

	logger.Info("демо-данные загружены")
}
