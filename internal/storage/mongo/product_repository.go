package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// productRepository хранит каталог в коллекции products.
type productRepository struct {
	collection *mongo.Collection
}

// NewProductRepository создаёт mongo-репозиторий каталога.
func NewProductRepository(store *Store) *productRepository {
	return &productRepository{collection: store.collection(collectionProducts)}
}

func (r *productRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	var doc productDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("find product %s: %w", id, err)
	}
	return doc.toDomain(), nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *productRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Product, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID})
}

func (r *productRepository) find(ctx context.Context, filter bson.M) ([]domain.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	result := make([]domain.Product, 0, len(docs))
	for _, doc := range docs {
		result = append(result, doc.toDomain())
	}
	return result, nil
}

func (r *productRepository) Create(ctx context.Context, p domain.Product) error {
	if _, err := r.collection.InsertOne(ctx, toProductDoc(p)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrProductAlreadyExists
		}
		return fmt.Errorf("insert product %s: %w", p.ID, err)
	}
	return nil
}

func (r *productRepository) Update(ctx context.Context, p domain.Product) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": p.ID}, toProductDoc(p))
	if err != nil {
		return fmt.Errorf("update product %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// DeleteOwned удаляет документ только при совпадении владельца.
// DeletedCount не проверяется: отсутствие пары (id, owner) наружу неотличимо от успеха.
func (r *productRepository) DeleteOwned(ctx context.Context, ownerID, productID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": productID, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete product %s: %w", productID, err)
	}
	return nil
}

var _ domain.ProductRepository = (*productRepository)(nil)
