package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// userRepository хранит пользователей вместе с корзиной в коллекции users.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository создаёт mongo-репозиторий пользователей.
func NewUserRepository(store *Store) *userRepository {
	return &userRepository{collection: store.collection(collectionUsers)}
}

func (r *userRepository) Get(ctx context.Context, id string) (domain.User, error) {
	var doc userDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("find user %s: %w", id, err)
	}
	return doc.toDomain(), nil
}

func (r *userRepository) Create(ctx context.Context, u domain.User) error {
	if _, err := r.collection.InsertOne(ctx, toUserDoc(u)); err != nil {
		// Дубликат по _id или по уникальному индексу email.
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user %s: %w", u.ID, err)
	}
	return nil
}

// SaveCart перезаписывает вложенный массив корзины одним $set.
func (r *userRepository) SaveCart(ctx context.Context, userID string, cart domain.Cart) error {
	update := bson.M{
		"$set": bson.M{
			"cart_items": toCartItemDocs(cart),
			"updated_at": time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("save cart of user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

var _ domain.UserRepository = (*userRepository)(nil)
