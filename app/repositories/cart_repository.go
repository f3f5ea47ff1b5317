package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/methubd/clickdesire-ecom-server/app/models"
)

// CartRepository handles database operations for CartItem.
type CartRepository interface {
	Create(ctx context.Context, item *models.CartItem) (*mongo.InsertOneResult, error)
	FindByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	DeleteByEmail(ctx context.Context, email string) (*mongo.DeleteResult, error)
}

type MongoCartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{col: db.Collection("cart-items")}
}

func (r *MongoCartRepository) Create(ctx context.Context, item *models.CartItem) (*mongo.InsertOneResult, error) {
	return r.col.InsertOne(ctx, item)
}

func (r *MongoCartRepository) FindByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cursor, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoCartRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.col.DeleteOne(ctx, bson.M{"_id": id})
}

// DeleteByEmail removes every cart item for email. Idempotent: deleting an
// already-empty cart succeeds with a zero count.
func (r *MongoCartRepository) DeleteByEmail(ctx context.Context, email string) (*mongo.DeleteResult, error) {
	return r.col.DeleteMany(ctx, bson.M{"email": email})
}
