package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/methubd/clickdesire-ecom-server/app/models"
)

// OrderRepository handles database operations for Order.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (*mongo.InsertOneResult, error)
	FindPendingByEmail(ctx context.Context, email string) ([]models.Order, error)
}

type MongoOrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{col: db.Collection("orders")}
}

func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) (*mongo.InsertOneResult, error) {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	return r.col.InsertOne(ctx, order)
}

func (r *MongoOrderRepository) FindPendingByEmail(ctx context.Context, email string) ([]models.Order, error) {
	cursor, err := r.col.Find(ctx, bson.M{"status": models.StatusPending, "email": email})
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
