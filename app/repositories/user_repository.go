// Package repositories gives each collection an injected store interface and
// a MongoDB implementation. Raw driver results (*mongo.InsertOneResult and
// friends) are returned so route handlers can echo them to clients.
package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/methubd/clickdesire-ecom-server/app/models"
)

// UserRepository handles database operations for User.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
	Create(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error)
	All(ctx context.Context) ([]models.User, error)
	UpsertRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error)
}

type MongoUserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{col: db.Collection("users")}
}

// FindByEmail looks up a user by their email address.
// Returns mongo.ErrNoDocuments when no user matches.
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RoleByEmail returns the stored role for email, or "" when the user is
// absent or has no role set.
func (r *MongoUserRepository) RoleByEmail(ctx context.Context, email string) (string, error) {
	user, err := r.FindByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// Create persists a new user record.
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	return r.col.InsertOne(ctx, user)
}

// All returns every user.
func (r *MongoUserRepository) All(ctx context.Context) ([]models.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpsertRole sets the role on the user matching email, creating the record
// when absent.
func (r *MongoUserRepository) UpsertRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{"role": role}}
	return r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
}
