package seeders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/methubd/clickdesire-ecom-server/app/models"
	"github.com/methubd/clickdesire-ecom-server/app/repositories"
)

func init() {
	Register("users", SeedUsers)
	Register("products", SeedProducts)
}

// SeedUsers upserts a bootstrap admin so the GET /users gate is usable on a
// fresh database.
func SeedUsers(ctx context.Context, db *mongo.Database) error {
	users := repositories.NewUserRepository(db)
	_, err := users.UpsertRole(ctx, "admin@clickdesire.dev", models.RoleAdmin)
	return err
}

// SeedProducts inserts a small sample catalogue, keyed by name so reruns
// don't duplicate.
func SeedProducts(ctx context.Context, db *mongo.Database) error {
	col := db.Collection("products")

	samples := []models.Product{
		{Name: "Wireless Mouse", Description: "2.4 GHz optical mouse", Price: 19.99, Stock: 120, Category: "electronics"},
		{Name: "Mechanical Keyboard", Description: "87-key, brown switches", Price: 74.50, Stock: 35, Category: "electronics"},
		{Name: "Canvas Tote", Description: "Heavy-duty cotton tote bag", Price: 12.00, Stock: 200, Category: "accessories"},
	}

	for _, p := range samples {
		filter := bson.M{"name": p.Name}
		update := bson.M{"$setOnInsert": p}
		if _, err := col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return err
		}
	}
	return nil
}
