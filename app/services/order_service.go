package services

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/methubd/clickdesire-ecom-server/app/models"
	"github.com/methubd/clickdesire-ecom-server/app/repositories"
	"github.com/methubd/clickdesire-ecom-server/pkg/logger"
)

// OrderService owns order placement, the one multi-step write in the system.
type OrderService struct {
	orders repositories.OrderRepository
	carts  repositories.CartRepository
}

func NewOrderService(orders repositories.OrderRepository, carts repositories.CartRepository) *OrderService {
	return &OrderService{orders: orders, carts: carts}
}

// PlacementResult reports both phases of a placement to the client.
type PlacementResult struct {
	Order            *mongo.InsertOneResult `json:"order"`
	ClearedCartItems int64                  `json:"cleared_cart_items"`
}

// Place runs the two-phase placement: insert the order, then clear the
// customer's cart. Partial-failure policy: the order is inserted first so a
// crash or cart-delete failure never loses a placed order; stale cart items
// left behind are removed by the next successful placement for the same
// email, since DeleteByEmail is idempotent.
func (s *OrderService) Place(ctx context.Context, order *models.Order) (*PlacementResult, error) {
	if order.Status == "" {
		order.Status = models.StatusPending
	}

	res, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	del, err := s.carts.DeleteByEmail(ctx, order.Email)
	if err != nil {
		logger.WithCtx(ctx).Error("cart cleanup failed after order insert",
			"email", order.Email,
			"order_id", res.InsertedID,
			"error", err,
		)
		return &PlacementResult{Order: res}, nil
	}

	return &PlacementResult{Order: res, ClearedCartItems: del.DeletedCount}, nil
}
