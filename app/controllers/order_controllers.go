package controllers

import (
	"net/http"

	"github.com/methubd/clickdesire-ecom-server/app/models"
	"github.com/methubd/clickdesire-ecom-server/app/repositories"
	"github.com/methubd/clickdesire-ecom-server/app/services"
	"github.com/methubd/clickdesire-ecom-server/pkg/auth"
	"github.com/methubd/clickdesire-ecom-server/pkg/bind"
	"github.com/methubd/clickdesire-ecom-server/pkg/middleware"
	"github.com/methubd/clickdesire-ecom-server/pkg/response"
)

type OrderController struct {
	service *services.OrderService
	orders  repositories.OrderRepository
}

func NewOrderController(service *services.OrderService, orders repositories.OrderRepository) *OrderController {
	return &OrderController{service: service, orders: orders}
}

// Place creates an order and clears the customer's cart.
func (c *OrderController) Place(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := bind.JSON(r, &order); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if order.Email == "" {
		response.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	result, err := c.service.Place(r.Context(), &order)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not place order")
		return
	}
	response.Success(w, result)
}

// Pending lists the caller's orders still in "Pending" status. The email
// comes from the verified token claims, not the request.
func (c *OrderController) Pending(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	email := auth.Email(claims)

	orders, err := c.orders.FindPendingByEmail(r.Context(), email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list orders")
		return
	}
	response.Success(w, orders)
}
