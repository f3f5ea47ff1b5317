package controllers

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/methubd/clickdesire-ecom-server/app/models"
	"github.com/methubd/clickdesire-ecom-server/app/repositories"
	"github.com/methubd/clickdesire-ecom-server/pkg/bind"
	"github.com/methubd/clickdesire-ecom-server/pkg/response"
	"github.com/methubd/clickdesire-ecom-server/pkg/router"
)

type CartController struct {
	carts    repositories.CartRepository
	products repositories.ProductRepository
}

func NewCartController(carts repositories.CartRepository, products repositories.ProductRepository) *CartController {
	return &CartController{carts: carts, products: products}
}

// Create adds a cart item. The referenced product must exist.
func (c *CartController) Create(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := bind.JSON(r, &item); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if item.Email == "" {
		response.Error(w, http.StatusBadRequest, "email is required")
		return
	}
	if item.ProductID.IsZero() {
		response.Error(w, http.StatusBadRequest, "product_id is required")
		return
	}

	_, err := c.products.FindByID(r.Context(), item.ProductID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "product lookup failed")
		return
	}

	result, err := c.carts.Create(r.Context(), &item)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not add cart item")
		return
	}
	response.Success(w, result)
}

// ListByEmail returns the cart items for the path email.
func (c *CartController) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := router.Param(r, "email")

	items, err := c.carts.FindByEmail(r.Context(), email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list cart items")
		return
	}
	response.Success(w, items)
}

// Delete removes one cart item by id. A malformed id is a 400.
func (c *CartController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(router.Param(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid cart item id")
		return
	}

	result, err := c.carts.DeleteByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not delete cart item")
		return
	}
	response.Success(w, result)
}
