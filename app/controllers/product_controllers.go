package controllers

import (
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/methubd/clickdesire-ecom-server/app/models"
	"github.com/methubd/clickdesire-ecom-server/app/repositories"
	"github.com/methubd/clickdesire-ecom-server/pkg/bind"
	"github.com/methubd/clickdesire-ecom-server/pkg/cache"
	"github.com/methubd/clickdesire-ecom-server/pkg/response"
	"github.com/methubd/clickdesire-ecom-server/pkg/router"
)

const (
	productCacheKey = "products:all"
	productCacheTTL = 30 * time.Second
)

type ProductController struct {
	products repositories.ProductRepository
}

func NewProductController(products repositories.ProductRepository) *ProductController {
	return &ProductController{products: products}
}

// Create inserts a new product and invalidates the listing cache.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := bind.JSON(r, &product); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.products.Create(r.Context(), &product)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not create product")
		return
	}

	_ = cache.Del(productCacheKey)
	response.Success(w, result)
}

// List returns the whole catalogue, served from the cache when warm.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	var products []models.Product
	if cache.Get(productCacheKey, &products) {
		response.Success(w, products)
		return
	}

	products, err := c.products.All(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list products")
		return
	}

	_ = cache.Set(productCacheKey, products, productCacheTTL)
	response.Success(w, products)
}

// Show returns one product by id. A malformed id is a 400, never a 200.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(router.Param(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := c.products.FindByID(r.Context(), id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Success(w, nil)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	response.Success(w, product)
}
