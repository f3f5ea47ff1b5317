package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/methubd/clickdesire-ecom-server/app/controllers"
	"github.com/methubd/clickdesire-ecom-server/app/models"
	"github.com/methubd/clickdesire-ecom-server/pkg/router"
)

func newCartRouter(carts *memCartRepo, products *memProductRepo) *router.Router {
	ctrl := controllers.NewCartController(carts, products)

	r := router.New()
	r.Post("/cart-items", "", ctrl.Create)
	r.Get("/added-cart-items/{email}", "", ctrl.ListByEmail)
	r.Delete("/added-cart-items/{id}", "", ctrl.Delete)
	return r
}

func TestAddCartItem(t *testing.T) {
	products := newMemProductRepo()
	p := models.Product{Name: "Mug", Price: 8.5}
	_, err := products.Create(context.Background(), &p)
	require.NoError(t, err)

	carts := &memCartRepo{}
	r := newCartRouter(carts, products)

	rec, _ := doJSON(t, r.Handler(), "POST", "/cart-items",
		models.CartItem{Email: "a@x.com", ProductID: p.ID, Quantity: 2}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	items, err := carts.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, p.ID, items[0].ProductID)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	r := newCartRouter(&memCartRepo{}, newMemProductRepo())

	rec, _ := doJSON(t, r.Handler(), "POST", "/cart-items",
		models.CartItem{Email: "a@x.com", ProductID: primitive.NewObjectID()}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCartItemsByEmail(t *testing.T) {
	carts := &memCartRepo{}
	for _, email := range []string{"a@x.com", "a@x.com", "b@x.com"} {
		_, err := carts.Create(context.Background(), &models.CartItem{Email: email, ProductID: primitive.NewObjectID()})
		require.NoError(t, err)
	}

	r := newCartRouter(carts, newMemProductRepo())
	rec, env := doJSON(t, r.Handler(), "GET", "/added-cart-items/a@x.com", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.CartItem
	decodeData(t, env, &got)
	assert.Len(t, got, 2)
}

func TestDeleteCartItem(t *testing.T) {
	carts := &memCartRepo{}
	item := models.CartItem{Email: "a@x.com", ProductID: primitive.NewObjectID()}
	_, err := carts.Create(context.Background(), &item)
	require.NoError(t, err)

	r := newCartRouter(carts, newMemProductRepo())
	rec, _ := doJSON(t, r.Handler(), "DELETE", "/added-cart-items/"+item.ID.Hex(), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	items, err := carts.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteCartItemInvalidID(t *testing.T) {
	r := newCartRouter(&memCartRepo{}, newMemProductRepo())

	rec, _ := doJSON(t, r.Handler(), "DELETE", "/added-cart-items/zzz", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
