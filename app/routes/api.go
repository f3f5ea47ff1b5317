package routes

import (
	"net/http"

	"github.com/methubd/clickdesire-ecom-server/app/controllers"
	"github.com/methubd/clickdesire-ecom-server/pkg/middleware"
	"github.com/methubd/clickdesire-ecom-server/pkg/router"
)

// Controllers bundles everything RegisterAPI needs. Built in
// internal/server once the database connection exists.
type Controllers struct {
	Auth     *controllers.AuthController
	Users    *controllers.UserController
	Products *controllers.ProductController
	Carts    *controllers.CartController
	Orders   *controllers.OrderController

	// Roles backs the admin gate on GET /users.
	Roles middleware.RoleFinder
}

func RegisterAPI(r *router.Router, c Controllers) {
	r.Get("/", "home", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ClickDesire e-commerce server"))
	})

	r.Post("/jwt", "auth.issue", c.Auth.Issue)

	r.Post("/orders", "orders.place", c.Orders.Place)
	r.Get("/pending-orders", "orders.pending", c.Orders.Pending, middleware.RequireAuth)

	r.Post("/products", "products.create", c.Products.Create, middleware.RequireAuth)
	r.Get("/products", "products.list", c.Products.List)
	r.Get("/products/{id}", "products.show", c.Products.Show)

	r.Post("/cart-items", "cart.create", c.Carts.Create, middleware.RequireAuth)
	r.Get("/added-cart-items/{email}", "cart.list", c.Carts.ListByEmail)
	r.Delete("/added-cart-items/{id}", "cart.delete", c.Carts.Delete)

	r.Post("/users", "users.register", c.Users.Register)
	r.Get("/users", "users.list", c.Users.List, middleware.RequireAuth, middleware.RequireAdmin(c.Roles))
	r.Put("/users/{email}", "users.setRole", c.Users.SetRole, middleware.RequireAuth)
	r.Get("/users/admin/{email}", "users.isAdmin", c.Users.IsAdmin, middleware.RequireAuth)
	r.Get("/users/vendor/{email}", "users.isVendor", c.Users.IsVendor, middleware.RequireAuth)
}
