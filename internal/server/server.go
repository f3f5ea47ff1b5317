// Package server boots the HTTP process: config, database, cache, routes,
// and a signal-aware graceful shutdown that tears the Mongo client down.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/methubd/clickdesire-ecom-server/app/controllers"
	"github.com/methubd/clickdesire-ecom-server/app/repositories"
	"github.com/methubd/clickdesire-ecom-server/app/routes"
	"github.com/methubd/clickdesire-ecom-server/app/services"
	"github.com/methubd/clickdesire-ecom-server/config"
	"github.com/methubd/clickdesire-ecom-server/pkg/cache"
	"github.com/methubd/clickdesire-ecom-server/pkg/database"
	"github.com/methubd/clickdesire-ecom-server/pkg/logger"
	"github.com/methubd/clickdesire-ecom-server/pkg/metrics"
	"github.com/methubd/clickdesire-ecom-server/pkg/middleware"
	"github.com/methubd/clickdesire-ecom-server/pkg/reqid"
	"github.com/methubd/clickdesire-ecom-server/pkg/router"
)

const shutdownTimeout = 10 * time.Second

// Start runs the server until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx)
	if err != nil {
		// Serving without a store would answer every data route with a 500,
		// so a failed connection is fatal rather than logged-and-ignored.
		return err
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			logger.Error("mongo disconnect", "error", err)
		}
	}()

	db := client.Database(config.MongoDatabase())
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, product cache disabled", "error", err)
	}

	srv := &http.Server{
		Addr:    ":" + config.AppPort(),
		Handler: BuildRouter(db).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// BuildRouter wires repositories, services, controllers, and the global
// middleware stack over db.
func BuildRouter(db *mongo.Database) *router.Router {
	users := repositories.NewUserRepository(db)
	products := repositories.NewProductRepository(db)
	carts := repositories.NewCartRepository(db)
	orders := repositories.NewOrderRepository(db)

	orderSvc := services.NewOrderService(orders, carts)

	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. CORS              — set CORS headers
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	// Prometheus scrape endpoint — no auth.
	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r, routes.Controllers{
		Auth:     controllers.NewAuthController(),
		Users:    controllers.NewUserController(users),
		Products: controllers.NewProductController(products),
		Carts:    controllers.NewCartController(carts, products),
		Orders:   controllers.NewOrderController(orderSvc, orders),
		Roles:    users,
	})

	return r
}
