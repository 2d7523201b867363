// Package routes wires the HTTP surface to the controllers.
package routes

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/controllers"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
	"github.com/shashiranjanraj/storefront/pkg/middleware"
	"github.com/shashiranjanraj/storefront/pkg/response"
	"github.com/shashiranjanraj/storefront/pkg/router"
)

// RegisterAPI mounts every route. Mutating routes carry the auth middleware,
// which is a pass-through until AUTH_SECRET is configured.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	customers := controllers.NewCustomerController(db)
	products := controllers.NewProductController(db)
	orders := controllers.NewOrderController(db)

	r.Get("/ping", "ping", func(w http.ResponseWriter, _ *http.Request) {
		response.Text(w, http.StatusOK, "storefront")
	})
	r.Get("/healthz", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	r.Get("/customer", "customer.index", customers.Index)
	r.Get("/customer/{customerID}", "customer.show", customers.Show)
	r.Post("/customer", "customer.store", customers.Store, middleware.Auth)
	r.Put("/customer/{customerID}", "customer.update", customers.Update, middleware.Auth)
	r.Delete("/customer/{customerID}", "customer.destroy", customers.Destroy, middleware.Auth)

	r.Get("/product", "product.index", products.Index)
	r.Get("/product/{productID}", "product.show", products.Show)
	r.Post("/product", "product.store", products.Store, middleware.Auth)
	r.Put("/product/{productID}", "product.update", products.Update, middleware.Auth)
	r.Delete("/product/{productID}", "product.destroy", products.Destroy, middleware.Auth)

	r.Get("/order", "order.index", orders.Index)
	r.Get("/order/{orderID}", "order.show", orders.Show)
	r.Post("/order", "order.store", orders.Store, middleware.Auth)
	r.Put("/order/{orderID}", "order.update", orders.Update, middleware.Auth)
	r.Delete("/order/{orderID}", "order.destroy", orders.Destroy, middleware.Auth)

	r.Post("/order/{orderID}/product", "order.attach", orders.AttachProduct, middleware.Auth)
	r.Delete("/order/{orderID}/product/{productID}", "order.detach", orders.DetachProduct, middleware.Auth)
}
