package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/vendora/commerce-backend/internal/api/handlers"
	"github.com/vendora/commerce-backend/internal/api/middleware"
	"github.com/vendora/commerce-backend/internal/auth"
)

// Handlers bundles the per-entity HTTP handlers wired in main.
type Handlers struct {
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Category *handlers.CategoryHandler
	Product  *handlers.ProductHandler
	Cart     *handlers.CartHandler
	Order    *handlers.OrderHandler
	Payment  *handlers.PaymentHandler
	Shipment *handlers.ShipmentHandler
	Review   *handlers.ReviewHandler
	Coupon   *handlers.CouponHandler
}

// NewRouter builds the HTTP router. Registration, login and the product
// catalog are public; everything else requires a bearer token.
func NewRouter(h Handlers, tokens *auth.Tokens, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger(log))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/users", h.User.Create)

		r.Get("/categories", h.Category.List)
		r.Get("/categories/{id}", h.Category.Get)
		r.Get("/products", h.Product.List)
		r.Get("/products/{id}", h.Product.Get)
		r.Get("/products/{id}/reviews", h.Review.List)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(tokens))

			r.Get("/users/{id}", h.User.Get)
			r.Patch("/users/{id}", h.User.Update)
			r.Get("/users/{id}/addresses", h.User.ListAddresses)

			r.Post("/categories", h.Category.Create)
			r.Patch("/categories/{id}", h.Category.Update)
			r.Delete("/categories/{id}", h.Category.Delete)

			r.Post("/products", h.Product.Create)
			r.Patch("/products/{id}", h.Product.Update)
			r.Delete("/products/{id}", h.Product.Delete)
			r.Post("/products/{id}/reviews", h.Review.Create)

			r.Route("/cart", func(r chi.Router) {
				r.Post("/", h.Cart.Create)
				r.Get("/", h.Cart.GetActive)
				r.Post("/items", h.Cart.AddItem)
			})
			r.Get("/carts", h.Cart.List)
			r.Delete("/carts/{id}", h.Cart.Delete)

			r.Route("/orders", func(r chi.Router) {
				r.Post("/checkout", h.Order.Checkout)
				r.Get("/", h.Order.List)
				r.Get("/{id}", h.Order.Get)
				r.Patch("/{id}/status", h.Order.UpdateStatus)
				r.Post("/{id}/coupon", h.Order.ApplyCoupon)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.Payment.Create)
				r.Get("/{id}", h.Payment.Get)
				r.Patch("/{id}/status", h.Payment.UpdateStatus)
			})

			r.Route("/shipments", func(r chi.Router) {
				r.Post("/", h.Shipment.Create)
				r.Get("/{id}", h.Shipment.Get)
				r.Patch("/{id}", h.Shipment.Update)
			})

			r.Post("/coupons", h.Coupon.Create)
		})
	})

	return r
}
