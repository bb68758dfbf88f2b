// Package httpview maps the client-visible routes onto JSON views: the
// storefront pages, the cart and checkout actions, and the guarded
// administration console.
package httpview

import (
	"net/http"

	"marocstar-shop/internal/logger"
	"marocstar-shop/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Deps struct {
	Shop     *ShopHandlers
	Admin    *AdminHandlers
	Sessions *session.Service
}

func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public storefront.
	r.Get("/", deps.Shop.Home)
	r.Get("/products", deps.Shop.Products)
	r.Get("/product/{id}", deps.Shop.Product)
	r.Get("/about", deps.Shop.About)
	r.Get("/contact", deps.Shop.ContactForm)
	r.Post("/contact", deps.Shop.SubmitContact)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", deps.Shop.Cart)
		r.Delete("/", deps.Shop.ClearCart)
		r.Post("/items", deps.Shop.AddToCart)
		r.Put("/items/{id}", deps.Shop.SetQuantity)
		r.Delete("/items/{id}", deps.Shop.RemoveFromCart)
	})

	r.Get("/checkout", deps.Shop.Checkout)
	r.Post("/checkout", deps.Shop.SubmitOrder)

	// Administration console.
	r.Route("/admin", func(r chi.Router) {
		r.Get("/login", deps.Admin.LoginForm)
		r.With(LoginRateLimit()).Post("/login", deps.Admin.Login)
		r.Post("/logout", deps.Admin.Logout)

		r.Group(func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler {
				return RequireAdmin(deps.Sessions, next)
			})

			r.Get("/products", deps.Admin.Products)
			r.Post("/products", deps.Admin.SaveProduct)
			r.Put("/products/{id}", deps.Admin.SaveProduct)
			r.Delete("/products/{id}", deps.Admin.DeleteProduct)

			r.Get("/orders", deps.Admin.Orders)
			r.Put("/orders/{id}/status", deps.Admin.UpdateOrderStatus)

			r.Get("/contacts", deps.Admin.Contacts)
			r.Post("/contacts/reply", deps.Admin.ReplyContact)
			r.Delete("/contacts/{id}", deps.Admin.DeleteContact)

			r.Get("/dashboard", deps.Admin.Dashboard)
		})
	})

	return r
}
