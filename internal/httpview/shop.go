package httpview

import (
	"encoding/json"
	"errors"
	"net/http"

	"marocstar-shop/internal/backend"
	"marocstar-shop/internal/cart"
	"marocstar-shop/internal/catalog"
	"marocstar-shop/internal/checkout"
	"marocstar-shop/internal/contact"

	"github.com/go-chi/chi/v5"
)

// featuredCount products appear on the home view.
const featuredCount = 4

// ShopHandlers renders the public storefront views as JSON documents.
type ShopHandlers struct {
	catalog  *catalog.Service
	checkout *checkout.Service
	contact  *contact.Service
	cart     *cart.Store
	badge    *CartBadge
}

func NewShopHandlers(
	catalogSvc *catalog.Service,
	checkoutSvc *checkout.Service,
	contactSvc *contact.Service,
	cartStore *cart.Store,
	badge *CartBadge,
) *ShopHandlers {
	return &ShopHandlers{
		catalog:  catalogSvc,
		checkout: checkoutSvc,
		contact:  contactSvc,
		cart:     cartStore,
		badge:    badge,
	}
}

func (h *ShopHandlers) Home(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.List(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}
	if len(products) > featuredCount {
		products = products[:featuredCount]
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"view":      "home",
		"featured":  products,
		"cartCount": h.badge.Count(),
	})
}

func (h *ShopHandlers) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.List(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"view":      "products",
		"products":  products,
		"cartCount": h.badge.Count(),
	})
}

func (h *ShopHandlers) Product(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"view":      "product",
		"product":   product,
		"cartCount": h.badge.Count(),
	})
}

func (h *ShopHandlers) About(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"view":      "about",
		"cartCount": h.badge.Count(),
	})
}

func (h *ShopHandlers) Cart(w http.ResponseWriter, r *http.Request) {
	lines := h.cart.Load()
	respondJSON(w, http.StatusOK, map[string]any{
		"view":      "cart",
		"lines":     lines,
		"total":     h.cart.Total(),
		"cartCount": h.badge.Count(),
	})
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *ShopHandlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "productId is required")
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	if err := h.catalog.AddToCart(r.Context(), req.ProductID, req.Quantity); err != nil {
		respondFailure(w, err)
		return
	}
	h.Cart(w, r)
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *ShopHandlers) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "quantity is required")
		return
	}

	if err := h.cart.SetQuantity(chi.URLParam(r, "id"), req.Quantity); err != nil {
		respondError(w, http.StatusInternalServerError, "cart not saved")
		return
	}
	h.Cart(w, r)
}

func (h *ShopHandlers) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Remove(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusInternalServerError, "cart not saved")
		return
	}
	h.Cart(w, r)
}

func (h *ShopHandlers) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(); err != nil {
		respondError(w, http.StatusInternalServerError, "cart not saved")
		return
	}
	h.Cart(w, r)
}

func (h *ShopHandlers) Checkout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"view":      "checkout",
		"lines":     h.cart.Load(),
		"total":     h.cart.Total(),
		"cartCount": h.badge.Count(),
	})
}

func (h *ShopHandlers) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var form checkout.CustomerForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid checkout form")
		return
	}

	draft, err := h.checkout.Submit(r.Context(), form)
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "votre panier est vide")
	case errors.Is(err, checkout.ErrMissingField):
		respondError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		respondFailure(w, err)
	default:
		respondJSON(w, http.StatusCreated, map[string]any{
			"message":   "commande enregistrée avec succès",
			"order":     draft,
			"cartCount": h.badge.Count(),
		})
	}
}

func (h *ShopHandlers) ContactForm(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"view":      "contact",
		"cartCount": h.badge.Count(),
	})
}

func (h *ShopHandlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var form backend.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid contact form")
		return
	}

	err := h.contact.Send(r.Context(), form)
	switch {
	case errors.Is(err, contact.ErrMissingField):
		respondError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		respondFailure(w, err)
	default:
		respondJSON(w, http.StatusCreated, map[string]string{"message": "message envoyé avec succès"})
	}
}
