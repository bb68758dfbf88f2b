package httpview

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"marocstar-shop/internal/admin"
	"marocstar-shop/internal/backend"
	"marocstar-shop/internal/session"

	"github.com/go-chi/chi/v5"
)

// maxProductFormSize bounds the multipart product form, image included.
const maxProductFormSize = 8 << 20

// AdminHandlers renders the administration console views.
type AdminHandlers struct {
	products  *admin.Products
	orders    *admin.Orders
	inbox     *admin.Inbox
	dashboard *admin.Dashboard
	sessions  *session.Service
}

func NewAdminHandlers(
	products *admin.Products,
	orders *admin.Orders,
	inbox *admin.Inbox,
	dashboard *admin.Dashboard,
	sessions *session.Service,
) *AdminHandlers {
	return &AdminHandlers{
		products:  products,
		orders:    orders,
		inbox:     inbox,
		dashboard: dashboard,
		sessions:  sessions,
	}
}

func (h *AdminHandlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	state := h.sessions.Current()
	view := map[string]any{
		"view":          "admin-login",
		"authenticated": state.IsAuthenticated(),
	}
	if state.IsAuthenticated() {
		view["admin"] = state.Admin
		if state.Expiry != nil {
			view["sessionExpiresAt"] = state.Expiry
		}
	}
	respondJSON(w, http.StatusOK, view)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AdminHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid login form")
		return
	}

	state, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, session.ErrMissingCredentials):
		respondError(w, http.StatusBadRequest, "veuillez saisir l'email et le mot de passe")
	case err != nil:
		respondFailure(w, err)
	default:
		respondJSON(w, http.StatusOK, map[string]any{
			"message": "connexion réussie",
			"admin":   state.Admin,
		})
	}
}

func (h *AdminHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "session not cleared")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "déconnexion réussie"})
}

func (h *AdminHandlers) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"view":     "admin-products",
		"products": admin.Filter(products, r.URL.Query().Get("q")),
		"admin":    h.sessions.Current().Admin,
	})
}

func (h *AdminHandlers) SaveProduct(w http.ResponseWriter, r *http.Request) {
	form, err := parseProductForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.products.Save(r.Context(), chi.URLParam(r, "id"), form)
	respondSaveOutcome(w, products, err)
}

func (h *AdminHandlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *AdminHandlers) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context(), r.URL.Query().Get("status"))
	switch {
	case errors.Is(err, admin.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		respondFailure(w, err)
	default:
		respondJSON(w, http.StatusOK, map[string]any{
			"view":     "admin-orders",
			"orders":   orders,
			"statuses": admin.OrderStatuses,
		})
	}
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandlers) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req orderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "status is required")
		return
	}

	orders, err := h.orders.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	switch {
	case errors.Is(err, admin.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		respondFailure(w, err)
	default:
		respondJSON(w, http.StatusOK, map[string]any{"orders": orders})
	}
}

func (h *AdminHandlers) Contacts(w http.ResponseWriter, r *http.Request) {
	messages, err := h.inbox.List(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"view":     "admin-contacts",
		"contacts": messages,
	})
}

type replyRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *AdminHandlers) ReplyContact(w http.ResponseWriter, r *http.Request) {
	var req replyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid reply")
		return
	}

	err := h.inbox.Reply(r.Context(), req.Email, req.Message)
	switch {
	case errors.Is(err, admin.ErrEmptyReply):
		respondError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		respondFailure(w, err)
	default:
		respondJSON(w, http.StatusOK, map[string]string{"message": "réponse envoyée"})
	}
}

func (h *AdminHandlers) DeleteContact(w http.ResponseWriter, r *http.Request) {
	messages, err := h.inbox.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"contacts": messages})
}

func (h *AdminHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"view":  "admin-dashboard",
		"stats": stats,
	})
}

func respondSaveOutcome(w http.ResponseWriter, products []backend.Product, err error) {
	switch {
	case errors.Is(err, admin.ErrNameRequired),
		errors.Is(err, admin.ErrNegativePrice),
		errors.Is(err, admin.ErrNegativeStock):
		respondError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		respondFailure(w, err)
	default:
		respondJSON(w, http.StatusOK, map[string]any{"products": products})
	}
}

func parseProductForm(r *http.Request) (backend.ProductForm, error) {
	if err := r.ParseMultipartForm(maxProductFormSize); err != nil {
		return backend.ProductForm{}, errors.New("invalid product form")
	}

	form := backend.ProductForm{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
	}

	if raw := r.FormValue("prix"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return backend.ProductForm{}, errors.New("prix must be a number")
		}
		form.Price = price
	}
	if raw := r.FormValue("stock"); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil {
			return backend.ProductForm{}, errors.New("stock must be an integer")
		}
		form.Stock = stock
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		content, err := io.ReadAll(file)
		if err != nil {
			return backend.ProductForm{}, errors.New("unreadable product image")
		}
		form.Image = &backend.Upload{Filename: header.Filename, Content: content}
	}

	return form, nil
}
