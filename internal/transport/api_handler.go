package transport

import (
	"net/http"

	"dnalab/internal/domain"
	"dnalab/internal/middleware"
	"dnalab/internal/verifier"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VerifyRequest represents the code check request payload
type VerifyRequest struct {
	Code string `json:"code" validate:"max=256"`
}

// VerifyResponse represents the code check result
type VerifyResponse struct {
	Verdict domain.Verdict `json:"verdict"`
	CheckID string         `json:"check_id"`
}

// StatusResponse represents the verification dataset state
type StatusResponse struct {
	State domain.LoadState `json:"state"`
	Error string           `json:"error,omitempty"`
}

// APIHandler serves the JSON API
type APIHandler struct {
	catalog  CatalogReader
	dietary  DietaryLister
	verifier verifier.CodeVerifier
	observer VerdictObserver
	logger   *zap.Logger
}

// NewAPIHandler creates a new APIHandler. observer may be nil.
func NewAPIHandler(catalog CatalogReader, dietary DietaryLister, v verifier.CodeVerifier, observer VerdictObserver, logger *zap.Logger) *APIHandler {
	if observer == nil {
		observer = noopObserver{}
	}
	return &APIHandler{
		catalog:  catalog,
		dietary:  dietary,
		verifier: v,
		observer: observer,
		logger:   logger,
	}
}

// RegisterRoutes registers all API routes under /api. mw applies to the
// whole subtree, including preflight requests.
func (h *APIHandler) RegisterRoutes(r chi.Router, verifyLimit func(http.Handler) http.Handler, mw ...func(http.Handler) http.Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Use(mw...)

		r.Get("/categories", h.ListCategories)
		r.Get("/products", h.ListProducts)
		r.Get("/products/{slug}", h.GetProduct)
		r.Get("/trending", h.ListTrending)
		r.Get("/dietary", h.ListDietary)

		r.Route("/auth-codes", func(r chi.Router) {
			r.Get("/status", h.Status)
			r.With(verifyLimit).Post("/verify", h.Verify)
		})
	})
}

// ListCategories returns every category in navigation order
func (h *APIHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, r, http.StatusOK, h.catalog.Categories())
}

// ListProducts returns the products of ?category=, or all of them
func (h *APIHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	middleware.RespondWithJSON(w, r, http.StatusOK, h.catalog.ProductsByCategory(category))
}

// GetProduct returns one product by slug
func (h *APIHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, ok := h.catalog.ProductBySlug(slug)
	if !ok {
		middleware.RespondWithError(w, r, http.StatusNotFound, "product not found")
		return
	}

	middleware.RespondWithJSON(w, r, http.StatusOK, product)
}

// ListTrending returns the home page carousel items
func (h *APIHandler) ListTrending(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, r, http.StatusOK, h.catalog.Trending())
}

// ListDietary returns the resolved dietary entries
func (h *APIHandler) ListDietary(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, r, http.StatusOK, h.dietary.Entries(r.Context()))
}

// Status reports whether the verification dataset is loaded
func (h *APIHandler) Status(w http.ResponseWriter, r *http.Request) {
	state, errMsg := h.verifier.State()
	middleware.RespondWithJSON(w, r, http.StatusOK, StatusResponse{State: state, Error: errMsg})
}

// Verify checks one authentication code
func (h *APIHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Verify validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, r, validationErrors)
			return
		}

		middleware.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	verdict := h.verifier.Verify(r.Context(), req.Code)
	h.observer.ObserveVerdict(string(verdict))

	checkID := uuid.New().String()
	h.logger.Info("Authentication code checked",
		zap.String("check_id", checkID),
		zap.String("verdict", string(verdict)),
	)

	middleware.RespondWithJSON(w, r, http.StatusOK, VerifyResponse{Verdict: verdict, CheckID: checkID})
}
