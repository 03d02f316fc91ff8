package transport

import (
	"bytes"
	"net/http"
	"strings"

	"dnalab/internal/domain"
	"dnalab/internal/middleware"
	"dnalab/internal/verifier"
	"dnalab/internal/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	allProductsIntro = "Explore our catalog. This website provides educational information about our products, including composition and responsible usage. Always consult a professional before use."
	categoryIntro    = "This section provides educational information for the selected category. Consult a professional before use."
	dietaryIntro     = "Dietary supplements information hub. Review composition, suggested usage, and safety notes. Always consult a professional before use."
)

// SiteHandler serves the server-rendered pages
type SiteHandler struct {
	catalog  CatalogReader
	dietary  DietaryLister
	verifier verifier.CodeVerifier
	renderer *web.Renderer
	observer VerdictObserver
	logger   *zap.Logger
}

// NewSiteHandler creates a new SiteHandler. observer may be nil.
func NewSiteHandler(catalog CatalogReader, dietary DietaryLister, v verifier.CodeVerifier, renderer *web.Renderer, observer VerdictObserver, logger *zap.Logger) *SiteHandler {
	if observer == nil {
		observer = noopObserver{}
	}
	return &SiteHandler{
		catalog:  catalog,
		dietary:  dietary,
		verifier: v,
		renderer: renderer,
		observer: observer,
		logger:   logger,
	}
}

// RegisterRoutes registers the page routes. verifyLimit wraps the code check form.
func (h *SiteHandler) RegisterRoutes(r chi.Router, verifyLimit func(http.Handler) http.Handler) {
	r.Get("/", h.Home)
	r.With(verifyLimit).Post("/verify", h.VerifyForm)
	r.Get("/about", h.About)
	r.Get("/contact", h.Contact)
	r.Get("/products", h.Products)
	r.Get("/products/{category}", h.ProductsByCategory)
}

func (h *SiteHandler) layout(r *http.Request, title string) web.Layout {
	return web.Layout{
		Title:      title,
		Path:       r.URL.Path,
		Categories: h.catalog.Categories(),
	}
}

func (h *SiteHandler) authView(input string, verdict domain.Verdict) web.AuthView {
	state, errMsg := h.verifier.State()
	return web.AuthView{
		Input:   input,
		Verdict: verdict,
		State:   state,
		Error:   errMsg,
	}
}

func (h *SiteHandler) render(w http.ResponseWriter, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		h.logger.Error("Failed to render page", zap.String("page", page), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Home renders the landing page with the authenticator
func (h *SiteHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, web.PageHome, web.HomePage{
		Layout:   h.layout(r, ""),
		Auth:     h.authView("", domain.VerdictNone),
		Trending: h.catalog.Trending(),
	})
}

// VerifyForm checks the submitted code and renders the home page with the verdict
func (h *SiteHandler) VerifyForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, middleware.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.logger.Debug("Verify form parse failed", zap.Error(err))
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	input := r.PostFormValue("code")
	status := http.StatusOK

	var verdict domain.Verdict
	if err := middleware.ValidateRequest(VerifyRequest{Code: input}); err != nil {
		h.logger.Debug("Verify form validation failed", zap.Error(err))
		status = http.StatusBadRequest
		verdict = domain.VerdictInvalid
	} else {
		verdict = h.verifier.Verify(r.Context(), input)
		h.observer.ObserveVerdict(string(verdict))
	}

	page := web.HomePage{
		Layout:   h.layout(r, ""),
		Auth:     h.authView(input, verdict),
		Trending: h.catalog.Trending(),
	}
	page.Path = "/"
	h.render(w, status, web.PageHome, page)
}

// About renders the about page
func (h *SiteHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, web.PageAbout, h.layout(r, "About Us"))
}

// Contact renders the contact page
func (h *SiteHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, web.PageContact, h.layout(r, "Contact Us"))
}

// Products renders the whole catalog
func (h *SiteHandler) Products(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, web.PageProducts, web.ProductsPage{
		Layout:   h.layout(r, "Products"),
		Heading:  "Products",
		Intro:    allProductsIntro,
		Products: h.catalog.Products(),
	})
}

// ProductsByCategory renders one category. Unknown slugs fall back to the
// whole catalog under the default title.
func (h *SiteHandler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "category")
	title := h.catalog.CategoryTitle(slug)

	page := web.ProductsPage{
		Layout:  h.layout(r, title),
		Heading: title,
		Intro:   categoryIntro,
	}

	if cat, ok := h.catalog.CategoryBySlug(slug); ok && cat.Key == domain.CategoryDietary {
		page.Intro = dietaryIntro
		page.IsDietary = true
		page.Dietary = h.dietary.Entries(r.Context())
	} else {
		page.Products = h.catalog.ProductsByCategory(slug)
	}

	h.render(w, http.StatusOK, web.PageProducts, page)
}

// NotFound renders the 404 page, or a JSON error under /api
func (h *SiteHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		middleware.RespondWithError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	h.render(w, http.StatusNotFound, web.PageNotFound, h.layout(r, "Page not found"))
}
