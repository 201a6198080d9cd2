package handler

import (
	"log/slog"
	"net/http"

	"github.com/hankookn/teamblog/internal/i18n"
	"github.com/hankookn/teamblog/internal/model"
	"github.com/hankookn/teamblog/internal/service"
)

type ProductHandler struct {
	products *service.ProductService
	posts    *service.PostService
}

func NewProductHandler(products *service.ProductService, posts *service.PostService) *ProductHandler {
	return &ProductHandler{products: products, posts: posts}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	locale, err := i18n.Parse(r.URL.Query().Get("locale"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.products.Products(locale)
	if err != nil {
		slog.Error("listing products failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load products")
		return
	}
	if products == nil {
		products = []*model.ProductData{}
	}
	writeJSON(w, http.StatusOK, products)
}

type productResponse struct {
	*model.ProductData
	RelatedPosts []*model.BlogPost `json:"relatedPostData"`
}

// ShowProduct serves one product plus the published posts that reference
// it.
func (h *ProductHandler) ShowProduct(w http.ResponseWriter, r *http.Request) {
	locale, err := i18n.Parse(r.URL.Query().Get("locale"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	slug := r.PathValue("slug")
	product, err := h.products.Product(slug, locale)
	if err != nil {
		slog.Error("reading product failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load product")
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	related, err := h.posts.RelatedPosts(slug, locale)
	if err != nil {
		slog.Error("resolving related posts failed", "slug", slug, "error", err)
		related = []*model.BlogPost{}
	}
	if related == nil {
		related = []*model.BlogPost{}
	}

	writeJSON(w, http.StatusOK, productResponse{
		ProductData:  product,
		RelatedPosts: related,
	})
}
