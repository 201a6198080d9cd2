package handler

import (
	"log/slog"
	"net/http"

	"github.com/hankookn/teamblog/internal/i18n"
	"github.com/hankookn/teamblog/internal/model"
	"github.com/hankookn/teamblog/internal/service"
)

type BlogHandler struct {
	posts    *service.PostService
	products *service.ProductService
}

func NewBlogHandler(posts *service.PostService, products *service.ProductService) *BlogHandler {
	return &BlogHandler{posts: posts, products: products}
}

// ListPosts serves published posts for a locale, optionally narrowed by
// ?tag=, ?author= or a free-text ?q=.
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	locale, err := i18n.Parse(r.URL.Query().Get("locale"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var posts []*model.BlogPost
	switch q := r.URL.Query(); {
	case q.Get("q") != "":
		posts, err = h.posts.Search(q.Get("q"), locale)
	case q.Get("tag") != "":
		posts, err = h.posts.PostsByTag(q.Get("tag"), locale)
	case q.Get("author") != "":
		posts, err = h.posts.PostsByAuthor(q.Get("author"), locale)
	default:
		posts, err = h.posts.PublishedPosts(locale)
	}
	if err != nil {
		slog.Error("listing posts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load blog posts")
		return
	}
	if posts == nil {
		posts = []*model.BlogPost{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// postResponse is a single post plus its resolved cross-references.
type postResponse struct {
	*model.BlogPost
	RelatedProducts  []*model.ProductData `json:"relatedProductData"`
	AvailableLocales map[i18n.Locale]bool `json:"availableLocales"`
}

// ShowPost serves one published-or-draft post with rendered HTML, its
// related products, and the locales it is available in.
func (h *BlogHandler) ShowPost(w http.ResponseWriter, r *http.Request) {
	locale, err := i18n.Parse(r.URL.Query().Get("locale"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	slug := r.PathValue("slug")
	post, err := h.posts.RenderedPost(slug, locale)
	if err != nil {
		slog.Error("reading post failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load blog post")
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}

	related, err := h.products.RelatedProducts(post, locale)
	if err != nil {
		slog.Error("resolving related products failed", "slug", slug, "error", err)
		related = []*model.ProductData{}
	}

	available := make(map[i18n.Locale]bool, len(i18n.Locales))
	for _, l := range i18n.Locales {
		available[l] = h.posts.ExistsInLocale(slug, l)
	}

	writeJSON(w, http.StatusOK, postResponse{
		BlogPost:         post,
		RelatedProducts:  related,
		AvailableLocales: available,
	})
}

// ListTags serves the sorted unique tags of a locale's published posts.
func (h *BlogHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	locale, err := i18n.Parse(r.URL.Query().Get("locale"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tags, err := h.posts.AllTags(locale)
	if err != nil {
		slog.Error("listing tags failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load tags")
		return
	}
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, tags)
}

// TagStats serves per-tag post counts, most-used first.
func (h *BlogHandler) TagStats(w http.ResponseWriter, r *http.Request) {
	locale, err := i18n.Parse(r.URL.Query().Get("locale"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := h.posts.TagStats(locale)
	if err != nil {
		slog.Error("tag stats failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load tag statistics")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
