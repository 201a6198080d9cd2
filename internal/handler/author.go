package handler

import (
	"log/slog"
	"net/http"

	"github.com/hankookn/teamblog/internal/i18n"
	"github.com/hankookn/teamblog/internal/model"
	"github.com/hankookn/teamblog/internal/service"
)

type AuthorHandler struct {
	authors *service.AuthorService
	posts   *service.PostService
}

func NewAuthorHandler(authors *service.AuthorService, posts *service.PostService) *AuthorHandler {
	return &AuthorHandler{authors: authors, posts: posts}
}

func (h *AuthorHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	locale, err := i18n.Parse(r.URL.Query().Get("locale"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	authors, err := h.authors.Authors(locale)
	if err != nil {
		slog.Error("listing authors failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load authors")
		return
	}
	if authors == nil {
		authors = []*model.AuthorData{}
	}
	writeJSON(w, http.StatusOK, authors)
}

type authorResponse struct {
	*model.AuthorData
	Posts []*model.BlogPost `json:"posts"`
}

// ShowAuthor serves one author profile plus their published posts.
func (h *AuthorHandler) ShowAuthor(w http.ResponseWriter, r *http.Request) {
	locale, err := i18n.Parse(r.URL.Query().Get("locale"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	slug := r.PathValue("slug")
	author, err := h.authors.Author(slug, locale)
	if err != nil {
		slog.Error("reading author failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load author")
		return
	}
	if author == nil {
		writeError(w, http.StatusNotFound, "Author not found")
		return
	}

	posts, err := h.posts.PostsByAuthor(slug, locale)
	if err != nil {
		slog.Error("listing author posts failed", "slug", slug, "error", err)
		posts = []*model.BlogPost{}
	}
	if posts == nil {
		posts = []*model.BlogPost{}
	}

	writeJSON(w, http.StatusOK, authorResponse{
		AuthorData: author,
		Posts:      posts,
	})
}
