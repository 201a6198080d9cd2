package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hankookn/teamblog/internal/model"
	"github.com/hankookn/teamblog/internal/service"
)

// AdminHandler is the development-only authoring API. It operates on the
// merged bilingual view of posts, never on a single locale.
type AdminHandler struct {
	admin    *service.AdminPostService
	validate *validator.Validate
}

func NewAdminHandler(admin *service.AdminPostService) *AdminHandler {
	return &AdminHandler{
		admin:    admin,
		validate: validator.New(),
	}
}

type adminWriteResponse struct {
	Success bool   `json:"success"`
	Slug    string `json:"slug,omitempty"`
	Message string `json:"message"`
}

// ListPosts serves the merged bilingual view of every post.
func (h *AdminHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.admin.Posts()
	if err != nil {
		slog.Error("admin: listing posts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	if posts == nil {
		posts = []*model.AdminPost{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// ShowPost serves one merged post or 404.
func (h *AdminHandler) ShowPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	post, err := h.admin.Post(slug)
	if err != nil {
		slog.Error("admin: reading post failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// CreatePost writes a new post and returns its generated slug.
func (h *AdminHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	slug, err := h.admin.Create(input)
	if errors.Is(err, service.ErrKoreanRequired) {
		writeError(w, http.StatusBadRequest, "Korean title and content are required")
		return
	}
	if err != nil {
		slog.Error("admin: creating post failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	writeJSON(w, http.StatusOK, adminWriteResponse{
		Success: true,
		Slug:    slug,
		Message: "Post created successfully",
	})
}

// UpdatePost rewrites a post's files, keeping its original publishedAt.
func (h *AdminHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	slug := r.PathValue("slug")
	err := h.admin.Update(slug, input)
	if errors.Is(err, service.ErrKoreanRequired) {
		writeError(w, http.StatusBadRequest, "Korean title and content are required")
		return
	}
	if err != nil {
		slog.Error("admin: updating post failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update post")
		return
	}

	writeJSON(w, http.StatusOK, adminWriteResponse{
		Success: true,
		Message: "Post updated successfully",
	})
}

// DeletePost removes both locale files of a post.
func (h *AdminHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if err := h.admin.Delete(slug); err != nil {
		slog.Error("admin: deleting post failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	writeJSON(w, http.StatusOK, adminWriteResponse{
		Success: true,
		Message: "Post deleted successfully",
	})
}

func (h *AdminHandler) decodeInput(w http.ResponseWriter, r *http.Request) (*service.PostInput, bool) {
	var input service.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := h.validate.Struct(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post payload: "+err.Error())
		return nil, false
	}
	return &input, true
}
