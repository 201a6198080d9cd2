package handler

import (
	"log/slog"
	"net/http"

	"github.com/hankookn/teamblog/internal/service"
)

type SEOHandler struct {
	sitemap *service.SitemapService
	baseURL string
}

func NewSEOHandler(sitemap *service.SitemapService, baseURL string) *SEOHandler {
	return &SEOHandler{sitemap: sitemap, baseURL: baseURL}
}

// Robots serves robots.txt. Authoring and API surfaces are disallowed.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	body := "User-agent: *\n" +
		"Allow: /\n" +
		"Disallow: /api/\n" +
		"Disallow: /admin/\n" +
		"Sitemap: " + h.baseURL + "/sitemap.xml\n"

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(body))
}

// Sitemap generates and serves sitemap.xml on every request.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	out, err := h.sitemap.Generate()
	if err != nil {
		slog.Error("sitemap generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate sitemap")
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(out)
}
