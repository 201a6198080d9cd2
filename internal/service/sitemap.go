package service

import (
	"encoding/xml"
	"log/slog"
	"strings"
	"time"

	"github.com/hankookn/teamblog/internal/i18n"
	"github.com/hankookn/teamblog/internal/model"
)

// staticRoutes are the locale-prefixed public pages. Auth-less site, so
// everything here is crawlable.
var staticRoutes = []struct {
	Path       string
	Priority   string
	ChangeFreq string
}{
	{"", "1.0", "daily"},
	{"/blog", "0.8", "daily"},
	{"/showcase", "0.8", "weekly"},
	{"/authors", "0.6", "weekly"},
	{"/about", "0.7", "monthly"},
}

// excludedPrefixes keeps authoring and machine surfaces out of the sitemap.
// Tag listing pages are excluded too, they are thin duplicates of /blog.
var excludedPrefixes = []string{
	"/admin",
	"/api",
	"/blog/tag/",
}

type SitemapService struct {
	posts    *PostService
	products *ProductService
	authors  *AuthorService
	baseURL  string
}

func NewSitemapService(posts *PostService, products *ProductService, authors *AuthorService, baseURL string) *SitemapService {
	return &SitemapService{
		posts:    posts,
		products: products,
		authors:  authors,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}
}

// Excluded reports whether a locale-relative path is banned from the
// sitemap.
func Excluded(path string) bool {
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Generate builds the sitemap XML for both locales. Content listing
// failures degrade to a sitemap of the static routes rather than a 5xx.
func (s *SitemapService) Generate() ([]byte, error) {
	sitemap := model.Sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []model.SitemapURL{},
	}

	today := time.Now().Format("2006-01-02")
	for _, locale := range i18n.Locales {
		for _, route := range staticRoutes {
			s.add(&sitemap, locale, route.Path, today, route.ChangeFreq, route.Priority)
		}
		s.addPosts(&sitemap, locale)
		s.addProducts(&sitemap, locale, today)
		s.addAuthors(&sitemap, locale, today)
	}

	out, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}
	return []byte(xml.Header + string(out)), nil
}

func (s *SitemapService) add(sitemap *model.Sitemap, locale i18n.Locale, path, lastMod, changeFreq, priority string) {
	if Excluded(path) {
		return
	}
	sitemap.URLs = append(sitemap.URLs, model.SitemapURL{
		Loc:        s.baseURL + "/" + locale.String() + path,
		LastMod:    lastMod,
		ChangeFreq: changeFreq,
		Priority:   priority,
	})
}

func (s *SitemapService) addPosts(sitemap *model.Sitemap, locale i18n.Locale) {
	posts, err := s.posts.PublishedPosts(locale)
	if err != nil {
		slog.Warn("sitemap: post listing failed", "locale", locale, "error", err)
		return
	}
	for _, post := range posts {
		lastMod := post.Frontmatter.PublishedAt.Format("2006-01-02")
		if post.Frontmatter.UpdatedAt != nil {
			lastMod = post.Frontmatter.UpdatedAt.Format("2006-01-02")
		}
		s.add(sitemap, locale, "/blog/"+post.Slug, lastMod, "weekly", "0.8")
	}
}

func (s *SitemapService) addProducts(sitemap *model.Sitemap, locale i18n.Locale, today string) {
	products, err := s.products.Products(locale)
	if err != nil {
		slog.Warn("sitemap: product listing failed", "locale", locale, "error", err)
		return
	}
	for _, product := range products {
		s.add(sitemap, locale, "/showcase/"+product.Slug, today, "weekly", "0.8")
	}
}

func (s *SitemapService) addAuthors(sitemap *model.Sitemap, locale i18n.Locale, today string) {
	authors, err := s.authors.Authors(locale)
	if err != nil {
		slog.Warn("sitemap: author listing failed", "locale", locale, "error", err)
		return
	}
	for _, author := range authors {
		s.add(sitemap, locale, "/authors/"+author.Slug, today, "monthly", "0.6")
	}
}
