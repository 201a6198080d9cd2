package routes

import (
	"log/slog"
	"net/http"

	"github.com/hankookn/teamblog/internal/app"
	"github.com/hankookn/teamblog/internal/handler"
	"github.com/hankookn/teamblog/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	blog := handler.NewBlogHandler(app.PostService, app.ProductService)
	product := handler.NewProductHandler(app.ProductService, app.PostService)
	author := handler.NewAuthorHandler(app.AuthorService, app.PostService)
	seo := handler.NewSEOHandler(app.SitemapService, app.Cfg.AppURL)

	mux := http.NewServeMux()

	// SEO
	mux.HandleFunc("GET /robots.txt", seo.Robots)
	mux.HandleFunc("GET /sitemap.xml", seo.Sitemap)

	// Public content API
	mux.HandleFunc("GET /api/posts", blog.ListPosts)
	mux.HandleFunc("GET /api/posts/{slug}", blog.ShowPost)
	mux.HandleFunc("GET /api/tags", blog.ListTags)
	mux.HandleFunc("GET /api/tags/stats", blog.TagStats)
	mux.HandleFunc("GET /api/products", product.ListProducts)
	mux.HandleFunc("GET /api/products/{slug}", product.ShowProduct)
	mux.HandleFunc("GET /api/authors", author.ListAuthors)
	mux.HandleFunc("GET /api/authors/{slug}", author.ShowAuthor)

	// Admin authoring API: development only. The routes are not even
	// mounted in production, RequireDev is the second fence.
	if app.Cfg.IsDevelopment() {
		admin := handler.NewAdminHandler(app.AdminService)
		requireDev := middleware.RequireDev(app.Cfg.IsDevelopment())
		rateLimit := middleware.RateLimit(app.Cfg.AdminRateLimit, app.Cfg.AdminRateWindow)

		mux.HandleFunc("GET /api/admin/posts", requireDev(admin.ListPosts))
		mux.HandleFunc("POST /api/admin/posts", requireDev(rateLimit(admin.CreatePost)))
		mux.HandleFunc("GET /api/admin/posts/{slug}", requireDev(admin.ShowPost))
		mux.HandleFunc("PUT /api/admin/posts/{slug}", requireDev(rateLimit(admin.UpdatePost)))
		mux.HandleFunc("DELETE /api/admin/posts/{slug}", requireDev(rateLimit(admin.DeletePost)))

		if app.Storage != nil {
			upload := handler.NewUploadHandler(app.Storage)
			mux.HandleFunc("POST /api/admin/uploads", requireDev(rateLimit(upload.UploadImage)))
		} else {
			slog.Info("image uploads disabled, no S3 bucket configured")
		}
	}

	return middleware.Chain(mux,
		middleware.Recover,
		middleware.RequestID,
		middleware.RequestLogging,
	)
}
