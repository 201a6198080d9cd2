package app

import (
	"fmt"

	"github.com/hankookn/teamblog/internal/config"
	"github.com/hankookn/teamblog/internal/repository"
	"github.com/hankookn/teamblog/internal/service"
	"github.com/hankookn/teamblog/internal/storage"
)

type App struct {
	Cfg            *config.Config
	Store          repository.ContentStore
	PostService    *service.PostService
	ProductService *service.ProductService
	AuthorService  *service.AuthorService
	AdminService   *service.AdminPostService
	SitemapService *service.SitemapService

	// Storage is nil when no S3 bucket is configured. The upload route is
	// only mounted when it is present.
	Storage storage.Storage
}

func New(cfg *config.Config) (*App, error) {
	store := repository.NewFS(cfg.ContentPath)

	postService := service.NewPostService(store)
	productService := service.NewProductService(store)
	authorService := service.NewAuthorService(store)
	adminService := service.NewAdminPostService(store)
	sitemapService := service.NewSitemapService(postService, productService, authorService, cfg.AppURL)

	app := &App{
		Cfg:            cfg,
		Store:          store,
		PostService:    postService,
		ProductService: productService,
		AuthorService:  authorService,
		AdminService:   adminService,
		SitemapService: sitemapService,
	}

	if cfg.UploadsEnabled() {
		st, err := storage.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		app.Storage = st
	}

	return app, nil
}
