package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/hankookn/teamblog/internal/i18n"
	"github.com/hankookn/teamblog/internal/model"
	"github.com/hankookn/teamblog/internal/repository"
)

// ProductService resolves showcase products. Product files are plain JSON,
// one per locale, with no cross-locale merge.
type ProductService struct {
	store repository.ContentStore
}

func NewProductService(store repository.ContentStore) *ProductService {
	return &ProductService{store: store}
}

// Products returns one locale's products, newest first by createdAt.
// Malformed files are logged and skipped.
func (s *ProductService) Products(locale i18n.Locale) ([]*model.ProductData, error) {
	names, err := s.store.List(repository.CategoryProducts)
	if err != nil {
		return nil, err
	}

	suffix := "." + locale.String() + ".json"
	var products []*model.ProductData
	for _, name := range names {
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		product, err := s.readProduct(name)
		if err != nil {
			slog.Warn("skipping malformed product file", "file", name, "error", err)
			continue
		}
		products = append(products, product)
	}

	sort.SliceStable(products, func(i, j int) bool {
		ti, _ := parseDate(products[i].CreatedAt)
		tj, _ := parseDate(products[j].CreatedAt)
		return ti.After(tj)
	})
	return products, nil
}

// Product returns one product by slug and locale, or nil when absent.
func (s *ProductService) Product(slug string, locale i18n.Locale) (*model.ProductData, error) {
	name := slug + "." + locale.String() + ".json"
	if !s.store.Exists(repository.CategoryProducts, name) {
		return nil, nil
	}
	return s.readProduct(name)
}

// RelatedProducts returns the products a post declares in relatedProducts,
// in the product listing's order. Empty when the post declares none.
func (s *ProductService) RelatedProducts(post *model.BlogPost, locale i18n.Locale) ([]*model.ProductData, error) {
	if len(post.Frontmatter.RelatedProducts) == 0 {
		return []*model.ProductData{}, nil
	}

	all, err := s.Products(locale)
	if err != nil {
		return nil, err
	}

	declared := make(map[string]bool, len(post.Frontmatter.RelatedProducts))
	for _, slug := range post.Frontmatter.RelatedProducts {
		declared[slug] = true
	}

	related := make([]*model.ProductData, 0, len(declared))
	for _, product := range all {
		if declared[product.Slug] {
			related = append(related, product)
		}
	}
	return related, nil
}

func (s *ProductService) readProduct(name string) (*model.ProductData, error) {
	data, err := s.store.Read(repository.CategoryProducts, name)
	if err != nil {
		return nil, err
	}

	var product model.ProductData
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return &product, nil
}
