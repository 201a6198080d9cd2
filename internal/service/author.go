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

// AuthorService resolves team member profiles, one JSON file per locale.
type AuthorService struct {
	store repository.ContentStore
}

func NewAuthorService(store repository.ContentStore) *AuthorService {
	return &AuthorService{store: store}
}

// Authors returns one locale's authors, newest first by joinedAt.
// Malformed files are logged and skipped.
func (s *AuthorService) Authors(locale i18n.Locale) ([]*model.AuthorData, error) {
	names, err := s.store.List(repository.CategoryAuthors)
	if err != nil {
		return nil, err
	}

	suffix := "." + locale.String() + ".json"
	var authors []*model.AuthorData
	for _, name := range names {
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		author, err := s.readAuthor(name)
		if err != nil {
			slog.Warn("skipping malformed author file", "file", name, "error", err)
			continue
		}
		authors = append(authors, author)
	}

	sort.SliceStable(authors, func(i, j int) bool {
		ti, _ := parseDate(authors[i].JoinedAt)
		tj, _ := parseDate(authors[j].JoinedAt)
		return ti.After(tj)
	})
	return authors, nil
}

// Author returns one author by slug and locale, or nil when absent.
func (s *AuthorService) Author(slug string, locale i18n.Locale) (*model.AuthorData, error) {
	name := slug + "." + locale.String() + ".json"
	if !s.store.Exists(repository.CategoryAuthors, name) {
		return nil, nil
	}
	return s.readAuthor(name)
}

// ExistsInLocale reports whether slug has an author file in locale.
func (s *AuthorService) ExistsInLocale(slug string, locale i18n.Locale) bool {
	return s.store.Exists(repository.CategoryAuthors, slug+"."+locale.String()+".json")
}

func (s *AuthorService) readAuthor(name string) (*model.AuthorData, error) {
	data, err := s.store.Read(repository.CategoryAuthors, name)
	if err != nil {
		return nil, err
	}

	var author model.AuthorData
	if err := json.Unmarshal(data, &author); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return &author, nil
}
