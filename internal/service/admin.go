package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/hankookn/teamblog/internal/frontmatter"
	"github.com/hankookn/teamblog/internal/i18n"
	"github.com/hankookn/teamblog/internal/model"
	"github.com/hankookn/teamblog/internal/repository"
)

var (
	// ErrKoreanRequired is returned when a write omits the mandatory
	// Korean title or content.
	ErrKoreanRequired = errors.New("korean title and content are required")
)

// LocalizedInput carries one field's Korean value and optional English
// translation as submitted by the admin editor.
type LocalizedInput struct {
	Ko string `json:"ko"`
	En string `json:"en"`
}

// PostInput is the admin create/update payload.
type PostInput struct {
	Title         LocalizedInput `json:"title"`
	Content       LocalizedInput `json:"content"`
	Excerpt       LocalizedInput `json:"excerpt"`
	AuthorID      string         `json:"authorId"`
	Tags          []string       `json:"tags"`
	Status        string         `json:"status" validate:"omitempty,oneof=draft published"`
	FeaturedImage string         `json:"featuredImage"`
}

// HasEnglish reports whether the payload carries a complete English
// variant. A partial one (title without content, or vice versa) does not
// produce an English file.
func (in *PostInput) HasEnglish() bool {
	return in.Title.En != "" && in.Content.En != ""
}

// postFrontmatter is the serialized shape of the metadata block written by
// the admin path. Field order is the on-disk key order.
type postFrontmatter struct {
	Title         string    `yaml:"title"`
	Excerpt       string    `yaml:"excerpt"`
	Author        string    `yaml:"author"`
	PublishedAt   time.Time `yaml:"publishedAt"`
	UpdatedAt     time.Time `yaml:"updatedAt"`
	Tags          []string  `yaml:"tags"`
	Status        string    `yaml:"status"`
	FeaturedImage string    `yaml:"featuredImage,omitempty"`
}

// AdminPostService is the read-modify-write surface of the authoring UI.
// It reconciles the per-locale files sharing a slug into one bilingual
// entity: the Korean file is mandatory and authoritative, the English file
// only overlays title, content and excerpt. Writes are unsynchronized
// read-modify-write on individual files; two concurrent editors race with
// last-write-wins, which is accepted for the single-operator dev surface.
type AdminPostService struct {
	store repository.ContentStore
}

func NewAdminPostService(store repository.ContentStore) *AdminPostService {
	return &AdminPostService{store: store}
}

// Posts returns the merged bilingual view of every post, newest first.
// Slugs that only have an English file are skipped: a post does not exist
// without its Korean variant.
func (s *AdminPostService) Posts() ([]*model.AdminPost, error) {
	names, err := s.store.List(repository.CategoryPosts)
	if err != nil {
		return nil, err
	}

	slugs := make(map[string]bool)
	englishOnly := make(map[string]bool)
	for _, name := range names {
		slug, locale, ok := splitPostFilename(name)
		if !ok {
			slog.Warn("ignoring post file with unrecognized name", "file", name)
			continue
		}
		if locale == i18n.LocaleKo {
			slugs[slug] = true
			delete(englishOnly, slug)
		} else if !slugs[slug] {
			englishOnly[slug] = true
		}
	}
	for slug := range englishOnly {
		slog.Warn("post has no korean variant, skipping", "slug", slug)
	}

	posts := make([]*model.AdminPost, 0, len(slugs))
	for slug := range slugs {
		post, err := s.Post(slug)
		if err != nil {
			slog.Warn("skipping malformed post", "slug", slug, "error", err)
			continue
		}
		if post != nil {
			posts = append(posts, post)
		}
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts, nil
}

// Post returns the merged bilingual view of one slug, or nil when the
// mandatory Korean file is absent. A missing English file is not an error,
// it just leaves the En fields unset ("untranslated").
func (s *AdminPostService) Post(slug string) (*model.AdminPost, error) {
	koData, err := s.store.Read(repository.CategoryPosts, slug+".ko.mdx")
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	meta, body, err := frontmatter.Parse(koData)
	if err != nil {
		return nil, fmt.Errorf("parse %s.ko.mdx: %w", slug, err)
	}

	fm := mapFrontmatter(meta, body)
	updatedAt := time.Now()
	if fm.UpdatedAt != nil {
		updatedAt = *fm.UpdatedAt
	}

	post := &model.AdminPost{
		ID:              slug,
		Slug:            slug,
		Title:           model.LocalizedText{Ko: fm.Title},
		Content:         model.LocalizedText{Ko: body},
		Excerpt:         model.LocalizedText{Ko: fm.Excerpt},
		AuthorID:        fm.Author,
		PublishedAt:     fm.PublishedAt,
		UpdatedAt:       updatedAt,
		Tags:            fm.Tags,
		Status:          fm.Status,
		FeaturedImage:   fm.FeaturedImage,
		ReadingTime:     ReadingTime(body),
		RelatedProducts: fm.RelatedProducts,
	}

	enData, err := s.store.Read(repository.CategoryPosts, slug+".en.mdx")
	if errors.Is(err, repository.ErrNotFound) {
		return post, nil
	}
	if err != nil {
		return nil, err
	}

	enMeta, enBody, err := frontmatter.Parse(enData)
	if err != nil {
		// A broken translation must not take down the Korean variant.
		slog.Warn("ignoring malformed english variant", "slug", slug, "error", err)
		return post, nil
	}

	// The overlay is purely additive: only the En side is ever written.
	if title := metaString(enMeta, "title"); title != "" {
		post.Title.SetEn(title)
	}
	post.Content.SetEn(enBody)
	if excerpt := metaString(enMeta, "excerpt"); excerpt != "" {
		post.Excerpt.SetEn(excerpt)
	} else {
		post.Excerpt.SetEn(DefaultExcerpt(enBody))
	}
	return post, nil
}

// Create writes a new post from the editor payload and returns its slug,
// derived from the Korean title. The Korean file is always written, the
// English file only when both English title and content are present.
func (s *AdminPostService) Create(in *PostInput) (string, error) {
	if in.Title.Ko == "" || in.Content.Ko == "" {
		return "", ErrKoreanRequired
	}

	slug := GenerateSlug(in.Title.Ko)
	now := time.Now().UTC()
	if err := s.writeFiles(slug, in, now, now); err != nil {
		return "", err
	}
	return slug, nil
}

// Update rewrites the post's files in place. The original publishedAt is
// preserved when the post already exists. When the payload no longer
// carries an English variant, the English file is removed.
func (s *AdminPostService) Update(slug string, in *PostInput) error {
	if in.Title.Ko == "" || in.Content.Ko == "" {
		return ErrKoreanRequired
	}

	now := time.Now().UTC()
	publishedAt := now
	existing, err := s.Post(slug)
	if err != nil {
		return err
	}
	if existing != nil {
		publishedAt = existing.PublishedAt
	}

	if err := s.writeFiles(slug, in, publishedAt, now); err != nil {
		return err
	}

	if !in.HasEnglish() {
		err := s.store.Delete(repository.CategoryPosts, slug+".en.mdx")
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
	}
	return nil
}

// Delete removes both locale files. A missing English file is fine, a
// missing Korean file only gets a log line so that a half-deleted post can
// still be cleaned up.
func (s *AdminPostService) Delete(slug string) error {
	err := s.store.Delete(repository.CategoryPosts, slug+".ko.mdx")
	if errors.Is(err, repository.ErrNotFound) {
		slog.Warn("korean variant already gone", "slug", slug)
	} else if err != nil {
		return err
	}

	err = s.store.Delete(repository.CategoryPosts, slug+".en.mdx")
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

func (s *AdminPostService) writeFiles(slug string, in *PostInput, publishedAt, updatedAt time.Time) error {
	author := in.AuthorID
	if author == "" {
		author = model.DefaultAuthor
	}
	status := in.Status
	if status == "" {
		status = model.PostStatusDraft
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	fm := postFrontmatter{
		Title:         in.Title.Ko,
		Excerpt:       in.Excerpt.Ko,
		Author:        author,
		PublishedAt:   publishedAt,
		UpdatedAt:     updatedAt,
		Tags:          tags,
		Status:        status,
		FeaturedImage: in.FeaturedImage,
	}

	doc, err := frontmatter.Stringify(in.Content.Ko, fm)
	if err != nil {
		return err
	}
	if err := s.store.Write(repository.CategoryPosts, slug+".ko.mdx", []byte(doc)); err != nil {
		return err
	}

	if !in.HasEnglish() {
		return nil
	}

	enFm := fm
	enFm.Title = in.Title.En
	enFm.Excerpt = in.Excerpt.En
	if enFm.Excerpt == "" {
		enFm.Excerpt = in.Excerpt.Ko
	}

	enDoc, err := frontmatter.Stringify(in.Content.En, enFm)
	if err != nil {
		return err
	}
	return s.store.Write(repository.CategoryPosts, slug+".en.mdx", []byte(enDoc))
}

// splitPostFilename takes "my.long.slug.ko.mdx" apart into the slug and
// locale. Slugs may themselves contain dots, so the locale is the last
// dot-separated element before the extension.
func splitPostFilename(name string) (slug string, locale i18n.Locale, ok bool) {
	base, found := strings.CutSuffix(name, ".mdx")
	if !found {
		return "", "", false
	}
	idx := strings.LastIndex(base, ".")
	if idx < 0 {
		return "", "", false
	}
	slug, tag := base[:idx], base[idx+1:]
	if slug == "" || !i18n.Valid(tag) {
		return "", "", false
	}
	return slug, i18n.Locale(tag), true
}

// GenerateSlug derives a URL slug from a Korean title: NFC-normalize (macOS
// editors save NFD), lowercase, collapse any run outside [a-z0-9가-힣] into
// a single hyphen, and trim edge hyphens.
func GenerateSlug(title string) string {
	t := strings.ToLower(norm.NFC.String(title))

	var b strings.Builder
	for _, r := range t {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || (r >= '가' && r <= '힣') {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}
