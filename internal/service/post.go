package service

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/hankookn/teamblog/internal/frontmatter"
	"github.com/hankookn/teamblog/internal/i18n"
	"github.com/hankookn/teamblog/internal/markdown"
	"github.com/hankookn/teamblog/internal/model"
	"github.com/hankookn/teamblog/internal/repository"
)

const wordsPerMinute = 200

// PostService resolves blog posts from the content store. Every call
// re-reads storage, there is no cache: external edits show up on the next
// read.
type PostService struct {
	store    repository.ContentStore
	renderer *markdown.Renderer
}

func NewPostService(store repository.ContentStore) *PostService {
	return &PostService{
		store:    store,
		renderer: markdown.NewRenderer(),
	}
}

// Posts returns every post of one locale, drafts included, newest first.
// A malformed file is logged and skipped, it never fails the listing.
func (s *PostService) Posts(locale i18n.Locale) ([]*model.BlogPost, error) {
	names, err := s.store.List(repository.CategoryPosts)
	if err != nil {
		return nil, err
	}

	suffix := "." + locale.String() + ".mdx"
	var posts []*model.BlogPost
	for _, name := range names {
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		post, err := s.readPost(name, locale)
		if err != nil {
			slog.Warn("skipping malformed post file", "file", name, "error", err)
			continue
		}
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Frontmatter.PublishedAt.After(posts[j].Frontmatter.PublishedAt)
	})
	return posts, nil
}

// Post returns one post by slug and locale, or nil when the locale's file
// does not exist.
func (s *PostService) Post(slug string, locale i18n.Locale) (*model.BlogPost, error) {
	name := slug + "." + locale.String() + ".mdx"
	if !s.store.Exists(repository.CategoryPosts, name) {
		return nil, nil
	}
	return s.readPost(name, locale)
}

// RenderedPost is Post plus the goldmark-rendered HTML body.
func (s *PostService) RenderedPost(slug string, locale i18n.Locale) (*model.BlogPost, error) {
	post, err := s.Post(slug, locale)
	if err != nil || post == nil {
		return post, err
	}
	html, err := s.renderer.Render([]byte(post.Content))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", slug, err)
	}
	post.HTMLContent = html
	return post, nil
}

// ExistsInLocale reports whether slug has a content file in locale. The
// blog UI uses this for the translation indicator.
func (s *PostService) ExistsInLocale(slug string, locale i18n.Locale) bool {
	return s.store.Exists(repository.CategoryPosts, slug+"."+locale.String()+".mdx")
}

func (s *PostService) PublishedPosts(locale i18n.Locale) ([]*model.BlogPost, error) {
	all, err := s.Posts(locale)
	if err != nil {
		return nil, err
	}
	published := make([]*model.BlogPost, 0, len(all))
	for _, post := range all {
		if post.Published() {
			published = append(published, post)
		}
	}
	return published, nil
}

// PostsByTag returns published posts carrying tag, case-insensitively.
func (s *PostService) PostsByTag(tag string, locale i18n.Locale) ([]*model.BlogPost, error) {
	published, err := s.PublishedPosts(locale)
	if err != nil {
		return nil, err
	}
	var posts []*model.BlogPost
	for _, post := range published {
		if post.HasTag(tag) {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// PostsByAuthor returns published posts whose frontmatter author matches
// authorSlug exactly.
func (s *PostService) PostsByAuthor(authorSlug string, locale i18n.Locale) ([]*model.BlogPost, error) {
	published, err := s.PublishedPosts(locale)
	if err != nil {
		return nil, err
	}
	var posts []*model.BlogPost
	for _, post := range published {
		if post.Frontmatter.Author == authorSlug {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// RelatedPosts returns published posts that declare productSlug in their
// relatedProducts list.
func (s *PostService) RelatedPosts(productSlug string, locale i18n.Locale) ([]*model.BlogPost, error) {
	published, err := s.PublishedPosts(locale)
	if err != nil {
		return nil, err
	}
	var posts []*model.BlogPost
	for _, post := range published {
		for _, related := range post.Frontmatter.RelatedProducts {
			if related == productSlug {
				posts = append(posts, post)
				break
			}
		}
	}
	return posts, nil
}

// AllTags returns the deduplicated tags of all published posts in locale,
// case-sensitively, in lexicographic order.
func (s *PostService) AllTags(locale i18n.Locale) ([]string, error) {
	published, err := s.PublishedPosts(locale)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var tags []string
	for _, post := range published {
		for _, tag := range post.Frontmatter.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// TagStats counts posts per tag across published posts. Tags are lowercased
// before counting, the result is sorted by descending count.
func (s *PostService) TagStats(locale i18n.Locale) ([]model.TagStat, error) {
	published, err := s.PublishedPosts(locale)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, post := range published {
		for _, tag := range post.Frontmatter.Tags {
			counts[strings.ToLower(tag)]++
		}
	}

	stats := make([]model.TagStat, 0, len(counts))
	for tag, count := range counts {
		stats = append(stats, model.TagStat{Tag: tag, Count: count})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Tag < stats[j].Tag
	})
	return stats, nil
}

// markdownStripper removes common markdown punctuation so search terms hit
// the words rather than the syntax around them.
var markdownStripper = strings.NewReplacer(
	"#", "", "*", "", "`", "", "_", "", "~", "", "[", "", "]", "", "(", "", ")", "",
)

// Search matches query as a case-insensitive substring against title,
// excerpt, tags and the markdown-stripped body. A blank query is a no-op
// filter and returns every published post.
func (s *PostService) Search(query string, locale i18n.Locale) ([]*model.BlogPost, error) {
	published, err := s.PublishedPosts(locale)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return published, nil
	}

	var posts []*model.BlogPost
	for _, post := range published {
		if postMatches(post, term) {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func postMatches(post *model.BlogPost, term string) bool {
	if strings.Contains(strings.ToLower(post.Frontmatter.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(post.Frontmatter.Excerpt), term) {
		return true
	}
	if strings.Contains(strings.ToLower(markdownStripper.Replace(post.Content)), term) {
		return true
	}
	for _, tag := range post.Frontmatter.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func (s *PostService) readPost(name string, locale i18n.Locale) (*model.BlogPost, error) {
	data, err := s.store.Read(repository.CategoryPosts, name)
	if err != nil {
		return nil, err
	}

	meta, body, err := frontmatter.Parse(data)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSuffix(name, "."+locale.String()+".mdx")
	return &model.BlogPost{
		Slug:        slug,
		Locale:      locale,
		Frontmatter: mapFrontmatter(meta, body),
		Content:     body,
		ReadingTime: ReadingTime(body),
	}, nil
}

// mapFrontmatter fills the typed frontmatter from the raw metadata map,
// applying the default rules for hand-authored files.
func mapFrontmatter(meta map[string]any, body string) model.Frontmatter {
	fm := model.Frontmatter{
		Title:           metaString(meta, "title"),
		Excerpt:         metaString(meta, "excerpt"),
		Author:          metaString(meta, "author"),
		Tags:            metaStrings(meta, "tags"),
		Status:          metaString(meta, "status"),
		FeaturedImage:   metaString(meta, "featuredImage"),
		RelatedProducts: metaStrings(meta, "relatedProducts"),
	}

	if fm.Excerpt == "" {
		fm.Excerpt = DefaultExcerpt(body)
	}
	if fm.Author == "" {
		fm.Author = model.DefaultAuthor
	}
	if fm.Status == "" {
		fm.Status = model.PostStatusDraft
	}

	// date is the legacy alias for publishedAt
	if t, ok := metaTime(meta, "publishedAt", "date"); ok {
		fm.PublishedAt = t
	} else {
		fm.PublishedAt = time.Now()
	}
	if t, ok := metaTime(meta, "updatedAt"); ok {
		fm.UpdatedAt = &t
	}
	return fm
}

// ReadingTime estimates minutes to read at 200 words per minute, rounding
// up. Words are whitespace-separated fields, so an empty body yields 0.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// DefaultExcerpt is the fallback excerpt: the first 200 characters of the
// body plus an ellipsis.
func DefaultExcerpt(body string) string {
	runes := []rune(body)
	if len(runes) > 200 {
		runes = runes[:200]
	}
	return string(runes) + "..."
}

func metaString(meta map[string]any, key string) string {
	s, _ := meta[key].(string)
	return s
}

func metaStrings(meta map[string]any, key string) []string {
	raw, ok := meta[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// metaTime reads the first present key as a timestamp. YAML may hand us a
// decoded time.Time or a plain string depending on quoting.
func metaTime(meta map[string]any, keys ...string) (time.Time, bool) {
	for _, key := range keys {
		switch v := meta[key].(type) {
		case time.Time:
			return v, true
		case string:
			if t, err := parseDate(v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %q", s)
}
