package model

import (
	"strings"
	"time"

	"github.com/hankookn/teamblog/internal/i18n"
)

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// DefaultAuthor is filled in when a hand-authored file omits the author field.
const DefaultAuthor = "john-doe"

// Frontmatter is the typed metadata block of a post file.
type Frontmatter struct {
	Title           string     `json:"title"`
	Excerpt         string     `json:"excerpt"`
	Author          string     `json:"author"`
	PublishedAt     time.Time  `json:"publishedAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
	Tags            []string   `json:"tags"`
	Status          string     `json:"status"`
	FeaturedImage   string     `json:"featuredImage,omitempty"`
	RelatedProducts []string   `json:"relatedProducts,omitempty"`
}

// BlogPost is one locale's variant of a post.
// ReadingTime is recomputed from Content on every read, never persisted.
type BlogPost struct {
	Slug        string      `json:"slug"`
	Locale      i18n.Locale `json:"locale"`
	Frontmatter Frontmatter `json:"frontmatter"`
	Content     string      `json:"content"`
	ReadingTime int         `json:"readingTime"`

	// HTMLContent is the goldmark-rendered body. Only populated for
	// single-post reads, listings carry the raw markdown only.
	HTMLContent string `json:"htmlContent,omitempty"`
}

func (p *BlogPost) Published() bool {
	return p.Frontmatter.Status == PostStatusPublished
}

// HasTag reports whether the post carries tag, compared case-insensitively.
func (p *BlogPost) HasTag(tag string) bool {
	for _, t := range p.Frontmatter.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// TagStat is one entry of the tag statistics listing.
type TagStat struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
