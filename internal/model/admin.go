package model

import "time"

// LocalizedText holds the Korean value of a field plus its optional English
// translation. A nil En means "untranslated", consumers fall back to Ko.
type LocalizedText struct {
	Ko string  `json:"ko"`
	En *string `json:"en,omitempty"`
}

// SetEn overlays the English value. The Korean value is never touched.
func (t *LocalizedText) SetEn(v string) {
	t.En = &v
}

// AdminPost is the merged bilingual view of a post used by the admin
// authoring surface. The Korean file is the authority for all shared
// metadata, the English file only contributes title/content/excerpt.
type AdminPost struct {
	ID              string        `json:"id"`
	Slug            string        `json:"slug"`
	Title           LocalizedText `json:"title"`
	Content         LocalizedText `json:"content"`
	Excerpt         LocalizedText `json:"excerpt"`
	AuthorID        string        `json:"authorId"`
	PublishedAt     time.Time     `json:"publishedAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
	Tags            []string      `json:"tags"`
	Status          string        `json:"status"`
	FeaturedImage   string        `json:"featuredImage,omitempty"`
	ReadingTime     int           `json:"readingTime"`
	RelatedProducts []string      `json:"relatedProducts"`
}
