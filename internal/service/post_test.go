package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hankookn/teamblog/internal/i18n"
	"github.com/hankookn/teamblog/internal/repository"
)

func seedPost(t *testing.T, store repository.ContentStore, name, doc string) {
	t.Helper()
	require.NoError(t, store.Write(repository.CategoryPosts, name, []byte(doc)))
}

const helloKo = `---
title: 안녕하세요
excerpt: 첫 번째 글입니다
author: jane-kim
publishedAt: 2024-03-01T09:00:00Z
tags:
    - next
    - react
status: published
---

# 안녕하세요

Next.js와 React로 블로그를 만들었습니다.
`

const secondKo = `---
title: 두 번째 글
author: jane-kim
publishedAt: 2024-04-01T09:00:00Z
tags:
    - React
status: published
relatedProducts:
    - acme-widget
---

두 번째 본문입니다.
`

const draftKo = `---
title: 초안
publishedAt: 2024-05-01T09:00:00Z
tags:
    - secret
status: draft
---

아직 공개 전입니다.
`

func newPostService(t *testing.T) (*PostService, repository.ContentStore) {
	t.Helper()
	store := repository.NewMemory()
	return NewPostService(store), store
}

func TestPostsSortedNewestFirst(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "hello.ko.mdx", helloKo)
	seedPost(t, store, "second.ko.mdx", secondKo)
	seedPost(t, store, "draft.ko.mdx", draftKo)

	posts, err := svc.Posts(i18n.LocaleKo)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "draft", posts[0].Slug)
	assert.Equal(t, "second", posts[1].Slug)
	assert.Equal(t, "hello", posts[2].Slug)
}

func TestPostsSkipsMalformedFile(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "hello.ko.mdx", helloKo)
	seedPost(t, store, "broken.ko.mdx", "---\n{not yaml\n---\nbody")

	posts, err := svc.Posts(i18n.LocaleKo)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "hello", posts[0].Slug)
}

func TestPostsFiltersByLocaleSuffix(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "hello.ko.mdx", helloKo)
	seedPost(t, store, "hello.en.mdx", strings.ReplaceAll(helloKo, "안녕하세요", "Hello"))

	posts, err := svc.Posts(i18n.LocaleEn)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, i18n.LocaleEn, posts[0].Locale)
	assert.Equal(t, "Hello", posts[0].Frontmatter.Title)
}

func TestPostMissingLocaleReturnsNil(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "hello-world.ko.mdx", helloKo)

	post, err := svc.Post("hello-world", i18n.LocaleEn)
	require.NoError(t, err)
	assert.Nil(t, post)

	post, err = svc.Post("hello-world", i18n.LocaleKo)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.GreaterOrEqual(t, post.ReadingTime, 1)
}

func TestPostSlugMayContainDots(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "v1.2-release.ko.mdx", helloKo)

	post, err := svc.Post("v1.2-release", i18n.LocaleKo)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "v1.2-release", post.Slug)
}

func TestFrontmatterDefaults(t *testing.T) {
	svc, store := newPostService(t)
	body := strings.Repeat("단어 ", 150)
	seedPost(t, store, "bare.ko.mdx", "---\ntitle: 제목만\n---\n\n"+body)

	post, err := svc.Post("bare", i18n.LocaleKo)
	require.NoError(t, err)
	require.NotNil(t, post)

	fm := post.Frontmatter
	assert.Equal(t, "john-doe", fm.Author)
	assert.Equal(t, "draft", fm.Status)
	assert.Empty(t, fm.Tags)
	assert.Empty(t, fm.RelatedProducts)
	assert.Nil(t, fm.UpdatedAt)
	assert.WithinDuration(t, time.Now(), fm.PublishedAt, time.Minute)

	// first 200 characters of the body plus an ellipsis
	assert.True(t, strings.HasSuffix(fm.Excerpt, "..."))
	assert.Equal(t, 203, len([]rune(fm.Excerpt)))
}

func TestLegacyDateAlias(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "old.ko.mdx", "---\ntitle: 옛 글\ndate: 2020-01-15\n---\n\n본문")

	post, err := svc.Post("old", i18n.LocaleKo)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, 2020, post.Frontmatter.PublishedAt.Year())
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty body", "", 0},
		{"whitespace only", "   \n\t  ", 0},
		{"single word", "hello", 1},
		{"exactly one minute", strings.Repeat("word ", 200), 1},
		{"just over one minute", strings.Repeat("word ", 201), 2},
		{"two minutes", strings.Repeat("word ", 400), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadingTime(tt.content))
		})
	}
}

func TestPublishedPostsExcludesDrafts(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "hello.ko.mdx", helloKo)
	seedPost(t, store, "draft.ko.mdx", draftKo)

	posts, err := svc.PublishedPosts(i18n.LocaleKo)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "hello", posts[0].Slug)
}

func TestPostsByTagCaseInsensitive(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "hello.ko.mdx", helloKo)   // tags: next, react
	seedPost(t, store, "second.ko.mdx", secondKo) // tags: React
	seedPost(t, store, "draft.ko.mdx", draftKo)   // draft, tag secret

	posts, err := svc.PostsByTag("REACT", i18n.LocaleKo)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	// drafts never match
	posts, err = svc.PostsByTag("secret", i18n.LocaleKo)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostsByAuthorExactSlug(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "hello.ko.mdx", helloKo)
	seedPost(t, store, "second.ko.mdx", secondKo)

	posts, err := svc.PostsByAuthor("jane-kim", i18n.LocaleKo)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = svc.PostsByAuthor("jane", i18n.LocaleKo)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestAllTagsSortedAndDeduplicated(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "hello.ko.mdx", helloKo)   // next, react
	seedPost(t, store, "second.ko.mdx", secondKo) // React
	seedPost(t, store, "draft.ko.mdx", draftKo)   // secret (draft, excluded)

	tags, err := svc.AllTags(i18n.LocaleKo)
	require.NoError(t, err)

	// case-sensitive dedupe: "react" and "React" are distinct entries
	assert.Equal(t, []string{"React", "next", "react"}, tags)
}

func TestTagStatsCountsCaseInsensitively(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "hello.ko.mdx", helloKo)   // next, react
	seedPost(t, store, "second.ko.mdx", secondKo) // React

	stats, err := svc.TagStats(i18n.LocaleKo)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "react", stats[0].Tag)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, "next", stats[1].Tag)
	assert.Equal(t, 1, stats[1].Count)
}

func TestSearchBlankQueryReturnsAllPublished(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "hello.ko.mdx", helloKo)
	seedPost(t, store, "second.ko.mdx", secondKo)
	seedPost(t, store, "draft.ko.mdx", draftKo)

	published, err := svc.PublishedPosts(i18n.LocaleKo)
	require.NoError(t, err)

	for _, query := range []string{"", "   ", "\t"} {
		results, err := svc.Search(query, i18n.LocaleKo)
		require.NoError(t, err)
		assert.Len(t, results, len(published))
	}
}

func TestSearchMatchesTitleExcerptBodyAndTags(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "hello.ko.mdx", helloKo)
	seedPost(t, store, "second.ko.mdx", secondKo)

	tests := []struct {
		query string
		slugs []string
	}{
		{"안녕", []string{"hello"}},          // title
		{"첫 번째", []string{"hello"}},        // excerpt
		{"블로그를", []string{"hello"}},        // body
		{"NEXT", []string{"hello"}},        // tag, case-insensitive
		{"글", []string{"second", "hello"}}, // both
		{"없는단어", nil},
	}
	for _, tt := range tests {
		results, err := svc.Search(tt.query, i18n.LocaleKo)
		require.NoError(t, err)
		var slugs []string
		for _, p := range results {
			slugs = append(slugs, p.Slug)
		}
		assert.Equal(t, tt.slugs, slugs, "query %q", tt.query)
	}
}

func TestSearchStripsMarkdownFromBody(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "md.ko.mdx", "---\ntitle: t\nstatus: published\n---\n\n`co*de`word here")

	// "codeword" only exists once backticks and asterisks are stripped
	results, err := svc.Search("codeword", i18n.LocaleKo)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "md", results[0].Slug)
}

func TestRelatedPostsForProduct(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "hello.ko.mdx", helloKo)
	seedPost(t, store, "second.ko.mdx", secondKo) // relatedProducts: acme-widget

	posts, err := svc.RelatedPosts("acme-widget", i18n.LocaleKo)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "second", posts[0].Slug)

	posts, err = svc.RelatedPosts("other-product", i18n.LocaleKo)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestExistsInLocale(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "hello.ko.mdx", helloKo)

	assert.True(t, svc.ExistsInLocale("hello", i18n.LocaleKo))
	assert.False(t, svc.ExistsInLocale("hello", i18n.LocaleEn))
}

func TestRenderedPost(t *testing.T) {
	svc, store := newPostService(t)
	seedPost(t, store, "hello.ko.mdx", helloKo)

	post, err := svc.RenderedPost("hello", i18n.LocaleKo)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Contains(t, post.HTMLContent, "<h1")
	assert.Contains(t, post.Content, "# 안녕하세요")
}
