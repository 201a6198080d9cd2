package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hankookn/teamblog/internal/repository"
)

func newAdminService(t *testing.T) (*AdminPostService, repository.ContentStore) {
	t.Helper()
	store := repository.NewMemory()
	return NewAdminPostService(store), store
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"안녕하세요", "안녕하세요"},
		{"Next.js 14로 블로그 만들기!", "next-js-14로-블로그-만들기"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
		{"UPPER case", "upper-case"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.title), "title %q", tt.title)
	}
}

func TestCreateThenReadBack(t *testing.T) {
	svc, store := newAdminService(t)

	slug, err := svc.Create(&PostInput{
		Title:   LocalizedInput{Ko: "제목"},
		Content: LocalizedInput{Ko: "본문"},
		Excerpt: LocalizedInput{Ko: "요약"},
		Tags:    []string{"go"},
		Status:  "published",
	})
	require.NoError(t, err)
	assert.Equal(t, "제목", slug)

	assert.True(t, store.Exists(repository.CategoryPosts, slug+".ko.mdx"))
	assert.False(t, store.Exists(repository.CategoryPosts, slug+".en.mdx"))

	post, err := svc.Post(slug)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "제목", post.Title.Ko)
	assert.Equal(t, "본문", post.Content.Ko)
	assert.Equal(t, "요약", post.Excerpt.Ko)
	assert.Equal(t, "john-doe", post.AuthorID)
	assert.Equal(t, []string{"go"}, post.Tags)
	assert.Equal(t, "published", post.Status)

	// reading time is derived on read, one word rounds up to a minute
	assert.Equal(t, 1, post.ReadingTime)
}

func TestCreateRequiresKorean(t *testing.T) {
	svc, _ := newAdminService(t)

	_, err := svc.Create(&PostInput{
		Title:   LocalizedInput{En: "Title"},
		Content: LocalizedInput{En: "Content"},
	})
	assert.ErrorIs(t, err, ErrKoreanRequired)

	_, err = svc.Create(&PostInput{
		Title:   LocalizedInput{Ko: "제목"},
		Content: LocalizedInput{En: "only english"},
	})
	assert.ErrorIs(t, err, ErrKoreanRequired)
}

func TestCreateWritesEnglishOnlyWhenComplete(t *testing.T) {
	svc, store := newAdminService(t)

	// english title without content: no english file
	slug, err := svc.Create(&PostInput{
		Title:   LocalizedInput{Ko: "한국어 제목", En: "English Title"},
		Content: LocalizedInput{Ko: "본문"},
	})
	require.NoError(t, err)
	assert.False(t, store.Exists(repository.CategoryPosts, slug+".en.mdx"))

	// both present: english file written
	slug, err = svc.Create(&PostInput{
		Title:   LocalizedInput{Ko: "두 번째", En: "Second"},
		Content: LocalizedInput{Ko: "본문", En: "Body"},
	})
	require.NoError(t, err)
	assert.True(t, store.Exists(repository.CategoryPosts, slug+".en.mdx"))
}

func TestMergeFallback(t *testing.T) {
	svc, _ := newAdminService(t)

	slug, err := svc.Create(&PostInput{
		Title:   LocalizedInput{Ko: "제목"},
		Content: LocalizedInput{Ko: "본문"},
	})
	require.NoError(t, err)

	// only the korean file: en stays unset, ko populated
	post, err := svc.Post(slug)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "제목", post.Title.Ko)
	assert.Nil(t, post.Title.En)
	assert.Nil(t, post.Content.En)

	// add the translation: en overlays without touching ko
	err = svc.Update(slug, &PostInput{
		Title:   LocalizedInput{Ko: "제목", En: "Title"},
		Content: LocalizedInput{Ko: "본문", En: "Body"},
	})
	require.NoError(t, err)

	post, err = svc.Post(slug)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "제목", post.Title.Ko)
	require.NotNil(t, post.Title.En)
	assert.Equal(t, "Title", *post.Title.En)
	require.NotNil(t, post.Content.En)
	assert.Equal(t, "Body", *post.Content.En)
}

func TestPostMissingKoreanReturnsNil(t *testing.T) {
	svc, store := newAdminService(t)
	seedPost(t, store, "only-en.en.mdx", "---\ntitle: English\n---\n\nbody")

	post, err := svc.Post("only-en")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestPostsMergesAndSkipsEnglishOnly(t *testing.T) {
	svc, store := newAdminService(t)
	seedPost(t, store, "hello.ko.mdx", helloKo)
	seedPost(t, store, "hello.en.mdx", "---\ntitle: Hello\n---\n\nEnglish body")
	seedPost(t, store, "second.ko.mdx", secondKo)
	seedPost(t, store, "orphan.en.mdx", "---\ntitle: Orphan\n---\n\nbody")

	posts, err := svc.Posts()
	require.NoError(t, err)
	require.Len(t, posts, 2)

	// newest first
	assert.Equal(t, "second", posts[0].Slug)
	assert.Equal(t, "hello", posts[1].Slug)

	hello := posts[1]
	assert.Equal(t, "안녕하세요", hello.Title.Ko)
	require.NotNil(t, hello.Title.En)
	assert.Equal(t, "Hello", *hello.Title.En)
	assert.Nil(t, posts[0].Title.En)
}

func TestUpdatePreservesPublishedAt(t *testing.T) {
	svc, _ := newAdminService(t)

	slug, err := svc.Create(&PostInput{
		Title:   LocalizedInput{Ko: "제목"},
		Content: LocalizedInput{Ko: "본문"},
	})
	require.NoError(t, err)

	before, err := svc.Post(slug)
	require.NoError(t, err)
	require.NotNil(t, before)

	time.Sleep(10 * time.Millisecond)

	err = svc.Update(slug, &PostInput{
		Title:   LocalizedInput{Ko: "고친 제목"},
		Content: LocalizedInput{Ko: "고친 본문"},
	})
	require.NoError(t, err)

	after, err := svc.Post(slug)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, "고친 제목", after.Title.Ko)
	assert.True(t, after.PublishedAt.Equal(before.PublishedAt),
		"publishedAt must survive updates")
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt) || after.UpdatedAt.Equal(before.UpdatedAt))
}

func TestUpdateRemovesDroppedEnglishFile(t *testing.T) {
	svc, store := newAdminService(t)

	slug, err := svc.Create(&PostInput{
		Title:   LocalizedInput{Ko: "제목", En: "Title"},
		Content: LocalizedInput{Ko: "본문", En: "Body"},
	})
	require.NoError(t, err)
	require.True(t, store.Exists(repository.CategoryPosts, slug+".en.mdx"))

	err = svc.Update(slug, &PostInput{
		Title:   LocalizedInput{Ko: "제목"},
		Content: LocalizedInput{Ko: "본문"},
	})
	require.NoError(t, err)
	assert.False(t, store.Exists(repository.CategoryPosts, slug+".en.mdx"))
}

func TestDeleteRemovesBothLocaleFiles(t *testing.T) {
	svc, store := newAdminService(t)

	slug, err := svc.Create(&PostInput{
		Title:   LocalizedInput{Ko: "지울 글", En: "To Delete"},
		Content: LocalizedInput{Ko: "본문", En: "Body"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(slug))
	assert.False(t, store.Exists(repository.CategoryPosts, slug+".ko.mdx"))
	assert.False(t, store.Exists(repository.CategoryPosts, slug+".en.mdx"))

	post, err := svc.Post(slug)
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestDeleteWithoutEnglishFile(t *testing.T) {
	svc, store := newAdminService(t)

	slug, err := svc.Create(&PostInput{
		Title:   LocalizedInput{Ko: "한국어만"},
		Content: LocalizedInput{Ko: "본문"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(slug))
	assert.False(t, store.Exists(repository.CategoryPosts, slug+".ko.mdx"))
}

func TestSplitPostFilename(t *testing.T) {
	tests := []struct {
		name   string
		slug   string
		locale string
		ok     bool
	}{
		{"hello.ko.mdx", "hello", "ko", true},
		{"my.long.slug.en.mdx", "my.long.slug", "en", true},
		{"noext.ko", "", "", false},
		{"nolocale.mdx", "", "", false},
		{"bad.fr.mdx", "", "", false},
	}
	for _, tt := range tests {
		slug, locale, ok := splitPostFilename(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		if tt.ok {
			assert.Equal(t, tt.slug, slug)
			assert.Equal(t, tt.locale, locale.String())
		}
	}
}
