package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validArticle() Article {
	return Article{
		Title:   "Understanding Goroutines",
		Content: "Some long-form content about goroutines.",
		Status:  StatusDraft,
	}
}

func TestArticleValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		a := validArticle()
		assert.NoError(t, a.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		a := validArticle()
		a.Title = "  "
		assert.Error(t, a.Validate())
	})

	t.Run("title too long", func(t *testing.T) {
		a := validArticle()
		a.Title = strings.Repeat("x", 201)
		assert.Error(t, a.Validate())
	})

	t.Run("multibyte title at limit", func(t *testing.T) {
		a := validArticle()
		a.Title = strings.Repeat("я", 200)
		assert.NoError(t, a.Validate())
	})

	t.Run("missing content", func(t *testing.T) {
		a := validArticle()
		a.Content = ""
		assert.Error(t, a.Validate())
	})

	t.Run("excerpt too long", func(t *testing.T) {
		a := validArticle()
		a.Excerpt = strings.Repeat("x", 501)
		assert.Error(t, a.Validate())
	})

	t.Run("unknown status", func(t *testing.T) {
		a := validArticle()
		a.Status = "archived"
		assert.Error(t, a.Validate())
	})
}

func TestValidArticleStatus(t *testing.T) {
	assert.True(t, ValidArticleStatus(StatusDraft))
	assert.True(t, ValidArticleStatus(StatusPublished))
	assert.False(t, ValidArticleStatus(""))
	assert.False(t, ValidArticleStatus("pending"))
}

func TestArticleIsPublished(t *testing.T) {
	assert.False(t, (&Article{Status: StatusDraft}).IsPublished())
	assert.True(t, (&Article{Status: StatusPublished}).IsPublished())
}

func TestArticleSlugDerivedOnce(t *testing.T) {
	a := Article{Title: "My First Post!"}
	require.NoError(t, a.BeforeSave(nil))
	assert.Equal(t, "my-first-post", a.Slug)

	// Editing the title leaves the slug untouched.
	a.Title = "My First Post (edited)"
	require.NoError(t, a.BeforeSave(nil))
	assert.Equal(t, "my-first-post", a.Slug)
}
