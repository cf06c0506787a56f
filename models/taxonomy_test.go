package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and hyphenates", "Hello World", "hello-world"},
		{"strips punctuation", "Go, Routines & Channels!", "go-routines-and-channels"},
		{"collapses whitespace", "  spaced   out  ", "spaced-out"},
		{"transliterates accents", "Crème Brûlée", "creme-brulee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestCategoryValidate(t *testing.T) {
	assert.NoError(t, (&Category{Name: "Engineering"}).Validate())
	assert.Error(t, (&Category{Name: ""}).Validate())
	assert.Error(t, (&Category{Name: "   "}).Validate())
	assert.Error(t, (&Category{Name: strings.Repeat("x", 101)}).Validate())
	assert.NoError(t, (&Category{Name: strings.Repeat("я", 100)}).Validate())
}

func TestTagValidate(t *testing.T) {
	assert.NoError(t, (&Tag{Name: "golang"}).Validate())
	assert.Error(t, (&Tag{Name: ""}).Validate())
	assert.Error(t, (&Tag{Name: strings.Repeat("x", 51)}).Validate())
}

func TestCategorySlugDerivedOnce(t *testing.T) {
	c := Category{Name: "Cloud Computing"}
	require.NoError(t, c.BeforeSave(nil))
	assert.Equal(t, "cloud-computing", c.Slug)

	// Renaming never re-derives the slug.
	c.Name = "Distributed Systems"
	require.NoError(t, c.BeforeSave(nil))
	assert.Equal(t, "cloud-computing", c.Slug)
}

func TestTagSlugDerivedOnce(t *testing.T) {
	tag := Tag{Name: "Machine Learning"}
	require.NoError(t, tag.BeforeSave(nil))
	assert.Equal(t, "machine-learning", tag.Slug)

	tag.Name = "Deep Learning"
	require.NoError(t, tag.BeforeSave(nil))
	assert.Equal(t, "machine-learning", tag.Slug)
}
