package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/openblog/backend/errs"
	"gorm.io/gorm"
)

// Category classifies articles. Deleting a category leaves its articles
// uncategorized rather than deleting them.
type Category struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"type:varchar(100);not null;unique"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:varchar(100);not null;unique"`
	Description string    `json:"description,omitempty" db:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// Tag is a free-form label for articles.
type Tag struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" db:"name" gorm:"type:varchar(50);not null;unique"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:varchar(50);not null;unique"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// Slugify derives a lowercase, hyphen-separated, ASCII-transliterated slug
// from a human-readable name. Slugs are derived once and never re-derived;
// a collision surfaces as a unique-constraint conflict.
func Slugify(name string) string {
	return slug.Make(name)
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if utf8.RuneCountInString(c.Name) > 100 {
		return errs.NewInvalidFieldError("name", "must be at most 100 characters")
	}
	return nil
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return nil
}

func (t *Tag) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if utf8.RuneCountInString(t.Name) > 50 {
		return errs.NewInvalidFieldError("name", "must be at most 50 characters")
	}
	return nil
}

func (t *Tag) BeforeSave(tx *gorm.DB) error {
	if t.Slug == "" {
		t.Slug = Slugify(t.Name)
	}
	return nil
}
