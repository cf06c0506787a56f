package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/openblog/backend/errs"
	"gorm.io/gorm"
)

// Article statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article is the central content entity, owned by its author.
type Article struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string     `json:"title" db:"title" gorm:"type:varchar(200);not null"`
	Slug        string     `json:"slug" db:"slug" gorm:"type:varchar(200);not null;unique"`
	Content     string     `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt     string     `json:"excerpt,omitempty" db:"excerpt" gorm:"type:varchar(500)"`
	AuthorID    uuid.UUID  `json:"authorId" db:"author_id" gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty" db:"category_id" gorm:"type:uuid"`
	Status      string     `json:"status" db:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	ViewsCount  int64      `json:"viewsCount" db:"views_count" gorm:"not null;default:0"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" db:"published_at" gorm:"type:timestamp"`

	Author   *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
	Tags     []Tag     `json:"tags,omitempty" gorm:"many2many:article_tags"`
}

// IsPublished reports whether the article is visible to readers.
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}

func ValidArticleStatus(status string) bool {
	return status == StatusDraft || status == StatusPublished
}

func (a *Article) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if utf8.RuneCountInString(a.Title) > 200 {
		return errs.NewInvalidFieldError("title", "must be at most 200 characters")
	}
	if strings.TrimSpace(a.Content) == "" {
		return errs.NewMissingRequiredFieldError("content")
	}
	if utf8.RuneCountInString(a.Excerpt) > 500 {
		return errs.NewInvalidFieldError("excerpt", "must be at most 500 characters")
	}
	if !ValidArticleStatus(a.Status) {
		return errs.NewInvalidFieldError("status", "must be draft or published")
	}
	return nil
}

// BeforeSave derives the slug from the title on first save only. An
// already-set slug is never re-derived, even if the title changes.
func (a *Article) BeforeSave(tx *gorm.DB) error {
	if a.Slug == "" {
		a.Slug = Slugify(a.Title)
	}
	return nil
}
