package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/openblog/backend/errs"
)

const (
	minCommentLength = 3
	maxCommentLength = 1000
)

// Comment is a threaded discussion entry on an article. Threading is at most
// two levels deep: a reply's parent must itself be a top-level comment.
type Comment struct {
	ID         uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ArticleID  uuid.UUID  `json:"articleId" db:"article_id" gorm:"type:uuid;not null;index:idx_comments_article_created,priority:1"`
	UserID     uuid.UUID  `json:"userId" db:"user_id" gorm:"type:uuid;not null;index:idx_comments_user_created,priority:1"`
	ParentID   *uuid.UUID `json:"parentId,omitempty" db:"parent_id" gorm:"type:uuid"`
	Content    string     `json:"content" db:"content" gorm:"type:varchar(1000);not null"`
	IsApproved bool       `json:"isApproved" db:"is_approved" gorm:"not null;default:true"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;index:idx_comments_article_created,priority:2;index:idx_comments_user_created,priority:2"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Article *Article  `json:"article,omitempty" gorm:"foreignKey:ArticleID;references:ID;constraint:OnDelete:CASCADE"`
	User    *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Parent  *Comment  `json:"-" gorm:"foreignKey:ParentID;references:ID;constraint:OnDelete:CASCADE"`
	Replies []Comment `json:"replies,omitempty" gorm:"foreignKey:ParentID;references:ID"`
}

// IsReply reports whether the comment is a reply to another comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}

func (c *Comment) Validate() error {
	trimmed := strings.TrimSpace(c.Content)
	if trimmed == "" {
		return errs.NewMissingRequiredFieldError("content")
	}
	// Length limits count characters, not bytes.
	length := utf8.RuneCountInString(trimmed)
	if length < minCommentLength {
		return errs.NewInvalidFieldError("content", "must be at least 3 characters")
	}
	if length > maxCommentLength {
		return errs.NewInvalidFieldError("content", "must be at most 1000 characters")
	}
	return nil
}

// ValidateThread checks the threading invariants against the resolved parent.
// The parent must belong to the same article and must itself be top-level.
func (c *Comment) ValidateThread(parent *Comment) error {
	if c.ParentID == nil {
		return nil
	}
	if parent == nil {
		return errs.NewInvalidFieldError("parentId", "parent comment does not exist")
	}
	if parent.ArticleID != c.ArticleID {
		return errs.NewInvalidFieldError("parentId", "parent comment must belong to the same article")
	}
	if parent.ParentID != nil {
		return errs.NewInvalidFieldError("parentId", "comments may be nested at most 2 levels deep")
	}
	return nil
}

// CanBeModeratedBy reports whether the given user may approve, reject or
// delete this comment. Staff and admins moderate everything; authors
// moderate comments on their own articles. Requires the Article association
// to be loaded for the author check.
func (c *Comment) CanBeModeratedBy(user *User, profile *Profile) bool {
	if user == nil || profile == nil {
		return false
	}
	if user.IsStaff || profile.IsAdmin() {
		return true
	}
	if c.Article != nil && c.Article.AuthorID == user.ID && profile.IsAuthor() {
		return true
	}
	return false
}
