package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/openblog/backend/errs"
	"gorm.io/gorm"
)

// Announcement types.
const (
	AnnouncementInfo    = "info"
	AnnouncementWarning = "warning"
	AnnouncementSuccess = "success"
	AnnouncementDanger  = "danger"
)

const (
	minAnnouncementTitleLength   = 5
	minAnnouncementContentLength = 10
)

// Announcement is a site-wide broadcast message with visibility and expiry
// rules. Expiry is evaluated at read and save time, not by a background job.
type Announcement struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string     `json:"title" db:"title" gorm:"type:varchar(200);not null"`
	Content     string     `json:"content" db:"content" gorm:"type:text;not null"`
	Type        string     `json:"type" db:"type" gorm:"type:varchar(20);not null;default:'info'"`
	IsActive    bool       `json:"isActive" db:"is_active" gorm:"not null;default:true;index:idx_announcements_active_expires,priority:1"`
	IsPinned    bool       `json:"isPinned" db:"is_pinned" gorm:"not null;default:false;index:idx_announcements_pinned_created,priority:1"`
	CreatedByID *uuid.UUID `json:"createdById,omitempty" db:"created_by_id" gorm:"type:uuid"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;index:idx_announcements_pinned_created,priority:2"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty" db:"expires_at" gorm:"type:timestamp;index:idx_announcements_active_expires,priority:2"`

	CreatedBy *User `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:SET NULL"`
}

func ValidAnnouncementType(t string) bool {
	switch t {
	case AnnouncementInfo, AnnouncementWarning, AnnouncementSuccess, AnnouncementDanger:
		return true
	}
	return false
}

// IsExpired reports whether the announcement's expiry time has passed.
func (a *Announcement) IsExpired() bool {
	return a.ExpiresAt != nil && time.Now().After(*a.ExpiresAt)
}

// IsVisible reports whether the announcement should be displayed.
func (a *Announcement) IsVisible() bool {
	return a.IsActive && !a.IsExpired()
}

func (a *Announcement) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(a.Title)) < minAnnouncementTitleLength {
		return errs.NewInvalidFieldError("title", "must be at least 5 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(a.Content)) < minAnnouncementContentLength {
		return errs.NewInvalidFieldError("content", "must be at least 10 characters")
	}
	if !ValidAnnouncementType(a.Type) {
		return errs.NewInvalidFieldError("type", "must be one of info, warning, success, danger")
	}
	return nil
}

// ValidateNew additionally rejects an expiry time already in the past.
// Applies only at creation; on later saves an expired announcement is
// deactivated instead of rejected.
func (a *Announcement) ValidateNew() error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.ExpiresAt != nil && !a.ExpiresAt.After(time.Now()) {
		return errs.NewInvalidFieldError("expiresAt", "must be in the future")
	}
	return nil
}

// BeforeSave deactivates an announcement whose expiry has passed. The flip
// is one-way; there is no automatic re-activation.
func (a *Announcement) BeforeSave(tx *gorm.DB) error {
	if a.IsExpired() {
		a.IsActive = false
	}
	return nil
}
