package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openblog/backend/errs"
	"gorm.io/gorm"
)

// Subscription is an email opt-in record, optionally linked to a user.
// The unsubscribe token is generated once and never changes.
type Subscription struct {
	ID               uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Email            string     `json:"email" db:"email" gorm:"type:varchar(254);not null;unique"`
	UserID           *uuid.UUID `json:"userId,omitempty" db:"user_id" gorm:"type:uuid;unique"`
	IsActive         bool       `json:"isActive" db:"is_active" gorm:"not null;default:true"`
	UnsubscribeToken uuid.UUID  `json:"-" db:"unsubscribe_token" gorm:"type:uuid;not null;unique"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:SET NULL"`
}

func (s *Subscription) Validate() error {
	email := strings.TrimSpace(s.Email)
	if email == "" {
		return errs.NewMissingRequiredFieldError("email")
	}
	if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return errs.NewInvalidFieldError("email", "must be a valid email address")
	}
	return nil
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.UnsubscribeToken == uuid.Nil {
		s.UnsubscribeToken = uuid.New()
	}
	return nil
}
