package models

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/openblog/backend/errs"
)

// Role governs moderation and authorship capability.
type Role string

const (
	RoleUser   Role = "user"
	RoleAuthor Role = "author"
	RoleAdmin  Role = "admin"
)

const maxBioLength = 500

// Profile extends a User with a role, bio and avatar. Exactly one per user;
// it is created together with the user at registration time.
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID    uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;unique"`
	Bio       string    `json:"bio" db:"bio" gorm:"type:text"`
	AvatarURL string    `json:"avatarUrl,omitempty" db:"avatar_url" gorm:"type:text"`
	Role      Role      `json:"role" db:"role" gorm:"type:varchar(20);not null;default:'user'"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// IsAuthor reports whether the profile grants authorship capability.
func (p *Profile) IsAuthor() bool {
	return p.Role == RoleAuthor || p.Role == RoleAdmin
}

// IsAdmin reports whether the profile grants administrative capability.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleAuthor, RoleAdmin:
		return true
	}
	return false
}

func (p *Profile) Validate() error {
	if !ValidRole(p.Role) {
		return errs.NewInvalidFieldError("role", "must be one of user, author, admin")
	}
	if utf8.RuneCountInString(p.Bio) > maxBioLength {
		return errs.NewInvalidFieldError("bio", "must be at most 500 characters")
	}
	return nil
}
