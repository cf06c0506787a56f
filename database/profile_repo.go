package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/openblog/backend/models"
	"gorm.io/gorm"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// FindByUserID returns the profile belonging to the given user, or nil.
func (r *ProfileRepo) FindByUserID(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update updates an existing profile.
func (r *ProfileRepo) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

// UpdateRoles sets the role for every listed user in one statement. Role
// changes are an admin-only bulk operation.
func (r *ProfileRepo) UpdateRoles(userIDs []uuid.UUID, role models.Role) (int64, error) {
	result := r.db.Model(&models.Profile{}).
		Where("user_id IN ?", userIDs).
		Update("role", role)
	return result.RowsAffected, result.Error
}
