package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/openblog/backend/models"
	"gorm.io/gorm"
)

type AnnouncementRepo struct {
	db *gorm.DB
}

func NewAnnouncementRepo(db *gorm.DB) *AnnouncementRepo {
	return &AnnouncementRepo{db}
}

// FindActive returns the announcements that should currently be displayed:
// active and not past their expiry, pinned first, newest first within each
// tier.
func (r *AnnouncementRepo) FindActive() ([]*models.Announcement, error) {
	var announcements []*models.Announcement
	err := r.db.
		Where("is_active = ?", true).
		Where("expires_at IS NULL OR expires_at > ?", time.Now()).
		Order("is_pinned DESC, created_at DESC").
		Find(&announcements).Error
	return announcements, err
}

// FindAll returns every announcement in display order.
func (r *AnnouncementRepo) FindAll() ([]*models.Announcement, error) {
	var announcements []*models.Announcement
	err := r.db.Order("is_pinned DESC, created_at DESC").Find(&announcements).Error
	return announcements, err
}

// FindByID returns an announcement by ID, or nil.
func (r *AnnouncementRepo) FindByID(id uuid.UUID) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.db.First(&announcement, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// Add inserts a new announcement.
func (r *AnnouncementRepo) Add(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

// Update saves an announcement through the model hooks, so an announcement
// whose expiry has passed is forced inactive regardless of the caller's
// intent.
func (r *AnnouncementRepo) Update(announcement *models.Announcement) error {
	return r.db.Save(announcement).Error
}

// Delete removes an announcement.
func (r *AnnouncementRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Announcement{}, id).Error
}
