package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/openblog/backend/models"
	"gorm.io/gorm"
)

type MediaRepo struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) *MediaRepo {
	return &MediaRepo{db}
}

// FindByArticle returns the media attached to an article, newest first.
func (r *MediaRepo) FindByArticle(articleID uuid.UUID) ([]*models.Media, error) {
	var media []*models.Media
	err := r.db.Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&media).Error
	return media, err
}

// FindByID returns a media record with its article, or nil.
func (r *MediaRepo) FindByID(id uuid.UUID) (*models.Media, error) {
	var media models.Media
	err := r.db.Preload("Article").First(&media, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

// Add inserts a new media record.
func (r *MediaRepo) Add(media *models.Media) error {
	return r.db.Create(media).Error
}

// Delete removes a media record.
func (r *MediaRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Media{}, id).Error
}
