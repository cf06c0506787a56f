package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/openblog/backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepo struct {
	db *gorm.DB
}

func NewRatingRepo(db *gorm.DB) *RatingRepo {
	return &RatingRepo{db}
}

// Upsert writes the user's score for an article. A second submission by the
// same user overwrites the existing row instead of conflicting, so the
// operation is deterministic under concurrent writes.
func (r *RatingRepo) Upsert(rating *models.Rating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "article_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(rating).Error
}

// FindByArticleAndUser returns the user's rating for an article, or nil.
func (r *RatingRepo) FindByArticleAndUser(articleID, userID uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("article_id = ? AND user_id = ?", articleID, userID).First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Summary aggregates the article's ratings. Zero ratings yield an average
// of 0, not an error.
func (r *RatingRepo) Summary(articleID uuid.UUID) (*models.RatingSummary, error) {
	var row struct {
		Average float64
		Count   int64
	}
	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) AS average, COUNT(*) AS count").
		Where("article_id = ?", articleID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &models.RatingSummary{
		Average: models.RoundAverage(row.Average),
		Count:   row.Count,
	}, nil
}

// Delete removes the user's rating for an article.
func (r *RatingRepo) Delete(articleID, userID uuid.UUID) error {
	return r.db.Where("article_id = ? AND user_id = ?", articleID, userID).
		Delete(&models.Rating{}).Error
}
