package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/openblog/backend/models"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindByID returns a comment with its article loaded, or nil.
func (r *CommentRepo) FindByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Article").First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByArticle returns the approved top-level comments of an article,
// newest first, each with its approved replies.
func (r *CommentRepo) FindByArticle(articleID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.
		Where("article_id = ? AND parent_id IS NULL AND is_approved = ?", articleID, true).
		Preload("User").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_approved = ?", true).Order("created_at ASC")
		}).
		Preload("Replies.User").
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// FindReplies returns the approved replies of a comment.
func (r *CommentRepo) FindReplies(commentID uuid.UUID) ([]*models.Comment, error) {
	var replies []*models.Comment
	err := r.db.
		Where("parent_id = ? AND is_approved = ?", commentID, true).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

// Add inserts a new comment.
func (r *CommentRepo) Add(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// SetApproved flips the moderation flag on a comment.
func (r *CommentRepo) SetApproved(id uuid.UUID, approved bool) error {
	return r.db.Model(&models.Comment{}).
		Where("id = ?", id).
		Update("is_approved", approved).Error
}

// Delete removes a comment; replies cascade away with it.
func (r *CommentRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
