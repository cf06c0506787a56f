package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/openblog/backend/models"
	"gorm.io/gorm"
)

type SubscriptionRepo struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) *SubscriptionRepo {
	return &SubscriptionRepo{db}
}

// FindAll returns every subscription, newest first.
func (r *SubscriptionRepo) FindAll() ([]*models.Subscription, error) {
	var subscriptions []*models.Subscription
	err := r.db.Order("created_at DESC").Find(&subscriptions).Error
	return subscriptions, err
}

// FindByEmail returns the subscription for an email address, or nil.
func (r *SubscriptionRepo) FindByEmail(email string) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.Where("email = ?", email).First(&subscription).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

// FindByToken returns the subscription matching an unsubscribe token, or nil.
func (r *SubscriptionRepo) FindByToken(token uuid.UUID) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.Where("unsubscribe_token = ?", token).First(&subscription).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

// Add inserts a new subscription. The unsubscribe token is generated on
// insert and never changes afterwards.
func (r *SubscriptionRepo) Add(subscription *models.Subscription) error {
	return r.db.Create(subscription).Error
}

// Update updates an existing subscription.
func (r *SubscriptionRepo) Update(subscription *models.Subscription) error {
	return r.db.Save(subscription).Error
}
