package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/openblog/backend/models"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAll returns all categories ordered by name.
func (r *CategoryRepo) FindAll() ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

// FindByID returns a category by ID, or nil if no such category exists.
func (r *CategoryRepo) FindByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindBySlug returns a category by slug, or nil if no such category exists.
func (r *CategoryRepo) FindBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Add inserts a new category.
func (r *CategoryRepo) Add(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update updates an existing category.
func (r *CategoryRepo) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete removes a category. Articles referencing it keep existing with a
// null category via the SET NULL constraint.
func (r *CategoryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Category{}, id).Error
}
