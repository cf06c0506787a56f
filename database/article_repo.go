package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/openblog/backend/models"
	"gorm.io/gorm"
)

type ArticleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{db}
}

// ArticleFilter narrows article listings.
type ArticleFilter struct {
	Status       string
	AuthorID     *uuid.UUID
	CategorySlug string
	TagSlug      string
}

// FindAll returns articles matching the filter, newest first.
func (r *ArticleRepo) FindAll(filter ArticleFilter) ([]*models.Article, error) {
	query := r.db.Preload("Author").Preload("Category").Preload("Tags").
		Order("articles.created_at DESC")

	if filter.Status != "" {
		query = query.Where("articles.status = ?", filter.Status)
	}
	if filter.AuthorID != nil {
		query = query.Where("articles.author_id = ?", *filter.AuthorID)
	}
	if filter.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = articles.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.TagSlug != "" {
		query = query.Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.slug = ?", filter.TagSlug)
	}

	var articles []*models.Article
	err := query.Find(&articles).Error
	return articles, err
}

// FindByID returns an article by ID, or nil if no such article exists.
func (r *ArticleRepo) FindByID(id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Preload("Category").Preload("Tags").First(&article, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindBySlug returns an article by slug, or nil if no such article exists.
func (r *ArticleRepo) FindBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Preload("Category").Preload("Tags").
		Where("slug = ?", slug).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Add inserts a new article.
func (r *ArticleRepo) Add(article *models.Article) error {
	return r.db.Create(article).Error
}

// Update updates an existing article.
func (r *ArticleRepo) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// ReplaceTags replaces the article's tag associations.
func (r *ArticleRepo) ReplaceTags(article *models.Article, tags []models.Tag) error {
	return r.db.Model(article).Association("Tags").Replace(tags)
}

// IncrementViews bumps the view counter atomically in the database, so
// concurrent reads of the same article never lose an increment.
func (r *ArticleRepo) IncrementViews(id uuid.UUID) error {
	return r.db.Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error
}

// ResetViews sets the view counter back to zero.
func (r *ArticleRepo) ResetViews(id uuid.UUID) error {
	return r.db.Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("views_count", 0).Error
}

// Delete removes an article. Its comments, ratings and media cascade away.
func (r *ArticleRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Article{}, id).Error
}
