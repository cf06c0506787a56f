package database

import (
	"github.com/openblog/backend/models"
	"gorm.io/gorm"
)

type Database struct {
	userRepo         *UserRepo
	profileRepo      *ProfileRepo
	categoryRepo     *CategoryRepo
	tagRepo          *TagRepo
	articleRepo      *ArticleRepo
	commentRepo      *CommentRepo
	ratingRepo       *RatingRepo
	mediaRepo        *MediaRepo
	subscriptionRepo *SubscriptionRepo
	announcementRepo *AnnouncementRepo

	db *gorm.DB
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:         NewUserRepo(db),
		profileRepo:      NewProfileRepo(db),
		categoryRepo:     NewCategoryRepo(db),
		tagRepo:          NewTagRepo(db),
		articleRepo:      NewArticleRepo(db),
		commentRepo:      NewCommentRepo(db),
		ratingRepo:       NewRatingRepo(db),
		mediaRepo:        NewMediaRepo(db),
		subscriptionRepo: NewSubscriptionRepo(db),
		announcementRepo: NewAnnouncementRepo(db),
		db:               db,
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) ArticleRepo() *ArticleRepo {
	return d.articleRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) RatingRepo() *RatingRepo {
	return d.ratingRepo
}

func (d Database) MediaRepo() *MediaRepo {
	return d.mediaRepo
}

func (d Database) SubscriptionRepo() *SubscriptionRepo {
	return d.subscriptionRepo
}

func (d Database) AnnouncementRepo() *AnnouncementRepo {
	return d.announcementRepo
}

// Migrate creates or updates the schema for every entity.
func (d Database) Migrate() error {
	return d.db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Category{},
		&models.Tag{},
		&models.Article{},
		&models.Comment{},
		&models.Rating{},
		&models.Media{},
		&models.Subscription{},
		&models.Announcement{},
	)
}
