package api

import (
	"context"

	"github.com/openblog/backend/config"
	"github.com/openblog/backend/database"
	"github.com/openblog/backend/services"
)

type routeHandlers struct {
	authHandler         authHandler
	profileHandler      profileHandler
	articleHandler      articleHandler
	taxonomyHandler     taxonomyHandler
	commentHandler      commentHandler
	ratingHandler       ratingHandler
	mediaHandler        mediaHandler
	subscriptionHandler subscriptionHandler
	announcementHandler announcementHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, c map[string]string) (*routeHandlers, error) {
	mailer := services.NewMailer(
		config.GetString(c, "RESEND_API_KEY", ""),
		config.GetString(c, "RESEND_FROM_EMAIL", "Blog <noreply@localhost>"),
		config.GetString(c, "SITE_URL", "http://localhost:8080"),
	)

	blobStore, err := services.NewBlobStore(
		context.Background(),
		config.GetString(c, "S3_BUCKET", ""),
		config.GetString(c, "AWS_REGION", "us-east-1"),
	)
	if err != nil {
		return nil, err
	}

	jwtSecret := config.GetString(c, "JWT_SECRET", "")

	return &routeHandlers{
		authHandler:         newAuthHandler(database.UserRepo(), jwtSecret),
		profileHandler:      newProfileHandler(database.ProfileRepo(), blobStore),
		articleHandler:      newArticleHandler(database.ArticleRepo(), database.CategoryRepo(), database.TagRepo()),
		taxonomyHandler:     newTaxonomyHandler(database.CategoryRepo(), database.TagRepo()),
		commentHandler:      newCommentHandler(database.CommentRepo(), database.ArticleRepo()),
		ratingHandler:       newRatingHandler(database.RatingRepo(), database.ArticleRepo()),
		mediaHandler:        newMediaHandler(database.MediaRepo(), database.ArticleRepo(), blobStore),
		subscriptionHandler: newSubscriptionHandler(database.SubscriptionRepo(), mailer),
		announcementHandler: newAnnouncementHandler(database.AnnouncementRepo()),
	}, nil
}
