package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public, authenticated and admin route groups.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes; identify resolves the user when a token is present so
	// reads can be tailored (e.g. authors see their own drafts).
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.identify)

		r.Post("/register", handlers.authHandler.register())
		r.Post("/login", handlers.authHandler.login())

		r.Get("/articles", handlers.articleHandler.getAllArticles())
		r.Get("/article/{slug}", handlers.articleHandler.getArticle())
		r.Get("/article/{slug}/comments", handlers.commentHandler.getArticleComments())
		r.Get("/article/{slug}/rating", handlers.ratingHandler.getArticleRating())
		r.Get("/article/{slug}/media", handlers.mediaHandler.getArticleMedia())

		r.Get("/categories", handlers.taxonomyHandler.getAllCategories())
		r.Get("/categories/{slug}", handlers.taxonomyHandler.getCategory())
		r.Get("/tags", handlers.taxonomyHandler.getAllTags())
		r.Get("/tags/{slug}", handlers.taxonomyHandler.getTag())

		r.Get("/comment/{commentID}/replies", handlers.commentHandler.getCommentReplies())

		r.Get("/announcements", handlers.announcementHandler.getActiveAnnouncements())

		r.Post("/subscribe", handlers.subscriptionHandler.subscribe())
		r.Post("/unsubscribe/{token}", handlers.subscriptionHandler.unsubscribe())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Get("/profile", handlers.profileHandler.getOwnProfile())
		r.Put("/profile", handlers.profileHandler.updateOwnProfile())
		r.Post("/profile/avatar", handlers.profileHandler.uploadAvatar())

		r.Post("/article", handlers.articleHandler.createArticle())
		r.Put("/article/{slug}", handlers.articleHandler.updateArticle())
		r.Delete("/article/{slug}", handlers.articleHandler.deleteArticle())
		r.Post("/article/{slug}/publish", handlers.articleHandler.publishArticle())
		r.Post("/article/{slug}/views/reset", handlers.articleHandler.resetViews())

		r.Post("/article/{slug}/comment", handlers.commentHandler.createComment())
		r.Post("/comment/{commentID}/approve", handlers.commentHandler.setCommentApproval(true))
		r.Post("/comment/{commentID}/reject", handlers.commentHandler.setCommentApproval(false))
		r.Delete("/comment/{commentID}", handlers.commentHandler.deleteComment())

		r.Put("/article/{slug}/rating", handlers.ratingHandler.rateArticle())
		r.Delete("/article/{slug}/rating", handlers.ratingHandler.deleteRating())

		r.Post("/article/{slug}/media", handlers.mediaHandler.uploadMedia())
		r.Delete("/media/{mediaID}", handlers.mediaHandler.deleteMedia())

		// Admin-only; each handler checks the admin predicate itself.
		r.Post("/category", handlers.taxonomyHandler.createCategory())
		r.Put("/category/{categoryID}", handlers.taxonomyHandler.updateCategory())
		r.Delete("/category/{categoryID}", handlers.taxonomyHandler.deleteCategory())
		r.Post("/tag", handlers.taxonomyHandler.createTag())
		r.Delete("/tag/{tagID}", handlers.taxonomyHandler.deleteTag())

		r.Get("/admin/announcements", handlers.announcementHandler.getAllAnnouncements())
		r.Post("/announcement", handlers.announcementHandler.createAnnouncement())
		r.Put("/announcement/{announcementID}", handlers.announcementHandler.updateAnnouncement())
		r.Delete("/announcement/{announcementID}", handlers.announcementHandler.deleteAnnouncement())

		r.Get("/admin/subscriptions", handlers.subscriptionHandler.getAllSubscriptions())
		r.Post("/admin/roles", handlers.profileHandler.bulkUpdateRoles())
	})
}
