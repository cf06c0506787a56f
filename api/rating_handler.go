package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/openblog/backend/database"
	"github.com/openblog/backend/errs"
	"github.com/openblog/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ratingHandler struct {
	responder   Responder
	logger      zerolog.Logger
	ratingRepo  *database.RatingRepo
	articleRepo *database.ArticleRepo
}

func newRatingHandler(ratingRepo *database.RatingRepo, articleRepo *database.ArticleRepo) ratingHandler {
	logger := log.With().Str("handlerName", "ratingHandler").Logger()

	return ratingHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		ratingRepo:  ratingRepo,
		articleRepo: articleRepo,
	}
}

// ArticleRating is the aggregate plus the requesting user's own score.
type ArticleRating struct {
	Average   float64 `json:"average"`
	Count     int64   `json:"count"`
	Stars     string  `json:"stars"`
	UserScore *int    `json:"userScore,omitempty"`
}

type rateRequest struct {
	Score int `json:"score"`
}

func (h ratingHandler) getArticleRating() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		article, err := h.findArticle(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		summary, err := h.ratingRepo.Summary(article.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("aggregate", "ratings", err))
			return
		}

		response := ArticleRating{
			Average: summary.Average,
			Count:   summary.Count,
			Stars:   RatingStars(summary.Average),
		}

		if user := ctxGetUser(r.Context()); user != nil {
			rating, err := h.ratingRepo.FindByArticleAndUser(article.ID, user.ID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "rating", err))
				return
			}
			if rating != nil {
				response.UserScore = &rating.Score
			}
		}

		h.responder.WriteJSON(w, response)
	}
}

// rateArticle upserts the current user's score. Submitting twice overwrites
// the earlier score; it never produces a second row.
func (h ratingHandler) rateArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxGetUser(r.Context())

		article, err := h.findArticle(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req rateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("rating", err))
			return
		}

		rating := models.Rating{
			ArticleID: article.ID,
			UserID:    user.ID,
			Score:     req.Score,
		}

		if err := rating.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.ratingRepo.Upsert(&rating); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save", "rating", err))
			return
		}

		summary, err := h.ratingRepo.Summary(article.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("aggregate", "ratings", err))
			return
		}

		h.responder.WriteJSON(w, ArticleRating{
			Average:   summary.Average,
			Count:     summary.Count,
			Stars:     RatingStars(summary.Average),
			UserScore: &rating.Score,
		})
	}
}

func (h ratingHandler) deleteRating() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxGetUser(r.Context())

		article, err := h.findArticle(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.ratingRepo.Delete(article.ID, user.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "rating", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "rating removed",
		})
	}
}

func (h ratingHandler) findArticle(r *http.Request) (*models.Article, error) {
	slug := chi.URLParam(r, "slug")

	article, err := h.articleRepo.FindBySlug(slug)
	if err != nil {
		return nil, wrapDatabaseError("find", "article", err)
	}
	if article == nil {
		return nil, errs.NewNotFound("article")
	}
	return article, nil
}
