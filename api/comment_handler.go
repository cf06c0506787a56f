package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/openblog/backend/database"
	"github.com/openblog/backend/errs"
	"github.com/openblog/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo *database.CommentRepo
	articleRepo *database.ArticleRepo
}

func newCommentHandler(commentRepo *database.CommentRepo, articleRepo *database.ArticleRepo) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

// CommentCollection represents the approved comment thread of an article
type CommentCollection struct {
	Comments []*models.Comment `json:"comments"`
	Total    int               `json:"total"`
}

type commentRequest struct {
	Content  string     `json:"content"`
	ParentID *uuid.UUID `json:"parentId"`
}

func (h commentHandler) getArticleComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		article, err := h.articleRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "article", err))
			return
		}
		if article == nil {
			h.responder.WriteError(w, errs.NewNotFound("article"))
			return
		}

		comments, err := h.commentRepo.FindByArticle(article.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comments", err))
			return
		}

		h.responder.WriteJSON(w, CommentCollection{Comments: comments, Total: len(comments)})
	}
}

// createComment adds a comment or reply. Replies may only target top-level
// comments of the same article; deeper nesting is rejected.
func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxGetUser(r.Context())
		slug := chi.URLParam(r, "slug")

		article, err := h.articleRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "article", err))
			return
		}
		if article == nil {
			h.responder.WriteError(w, errs.NewNotFound("article"))
			return
		}

		var req commentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("comment", err))
			return
		}

		comment := models.Comment{
			ArticleID: article.ID,
			UserID:    user.ID,
			ParentID:  req.ParentID,
			Content:   req.Content,
		}

		if err := comment.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if comment.ParentID != nil {
			parent, err := h.commentRepo.FindByID(*comment.ParentID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "parent comment", err))
				return
			}
			if err := comment.ValidateThread(parent); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		if err := h.commentRepo.Add(&comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "comment", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, comment)
	}
}

// getCommentReplies returns the approved replies of a top-level comment.
func (h commentHandler) getCommentReplies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comment, err := h.findComment(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		replies, err := h.commentRepo.FindReplies(comment.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "replies", err))
			return
		}

		h.responder.WriteJSON(w, CommentCollection{Comments: replies, Total: len(replies)})
	}
}

// setCommentApproval approves or rejects a comment, guarded by the
// moderation predicate.
func (h commentHandler) setCommentApproval(approved bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxGetUser(r.Context())

		comment, err := h.findComment(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if !comment.CanBeModeratedBy(user, user.Profile) {
			h.responder.WriteError(w, errs.NewForbiddenError("you may not moderate this comment"))
			return
		}

		if err := h.commentRepo.SetApproved(comment.ID, approved); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "comment", err))
			return
		}

		comment.IsApproved = approved
		h.responder.WriteJSON(w, comment)
	}
}

func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxGetUser(r.Context())

		comment, err := h.findComment(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if !comment.CanBeModeratedBy(user, user.Profile) {
			h.responder.WriteError(w, errs.NewForbiddenError("you may not moderate this comment"))
			return
		}

		if err := h.commentRepo.Delete(comment.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "comment", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "comment deleted successfully",
		})
	}
}

func (h commentHandler) findComment(r *http.Request) (*models.Comment, error) {
	commentIDStr := chi.URLParam(r, "commentID")
	commentID, err := uuid.Parse(commentIDStr)
	if err != nil {
		return nil, errs.NewBadRequestError("invalid commentID")
	}

	comment, err := h.commentRepo.FindByID(commentID)
	if err != nil {
		return nil, wrapDatabaseError("find", "comment", err)
	}
	if comment == nil {
		return nil, errs.NewNotFound("comment")
	}
	return comment, nil
}
