package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/openblog/backend/database"
	"github.com/openblog/backend/errs"
	"github.com/openblog/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type articleHandler struct {
	responder    Responder
	logger       zerolog.Logger
	articleRepo  *database.ArticleRepo
	categoryRepo *database.CategoryRepo
	tagRepo      *database.TagRepo
}

func newArticleHandler(articleRepo *database.ArticleRepo, categoryRepo *database.CategoryRepo, tagRepo *database.TagRepo) articleHandler {
	logger := log.With().Str("handlerName", "articleHandler").Logger()

	return articleHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

// ArticleCollection represents multiple articles
type ArticleCollection struct {
	Articles []*models.Article `json:"articles"`
	Total    int               `json:"total"`
}

type articleRequest struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Excerpt    string     `json:"excerpt"`
	CategoryID *uuid.UUID `json:"categoryId"`
	Tags       []string   `json:"tags"`
	Status     string     `json:"status"`
}

// canEdit reports whether the user may mutate the article: the owning
// author, or an admin.
func canEdit(user *models.User, article *models.Article) bool {
	if user == nil || user.Profile == nil {
		return false
	}
	if user.Profile.IsAdmin() {
		return true
	}
	return article.AuthorID == user.ID && user.Profile.IsAuthor()
}

// getAllArticles lists published articles. Authenticated authors can list
// their own articles in any status with ?mine=true.
func (h articleHandler) getAllArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxGetUser(r.Context())

		filter := database.ArticleFilter{
			Status:       models.StatusPublished,
			CategorySlug: r.URL.Query().Get("category"),
			TagSlug:      r.URL.Query().Get("tag"),
		}

		if r.URL.Query().Get("mine") == "true" && user != nil {
			filter.AuthorID = &user.ID
			filter.Status = r.URL.Query().Get("status")
			if filter.Status != "" && !models.ValidArticleStatus(filter.Status) {
				h.responder.WriteError(w, errs.NewInvalidFieldError("status", "must be draft or published"))
				return
			}
		}

		articles, err := h.articleRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "articles", err))
			return
		}

		h.responder.WriteJSON(w, ArticleCollection{Articles: articles, Total: len(articles)})
	}
}

// getArticle returns one article by slug. Reading a published article bumps
// its view counter atomically; drafts are visible to their author and
// admins only.
func (h articleHandler) getArticle() http.HandlerFunc {
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

		user := ctxGetUser(r.Context())
		if !article.IsPublished() && !canEdit(user, article) {
			h.responder.WriteError(w, errs.NewNotFound("article"))
			return
		}

		if article.IsPublished() {
			if err := h.articleRepo.IncrementViews(article.ID); err != nil {
				h.logger.Error().Err(err).Str("slug", slug).Msg("Failed to increment views")
			} else {
				article.ViewsCount++
			}
		}

		h.responder.WriteJSON(w, article)
	}
}

func (h articleHandler) createArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxGetUser(r.Context())
		if user.Profile == nil || !user.Profile.IsAuthor() {
			h.responder.WriteError(w, errs.NewInsufficientRoleError(string(models.RoleAuthor)))
			return
		}

		var req articleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("article", err))
			return
		}

		if req.Status == "" {
			req.Status = models.StatusDraft
		}

		article := models.Article{
			Title:      req.Title,
			Content:    req.Content,
			Excerpt:    req.Excerpt,
			AuthorID:   user.ID,
			CategoryID: req.CategoryID,
			Status:     req.Status,
		}
		if article.Status == models.StatusPublished {
			now := time.Now()
			article.PublishedAt = &now
		}

		if err := article.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.checkCategory(req.CategoryID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tags, err := h.resolveTags(req.Tags)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		article.Tags = tags

		if err := h.articleRepo.Add(&article); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "article", err))
			return
		}

		created, err := h.articleRepo.FindByID(article.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "article", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

func (h articleHandler) updateArticle() http.HandlerFunc {
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

		if !canEdit(user, article) {
			h.responder.WriteError(w, errs.NewForbiddenError("you may not edit this article"))
			return
		}

		var req articleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("article", err))
			return
		}

		// The slug stays as derived on first save, even when the title changes.
		article.Title = req.Title
		article.Content = req.Content
		article.Excerpt = req.Excerpt
		article.CategoryID = req.CategoryID
		if req.Status != "" {
			if !models.ValidArticleStatus(req.Status) {
				h.responder.WriteError(w, errs.NewInvalidFieldError("status", "must be draft or published"))
				return
			}
			if req.Status == models.StatusPublished && article.PublishedAt == nil {
				now := time.Now()
				article.PublishedAt = &now
			}
			article.Status = req.Status
		}

		if err := article.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.checkCategory(req.CategoryID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tags, err := h.resolveTags(req.Tags)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		article.Tags = nil
		if err := h.articleRepo.Update(article); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "article", err))
			return
		}
		if err := h.articleRepo.ReplaceTags(article, tags); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update tags of", "article", err))
			return
		}

		updated, err := h.articleRepo.FindByID(article.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "article", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// publishArticle transitions a draft to published and stamps published_at
// on the first transition.
func (h articleHandler) publishArticle() http.HandlerFunc {
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

		if !canEdit(user, article) {
			h.responder.WriteError(w, errs.NewForbiddenError("you may not publish this article"))
			return
		}

		article.Status = models.StatusPublished
		if article.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
		}

		if err := h.articleRepo.Update(article); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "article", err))
			return
		}

		h.responder.WriteJSON(w, article)
	}
}

// resetViews zeroes the view counter. Admin only.
func (h articleHandler) resetViews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r, h.responder) {
			return
		}
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

		if err := h.articleRepo.ResetViews(article.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "article", err))
			return
		}

		article.ViewsCount = 0
		h.responder.WriteJSON(w, article)
	}
}

func (h articleHandler) deleteArticle() http.HandlerFunc {
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

		if !canEdit(user, article) {
			h.responder.WriteError(w, errs.NewForbiddenError("you may not delete this article"))
			return
		}

		if err := h.articleRepo.Delete(article.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "article", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "article deleted successfully",
		})
	}
}

// checkCategory verifies that a referenced category exists.
func (h articleHandler) checkCategory(id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	category, err := h.categoryRepo.FindByID(*id)
	if err != nil {
		return wrapDatabaseError("find", "category", err)
	}
	if category == nil {
		return errs.NewInvalidFieldError("categoryId", "no such category")
	}
	return nil
}

// resolveTags maps tag names to tag rows, creating the ones that don't
// exist yet.
func (h articleHandler) resolveTags(names []string) ([]models.Tag, error) {
	var cleaned []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			cleaned = append(cleaned, name)
		}
	}
	if len(cleaned) == 0 {
		return nil, nil
	}

	existing, err := h.tagRepo.FindByNames(cleaned)
	if err != nil {
		return nil, wrapDatabaseError("find", "tags", err)
	}

	byName := make(map[string]models.Tag, len(existing))
	for _, tag := range existing {
		byName[tag.Name] = tag
	}

	tags := make([]models.Tag, 0, len(cleaned))
	for _, name := range cleaned {
		if tag, ok := byName[name]; ok {
			tags = append(tags, tag)
			continue
		}
		tag := models.Tag{Name: name}
		if err := tag.Validate(); err != nil {
			return nil, err
		}
		if err := h.tagRepo.Add(&tag); err != nil {
			return nil, wrapDatabaseError("create", "tag", err)
		}
		byName[name] = tag
		tags = append(tags, tag)
	}
	return tags, nil
}
