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

type taxonomyHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.CategoryRepo
	tagRepo      *database.TagRepo
}

func newTaxonomyHandler(categoryRepo *database.CategoryRepo, tagRepo *database.TagRepo) taxonomyHandler {
	logger := log.With().Str("handlerName", "taxonomyHandler").Logger()

	return taxonomyHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type tagRequest struct {
	Name string `json:"name"`
}

func requireAdmin(w http.ResponseWriter, r *http.Request, responder Responder) bool {
	user := ctxGetUser(r.Context())
	if user == nil || user.Profile == nil || !user.Profile.IsAdmin() {
		responder.WriteError(w, errs.NewInsufficientRoleError(string(models.RoleAdmin)))
		return false
	}
	return true
}

func (h taxonomyHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "categories", err))
			return
		}
		h.responder.WriteJSON(w, categories)
	}
}

func (h taxonomyHandler) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := h.categoryRepo.FindBySlug(chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFound("category"))
			return
		}
		h.responder.WriteJSON(w, category)
	}
}

func (h taxonomyHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r, h.responder) {
			return
		}

		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("category", err))
			return
		}

		category := models.Category{Name: req.Name, Description: req.Description}
		if err := category.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.categoryRepo.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "category", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, category)
	}
}

func (h taxonomyHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r, h.responder) {
			return
		}

		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFound("category"))
			return
		}

		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("category", err))
			return
		}

		// Renaming never changes the slug once it is set.
		category.Name = req.Name
		category.Description = req.Description
		if err := category.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.categoryRepo.Update(category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "category", err))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

func (h taxonomyHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r, h.responder) {
			return
		}

		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		if err := h.categoryRepo.Delete(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "category", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "category deleted successfully",
		})
	}
}

func (h taxonomyHandler) getAllTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.tagRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "tags", err))
			return
		}
		h.responder.WriteJSON(w, tags)
	}
}

func (h taxonomyHandler) getTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag, err := h.tagRepo.FindBySlug(chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "tag", err))
			return
		}
		if tag == nil {
			h.responder.WriteError(w, errs.NewNotFound("tag"))
			return
		}
		h.responder.WriteJSON(w, tag)
	}
}

func (h taxonomyHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r, h.responder) {
			return
		}

		var req tagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("tag", err))
			return
		}

		tag := models.Tag{Name: req.Name}
		if err := tag.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.tagRepo.Add(&tag); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "tag", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, tag)
	}
}

func (h taxonomyHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r, h.responder) {
			return
		}

		tagID, err := uuid.Parse(chi.URLParam(r, "tagID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid tagID"))
			return
		}

		if err := h.tagRepo.Delete(tagID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "tag", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "tag deleted successfully",
		})
	}
}
