package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/openblog/backend/database"
	"github.com/openblog/backend/errs"
	"github.com/openblog/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type announcementHandler struct {
	responder        Responder
	logger           zerolog.Logger
	announcementRepo *database.AnnouncementRepo
}

func newAnnouncementHandler(announcementRepo *database.AnnouncementRepo) announcementHandler {
	logger := log.With().Str("handlerName", "announcementHandler").Logger()

	return announcementHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		announcementRepo: announcementRepo,
	}
}

// AnnouncementView decorates an announcement with its display badge.
type AnnouncementView struct {
	models.Announcement
	BadgeClass string `json:"badgeClass"`
}

type announcementRequest struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Type      string     `json:"type"`
	IsActive  *bool      `json:"isActive"`
	IsPinned  bool       `json:"isPinned"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

func (h announcementHandler) getActiveAnnouncements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		announcements, err := h.announcementRepo.FindActive()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "announcements", err))
			return
		}

		views := make([]AnnouncementView, 0, len(announcements))
		for _, a := range announcements {
			views = append(views, AnnouncementView{
				Announcement: *a,
				BadgeClass:   AnnouncementBadge(a.Type),
			})
		}

		h.responder.WriteJSON(w, views)
	}
}

func (h announcementHandler) getAllAnnouncements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r, h.responder) {
			return
		}

		announcements, err := h.announcementRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "announcements", err))
			return
		}

		h.responder.WriteJSON(w, announcements)
	}
}

func (h announcementHandler) createAnnouncement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r, h.responder) {
			return
		}
		user := ctxGetUser(r.Context())

		var req announcementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("announcement", err))
			return
		}

		if req.Type == "" {
			req.Type = models.AnnouncementInfo
		}

		announcement := models.Announcement{
			Title:       req.Title,
			Content:     req.Content,
			Type:        req.Type,
			IsActive:    true,
			IsPinned:    req.IsPinned,
			CreatedByID: &user.ID,
			ExpiresAt:   req.ExpiresAt,
		}
		if req.IsActive != nil {
			announcement.IsActive = *req.IsActive
		}

		if err := announcement.ValidateNew(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.announcementRepo.Add(&announcement); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "announcement", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, announcement)
	}
}

// updateAnnouncement saves through the model hooks, so an expired
// announcement comes back inactive no matter what the caller set.
func (h announcementHandler) updateAnnouncement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r, h.responder) {
			return
		}

		announcementID, err := uuid.Parse(chi.URLParam(r, "announcementID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid announcementID"))
			return
		}

		announcement, err := h.announcementRepo.FindByID(announcementID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "announcement", err))
			return
		}
		if announcement == nil {
			h.responder.WriteError(w, errs.NewNotFound("announcement"))
			return
		}

		var req announcementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("announcement", err))
			return
		}

		announcement.Title = req.Title
		announcement.Content = req.Content
		if req.Type != "" {
			announcement.Type = req.Type
		}
		announcement.IsPinned = req.IsPinned
		announcement.ExpiresAt = req.ExpiresAt
		if req.IsActive != nil {
			announcement.IsActive = *req.IsActive
		}

		if err := announcement.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.announcementRepo.Update(announcement); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "announcement", err))
			return
		}

		h.responder.WriteJSON(w, announcement)
	}
}

func (h announcementHandler) deleteAnnouncement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r, h.responder) {
			return
		}

		announcementID, err := uuid.Parse(chi.URLParam(r, "announcementID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid announcementID"))
			return
		}

		if err := h.announcementRepo.Delete(announcementID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "announcement", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "announcement deleted successfully",
		})
	}
}
