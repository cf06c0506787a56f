package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/openblog/backend/database"
	"github.com/openblog/backend/errs"
	"github.com/openblog/backend/models"
	"github.com/openblog/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxAvatarSize = 2 << 20 // 2MB

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
	blobStore   *services.BlobStore
}

func newProfileHandler(profileRepo *database.ProfileRepo, blobStore *services.BlobStore) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
		blobStore:   blobStore,
	}
}

func (h profileHandler) getOwnProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxGetUser(r.Context())

		profile, err := h.profileRepo.FindByUserID(user.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFound("profile"))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

type updateProfileRequest struct {
	Bio string `json:"bio"`
}

func (h profileHandler) updateOwnProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxGetUser(r.Context())

		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("profile", err))
			return
		}

		profile, err := h.profileRepo.FindByUserID(user.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFound("profile"))
			return
		}

		profile.Bio = req.Bio
		if err := profile.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.profileRepo.Update(profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "profile", err))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// uploadAvatar stores the avatar image in the blob store and records its URL.
func (h profileHandler) uploadAvatar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxGetUser(r.Context())

		if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("avatar upload too large or malformed"))
			return
		}

		file, header, err := r.FormFile("avatar")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("avatar"))
			return
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		switch ext {
		case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		default:
			h.responder.WriteError(w, errs.NewInvalidFieldError("avatar", "must be an image file"))
			return
		}

		profile, err := h.profileRepo.FindByUserID(user.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFound("profile"))
			return
		}

		key := fmt.Sprintf("avatars/%s%s", user.ID, ext)
		url, err := h.blobStore.Store(r.Context(), key, header.Header.Get("Content-Type"), file)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to store avatar")
			h.responder.WriteError(w, errs.NewInternalError("failed to store avatar"))
			return
		}

		profile.AvatarURL = url
		if err := h.profileRepo.Update(profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "profile", err))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

type bulkRolesRequest struct {
	UserIDs []uuid.UUID `json:"userIds"`
	Role    models.Role `json:"role"`
}

// bulkUpdateRoles changes roles for a batch of users. Admin only; there is
// no self-service promotion path.
func (h profileHandler) bulkUpdateRoles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxGetUser(r.Context())
		if user.Profile == nil || !user.Profile.IsAdmin() {
			h.responder.WriteError(w, errs.NewInsufficientRoleError(string(models.RoleAdmin)))
			return
		}

		var req bulkRolesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("roles", err))
			return
		}

		if len(req.UserIDs) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("userIds"))
			return
		}
		if !models.ValidRole(req.Role) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("role", "must be one of user, author, admin"))
			return
		}

		updated, err := h.profileRepo.UpdateRoles(req.UserIDs, req.Role)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "profiles", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"status":  "success",
			"updated": updated,
		})
	}
}
