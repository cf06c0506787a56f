package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/openblog/backend/database"
	"github.com/openblog/backend/errs"
	"github.com/openblog/backend/models"
	"github.com/openblog/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type mediaHandler struct {
	responder   Responder
	logger      zerolog.Logger
	mediaRepo   *database.MediaRepo
	articleRepo *database.ArticleRepo
	blobStore   *services.BlobStore
}

func newMediaHandler(mediaRepo *database.MediaRepo, articleRepo *database.ArticleRepo, blobStore *services.BlobStore) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()

	return mediaHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		mediaRepo:   mediaRepo,
		articleRepo: articleRepo,
		blobStore:   blobStore,
	}
}

// MediaCollection represents the attachments of an article
type MediaCollection struct {
	Media []*models.Media `json:"media"`
	Total int             `json:"total"`
}

func (h mediaHandler) getArticleMedia() http.HandlerFunc {
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

		media, err := h.mediaRepo.FindByArticle(article.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "media", err))
			return
		}

		h.responder.WriteJSON(w, MediaCollection{Media: media, Total: len(media)})
	}
}

// uploadMedia validates the declared type, extension and size before
// anything touches the blob store, then persists the metadata row.
func (h mediaHandler) uploadMedia() http.HandlerFunc {
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
			h.responder.WriteError(w, errs.NewForbiddenError("you may not attach media to this article"))
			return
		}

		// One byte over the ceiling still parses, so the size check below
		// can reject it with a proper validation error.
		r.Body = http.MaxBytesReader(w, r.Body, models.MaxMediaFileSize+1024*1024)
		if err := r.ParseMultipartForm(models.MaxMediaFileSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("media upload too large or malformed"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		media := models.Media{
			ArticleID:    article.ID,
			FileName:     header.Filename,
			FileType:     r.FormValue("fileType"),
			FileSize:     header.Size,
			Title:        r.FormValue("title"),
			Description:  r.FormValue("description"),
			UploadedByID: user.ID,
		}

		if err := media.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		key := fmt.Sprintf("media/%s/%s-%s", article.ID, uuid.New(), header.Filename)
		url, err := h.blobStore.Store(r.Context(), key, header.Header.Get("Content-Type"), file)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to store media file")
			h.responder.WriteError(w, errs.NewInternalError("failed to store media file"))
			return
		}
		media.FileURL = url

		if err := h.mediaRepo.Add(&media); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "media", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, media)
	}
}

func (h mediaHandler) deleteMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxGetUser(r.Context())

		mediaIDStr := chi.URLParam(r, "mediaID")
		mediaID, err := uuid.Parse(mediaIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid mediaID"))
			return
		}

		media, err := h.mediaRepo.FindByID(mediaID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "media", err))
			return
		}
		if media == nil {
			h.responder.WriteError(w, errs.NewNotFound("media"))
			return
		}

		if media.Article == nil || !canEdit(user, media.Article) {
			h.responder.WriteError(w, errs.NewForbiddenError("you may not delete this media"))
			return
		}

		if err := h.mediaRepo.Delete(media.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "media", err))
			return
		}

		// Best effort; an orphaned blob is not worth failing the request over.
		if key := services.KeyFromURL(media.FileURL); key != "" {
			if err := h.blobStore.Delete(r.Context(), key); err != nil {
				h.logger.Warn().Err(err).Str("key", key).Msg("Failed to delete media blob")
			}
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "media deleted successfully",
		})
	}
}
