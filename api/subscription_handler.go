package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/openblog/backend/database"
	"github.com/openblog/backend/errs"
	"github.com/openblog/backend/models"
	"github.com/openblog/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type subscriptionHandler struct {
	responder        Responder
	logger           zerolog.Logger
	subscriptionRepo *database.SubscriptionRepo
	mailer           *services.Mailer
}

func newSubscriptionHandler(subscriptionRepo *database.SubscriptionRepo, mailer *services.Mailer) subscriptionHandler {
	logger := log.With().Str("handlerName", "subscriptionHandler").Logger()

	return subscriptionHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		subscriptionRepo: subscriptionRepo,
		mailer:           mailer,
	}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// subscribe records an email opt-in and sends the confirmation email with
// the unsubscribe link. A logged-in subscriber gets linked to their user.
func (h subscriptionHandler) subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req subscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("subscription", err))
			return
		}

		subscription := models.Subscription{
			Email: strings.ToLower(strings.TrimSpace(req.Email)),
		}
		if user := ctxGetUser(r.Context()); user != nil {
			subscription.UserID = &user.ID
		}

		if err := subscription.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.subscriptionRepo.FindByEmail(subscription.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "subscription", err))
			return
		}
		if existing != nil {
			if existing.IsActive {
				h.responder.WriteError(w, errs.NewAlreadyExists("subscription"))
				return
			}
			// A lapsed subscriber coming back keeps the original token.
			existing.IsActive = true
			if err := h.subscriptionRepo.Update(existing); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update", "subscription", err))
				return
			}
			h.sendConfirmation(existing)
			h.responder.WriteJSON(w, map[string]string{"status": "success", "message": "subscription reactivated"})
			return
		}

		if err := h.subscriptionRepo.Add(&subscription); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "subscription", err))
			return
		}

		h.sendConfirmation(&subscription)

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{"status": "success", "message": "subscribed"})
	}
}

// unsubscribe deactivates the subscription matching the token. Repeating
// the call is harmless.
func (h subscriptionHandler) unsubscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := uuid.Parse(chi.URLParam(r, "token"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid unsubscribe token"))
			return
		}

		subscription, err := h.subscriptionRepo.FindByToken(token)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "subscription", err))
			return
		}
		if subscription == nil {
			h.responder.WriteError(w, errs.NewNotFound("subscription"))
			return
		}

		if subscription.IsActive {
			subscription.IsActive = false
			if err := h.subscriptionRepo.Update(subscription); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update", "subscription", err))
				return
			}
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success", "message": "unsubscribed"})
	}
}

func (h subscriptionHandler) getAllSubscriptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r, h.responder) {
			return
		}

		subscriptions, err := h.subscriptionRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "subscriptions", err))
			return
		}

		h.responder.WriteJSON(w, subscriptions)
	}
}

func (h subscriptionHandler) sendConfirmation(subscription *models.Subscription) {
	// Confirmation mail failures must not fail the subscription itself.
	if err := h.mailer.SendSubscriptionConfirmation(subscription.Email, subscription.UnsubscribeToken); err != nil {
		h.logger.Error().Err(err).Str("email", subscription.Email).Msg("Failed to send confirmation email")
	}
}
