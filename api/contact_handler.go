package api

import (
	"encoding/json"
	"net/http"

	"github.com/nohithkv/portfolio-backend/database"
	"github.com/nohithkv/portfolio-backend/errs"
	"github.com/nohithkv/portfolio-backend/models"
	"github.com/nohithkv/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	notifier    *services.ContactNotifier
}

func newContactHandler(contactRepo *database.ContactRepo, notifier *services.ContactNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// submitContact stores a visitor contact-form submission. This is the one
// endpoint with input validation: a submission without name, email, and
// message is useless to follow up on.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Name == "" || req.Email == "" || req.Message == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Name, email, and message are required"))
			return
		}

		msg := models.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		}
		if err := h.contactRepo.Add(&msg); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact", err))
			return
		}

		// Notification is best-effort; the visitor's submission already
		// succeeded and a mail failure must not undo that.
		if h.notifier.Enabled() {
			go func() {
				if err := h.notifier.Notify(msg); err != nil {
					h.logger.Error().Err(err).Msg("Failed to send contact notification")
				}
			}()
		}

		h.responder.WriteJSON(w, map[string]bool{"success": true})
	}
}

// listContacts returns all submissions, newest first
func (h contactHandler) listContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contacts", err))
			return
		}

		if messages == nil {
			messages = []*models.ContactMessage{}
		}
		h.responder.WriteJSON(w, messages)
	}
}
