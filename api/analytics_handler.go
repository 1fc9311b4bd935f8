package api

import (
	"encoding/json"
	"net/http"

	"github.com/nohithkv/portfolio-backend/database"
	"github.com/nohithkv/portfolio-backend/errs"
	"github.com/nohithkv/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// analyticsListLimit caps the admin listing
const analyticsListLimit = 1000

type analyticsHandler struct {
	responder     Responder
	logger        zerolog.Logger
	analyticsRepo *database.AnalyticsRepo
}

func newAnalyticsHandler(analyticsRepo *database.AnalyticsRepo) analyticsHandler {
	logger := log.With().Str("handlerName", "analyticsHandler").Logger()

	return analyticsHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		analyticsRepo: analyticsRepo,
	}
}

type analyticsRequest struct {
	EventType string          `json:"eventType"`
	Page      string          `json:"page"`
	ProjectID string          `json:"projectId"`
	SessionID string          `json:"sessionId"`
	Metadata  json.RawMessage `json:"metadata"`
}

// recordEvent stores a client-side event reported by the public site
func (h analyticsHandler) recordEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyticsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		metadata := req.Metadata
		if len(metadata) == 0 {
			metadata = json.RawMessage("{}")
		}

		event := models.AnalyticsEvent{
			EventType: req.EventType,
			Page:      req.Page,
			ProjectID: req.ProjectID,
			SessionID: req.SessionID,
			Metadata:  datatypes.JSON(metadata),
		}
		if err := h.analyticsRepo.Add(&event); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "analytics event", err))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"success": true})
	}
}

// listEvents returns the most recent events, newest first
func (h analyticsHandler) listEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := h.analyticsRepo.FindRecent(analyticsListLimit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "analytics events", err))
			return
		}

		if events == nil {
			events = []*models.AnalyticsEvent{}
		}
		h.responder.WriteJSON(w, events)
	}
}
