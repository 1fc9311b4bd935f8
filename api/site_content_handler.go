package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/nohithkv/portfolio-backend/database"
	"github.com/nohithkv/portfolio-backend/errs"
	"github.com/nohithkv/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

const maxContentBytes = 10 * 1024 * 1024 // matches the original 10mb body limit

type siteContentHandler struct {
	responder       Responder
	logger          zerolog.Logger
	siteContentRepo *database.SiteContentRepo
}

func newSiteContentHandler(siteContentRepo *database.SiteContentRepo) siteContentHandler {
	logger := log.With().Str("handlerName", "siteContentHandler").Logger()

	return siteContentHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		siteContentRepo: siteContentRepo,
	}
}

// getContent serves the stored document, or the default document when no
// row has ever been written. The public site must always have content to
// render, so an empty store is never an error here.
func (h siteContentHandler) getContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		row, err := h.siteContentRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "site content", err))
			return
		}

		if row == nil {
			h.responder.WriteRawJSON(w, models.DefaultSiteContent())
			return
		}

		h.responder.WriteRawJSON(w, row.Content)
	}
}

// putContent replaces the whole document. The shape is not validated beyond
// being JSON; the editor owns the structure, the server just stores it.
func (h siteContentHandler) putContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxContentBytes))
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		if !json.Valid(body) {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.siteContentRepo.Put(datatypes.JSON(body)); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert", "site content", err))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"success": true})
	}
}
