package api

import (
	"encoding/json"
	"net/http"

	"github.com/nohithkv/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	authority authority
}

func newAuthHandler(authority authority) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		authority: authority,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login exchanges the admin username/password pair for a bearer token.
// Failures carry no detail beyond the static message.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if !h.authority.checkCredentials(req.Username, req.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Invalid credentials"))
			return
		}

		token, err := h.authority.issueToken()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("username", req.Username).Msg("admin logged in")
		h.responder.WriteJSON(w, map[string]string{"token": token})
	}
}

// logout exists for the frontend's sake. Tokens are stateless, so there is
// no server-side session to tear down; the client discards its copy.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if username, err := ctxGetUsername(r.Context()); err == nil {
			h.logger.Info().Str("username", username).Msg("admin logged out")
		}
		h.responder.WriteJSON(w, map[string]bool{"success": true})
	}
}
