package api

import (
	"net/http"

	"github.com/nohithkv/portfolio-backend/config"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder Responder
	config    map[string]string
}

func newHealthHandler(cfg map[string]string) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder: NewResponder(logger),
		config:    cfg,
	}
}

func checkmark(set bool) string {
	if set {
		return "set"
	}
	return "missing"
}

// health reports which required configuration is present, without echoing
// any values.
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"status": "ok",
			"env": map[string]string{
				"DB_TYPE":    config.GetString(h.config, "DB_TYPE", "sqlite"),
				"DB_HOST":    checkmark(config.Has(h.config, "DB_HOST")),
				"JWT_SECRET": checkmark(config.Has(h.config, "JWT_SECRET")),
				"ADMIN_USER": config.GetString(h.config, "ADMIN_USER", "admin"),
			},
		})
	}
}
