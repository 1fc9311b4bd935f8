package api

import (
	"github.com/nohithkv/portfolio-backend/config"
	"github.com/nohithkv/portfolio-backend/database"
	"github.com/nohithkv/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, cfg map[string]string) *routeHandlers {
	authority := newAuthority(cfg)
	notifier := services.NewContactNotifier(cfg)
	uploadsDir := config.GetString(cfg, "UPLOADS_DIR", "uploads")

	return &routeHandlers{
		authHandler:        newAuthHandler(authority),
		siteContentHandler: newSiteContentHandler(database.SiteContentRepo()),
		projectHandler:     newProjectHandler(database.ProjectRepo()),
		contactHandler:     newContactHandler(database.ContactRepo(), notifier),
		analyticsHandler:   newAnalyticsHandler(database.AnalyticsRepo()),
		uploadHandler:      newUploadHandler(uploadsDir),
		healthHandler:      newHealthHandler(cfg),
	}
}
