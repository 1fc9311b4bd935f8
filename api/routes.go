package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public and admin route groups. Reads are anonymous;
// every mutating endpoint and both admin listings sit behind the auth gate.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/api/login", handlers.authHandler.login())
		r.Get("/api/site-content", handlers.siteContentHandler.getContent())
		r.Get("/api/projects", handlers.projectHandler.getAllProjects())
		r.Post("/api/contacts", handlers.contactHandler.submitContact())
		r.Post("/api/analytics", handlers.analyticsHandler.recordEvent())
		r.Get("/api/health", handlers.healthHandler.health())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/api/logout", handlers.authHandler.logout())
		r.Put("/api/site-content", handlers.siteContentHandler.putContent())
		r.Post("/api/projects", handlers.projectHandler.createProject())
		r.Put("/api/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/api/projects/{projectID}", handlers.projectHandler.deleteProject())
		r.Post("/api/upload", handlers.uploadHandler.upload())
		r.Get("/api/contacts", handlers.contactHandler.listContacts())
		r.Get("/api/analytics", handlers.analyticsHandler.listEvents())
	})
}

// setupStaticRoutes serves uploaded images and, when configured, the built
// frontend with an SPA index fallback for client-side routes.
func setupStaticRoutes(r chi.Router, uploadsDir, staticDir string) {
	uploadsServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
	r.Get("/uploads/*", uploadsServer.ServeHTTP)

	if staticDir == "" {
		return
	}

	fileServer := http.FileServer(http.Dir(staticDir))
	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		path := filepath.Join(staticDir, filepath.Clean("/"+req.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, req)
			return
		}
		if strings.HasPrefix(req.URL.Path, "/api/") {
			http.NotFound(w, req)
			return
		}
		http.ServeFile(w, req, filepath.Join(staticDir, "index.html"))
	})
}
