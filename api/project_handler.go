package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nohithkv/portfolio-backend/database"
	"github.com/nohithkv/portfolio-backend/errs"
	"github.com/nohithkv/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// createProjectRequest carries the camelCase field names the frontend sends.
type createProjectRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	TechStack       []string `json:"techStack"`
	Category        string   `json:"category"`
	Image           string   `json:"image"`
	GithubURL       string   `json:"githubUrl"`
	DemoURL         string   `json:"demoUrl"`
	DisplayOrder    int      `json:"displayOrder"`
}

func (req createProjectRequest) model() (models.Project, error) {
	if req.TechStack == nil {
		req.TechStack = []string{}
	}
	encoded, err := json.Marshal(req.TechStack)
	if err != nil {
		return models.Project{}, err
	}

	return models.Project{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		TechStack:       datatypes.JSON(encoded),
		Category:        req.Category,
		ImageURL:        req.Image,
		GithubURL:       req.GithubURL,
		DemoURL:         req.DemoURL,
		DisplayOrder:    req.DisplayOrder,
	}, nil
}

// getAllProjects retrieves all projects in display order
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		views := make([]models.ProjectView, 0, len(projects))
		for _, project := range projects {
			views = append(views, project.View())
		}

		h.responder.WriteJSON(w, views)
	}
}

// createProject creates a new project
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		project, err := req.model()
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid techStack"))
			return
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"id":      project.ID,
			"success": true,
		})
	}
}

// updateProject applies a partial update. Fields omitted from the request
// keep their stored values; an unknown id is a no-op success.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.ProjectPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project patch body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.projectRepo.Patch(projectID, patch); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"success": true})
	}
}

// deleteProject deletes a project by id, reporting success whether or not
// the id existed.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"success": true})
	}
}

func parseProjectID(r *http.Request) (uint, error) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		return 0, errs.NewBadRequestError("missing projectID")
	}

	projectID, err := strconv.ParseUint(projectIDStr, 10, 32)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid projectID")
	}
	return uint(projectID), nil
}
