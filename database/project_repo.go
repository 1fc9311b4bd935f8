package database

import (
	"encoding/json"

	"github.com/nohithkv/portfolio-backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects ordered by explicit display order, with
// newest-first creation time as the tie-break.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("display_order ASC, created_at DESC").Find(&projects).Error
	return projects, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Patch applies a partial update: nil fields in the patch are left at their
// stored values. A patch against an id that does not exist is a no-op and
// reports success; the admin UI refetches after every write, so nothing is
// gained by distinguishing the case.
func (r *ProjectRepo) Patch(id uint, patch models.ProjectPatch) error {
	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.LongDescription != nil {
		updates["long_description"] = *patch.LongDescription
	}
	if patch.TechStack != nil {
		encoded, err := json.Marshal(*patch.TechStack)
		if err != nil {
			return err
		}
		updates["tech_stack"] = datatypes.JSON(encoded)
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Image != nil {
		updates["image_url"] = *patch.Image
	}
	if patch.GithubURL != nil {
		updates["github_url"] = *patch.GithubURL
	}
	if patch.DemoURL != nil {
		updates["demo_url"] = *patch.DemoURL
	}
	if patch.DisplayOrder != nil {
		updates["display_order"] = *patch.DisplayOrder
	}

	if len(updates) == 0 {
		return nil
	}

	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a project by id. Deleting an id that does not exist is a
// success, which makes the operation idempotent.
func (r *ProjectRepo) Delete(id uint) error {
	return r.db.Delete(&models.Project{}, id).Error
}
