package models

import (
	"encoding/json"
	"strconv"
	"time"

	"gorm.io/datatypes"
)

// StockProjectImage is served for projects saved without an image.
const StockProjectImage = "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=800&h=600&fit=crop"

// DefaultProjectCategory is applied when a project is saved without one.
const DefaultProjectCategory = "General"

// Project represents a portfolio project as stored
type Project struct {
	ID              uint           `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title           string         `json:"title" db:"title" gorm:"type:text;not null"`
	Description     string         `json:"description" db:"description" gorm:"type:text"`
	LongDescription string         `json:"long_description" db:"long_description" gorm:"type:text"`
	TechStack       datatypes.JSON `json:"tech_stack" db:"tech_stack"`
	Category        string         `json:"category" db:"category" gorm:"type:text"`
	ImageURL        string         `json:"image_url" db:"image_url" gorm:"type:text"`
	GithubURL       string         `json:"github_url" db:"github_url" gorm:"type:text"`
	DemoURL         string         `json:"demo_url" db:"demo_url" gorm:"type:text"`
	DisplayOrder    int            `json:"display_order" db:"display_order" gorm:"not null;default:0"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// ProjectView is the camelCase shape the frontend consumes. Read-time
// defaults live here rather than in the stored row, matching what the site
// has always rendered for rows written before a field existed.
type ProjectView struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	TechStack       []string  `json:"techStack"`
	Category        string    `json:"category"`
	Image           string    `json:"image"`
	GithubURL       string    `json:"githubUrl"`
	DemoURL         string    `json:"demoUrl"`
	DisplayOrder    int       `json:"displayOrder"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// View maps a stored project to its public shape.
func (p Project) View() ProjectView {
	longDesc := p.LongDescription
	if longDesc == "" {
		longDesc = p.Description
	}

	category := p.Category
	if category == "" {
		category = DefaultProjectCategory
	}

	image := p.ImageURL
	if image == "" {
		image = StockProjectImage
	}

	var stack []string
	if len(p.TechStack) > 0 {
		// A row holding malformed JSON renders as an empty stack rather
		// than failing the whole listing.
		_ = json.Unmarshal(p.TechStack, &stack)
	}
	if stack == nil {
		stack = []string{}
	}

	return ProjectView{
		ID:              strconv.FormatUint(uint64(p.ID), 10),
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: longDesc,
		TechStack:       stack,
		Category:        category,
		Image:           image,
		GithubURL:       p.GithubURL,
		DemoURL:         p.DemoURL,
		DisplayOrder:    p.DisplayOrder,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ProjectPatch is a partial update. A nil field leaves the stored value
// untouched; a pointer to the zero value clears it. This makes "omitted"
// and "explicitly cleared" distinct instead of relying on value absence.
type ProjectPatch struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"longDescription"`
	TechStack       *[]string `json:"techStack"`
	Category        *string   `json:"category"`
	Image           *string   `json:"image"`
	GithubURL       *string   `json:"githubUrl"`
	DemoURL         *string   `json:"demoUrl"`
	DisplayOrder    *int      `json:"displayOrder"`
}
