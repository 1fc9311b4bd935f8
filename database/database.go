package database

import (
	"github.com/nohithkv/portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	siteContentRepo *SiteContentRepo
	projectRepo     *ProjectRepo
	contactRepo     *ContactRepo
	analyticsRepo   *AnalyticsRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		siteContentRepo: NewSiteContentRepo(db),
		projectRepo:     NewProjectRepo(db),
		contactRepo:     NewContactRepo(db),
		analyticsRepo:   NewAnalyticsRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) SiteContentRepo() *SiteContentRepo {
	return d.siteContentRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) AnalyticsRepo() *AnalyticsRepo {
	return d.analyticsRepo
}

// Migrate creates or updates the schema for every entity the API serves.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.SiteContent{},
		&models.Project{},
		&models.ContactMessage{},
		&models.AnalyticsEvent{},
	)
}
