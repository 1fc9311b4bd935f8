package database

import (
	"errors"

	"github.com/nohithkv/portfolio-backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteContentRepo struct {
	db *gorm.DB
}

func NewSiteContentRepo(db *gorm.DB) *SiteContentRepo {
	return &SiteContentRepo{db}
}

// Get returns the singleton content row, or nil if it has never been written.
// An absent row is not an error; the handler serves the default document.
func (r *SiteContentRepo) Get() (*models.SiteContent, error) {
	var row models.SiteContent
	err := r.db.First(&row, models.SiteContentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Put replaces the entire stored document, creating the row on first write.
// Last writer wins; there is no merge and no version check.
func (r *SiteContentRepo) Put(content datatypes.JSON) error {
	row := models.SiteContent{
		ID:      models.SiteContentID,
		Content: content,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&row).Error
}
