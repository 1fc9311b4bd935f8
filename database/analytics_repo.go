package database

import (
	"github.com/google/uuid"
	"github.com/nohithkv/portfolio-backend/models"
	"gorm.io/gorm"
)

type AnalyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db}
}

// Add inserts a new event, assigning an id when absent
func (r *AnalyticsRepo) Add(event *models.AnalyticsEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return r.db.Create(event).Error
}

// FindRecent returns the most recent events up to limit, newest first
func (r *AnalyticsRepo) FindRecent(limit int) ([]*models.AnalyticsEvent, error) {
	var events []*models.AnalyticsEvent
	err := r.db.Order("created_at DESC").Limit(limit).Find(&events).Error
	return events, err
}
