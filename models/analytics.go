package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnalyticsEvent is a client-side event reported by the public site
// (page views, project clicks). Writes are best-effort: the frontend
// discards failures so they never surface to the visitor.
type AnalyticsEvent struct {
	ID        uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	EventType string         `json:"event_type" db:"event_type" gorm:"type:text;not null"`
	Page      string         `json:"page" db:"page" gorm:"type:text"`
	ProjectID string         `json:"project_id" db:"project_id" gorm:"type:text"`
	SessionID string         `json:"session_id" db:"session_id" gorm:"type:text"`
	Metadata  datatypes.JSON `json:"metadata" db:"metadata"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

func (AnalyticsEvent) TableName() string {
	return "analytics"
}
