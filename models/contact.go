package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a visitor contact-form submission
type ContactMessage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contacts"
}
