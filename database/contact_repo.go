package database

import (
	"github.com/google/uuid"
	"github.com/nohithkv/portfolio-backend/models"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add inserts a new contact submission, assigning an id when absent
func (r *ContactRepo) Add(msg *models.ContactMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	return r.db.Create(msg).Error
}

// FindAll returns all contact submissions, newest first
func (r *ContactRepo) FindAll() ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}
