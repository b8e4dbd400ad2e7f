package repository

import (
	"fmt"

	"gorm.io/gorm"

	"dermaglow/internal/model"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *model.SessionEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("create session event failed: %w", err)
	}
	return nil
}
