package repository

import (
	"fmt"

	"gorm.io/gorm"

	"dermaglow/internal/model"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(message *model.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("create message failed: %w", err)
	}
	return nil
}

// CreatePair appends a matched user/assistant exchange in one transaction
// so a partial pair can never land in the transcript.
func (r *MessageRepository) CreatePair(userMessage, assistantMessage *model.Message) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userMessage).Error; err != nil {
			return err
		}
		return tx.Create(assistantMessage).Error
	})
	if err != nil {
		return fmt.Errorf("create message pair failed: %w", err)
	}
	return nil
}

// ListBySessionID returns the newest limit messages of a session in
// ascending order. The transcript bound keeps settled sessions at 200
// messages or fewer, so the clamp covers a full read.
func (r *MessageRepository) ListBySessionID(sessionID uint, limit int) ([]model.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	return r.ListRecentBySessionID(sessionID, limit)
}

// ListRecentBySessionID returns the newest limit messages in ascending order.
func (r *MessageRepository) ListRecentBySessionID(sessionID uint, limit int) ([]model.Message, error) {
	if limit <= 0 {
		return nil, nil
	}

	var messages []model.Message
	if err := r.db.Where("session_id = ?", sessionID).Order("id DESC").Limit(limit).Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("list recent messages failed: %w", err)
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *MessageRepository) CountBySessionID(sessionID uint) (int, error) {
	var count int64
	if err := r.db.Model(&model.Message{}).Where("session_id = ?", sessionID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count messages failed: %w", err)
	}
	return int(count), nil
}

// DeleteOldestBySessionID removes the n oldest messages of a session.
func (r *MessageRepository) DeleteOldestBySessionID(sessionID uint, n int) error {
	if n <= 0 {
		return nil
	}

	var ids []uint
	if err := r.db.Model(&model.Message{}).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Limit(n).
		Pluck("id", &ids).Error; err != nil {
		return fmt.Errorf("select oldest messages failed: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.Where("id IN ?", ids).Delete(&model.Message{}).Error; err != nil {
		return fmt.Errorf("delete oldest messages failed: %w", err)
	}
	return nil
}

func (r *MessageRepository) DeleteBySessionID(sessionID uint) error {
	if err := r.db.Where("session_id = ?", sessionID).Delete(&model.Message{}).Error; err != nil {
		return fmt.Errorf("delete session messages failed: %w", err)
	}
	return nil
}
