package model

import "time"

const (
	RoleTurnUser      = "user"
	RoleTurnAssistant = "assistant"
)

// Message is one turn of a consultation transcript. The role tag makes the
// user/assistant distinction explicit; the legacy question/answer wire shape
// is reconstructed at the HTTP boundary.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `gorm:"not null;index" json:"session_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Role      string    `gorm:"size:16;not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (m Message) IsUser() bool {
	return m.Role == RoleTurnUser
}
