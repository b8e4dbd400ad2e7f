package model

import "time"

const (
	EventSessionStarted   = "session_started"
	EventMessageExchanged = "message_exchanged"
	EventReportGenerated  = "report_generated"
	EventSessionDeleted   = "session_deleted"
)

// SessionEvent is an audit row written asynchronously by the event worker.
// Events are advisory; losing one never fails the operation that emitted it.
type SessionEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `gorm:"not null;index" json:"session_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Kind      string    `gorm:"size:32;not null;index" json:"kind"`
	Detail    string    `gorm:"size:255" json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
