package app

import (
	"context"

	"dermaglow/internal/ai"
	"dermaglow/internal/model"
	"dermaglow/internal/weather"
)

// The services depend on these interfaces rather than the concrete gorm
// repositories and HTTP clients so tests can substitute in-memory fakes.

type LLMClient interface {
	Complete(ctx context.Context, cfg ai.ChatConfig, messages []ai.ChatMessage) (string, error)
	StreamComplete(ctx context.Context, cfg ai.ChatConfig, messages []ai.ChatMessage, onChunk func(string) error) (string, error)
}

type WeatherClient interface {
	ByCity(ctx context.Context, city string) (*weather.Current, error)
	ByCoordinates(ctx context.Context, lat, lng float64) (*weather.Current, error)
}

type SessionStore interface {
	Create(session *model.Session) error
	GetByIDAndUserID(sessionID, userID uint) (*model.Session, error)
	ListByUserID(userID uint) ([]model.Session, error)
	DeleteByIDAndUserID(sessionID, userID uint) error
}

type MessageStore interface {
	Create(message *model.Message) error
	CreatePair(userMessage, assistantMessage *model.Message) error
	ListBySessionID(sessionID uint, limit int) ([]model.Message, error)
	ListRecentBySessionID(sessionID uint, limit int) ([]model.Message, error)
	CountBySessionID(sessionID uint) (int, error)
	DeleteOldestBySessionID(sessionID uint, n int) error
	DeleteBySessionID(sessionID uint) error
}

type UserStore interface {
	Create(user *model.User) error
	GetByUsername(username string) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
}

type ClinicStore interface {
	Create(clinic *model.Clinic) error
	GetByID(id uint) (*model.Clinic, error)
	List(page, limit int) ([]model.Clinic, int64, error)
	Save(clinic *model.Clinic) error
	DeleteByID(id uint) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event model.SessionEvent) error
}

type HistoryCache interface {
	GetHistory(ctx context.Context, sessionID uint) ([]model.Message, bool, error)
	SetHistory(ctx context.Context, sessionID uint, messages []model.Message) error
	DeleteHistory(ctx context.Context, sessionID uint) error
	MarkDirty(ctx context.Context, sessionID uint) error
	IsDirty(ctx context.Context, sessionID uint) (bool, error)
}
