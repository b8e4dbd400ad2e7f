package app

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"dermaglow/internal/ai"
	"dermaglow/internal/model"
	"dermaglow/internal/pkg/slugid"
	"dermaglow/internal/prompt"
	"dermaglow/internal/repository"
	"dermaglow/internal/transcript"
)

// MaxMessageLength bounds a single user question.
const MaxMessageLength = 500

// slugAttempts bounds slug regeneration before creation gives up with
// ErrSlugConflict.
const slugAttempts = 3

// SessionService owns the consultation lifecycle. It is the only component
// that mutates a session: creation with the embedded assessment, the
// user/assistant exchange per message, transcript trimming, and deletion.
//
// There is no cross-operation lock: two concurrent PostMessage calls on the
// same session may interleave their appended pairs. Sessions are used by a
// single client serially, so this is documented rather than prevented.
type SessionService struct {
	sessions   SessionStore
	messages   MessageStore
	llm        LLMClient
	publisher  EventPublisher
	history    HistoryCache
	llmConfig  ai.ChatConfig
	maxContext int
	bound      transcript.Bound
}

type StartSessionResult struct {
	Session *model.Session `json:"session"`
	Welcome *model.Message `json:"welcome"`
}

type PostMessageResult struct {
	SessionID uint   `json:"session_id"`
	Answer    string `json:"answer"`
}

func NewSessionService(
	sessions SessionStore,
	messages MessageStore,
	llm LLMClient,
	publisher EventPublisher,
	history HistoryCache,
	llmConfig ai.ChatConfig,
	maxContext int,
) *SessionService {
	if maxContext <= 0 {
		maxContext = prompt.HistoryWindow
	}
	return &SessionService{
		sessions:   sessions,
		messages:   messages,
		llm:        llm,
		publisher:  publisher,
		history:    history,
		llmConfig:  llmConfig,
		maxContext: maxContext,
		bound:      transcript.DefaultBound(),
	}
}

// StartSession creates a session from the assessment form and seeds it with
// the templated welcome message. The welcome text is rendered locally, not
// generated by the model.
func (s *SessionService) StartSession(ctx context.Context, userID uint, form *model.Assessment) (*StartSessionResult, error) {
	if userID == 0 || form == nil {
		return nil, ErrInvalidInput
	}

	session := &model.Session{
		UserID:     userID,
		Assessment: *form,
	}

	created := false
	for attempt := 0; attempt < slugAttempts; attempt++ {
		session.Slug = slugid.New()
		err := s.sessions.Create(session)
		if err == nil {
			created = true
			break
		}
		if !isDuplicateSlug(err) {
			return nil, err
		}
	}
	if !created {
		return nil, ErrSlugConflict
	}

	welcome := &model.Message{
		SessionID: session.ID,
		UserID:    userID,
		Role:      model.RoleTurnAssistant,
		Content:   prompt.BuildWelcome(session.Assessment),
		CreatedAt: time.Now(),
	}
	if err := s.messages.Create(welcome); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, session.ID, userID, model.EventSessionStarted, session.Slug)
	return &StartSessionResult{Session: session, Welcome: welcome}, nil
}

// PostMessage runs one consultation exchange. The user and assistant turns
// are appended together only after the model call succeeds; a failed call
// leaves the transcript untouched.
func (s *SessionService) PostMessage(ctx context.Context, userID, sessionID uint, text string) (*PostMessageResult, error) {
	if userID == 0 || sessionID == 0 {
		return nil, ErrInvalidInput
	}

	content := strings.TrimSpace(text)
	if content == "" {
		return nil, ErrMessageEmpty
	}
	if utf8.RuneCountInString(content) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	session, err := s.sessions.GetByIDAndUserID(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	recent, err := s.messages.ListRecentBySessionID(sessionID, s.maxContext)
	if err != nil {
		return nil, err
	}

	promptMessages := prompt.BuildChat(session.Assessment, recent, content)
	answer, err := s.llm.Complete(ctx, s.llmConfig, promptMessages)
	if err != nil {
		return nil, upstreamErr(err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = "The model returned an empty response."
	}

	if err := s.appendExchange(ctx, session, content, answer); err != nil {
		return nil, err
	}

	return &PostMessageResult{SessionID: sessionID, Answer: answer}, nil
}

// StreamMessage is PostMessage with the assistant turn delivered in chunks
// through onChunk. The pair is appended only once the stream has completed.
func (s *SessionService) StreamMessage(ctx context.Context, userID, sessionID uint, text string, onChunk func(string) error) (string, error) {
	if userID == 0 || sessionID == 0 {
		return "", ErrInvalidInput
	}

	content := strings.TrimSpace(text)
	if content == "" {
		return "", ErrMessageEmpty
	}
	if utf8.RuneCountInString(content) > MaxMessageLength {
		return "", ErrMessageTooLong
	}

	session, err := s.sessions.GetByIDAndUserID(sessionID, userID)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", ErrSessionNotFound
	}

	recent, err := s.messages.ListRecentBySessionID(sessionID, s.maxContext)
	if err != nil {
		return "", err
	}

	promptMessages := prompt.BuildChat(session.Assessment, recent, content)
	full, err := s.llm.StreamComplete(ctx, s.llmConfig, promptMessages, onChunk)
	if err != nil {
		return "", upstreamErr(err)
	}
	full = strings.TrimSpace(full)
	if full == "" {
		full = "The model returned an empty response."
	}

	if err := s.appendExchange(ctx, session, content, full); err != nil {
		return "", err
	}
	return full, nil
}

// GenerateReport renders a report instruction from the assessment and the
// caller-supplied transcript and runs one model call. The supplied
// transcript is trusted as-is; the persisted message list is neither read
// nor modified.
func (s *SessionService) GenerateReport(ctx context.Context, userID, sessionID uint, transcriptMessages []model.Message) (string, error) {
	if userID == 0 || sessionID == 0 {
		return "", ErrInvalidInput
	}

	session, err := s.sessions.GetByIDAndUserID(sessionID, userID)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", ErrSessionNotFound
	}

	instruction := prompt.BuildReport(session.Assessment, transcriptMessages)
	report, err := s.llm.Complete(ctx, s.llmConfig, []ai.ChatMessage{
		{Role: "system", Content: instruction},
	})
	if err != nil {
		return "", upstreamErr(err)
	}

	s.publishEvent(ctx, sessionID, userID, model.EventReportGenerated, "")
	return report, nil
}

func (s *SessionService) ListSessions(userID uint) ([]model.Session, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.sessions.ListByUserID(userID)
}

// GetHistory returns the session transcript, serving from the cache when it
// is present and not marked dirty.
func (s *SessionService) GetHistory(ctx context.Context, userID, sessionID uint, limit int) ([]model.Message, error) {
	if userID == 0 || sessionID == 0 {
		return nil, ErrInvalidInput
	}

	session, err := s.sessions.GetByIDAndUserID(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if s.history != nil {
		dirty, err := s.history.IsDirty(ctx, sessionID)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.history.GetHistory(ctx, sessionID); cacheErr == nil && hit {
				return tailMessages(cached, limit), nil
			}
		}
	}

	// The cache only ever holds the full transcript; the limit is applied on
	// the way out so a small read cannot shadow later full reads.
	messages, err := s.messages.ListBySessionID(sessionID, 0)
	if err != nil {
		return nil, err
	}
	messages = transcript.Trim(s.bound, messages)

	if s.history != nil {
		if dirty, dirtyErr := s.history.IsDirty(ctx, sessionID); dirtyErr == nil && !dirty {
			_ = s.history.SetHistory(ctx, sessionID, messages)
		}
	}
	return tailMessages(messages, limit), nil
}

// DeleteSession removes the session and every message it owns. Deleting an
// already-deleted session reports ErrSessionNotFound again.
func (s *SessionService) DeleteSession(ctx context.Context, userID, sessionID uint) error {
	if userID == 0 || sessionID == 0 {
		return ErrInvalidInput
	}

	session, err := s.sessions.GetByIDAndUserID(sessionID, userID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	if err := s.messages.DeleteBySessionID(sessionID); err != nil {
		return err
	}
	if err := s.sessions.DeleteByIDAndUserID(sessionID, userID); err != nil {
		return err
	}
	if s.history != nil {
		_ = s.history.DeleteHistory(ctx, sessionID)
	}

	s.publishEvent(ctx, sessionID, userID, model.EventSessionDeleted, session.Slug)
	return nil
}

// appendExchange persists the matched user/assistant pair, enforces the
// transcript bound and invalidates the cached history.
func (s *SessionService) appendExchange(ctx context.Context, session *model.Session, question, answer string) error {
	now := time.Now()
	userMessage := &model.Message{
		SessionID: session.ID,
		UserID:    session.UserID,
		Role:      model.RoleTurnUser,
		Content:   question,
		CreatedAt: now,
	}
	assistantMessage := &model.Message{
		SessionID: session.ID,
		UserID:    session.UserID,
		Role:      model.RoleTurnAssistant,
		Content:   answer,
		CreatedAt: now,
	}

	if s.history != nil {
		_ = s.history.MarkDirty(ctx, session.ID)
		_ = s.history.DeleteHistory(ctx, session.ID)
	}

	if err := s.messages.CreatePair(userMessage, assistantMessage); err != nil {
		return err
	}

	count, err := s.messages.CountBySessionID(session.ID)
	if err != nil {
		return err
	}
	if drop := s.bound.Excess(count); drop > 0 {
		if err := s.messages.DeleteOldestBySessionID(session.ID, drop); err != nil {
			return err
		}
	}

	s.publishEvent(ctx, session.ID, session.UserID, model.EventMessageExchanged, "")
	return nil
}

func (s *SessionService) publishEvent(ctx context.Context, sessionID, userID uint, kind, detail string) {
	if s.publisher == nil {
		return
	}
	event := model.SessionEvent{
		SessionID: sessionID,
		UserID:    userID,
		Kind:      kind,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("publish session event failed: %v", err)
	}
}

func tailMessages(messages []model.Message, limit int) []model.Message {
	if limit <= 0 || limit >= len(messages) {
		return messages
	}
	return messages[len(messages)-limit:]
}

func isDuplicateSlug(err error) bool {
	return errors.Is(err, repository.ErrDuplicateSlug)
}
