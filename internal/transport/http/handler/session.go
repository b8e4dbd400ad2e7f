package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"dermaglow/internal/app"
	"dermaglow/internal/model"
	"dermaglow/internal/transport/http/response"
)

// upstreamUserMessage replaces upstream error bodies in client responses;
// the real cause is only logged server-side.
const upstreamUserMessage = "the assistant is unavailable right now, please try again"

type SessionHandler struct {
	sessionService *app.SessionService
}

type AssessmentRequest struct {
	SkinType               string   `json:"skinType"`
	MainConcern            string   `json:"mainConcern"`
	AdditionalSkinConcerns string   `json:"additionalSkinConcerns"`
	SpecificSkinIssues     []string `json:"specificSkinIssues"`
	CurrentRoutine         string   `json:"currentRoutine"`
	SunscreenUsage         string   `json:"sunscreenUsage"`
	ClimateType            string   `json:"climateType"`
	WorkEnvironment        string   `json:"workEnvironment"`
	ProductUsageFrequency  string   `json:"productUsageFrequency"`
	SkinTextureDescription string   `json:"skinTextureDescription"`
	DietType               string   `json:"dietType"`
	ExerciseFrequency      string   `json:"exerciseFrequency"`
	StressLevel            string   `json:"stressLevel"`
	SunExposure            string   `json:"sunExposure"`
	WaterIntake            string   `json:"waterIntake"`
	AlcoholConsumption     string   `json:"alcoholConsumption"`
}

type StartSessionRequest struct {
	Form *AssessmentRequest `json:"form"`
}

type PostMessageRequest struct {
	SessionID uint   `json:"session_id" binding:"required,gt=0"`
	Message   string `json:"message" binding:"required"`
}

type GenerateReportRequest struct {
	Messages []WireMessage `json:"messages"`
}

// WireMessage is the legacy transcript shape: a user turn carries question,
// an assistant turn carries answer, the other field is null.
type WireMessage struct {
	Question  *string `json:"question"`
	Answer    *string `json:"answer"`
	IsUser    bool    `json:"isUser"`
	Timestamp string  `json:"timestamp,omitempty"`
}

func NewSessionHandler(sessionService *app.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (r AssessmentRequest) toModel() model.Assessment {
	return model.Assessment{
		SkinType:               r.SkinType,
		MainConcern:            r.MainConcern,
		AdditionalSkinConcerns: r.AdditionalSkinConcerns,
		SpecificSkinIssues:     r.SpecificSkinIssues,
		CurrentRoutine:         r.CurrentRoutine,
		SunscreenUsage:         r.SunscreenUsage,
		ClimateType:            r.ClimateType,
		WorkEnvironment:        r.WorkEnvironment,
		ProductUsageFrequency:  r.ProductUsageFrequency,
		SkinTextureDescription: r.SkinTextureDescription,
		DietType:               r.DietType,
		ExerciseFrequency:      r.ExerciseFrequency,
		StressLevel:            r.StressLevel,
		SunExposure:            r.SunExposure,
		WaterIntake:            r.WaterIntake,
		AlcoholConsumption:     r.AlcoholConsumption,
	}
}

func (h *SessionHandler) StartSession(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Form == nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing required parameters")
		return
	}

	assessment := req.Form.toModel()
	result, err := h.sessionService.StartSession(c.Request.Context(), userID, &assessment)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrSlugConflict):
			response.Error(c, http.StatusConflict, response.CodeConflict, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "start session failed")
		}
		return
	}

	response.OK(c, gin.H{
		"session":  result.Session,
		"messages": []WireMessage{toWireMessage(*result.Welcome)},
	})
}

func (h *SessionHandler) PostMessage(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing sessionId or message")
		return
	}

	result, err := h.sessionService.PostMessage(c.Request.Context(), userID, req.SessionID, req.Message)
	if err != nil {
		h.writeSessionError(c, err, "send message failed")
		return
	}

	response.OK(c, gin.H{
		"answer":    result.Answer,
		"sessionId": result.SessionID,
	})
}

func (h *SessionHandler) StreamMessage(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing sessionId or message")
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "stream not supported")
		return
	}

	full, err := h.sessionService.StreamMessage(c.Request.Context(), userID, req.SessionID, req.Message, func(chunk string) error {
		if _, writeErr := c.Writer.Write([]byte("data: " + sanitizeSSE(chunk) + "\n\n")); writeErr != nil {
			return writeErr
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		message := err.Error()
		if errors.Is(err, app.ErrUpstream) {
			message = upstreamUserMessage
		}
		if _, writeErr := c.Writer.Write([]byte("event: error\ndata: " + sanitizeSSE(message) + "\n\n")); writeErr == nil {
			flusher.Flush()
		}
		return
	}

	if _, writeErr := c.Writer.Write([]byte("event: done\ndata: " + sanitizeSSE(full) + "\n\n")); writeErr == nil {
		flusher.Flush()
	}
}

func (h *SessionHandler) ListSessions(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	sessions, err := h.sessionService.ListSessions(userID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list sessions failed")
		}
		return
	}

	response.OK(c, sessions)
}

func (h *SessionHandler) GetMessages(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	sessionID, ok := sessionIDFromParam(c)
	if !ok {
		return
	}

	limit := 200
	if raw := c.Query("limit"); raw != "" {
		if parsed, parseErr := strconv.Atoi(raw); parseErr == nil {
			limit = parsed
		}
	}

	messages, err := h.sessionService.GetHistory(c.Request.Context(), userID, sessionID, limit)
	if err != nil {
		h.writeSessionError(c, err, "get messages failed")
		return
	}

	wire := make([]WireMessage, 0, len(messages))
	for _, msg := range messages {
		wire = append(wire, toWireMessage(msg))
	}
	response.OK(c, gin.H{"messages": wire})
}

func (h *SessionHandler) GenerateReport(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	sessionID, ok := sessionIDFromParam(c)
	if !ok {
		return
	}

	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	transcript := make([]model.Message, 0, len(req.Messages))
	for _, wire := range req.Messages {
		transcript = append(transcript, fromWireMessage(wire))
	}

	report, err := h.sessionService.GenerateReport(c.Request.Context(), userID, sessionID, transcript)
	if err != nil {
		h.writeSessionError(c, err, "generate report failed")
		return
	}

	response.OK(c, gin.H{"formattedResponse": report})
}

func (h *SessionHandler) DeleteSession(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	sessionID, ok := sessionIDFromParam(c)
	if !ok {
		return
	}

	if err := h.sessionService.DeleteSession(c.Request.Context(), userID, sessionID); err != nil {
		h.writeSessionError(c, err, "delete session failed")
		return
	}

	response.OK(c, gin.H{"deleted_session_id": sessionID})
}

func (h *SessionHandler) writeSessionError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, app.ErrInvalidInput),
		errors.Is(err, app.ErrMessageEmpty),
		errors.Is(err, app.ErrMessageTooLong):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrSessionNotFound):
		response.Error(c, http.StatusNotFound, response.CodeSessionNotFound, err.Error())
	case errors.Is(err, app.ErrUpstream):
		response.Error(c, http.StatusBadGateway, response.CodeUpstreamFailed, upstreamUserMessage)
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, fallback)
	}
}

func sessionIDFromParam(c *gin.Context) (uint, bool) {
	sessionID64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || sessionID64 == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid session id")
		return 0, false
	}
	return uint(sessionID64), true
}

func toWireMessage(msg model.Message) WireMessage {
	wire := WireMessage{
		IsUser:    msg.IsUser(),
		Timestamp: msg.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	}
	content := msg.Content
	if wire.IsUser {
		wire.Question = &content
	} else {
		wire.Answer = &content
	}
	return wire
}

func fromWireMessage(wire WireMessage) model.Message {
	msg := model.Message{Role: model.RoleTurnAssistant}
	if wire.IsUser {
		msg.Role = model.RoleTurnUser
	}
	if wire.Question != nil && *wire.Question != "" {
		msg.Content = *wire.Question
		msg.Role = model.RoleTurnUser
	} else if wire.Answer != nil {
		msg.Content = *wire.Answer
	}
	return msg
}

func sanitizeSSE(input string) string {
	replaced := strings.ReplaceAll(input, "\r\n", "\\n")
	replaced = strings.ReplaceAll(replaced, "\n", "\\n")
	return replaced
}
