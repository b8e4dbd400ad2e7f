package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"dermaglow/internal/ai"
	appsvc "dermaglow/internal/app"
	"dermaglow/internal/bootstrap"
	"dermaglow/internal/cache"
	"dermaglow/internal/platform/rabbitmq"
	"dermaglow/internal/repository"
	"dermaglow/internal/transport/http/handler"
	"dermaglow/internal/transport/http/middleware"
	"dermaglow/internal/weather"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(middleware.RequestID(), gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	sessionRepo := repository.NewSessionRepository(app.MySQL)
	messageRepo := repository.NewMessageRepository(app.MySQL)
	clinicRepo := repository.NewClinicRepository(app.MySQL)

	llmClient := ai.NewOpenAICompatibleClient()
	llmConfig := ai.ChatConfig{
		BaseURL:     app.Config.LLM.BaseURL,
		APIKey:      app.Config.LLM.APIKey,
		Model:       app.Config.LLM.Model,
		Temperature: 0.7,
	}
	weatherClient := weather.NewClient(app.Config.Weather.BaseURL, app.Config.Weather.APIKey)

	historyCache := cache.NewHistoryCache(
		app.Redis,
		time.Duration(app.Config.Redis.HistoryTTLSeconds)*time.Second,
		time.Duration(app.Config.Redis.HistoryDirtyTTLSeconds)*time.Second,
	)
	weatherCache := cache.NewWeatherCache(
		app.Redis,
		time.Duration(app.Config.Redis.WeatherTTLSeconds)*time.Second,
	)
	eventPublisher := rabbitmq.NewEventPublisher(app.MQConn, app.Config.RabbitMQ.SessionEventQueue)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	sessionService := appsvc.NewSessionService(
		sessionRepo,
		messageRepo,
		llmClient,
		eventPublisher,
		historyCache,
		llmConfig,
		app.Config.LLM.MaxContextMessage,
	)
	clinicService := appsvc.NewClinicService(clinicRepo)
	recommendationService := appsvc.NewRecommendationService(weatherClient, llmClient, weatherCache, llmConfig)

	authHandler := handler.NewAuthHandler(authService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	clinicHandler := handler.NewClinicHandler(clinicService)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService)

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", middleware.AuthJWT(app.Config.Auth.JWTSecret), authHandler.Me)

	sessionGroup := v1.Group("/sessions")
	sessionGroup.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	sessionGroup.POST("/start", sessionHandler.StartSession)
	sessionGroup.GET("", sessionHandler.ListSessions)
	sessionGroup.POST("/message", sessionHandler.PostMessage)
	sessionGroup.POST("/message/stream", sessionHandler.StreamMessage)
	sessionGroup.GET("/:id/messages", sessionHandler.GetMessages)
	sessionGroup.POST("/:id/report", sessionHandler.GenerateReport)
	sessionGroup.DELETE("/:id", sessionHandler.DeleteSession)

	clinicGroup := v1.Group("/clinics")
	clinicGroup.GET("", clinicHandler.List)
	clinicGroup.GET("/:id", clinicHandler.Get)
	adminClinics := clinicGroup.Group("")
	adminClinics.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret), middleware.AdminOnly())
	adminClinics.POST("", clinicHandler.Create)
	adminClinics.PUT("/:id", clinicHandler.Update)
	adminClinics.DELETE("/:id", clinicHandler.Delete)

	recommendationGroup := v1.Group("/recommendations")
	recommendationGroup.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	recommendationGroup.GET("/weather", recommendationHandler.Weather)

	return router
}
