package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"dermaglow/internal/config"
	"dermaglow/internal/model"
	mysqlClient "dermaglow/internal/platform/mysql"
	rabbitmqClient "dermaglow/internal/platform/rabbitmq"
	redisClient "dermaglow/internal/platform/redis"
	"dermaglow/internal/repository"
	"dermaglow/internal/worker"
)

type App struct {
	Config      *config.Config
	MySQL       *gorm.DB
	Redis       *redis.Client
	MQConn      *amqp.Connection
	EventWorker *worker.SessionEventWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Message{},
		&model.Clinic{},
		&model.SessionEvent{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	eventRepo := repository.NewEventRepository(mysqlDB)
	eventWorker := worker.NewSessionEventWorker(mqConn, eventRepo, cfg.RabbitMQ.SessionEventQueue)
	if err := eventWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start session event worker failed: %w", err)
	}

	return &App{
		Config:      cfg,
		MySQL:       mysqlDB,
		Redis:       redisCli,
		MQConn:      mqConn,
		EventWorker: eventWorker,
		StartedAt:   time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.EventWorker != nil {
		a.EventWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
