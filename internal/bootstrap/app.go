package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ZivNavon/customer-management-tool/internal/config"
	"github.com/ZivNavon/customer-management-tool/internal/model"
	mysqlClient "github.com/ZivNavon/customer-management-tool/internal/platform/mysql"
	rabbitmqClient "github.com/ZivNavon/customer-management-tool/internal/platform/rabbitmq"
	redisClient "github.com/ZivNavon/customer-management-tool/internal/platform/redis"
	"github.com/ZivNavon/customer-management-tool/internal/repository"
	"github.com/ZivNavon/customer-management-tool/internal/worker"
)

type App struct {
	Config    *config.Config
	MySQL     *gorm.DB
	Redis     *redis.Client
	MQConn    *amqp.Connection
	OCRWorker *worker.OCRWorker

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
		&model.Customer{},
		&model.Contact{},
		&model.Meeting{},
		&model.MeetingAsset{},
		&model.MeetingSummary{},
		&model.EmailDraft{},
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

	assetRepo := repository.NewAssetRepository(mysqlDB)
	ocrWorker := worker.NewOCRWorker(mqConn, assetRepo, cfg.RabbitMQ.AssetEventQueue)
	if err := ocrWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start ocr worker failed: %w", err)
	}

	return &App{
		Config:    cfg,
		MySQL:     mysqlDB,
		Redis:     redisCli,
		MQConn:    mqConn,
		OCRWorker: ocrWorker,
		StartedAt: time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.OCRWorker != nil {
		a.OCRWorker.Close()
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
