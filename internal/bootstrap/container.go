package bootstrap

import (
	"context"

	"mockup-editor-be/internal/config"
	"mockup-editor-be/internal/controller"
	"mockup-editor-be/internal/handler"
	"mockup-editor-be/internal/pkg/logger"
	"mockup-editor-be/internal/pkg/serverutils"
	"mockup-editor-be/internal/repository/memory"
	"mockup-editor-be/internal/service"
	"mockup-editor-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	EditorController controller.IEditorController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	EditorWsHandler *handler.EditorWsHandler
	WebSocketHub    *websocket.Hub

	pubSub *gochannel.GoChannel
	rdb    *redis.Client
}

func NewContainer(ctx context.Context, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)

	return Build(ctx, cfg, sysLogger, wsLogger)
}

// Build wires the container around the given loggers. The hub runs until
// ctx is cancelled.
func Build(ctx context.Context, cfg *config.Config, sysLogger, wsLogger logger.ILogger) *Container {
	// 1. Event Bus
	pubSub := NewEventBus(watermill.NewStdLogger(false, false))

	// 2. Infrastructure
	sessionRepo := memory.NewSessionRepository(cfg.Editor.SessionTTL)

	// Redis is optional: without it live updates stay on this instance
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to Redis", map[string]interface{}{"error": err.Error()})
		}
	}

	// WebSocket Hub
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run(ctx)

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Editor.ChangesTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Editor.ChangesTopic,
		wsHub, // Hub implements DocumentDelivery
		wsLogger,
	)

	editorService := service.NewEditorService(
		sessionRepo,
		publisherService,
		sysLogger,
		service.EditorServiceConfig{
			HistoryLimit: cfg.Editor.HistoryLimit,
			JwtSecret:    cfg.Auth.JwtSecret,
		},
	)

	jwt := serverutils.JwtMiddleware(cfg.Auth.JwtSecret)

	// 4. Controllers
	return &Container{
		Logger:           sysLogger,
		EditorController: controller.NewEditorController(editorService, jwt),
		ConsumerService:  consumerService,
		EditorWsHandler:  handler.NewEditorWsHandler(editorService, wsHub, jwt, wsLogger),
		WebSocketHub:     wsHub,
		pubSub:           pubSub,
		rdb:              rdb,
	}
}

// Close releases the event bus and the Redis client.
func (c *Container) Close() error {
	if c.rdb != nil {
		if err := c.rdb.Close(); err != nil {
			return err
		}
	}
	return c.pubSub.Close()
}
