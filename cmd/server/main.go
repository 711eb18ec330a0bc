package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/221-Batuhan/chat-ai-project/internal/cache"
	"github.com/221-Batuhan/chat-ai-project/internal/config"
	"github.com/221-Batuhan/chat-ai-project/internal/domain"
	"github.com/221-Batuhan/chat-ai-project/internal/handler"
	"github.com/221-Batuhan/chat-ai-project/internal/repository"
	"github.com/221-Batuhan/chat-ai-project/internal/sentiment"
	"github.com/221-Batuhan/chat-ai-project/internal/service"
	pkgdatabase "github.com/221-Batuhan/chat-ai-project/pkg/database"
	pkglog "github.com/221-Batuhan/chat-ai-project/pkg/log"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	// Initialize structured logger
	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Level == "debug",
		ServiceName: "chat-api",
	})
	logger := pkglog.L()

	// Connect to database using GORM
	db, err := pkgdatabase.New(&pkgdatabase.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		FilePath:        cfg.Database.FilePath,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Auto-migrate
	if err := pkgdatabase.AutoMigrate(db, &domain.MessageModel{}, &domain.UserModel{}); err != nil {
		logger.Fatal().Err(err).Msg("failed to auto-migrate")
	}
	logger.Info().Msg("database migration completed")

	// Initialize repositories
	messageRepo := repository.NewGormMessageRepository(db)
	userRepo := repository.NewGormUserRepository(db)

	// Initialize message cache
	var messageCache cache.MessageCache
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisMessageCache(cfg.Redis, cfg.Cache.Prefix)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisCache.Close()
		messageCache = redisCache
		logger.Info().Msg("redis message cache connected")
	} else {
		messageCache = cache.NewNoopMessageCache()
	}

	// Initialize sentiment client
	sentimentClient := sentiment.NewClient(sentiment.Config{
		ServiceURL:         cfg.AI.ServiceURL,
		Timeout:            cfg.AI.Timeout,
		ForceAsyncFallback: cfg.AI.ForceAsyncFallback,
	})

	// Initialize services
	messageService := service.NewMessageService(messageRepo, sentimentClient, messageCache, cfg.Cache.TTL)
	userService := service.NewUserService(userRepo)

	// Initialize HTTP handler
	httpHandler := handler.NewHandler(messageService, userService)

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))
	r.Use(handler.CORS())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Register routes
	httpHandler.RegisterRoutes(r)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info().
		Str("addr", addr).
		Str("driver", cfg.Database.Driver).
		Str("ai_service_url", cfg.AI.ServiceURL).
		Msg("chat-api starting")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
