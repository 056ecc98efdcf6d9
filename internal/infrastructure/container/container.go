package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/peve-dev/peve-backend/internal/config"
	"github.com/peve-dev/peve-backend/internal/delivery/http"
	"github.com/peve-dev/peve-backend/internal/delivery/http/handler"
	"github.com/peve-dev/peve-backend/internal/delivery/http/middleware"
	"github.com/peve-dev/peve-backend/internal/infrastructure/broadcast"
	"github.com/peve-dev/peve-backend/internal/infrastructure/cache"
	"github.com/peve-dev/peve-backend/internal/infrastructure/database"
	"github.com/peve-dev/peve-backend/internal/infrastructure/gemini"
	"github.com/peve-dev/peve-backend/internal/infrastructure/server"
	"github.com/peve-dev/peve-backend/internal/logger"
	"github.com/peve-dev/peve-backend/internal/repository"
	"github.com/peve-dev/peve-backend/internal/repository/postgres"
	"github.com/peve-dev/peve-backend/internal/usecase/auth"
	"github.com/peve-dev/peve-backend/internal/usecase/badge"
	"github.com/peve-dev/peve-backend/internal/usecase/collaboration"
	"github.com/peve-dev/peve-backend/internal/usecase/compatibility"
	"github.com/peve-dev/peve-backend/internal/usecase/interaction"
	"github.com/peve-dev/peve-backend/internal/usecase/leaderboard"
	"github.com/peve-dev/peve-backend/internal/usecase/notification"
	"github.com/peve-dev/peve-backend/internal/usecase/profile"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis backs the leaderboard cache and notification fan-out. Without it
	// the leaderboard is read from Postgres and notifications are only stored.
	var (
		redisClient      *redis.Client
		leaderboardCache repository.LeaderboardCache
		broadcaster      notification.Broadcaster = notification.NopBroadcaster{}
	)
	if cfg.Redis.IsRedisEnabled() {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Warning("redis unavailable, continuing without cache and broadcast: %v", err)
			redisClient = nil
		} else {
			leaderboardCache = cache.NewLeaderboardCache(redisClient, cfg.Leaderboard.CacheTTL)
			broadcaster = broadcast.NewRedisBroadcaster(redisClient)
		}
	}

	// AI features are optional
	var (
		geminiClient *gemini.GeminiClient
		summarizer   compatibility.Summarizer
		bioGenerator profile.BioGenerator
	)
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewGeminiClient(cfg.GeminiAPIKey)
		if err != nil {
			logger.Warning("failed to initialize Gemini client: %v", err)
			geminiClient = nil
		} else {
			summarizer = geminiClient
			bioGenerator = geminiClient
		}
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	badgeRepo := postgres.NewBadgeRepository(db)
	userBadgeRepo := postgres.NewUserBadgeRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	collabRepo := postgres.NewCollaborationRepository(db)
	interactionRepo := postgres.NewInteractionRepository(db)

	// Use cases
	awarder := badge.NewAwarder(
		userRepo,
		badgeRepo,
		userBadgeRepo,
		statsRepo,
		badge.NewEvaluator(statsRepo),
		broadcaster,
	)
	badgeUseCase := badge.NewBadgeUseCase(badgeRepo, userBadgeRepo, userRepo, awarder)
	compatibilityUseCase := compatibility.NewCompatibilityUseCase(userRepo, collabRepo, summarizer)
	collaborationUseCase := collaboration.NewCollaborationUseCase(
		collabRepo,
		userRepo,
		compatibilityUseCase,
		awarder,
		broadcaster,
	)
	interactionUseCase := interaction.NewInteractionUseCase(interactionRepo, awarder)
	leaderboardUseCase := leaderboard.NewLeaderboardUseCase(statsRepo, leaderboardCache, cfg.Leaderboard.DefaultLimit)
	notificationUseCase := notification.NewNotificationUseCase(notificationRepo)
	profileUseCase := profile.NewProfileUseCase(userRepo, awarder, bioGenerator)
	tokenUseCase := auth.NewTokenUseCase(cfg.JWT.AccessSecret)

	// Handlers
	if err := handler.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}
	router := http.NewRouter(
		handler.NewProfileHandler(profileUseCase),
		handler.NewBadgeHandler(badgeUseCase),
		handler.NewLeaderboardHandler(leaderboardUseCase),
		handler.NewInteractionHandler(interactionUseCase),
		handler.NewCollaborationHandler(compatibilityUseCase, collaborationUseCase),
		handler.NewNotificationHandler(notificationUseCase),
		middleware.NewAuthMiddleware(tokenUseCase),
	)

	srv := server.NewServer(&cfg.Server, &cfg.CORS, router.Setup())

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("error closing redis: %v", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
