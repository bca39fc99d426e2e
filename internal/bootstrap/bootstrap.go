// Package bootstrap wires the application together: configuration,
// logging, the storage backend, seeding, services, controllers and the
// router. The server package calls these functions in order.
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/clubhub-app/clubhub/internal/app/controllers"
	appRepos "github.com/clubhub-app/clubhub/internal/app/repositories"
	appRoutes "github.com/clubhub-app/clubhub/internal/app/routes"
	appServices "github.com/clubhub-app/clubhub/internal/app/services"
	"github.com/clubhub-app/clubhub/internal/config"
	"github.com/clubhub-app/clubhub/internal/db"
	"github.com/clubhub-app/clubhub/internal/kvstore"
	"github.com/clubhub-app/clubhub/internal/metrics"
	appMiddleware "github.com/clubhub-app/clubhub/internal/middleware"
	pkgAuth "github.com/clubhub-app/clubhub/internal/pkg/auth"
	"github.com/clubhub-app/clubhub/internal/pkg/helpers"
	"github.com/clubhub-app/clubhub/internal/pkg/logger"
	"github.com/clubhub-app/clubhub/internal/seed"
	"github.com/clubhub-app/clubhub/internal/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	UserService          appServices.UserService
	ClubService          appServices.ClubService
	MembershipService    appServices.MembershipService
	AnnouncementService  appServices.AnnouncementService
	EventService         appServices.EventService
	SiteService          appServices.SiteService
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	ClubController       *appControllers.ClubController
	MembershipController *appControllers.MembershipController
	EventController      *appControllers.EventController
	SiteController       *appControllers.SiteController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	Sessions             session.Store
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage creates the key-value store selected by the storage
// driver. The returned PostgresDB is nil except for the postgres driver.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (*kvstore.Store, *db.PostgresDB, error) {
	switch cfg.Storage.Driver {
	case "file":
		backend, err := kvstore.NewFileBackend(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open file storage: %w", err)
		}
		lgr.Info().Str("dataDir", cfg.Storage.DataDir).Msg("Using file storage")
		return kvstore.New(backend, cfg.Storage.QuotaBytes, lgr), nil, nil

	case "postgres":
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		backend, err := kvstore.NewPostgresBackend(ctx, database.Pool)
		if err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to prepare key-value table: %w", err)
		}
		lgr.Info().Str("host", cfg.Database.Host).Msg("Using postgres storage")
		return kvstore.New(backend, cfg.Storage.QuotaBytes, lgr), database, nil

	case "memory":
		lgr.Warn().Msg("Using in-memory storage, data will not survive a restart")
		return kvstore.New(kvstore.NewMemoryBackend(), cfg.Storage.QuotaBytes, lgr), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// SetupSessions creates the session marker store selected by the config
func SetupSessions(cfg *config.Config, lgr zerolog.Logger) (session.Store, error) {
	switch cfg.Session.Backend {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store, err := session.NewRedisStore(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Using redis session store")
		return store, nil

	case "memory":
		return session.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

// BuildDependencies initializes repositories, services and controllers.
// Collections are loaded from storage once here and seeded when empty.
func BuildDependencies(cfg *config.Config, store *kvstore.Store, lgr zerolog.Logger) (*Dependencies, error) {
	metrics.Register()

	deps := &Dependencies{Logger: lgr}

	ctx := context.Background()
	deps.Repos = appRepos.NewRepositories(ctx, store)

	if err := seed.CreateDefaultData(ctx, deps.Repos, lgr); err != nil {
		// Seed failures leave an empty but working store
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	sessions, err := SetupSessions(cfg, lgr)
	if err != nil {
		return nil, err
	}
	deps.Sessions = sessions

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos, deps.Sessions, deps.JWTService, cfg.SessionTTL(), lgr)
	deps.UserService = appServices.NewUserService(deps.Repos, lgr)
	deps.ClubService = appServices.NewClubService(deps.Repos, lgr)
	deps.MembershipService = appServices.NewMembershipService(deps.Repos, lgr)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos, lgr)
	deps.EventService = appServices.NewEventService(deps.Repos, lgr)
	deps.SiteService = appServices.NewSiteService(deps.Repos, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Sessions, deps.Repos)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.ClubController = appControllers.NewClubController(deps.ClubService)
	deps.MembershipController = appControllers.NewMembershipController(deps.MembershipService, deps.MembershipService)
	deps.EventController = appControllers.NewEventController(deps.AnnouncementService, deps.EventService)
	deps.SiteController = appControllers.NewSiteController(deps.SiteService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.RequestMetrics())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ClubController,
		deps.MembershipController,
		deps.EventController,
		deps.SiteController,
		deps.AuthMiddleware,
	)

	return router
}
