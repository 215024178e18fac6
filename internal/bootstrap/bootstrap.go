package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/fiftyvillagers/seva-portal/internal/app/controllers"
	appMigrations "github.com/fiftyvillagers/seva-portal/internal/app/migrations"
	appRepos "github.com/fiftyvillagers/seva-portal/internal/app/repositories"
	appRoutes "github.com/fiftyvillagers/seva-portal/internal/app/routes"
	appServices "github.com/fiftyvillagers/seva-portal/internal/app/services"
	"github.com/fiftyvillagers/seva-portal/internal/config"
	"github.com/fiftyvillagers/seva-portal/internal/db"
	appMiddleware "github.com/fiftyvillagers/seva-portal/internal/middleware"
	pkgAuth "github.com/fiftyvillagers/seva-portal/internal/pkg/auth"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/email"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/filestorage"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/logger"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/payment"
	"github.com/fiftyvillagers/seva-portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appControllers.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	RateLimiter    *appMiddleware.RateLimiter
	JWTService     *pkgAuth.JWTService
	Storage        filestorage.Storage
	RedisClient    *redis.Client
	Logger         zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account and exam center.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and
// middleware from the configuration.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	storage, err := buildStorage(cfg, lgr)
	if err != nil {
		return nil, err
	}
	deps.Storage = storage

	tokenExp, err := time.ParseDuration(cfg.JWT.TokenExpiration)
	if err != nil {
		tokenExp = 120 * time.Hour
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.JWT.Issuer,
	})

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	deps.Services = appServices.NewServices(deps.Repos, appServices.Dependencies{
		JWTService:   deps.JWTService,
		EmailService: emailService,
		Storage:      storage,
		Gateway:      payment.NewRazorpayGateway(cfg.Payment.KeyID, cfg.Payment.KeySecret),
		Verifier:     payment.NewHMACVerifier(cfg.Payment.KeySecret),
		PaymentConfig: appServices.PaymentConfig{
			KeyID:      cfg.Payment.KeyID,
			FeeAmount:  cfg.Payment.FeeAmount,
			Currency:   cfg.Payment.Currency,
			RollPrefix: cfg.Admissions.RollPrefix,
			Year:       cfg.Admissions.Year,
		},
	})

	deps.Controllers = appControllers.NewControllers(deps.Services, storage)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.RedisClient, deps.RateLimiter = buildRateLimiter(cfg, lgr)

	return deps, nil
}

// buildStorage selects the file store backend from configuration.
func buildStorage(cfg *config.Config, lgr zerolog.Logger) (filestorage.Storage, error) {
	switch cfg.Storage.Driver {
	case "minio":
		storage, err := filestorage.NewMinioStorage(filestorage.MinioConfig{
			Endpoint:  cfg.Storage.MinioEndpoint,
			AccessKey: cfg.Storage.MinioAccessKey,
			SecretKey: cfg.Storage.MinioSecretKey,
			Bucket:    cfg.Storage.MinioBucket,
			Region:    cfg.Storage.MinioRegion,
			UseSSL:    cfg.Storage.MinioUseSSL,
		})
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to initialize minio storage")
			return nil, fmt.Errorf("failed to initialize minio storage: %w", err)
		}
		lgr.Info().Str("endpoint", cfg.Storage.MinioEndpoint).Msg("Minio storage configured")
		return storage, nil

	default:
		// The base URL must match the static file route the server mounts.
		baseURL := cfg.Server.BaseURL + "/uploads"
		storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to initialize local storage")
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		lgr.Info().Str("path", cfg.Server.StoragePath).Msg("Local storage configured")
		return storage, nil
	}
}

// buildRateLimiter wires the Redis-backed limiter when Redis is configured.
func buildRateLimiter(cfg *config.Config, lgr zerolog.Logger) (*redis.Client, *appMiddleware.RateLimiter) {
	if cfg.Redis.Addr == "" {
		lgr.Info().Msg("Redis not configured, rate limiting disabled")
		return nil, appMiddleware.NewRateLimiter(nil, 0, 0)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	window, err := time.ParseDuration(cfg.Redis.RateWindow)
	if err != nil {
		window = 15 * time.Minute
	}

	lgr.Info().
		Str("addr", cfg.Redis.Addr).
		Int("limit", cfg.Redis.RateLimit).
		Dur("window", window).
		Msg("Redis rate limiter configured")

	return client, appMiddleware.NewRateLimiter(client, cfg.Redis.RateLimit, window)
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, dbPool *pgxpool.Pool, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(deps.RateLimiter.Limit())

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, dbPool.Ping)

	return router
}
