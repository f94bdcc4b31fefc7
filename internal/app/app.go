package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sparegold/sparegold_catalog_service/internal/adapter/cloudinary"
	"github.com/sparegold/sparegold_catalog_service/internal/adapter/handler/http"
	"github.com/sparegold/sparegold_catalog_service/internal/adapter/identity"
	"github.com/sparegold/sparegold_catalog_service/internal/adapter/kvrepo"
	"github.com/sparegold/sparegold_catalog_service/internal/adapter/logger"
	"github.com/sparegold/sparegold_catalog_service/internal/adapter/memstore"
	"github.com/sparegold/sparegold_catalog_service/internal/adapter/prometheus"
	"github.com/sparegold/sparegold_catalog_service/internal/adapter/redis"
	"github.com/sparegold/sparegold_catalog_service/internal/adapter/sqlstore"
	"github.com/sparegold/sparegold_catalog_service/internal/config"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
	"github.com/sparegold/sparegold_catalog_service/internal/core/services"

	"github.com/go-playground/validator/v10"
	"github.com/pressly/goose"
	redisClient "github.com/redis/go-redis/v9"
)

type App struct {
	Config       *config.Container
	Logger       *logger.LoggerAdapter
	DB           *sql.DB
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	AuthService  *services.AuthService
	HTTPRouter   *http.Router

	unsubscribeAuth func()
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Set redis
	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	cacheAdapter := redis.NewRedisAdapter(redisConn)

	// Connect key-value store
	kvStore, db, err := openKVStore(cfg.DB)
	if err != nil {
		redisConn.Close()
		return nil, err
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Repositories
	companyRepo := kvrepo.NewCompanyRepository(kvStore)
	carModelRepo := kvrepo.NewCarModelRepository(kvStore)
	variantRepo := kvrepo.NewVariantRepository(kvStore)
	sparePartRepo := kvrepo.NewSparePartRepository(kvStore)
	bookingRepo := kvrepo.NewBookingRepository(kvStore)

	// Seed the catalog on first boot; persisted collections win.
	if err := seedCatalog(ctx, companyRepo, carModelRepo, variantRepo, sparePartRepo, bookingRepo); err != nil {
		if db != nil {
			db.Close()
		}
		redisConn.Close()
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	// Services
	companyService := services.NewCompanyService(companyRepo, loggerAdapter, validate, cacheAdapter)
	carModelService := services.NewCarModelService(carModelRepo, loggerAdapter, validate, cacheAdapter)
	variantService := services.NewVariantService(variantRepo, loggerAdapter, validate, cacheAdapter)
	sparePartService := services.NewSparePartService(sparePartRepo, loggerAdapter, validate)
	bookingService := services.NewBookingService(bookingRepo, sparePartRepo, loggerAdapter, validate)
	profileService := services.NewProfileService(kvStore, loggerAdapter)

	identityProvider := identity.NewLocalProvider(kvStore, loggerAdapter)
	authService := services.NewAuthService(identityProvider, kvStore, loggerAdapter)

	// Log session state transitions for the lifetime of the process.
	states, unsubscribe := authService.Subscribe()
	go func() {
		for state := range states {
			loggerAdapter.Info("Auth state changed", map[string]interface{}{
				"state": state.Status,
			})
		}
	}()

	uploader := cloudinary.NewUploader(cfg.Uploader.Endpoint, cfg.Uploader.Preset, nil, loggerAdapter)

	// HTTP Handlers
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, cfg.Token.TokenDuration(), loggerAdapter)
	authHandler := http.NewAuthHandler(authService, tokenService, loggerAdapter, metrics)
	companyHandler := http.NewCompanyHandler(companyService, loggerAdapter, metrics)
	carModelHandler := http.NewCarModelHandler(carModelService, loggerAdapter, metrics)
	variantHandler := http.NewVariantHandler(variantService, loggerAdapter, metrics)
	sparePartHandler := http.NewSparePartHandler(sparePartService, bookingService, loggerAdapter, metrics)
	bookingHandler := http.NewBookingHandler(bookingService, loggerAdapter, metrics)
	uploadHandler := http.NewUploadHandler(uploader, loggerAdapter, metrics)
	profileHandler := http.NewProfileHandler(authService, profileService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		tokenService,
		authHandler,
		companyHandler,
		carModelHandler,
		variantHandler,
		sparePartHandler,
		bookingHandler,
		uploadHandler,
		profileHandler,
	)
	if err != nil {
		if db != nil {
			db.Close()
		}
		redisConn.Close()
		unsubscribe()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:          cfg,
		Logger:          loggerAdapter,
		DB:              db,
		RedisClient:     redisConn,
		RedisAdapter:    cacheAdapter,
		AuthService:     authService,
		HTTPRouter:      router,
		unsubscribeAuth: unsubscribe,
	}, nil
}

// openKVStore opens the configured backing store. The returned *sql.DB is
// nil for the in-memory driver.
func openKVStore(cfg *config.DB) (ports.KVStore, *sql.DB, error) {
	switch cfg.Driver {
	case "memory":
		return memstore.New(), nil, nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		if err := goose.SetDialect("postgres"); err != nil {
			db.Close()
			return nil, nil, err
		}
		if err := goose.Up(db, "./internal/adapter/sqlstore/migrations"); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return sqlstore.NewKVStore(db, "postgres"), db, nil
	case "sqlite":
		db, err := sql.Open("sqlite", cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		if err := goose.SetDialect("sqlite3"); err != nil {
			db.Close()
			return nil, nil, err
		}
		if err := goose.Up(db, "./internal/adapter/sqlstore/migrations"); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return sqlstore.NewKVStore(db, "sqlite"), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
	}
}

func seedCatalog(
	ctx context.Context,
	companies ports.CompanyRepository,
	carModels ports.CarModelRepository,
	variants ports.VariantRepository,
	spareParts ports.SparePartRepository,
	bookings ports.BookingRepository,
) error {
	if _, err := companies.LoadOrSeed(ctx); err != nil {
		return err
	}
	if _, err := carModels.LoadOrSeed(ctx); err != nil {
		return err
	}
	if _, err := variants.LoadOrSeed(ctx); err != nil {
		return err
	}
	if _, err := spareParts.LoadOrSeed(ctx); err != nil {
		return err
	}
	if _, err := bookings.LoadOrSeed(ctx); err != nil {
		return err
	}
	return nil
}

// Runs all services
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	a.unsubscribeAuth()

	// Close database
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error("Database close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Close Redis
	if err := a.RedisClient.Close(); err != nil {
		a.Logger.Error("Redis close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	return a.Logger.Sync()
}
