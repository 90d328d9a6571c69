package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/facility-management/internal"
	"github.com/frahmantamala/facility-management/internal/auth"
	authPostgres "github.com/frahmantamala/facility-management/internal/auth/postgres"
	"github.com/frahmantamala/facility-management/internal/spaces"
	spacesPostgres "github.com/frahmantamala/facility-management/internal/spaces/postgres"
	"github.com/frahmantamala/facility-management/internal/transport/rest"
	"github.com/frahmantamala/facility-management/internal/user"
	userPostgres "github.com/frahmantamala/facility-management/internal/user/postgres"
	"github.com/frahmantamala/facility-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	lg := deps.Logger
	cfg := deps.Config

	secret, configured := cfg.Security.EffectiveJWTSecret()
	if !configured {
		lg.Warn("no JWT secret configured, tokens are signed with an insecure development secret")
	}
	tokenGen := auth.NewJWTTokenGenerator(secret, cfg.Security.EffectiveTokenDuration())

	authRepo := authPostgres.NewAuthRepository(deps.GormDB)
	authService := auth.NewService(authRepo, tokenGen, cfg.Security.EffectiveBCryptCost(), lg)
	authHandler := auth.NewHandler(lg, authService)

	if err := authService.Bootstrap(); err != nil {
		// A failed bootstrap leaves the API usable for existing accounts
		lg.Error("admin bootstrap failed", "error", err)
	}

	userRepo := userPostgres.NewUserRepository(deps.GormDB)
	userService := user.NewService(userRepo, lg)
	userHandler := user.NewHandler(lg, userService)

	spaceRepo := spacesPostgres.NewSpaceRepository(deps.GormDB)
	statsRepo := spacesPostgres.NewStatsRepository(deps.DB)
	spacesService := spaces.NewService(spaceRepo, statsRepo, lg)
	spacesHandler := spaces.NewHandler(lg, spacesService)

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, authHandler, userHandler, spacesHandler, lg)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Environment)
	lg := logger.LoggerWrapper()

	db, gormDB, err := initDB(config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: lg,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens the pooled pgx connection and layers gorm on top of the same
// pool so both access paths share the connection limits.
func initDB(cfg *internal.Config) (*sqlx.DB, *gorm.DB, error) {
	const driver = "pgx"

	dsn := cfg.Database.DSN(cfg.Environment)

	dbConn, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbConn.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbConn.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := internal.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancel()
	if err := dbConn.PingContext(ctx); err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{
		Conn: dbConn.DB,
	}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return dbConn, gormDB, nil
}
