package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-user-accounts/docs"
	"github.com/sbilibin2017/gw-user-accounts/internal/handlers"
	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-user-accounts/internal/repositories"
	"github.com/sbilibin2017/gw-user-accounts/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-user-accounts API
// @version 1.0.0
// @description Service for managing users and their bank accounts
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, appTimeoutSecond, logLevel, logFormat,
		dbDriver, dbDSN, dbMaxOpenConns, dbMaxIdleConns,
		redisAddr, redisPassword, redisDB, redisExpSecond,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, appTimeoutSecond, logLevel, logFormat,
		dbDriver, dbDSN, dbMaxOpenConns, dbMaxIdleConns,
		redisAddr, redisPassword, redisDB, redisExpSecond,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, store, cache, event and logging configuration.
func parseConfig(path string) (
	appHost, appPort string, appTimeoutSecond int,
	logLevel, logFormat string,
	dbDriver, dbDSN string, dbMaxOpenConns, dbMaxIdleConns int,
	redisAddr, redisPassword string, redisDB, redisExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "")
	appPort = getEnv("APP_PORT", "8080")
	if appTimeoutSecond, err = strconv.Atoi(getEnv("APP_TIMEOUT_SECOND", "15")); err != nil {
		return
	}
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	logFormat = getEnv("APP_LOG_FORMAT", "json")

	// Store config
	dbDriver = getEnv("DB_DRIVER", repositories.DriverSQLite)
	dbDSN = getEnv("DB_DSN", "bank.db")
	if dbMaxOpenConns, err = strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if dbMaxIdleConns, err = strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config, empty address disables the user cache
	redisAddr = getEnv("REDIS_ADDR", "")
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "60")); err != nil {
		return
	}

	// Kafka config, no brokers disables account events
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			kafkaBrokers = append(kafkaBrokers, broker)
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "account-events")

	return
}

// newRouter wires repositories, services and handlers onto a chi router.
// cache and events may be nil.
func newRouter(db *sqlx.DB, cache services.UserCache, events services.KafkaWriter) http.Handler {
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	accountReadRepo := repositories.NewAccountReadRepository(db)
	accountWriteRepo := repositories.NewAccountWriteRepository(db)

	userService := services.NewUserService(userReadRepo, userWriteRepo, cache)
	accountService := services.NewAccountService(userReadRepo, accountReadRepo, accountWriteRepo, events)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.NotFound(handlers.NotFoundHandler())
	r.MethodNotAllowed(handlers.MethodNotAllowedHandler())

	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.SetHeader("Content-Type", "application/json"))

		r.Get("/health", handlers.NewHealthHandler())

		r.Route("/users", func(r chi.Router) {
			r.Get("/", handlers.NewListUsersHandler(userService))
			r.Post("/", handlers.NewCreateUserHandler(userService))
			r.Get("/{id}", handlers.NewGetUserHandler(userService))
			r.Get("/{id}/accounts", handlers.NewListAccountsHandler(accountService))
			r.Post("/{id}/accounts", handlers.NewCreateAccountHandler(userService, accountService))
		})
		r.Patch("/accounts/{id}", handlers.NewPatchAccountHandler(accountService, accountService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}

// run initializes the logger, store, optional Redis cache and Kafka writer,
// and serves HTTP until a shutdown signal arrives.
func run(ctx context.Context,
	appHost, appPort string, appTimeoutSecond int,
	logLevel, logFormat string,
	dbDriver, dbDSN string, dbMaxOpenConns, dbMaxIdleConns int,
	redisAddr, redisPassword string, redisDB, redisExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
) error {
	if err := logger.Initialize(logLevel, logFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", logLevel)

	log.Infow("Opening store", "driver", dbDriver)
	db, err := repositories.Open(ctx, dbDriver, dbDSN, dbMaxOpenConns, dbMaxIdleConns)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.EnsureSchema(ctx, db); err != nil {
		return err
	}

	var cache services.UserCache
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewUserCacheRepository(rdb, time.Duration(redisExpSecond)*time.Second)
		log.Infow("User cache enabled", "addr", redisAddr)
	}

	var events services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:         kafka.TCP(kafkaBrokers...),
			Topic:        kafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
		}
		defer kw.Close()
		events = kw
		log.Infow("Account events enabled", "brokers", kafkaBrokers, "topic", kafkaTopic)
	}

	timeout := time.Duration(appTimeoutSecond) * time.Second
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", appHost, appPort),
		Handler:      newRouter(db, cache, events),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
