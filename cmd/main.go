package main

import (
	"context"
	"errors"
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

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	_ "github.com/sbilibin2017/rewipay-ledger/docs"
	"github.com/sbilibin2017/rewipay-ledger/internal/handlers"
	"github.com/sbilibin2017/rewipay-ledger/internal/logger"
	"github.com/sbilibin2017/rewipay-ledger/internal/models"
	"github.com/sbilibin2017/rewipay-ledger/internal/repositories"
	"github.com/sbilibin2017/rewipay-ledger/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Document store drivers.
const (
	storeFile     = "file"
	storePostgres = "postgres"
	storeRedis    = "redis"
	storeS3       = "s3"
)

// config is everything read from the environment.
type config struct {
	AppHost        string
	AppPort        string
	LogLevel       string
	LogEncoding    string
	CORSOrigins    []string
	StoreDriver    string
	StoreFilePath  string
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int
	PGDocumentName string
	RedisHost      string
	RedisPort      int
	RedisDB        int
	RedisPassword  string
	RedisPoolSize  int
	RedisKey       string
	S3Endpoint     string
	S3Region       string
	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3Key          string
	KafkaBrokers   []string
	KafkaTopic     string
	InitialBalance decimal.Decimal
	ListLimit      int
}

// @title Rewi Pay ledger API
// @version 1.0.0
// @description Wallet balances, ledger and bookings for the Rewi Pay demo
// @host localhost:3001
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, store, Kafka and ledger configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	splitList := func(val string) []string {
		var out []string
		for _, item := range strings.Split(val, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "3001")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogEncoding = getEnv("APP_LOG_ENCODING", "json")
	cfg.CORSOrigins = splitList(getEnv("APP_CORS_ORIGINS", "*"))

	// Document store config
	cfg.StoreDriver = getEnv("STORE_DRIVER", storeFile)
	switch cfg.StoreDriver {
	case storeFile, storePostgres, storeRedis, storeS3:
	default:
		err = fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
		return
	}
	cfg.StoreFilePath = getEnv("STORE_FILE_PATH", "database.json")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	cfg.PGDocumentName = getEnv("POSTGRES_DOCUMENT_NAME", repositories.DefaultDocumentName)
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	cfg.RedisKey = getEnv("REDIS_KEY", repositories.DefaultDocumentKey)

	// S3 config
	cfg.S3Endpoint = getEnv("S3_ENDPOINT", "")
	cfg.S3Region = getEnv("S3_REGION", "us-east-1")
	cfg.S3AccessKey = getEnv("S3_ACCESS_KEY", "")
	cfg.S3SecretKey = getEnv("S3_SECRET_KEY", "")
	cfg.S3Bucket = getEnv("S3_BUCKET", "rewipay")
	cfg.S3Key = getEnv("S3_KEY", repositories.DefaultObjectKey)

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "ledger-transactions")

	// Ledger config
	if cfg.InitialBalance, err = decimal.NewFromString(getEnv("LEDGER_INITIAL_BALANCE", models.DefaultInitialBalance.String())); err != nil {
		return
	}
	if cfg.ListLimit, err = strconv.Atoi(getEnv("LEDGER_LIST_LIMIT", strconv.Itoa(services.DefaultListLimit))); err != nil {
		return
	}

	return
}

// newDocumentStore connects the configured backend. The returned func
// releases its connections.
func newDocumentStore(ctx context.Context, cfg config) (repositories.DocumentLoadSaver, func(), error) {
	switch cfg.StoreDriver {
	case storePostgres:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
		logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("PostgreSQL connection error: %w", err)
		}
		db.SetMaxOpenConns(cfg.PGMaxOpenConns)
		db.SetMaxIdleConns(cfg.PGMaxIdleConns)

		store := repositories.NewDocumentPostgresRepository(db, cfg.PGDocumentName)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, func() { db.Close() }, nil

	case storeRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			PoolSize: cfg.RedisPoolSize,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("Redis connection error: %w", err)
		}
		return repositories.NewDocumentRedisRepository(rdb, cfg.RedisKey), func() { rdb.Close() }, nil

	case storeS3:
		client, err := repositories.NewS3Client(ctx, repositories.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewDocumentS3Repository(client, cfg.S3Bucket, cfg.S3Key), func() {}, nil

	default:
		return repositories.NewDocumentFileRepository(cfg.StoreFilePath), func() {}, nil
	}
}

// newServices wires repositories and services over one unit of work.
func newServices(store repositories.DocumentLoadSaver, publisher services.Publisher, cfg config) handlers.Services {
	uow := repositories.NewUnitOfWork(store)

	accounts := repositories.NewAccountRepository(uow, cfg.InitialBalance)
	transactions := repositories.NewTransactionRepository(uow)

	ledger := services.NewLedgerService(uow, accounts, transactions, publisher, cfg.ListLimit)

	return handlers.Services{
		Ledger:  ledger,
		Catalog: services.NewCatalogService(nil),
		Flights: services.NewFlightService(ledger, repositories.NewFlightBookingRepository(uow)),
		Hotels:  services.NewHotelService(ledger, repositories.NewHotelBookingRepository(uow)),
		Marketplace: services.NewMarketplaceService(ledger,
			repositories.NewMarketplacePurchaseRepository(uow),
			repositories.NewMarketplaceOrderRepository(uow),
		),
		Utility: services.NewUtilityService(ledger, repositories.NewUtilityBillRepository(uow)),
	}
}

// run initializes the logger, document store, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect the document store
	store, closeStore, err := newDocumentStore(ctx, cfg)
	if err != nil {
		logger.Log.Errorw("failed to open document store", "driver", cfg.StoreDriver, "error", err)
		return err
	}
	defer closeStore()
	logger.Log.Infow("Document store ready", "driver", cfg.StoreDriver)

	// Kafka writer for transaction events
	var writer services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.Hash{},
		}
		defer kw.Close()
		writer = kw
	}
	publisher := services.NewEventPublisher(writer)

	router := handlers.NewRouter(newServices(store, publisher, cfg), cfg.CORSOrigins)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: router,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
