package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"orderintake/cmd"
	intakehttp "orderintake/internal/adapters/in/http"
	"orderintake/internal/adapters/out/postgres/customerrepo"
	"orderintake/internal/adapters/out/postgres/orderrepo"
	"orderintake/internal/adapters/out/postgres/productrepo"
	"orderintake/internal/adapters/out/postgres/zonerepo"
	"orderintake/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	createDbIfNotExists(configs)

	gormDB := mustConnectDB(configs)

	root, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	jobManager := jobs.NewJobManager(
		root.CreateCountOrdersQueryHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, gormDB, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:   envString("HTTP_PORT", "8080"),
		DBHost:     envString("DB_HOST", "localhost"),
		DBPort:     envString("DB_PORT", "5432"),
		DBUser:     envString("DB_USER", "postgres"),
		DBPassword: envString("DB_PASSWORD", "postgres"),
		DBName:     envString("DB_NAME", "orderintake"),
		DBSslMode:  envString("DB_SSLMODE", "disable"),

		RedisAddr:   os.Getenv("REDIS_ADDR"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		BusinessOpenHour:   envInt("BUSINESS_OPEN_HOUR", 18),
		BusinessCloseHour:  envInt("BUSINESS_CLOSE_HOUR", 3),
		BusinessClosedDays: envWeekdays("BUSINESS_CLOSED_DAYS"),
		BusinessTimezone:   os.Getenv("BUSINESS_TIMEZONE"),
		SkipBusinessHours:  envBool("SKIP_BUSINESS_HOURS_VALIDATION"),

		ThrottleLimit:  int64(envInt("THROTTLE_LIMIT", 3)),
		ThrottleWindow: time.Duration(envInt("THROTTLE_WINDOW_SECONDS", 60)) * time.Second,

		TxTimeout: time.Duration(envInt("DB_TX_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, raw)
	}
	return v
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

// envWeekdays parses a comma separated list of weekday names, for example
// "Monday,Tuesday". An empty variable means no closed days.
func envWeekdays(key string) []time.Weekday {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}

	byName := map[string]time.Weekday{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		byName[strings.ToLower(d.String())] = d
	}

	var days []time.Weekday
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		day, ok := byName[name]
		if !ok {
			log.Fatalf("%s contains an unknown weekday %q", key, part)
		}
		days = append(days, day)
	}
	return days
}

// createDbIfNotExists connects to the maintenance database and creates the
// application database when it is missing, so a fresh environment can start
// without manual setup.
func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("failed to check database existence: %v", err)
	}
	if exists {
		return
	}

	if _, err = db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(configs.DBName)); err != nil {
		log.Fatalf("failed to create database %s: %v", configs.DBName, err)
	}
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=5",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	err = gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&zonerepo.ZoneDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	)
	if err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, gormDB *gorm.DB, configs cmd.Config) {
	e := echo.New()
	e.HideBanner = true
	e.Use(intakehttp.RequestID())

	server := intakehttp.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetCustomerOrdersQueryHandler(),
		root.CreateGetOrdersQueryHandler(),
		root.CreateGetActiveZonesQueryHandler(),
	)

	var createLimiter echo.MiddlewareFunc
	if configs.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
		createLimiter = intakehttp.RateLimiter(redisClient, intakehttp.RateLimiterConfig{
			Limit:  configs.ThrottleLimit,
			Window: configs.ThrottleWindow,
			Prefix: "throttle:orders",
		})
	}

	server.RegisterRoutes(e, intakehttp.APIKeyAuth(configs.AdminAPIKey), createLimiter)

	e.GET("/health", func(c echo.Context) error {
		sqlDB, err := gormDB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return c.String(http.StatusServiceUnavailable, "Unhealthy")
		}
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			e.Logger.Errorf("closing database pool: %v", err)
		}
	}
}
