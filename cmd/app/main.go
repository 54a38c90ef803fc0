package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gasdelivery/cmd"
	"gasdelivery/internal/adapters/out/amqp"
	"gasdelivery/internal/adapters/out/postgres/actorrepo"
	"gasdelivery/internal/adapters/out/postgres/eventrepo"
	"gasdelivery/internal/adapters/out/postgres/orderrepo"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dsn := postgresDSN(configs)
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to postgres", "error", err)
		os.Exit(1)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &actorrepo.ActorDTO{}, &eventrepo.EventDTO{}); err != nil {
		logger.Error("Failed to migrate schema", "error", err)
		os.Exit(1)
	}

	publisher, err := amqp.Dial(configs.AmqpURL)
	if err != nil {
		logger.Error("Failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	if err = publisher.DeclareAll(); err != nil {
		logger.Error("Failed to declare broker topology", "error", err)
		os.Exit(1)
	}

	listener := newOutboxListener(dsn, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager := app.CreateJobManager(listener)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	server, err := app.CreateHTTPServer()
	if err != nil {
		logger.Error("Failed to build http server", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	server.RegisterRoutes(e)

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil {
			logger.Info("Http server stopped", "reason", startErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(ctx); err != nil {
		logger.Error("Http server shutdown failed", "error", err)
	}
}

func postgresDSN(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)
}

// newOutboxListener subscribes to the outbox notification channel so the
// relay drains new events without waiting for its next tick. The relay
// works without it, so a listener failure only costs latency.
func newOutboxListener(dsn string, logger *slog.Logger) *pq.Listener {
	listener := pq.NewListener(dsn, 10*time.Second, time.Minute, func(_ pq.ListenerEventType, err error) {
		if err != nil {
			logger.Error("Outbox listener connection event", "error", err)
		}
	})
	if err := listener.Listen(eventrepo.NotifyChannel); err != nil {
		logger.Error("Failed to listen on outbox channel, relying on cron ticks", "error", err)
		_ = listener.Close()
		return nil
	}
	return listener
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:             goDotEnvVariable("AMQP_URL"),
		OutboxRetentionDays: goDotEnvInt("OUTBOX_RETENTION_DAYS", 7),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		return fallback
	}
	return value
}
