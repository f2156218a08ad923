package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pocketmart/cmd"
	apihttp "pocketmart/internal/adapters/in/http"
	"pocketmart/internal/adapters/out/postgres/accountrepo"
	"pocketmart/internal/adapters/out/postgres/deliveryrepo"
	"pocketmart/internal/adapters/out/postgres/orderrepo"
	"pocketmart/internal/adapters/out/postgres/personnelrepo"
	"pocketmart/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDB(configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateResetDailyCountersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}

	e := newWebServer(&app)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	// Close the pool on termination so no connection is abandoned
	// mid-transaction.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Error(err)
	}

	jobManager.StopAll()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func getConfigs() cmd.Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8000"),
		DBHost:     requiredEnv("DB_HOST"),
		DBPort:     requiredEnv("DB_PORT"),
		DBUser:     requiredEnv("DB_USER"),
		DBPassword: requiredEnv("DB_PASSWORD"),
		DBName:     requiredEnv("DB_NAME"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),
	}
	return config
}

func requiredEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Missing required environment variable %s", key)
	}
	return value
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&accountrepo.UserDTO{},
		&accountrepo.ClientDetailsDTO{},
		&personnelrepo.DeliveryPersonDTO{},
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	return db
}

func newWebServer(app *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := apihttp.NewServer(
		app.CreateAssignDeliveryCommandHandler(),
		app.CreateCreatePersonnelCommandHandler(),
		app.CreateRegisterClientCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetAllDeliveryMenQueryHandler(),
	)
	server.RegisterRoutes(e)

	return e
}
