package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"laundromat/cmd"
	"laundromat/internal/adapters/metrics"
	"laundromat/internal/adapters/out/postgres/itemrepo"
	"laundromat/internal/adapters/out/postgres/orderrepo"
	"laundromat/internal/adapters/out/postgres/storagerepo"
	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/storage"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)
	mustSeedRacks(gormDB, configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		JWTSecret:              goDotEnvVariable("JWT_SECRET"),
		SeedRackCount:          goDotEnvIntVariable("SEED_RACK_COUNT", 5),
		SeedRackCapacity:       goDotEnvIntVariable("SEED_RACK_CAPACITY", 50),
		SeedRackRangeSize:      goDotEnvIntVariable("SEED_RACK_RANGE_SIZE", 100),
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

func goDotEnvIntVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&itemrepo.PressingItemDTO{},
		&itemrepo.CleaningItemDTO{},
		&storagerepo.StorageDTO{},
		&storagerepo.AllocationDTO{},
	)
	if err != nil {
		log.Fatalf("migrating database: %v", err)
	}
}

// mustSeedRacks provisions the configured rack layout on first start.
// An already populated storages table is left untouched.
func mustSeedRacks(gormDB *gorm.DB, configs cmd.Config) {
	var count int64
	if err := gormDB.Model(&storagerepo.StorageDTO{}).Count(&count).Error; err != nil {
		log.Fatalf("counting racks: %v", err)
	}
	if count > 0 {
		return
	}

	repository := storagerepo.NewGormStorageRepository(gormDB)
	for i := 0; i < configs.SeedRackCount; i++ {
		rack, err := storage.NewRack(
			kernel.NewUUID(),
			i+1,
			configs.SeedRackCapacity,
			i*configs.SeedRackRangeSize+1,
			(i+1)*configs.SeedRackRangeSize,
		)
		if err != nil {
			log.Fatalf("building rack %d: %v", i+1, err)
		}
		if err := repository.AddRack(context.Background(), rack); err != nil {
			log.Fatalf("seeding rack %d: %v", i+1, err)
		}
	}
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(metrics.Middleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e, configs.JWTSecret)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
