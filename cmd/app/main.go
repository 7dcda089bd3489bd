package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"freightcore/cmd"
	httpin "freightcore/internal/adapters/in/http"
	"freightcore/internal/adapters/out/postgres/sequencerepo"
	"freightcore/internal/adapters/out/postgres/shipmentrepo"
	"freightcore/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultWatchdogSchedule = "0 */10 * * * *"
	defaultWatchdogStale    = 48 * time.Hour
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateGetStalledShipmentsQueryHandler(),
		configs.WatchdogSchedule,
		configs.WatchdogStale,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	config := cmd.Config{
		HTTPPort:         os.Getenv("HTTP_PORT"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        os.Getenv("DB_SSLMODE"),
		WatchdogSchedule: defaultWatchdogSchedule,
		WatchdogStale:    defaultWatchdogStale,
	}

	if schedule := os.Getenv("WATCHDOG_SCHEDULE"); schedule != "" {
		config.WatchdogSchedule = schedule
	}
	if stale := os.Getenv("WATCHDOG_STALE"); stale != "" {
		parsed, err := time.ParseDuration(stale)
		if err != nil {
			log.Fatalf("Invalid WATCHDOG_STALE duration: %v", err)
		}
		config.WatchdogStale = parsed
	}

	return config
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &sequencerepo.CounterDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateTransitionShipmentCommandHandler(),
		app.CreateGetShipmentByReferenceQueryHandler(),
		app.CreateGetActiveShipmentsQueryHandler(),
		app.CreateGetDailySequenceUsageQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
