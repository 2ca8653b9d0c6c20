package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"postal/cmd"
	httpin "postal/internal/adapters/in/http"
	"postal/internal/adapters/out/postgres/batchrepo"
	"postal/internal/adapters/out/postgres/consolidationrepo"
	"postal/internal/adapters/out/postgres/officerepo"
	"postal/internal/adapters/out/postgres/orderrepo"
	"postal/internal/adapters/out/postgres/transferrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := connectDB(configs)
	migrateDB(db)

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := app.CreateJobManager(configs, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		ConsolidationCronSpec: envOrDefault("CONSOLIDATION_CRON", "0 */5 * * * *"),
		AutoBatchCronSpec:     envOrDefault("AUTOBATCH_CRON", "0 */5 * * * *"),
		AutoBatchMaxWeightKg:  envFloatOrDefault("AUTOBATCH_MAX_WEIGHT_KG", 500),
		AutoBatchMaxOrders:    envIntOrDefault("AUTOBATCH_MAX_ORDERS", 50),
		SealingCronSpec:       envOrDefault("SEALING_CRON", "0 */10 * * * *"),
		SealingMaxAge:         envDurationOrDefault("SEALING_MAX_AGE", 3*time.Hour),
		SealingMinOrders:      envIntOrDefault("SEALING_MIN_ORDERS", 5),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDurationOrDefault(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return parsed
}

func envFloatOrDefault(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Invalid number in %s: %v", key, err)
	}
	return parsed
}

func envIntOrDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid integer in %s: %v", key, err)
	}
	return parsed
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&officerepo.OfficeDTO{},
		&orderrepo.OrderDTO{},
		&batchrepo.BatchDTO{},
		&batchrepo.BatchItemDTO{},
		&consolidationrepo.RouteDTO{},
		&consolidationrepo.RouteStopDTO{},
		&transferrepo.RouteDTO{},
		&transferrepo.DisruptionDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(httpin.Handlers{
		CreateOffice:             app.CreateCreateOfficeCommandHandler(),
		CreateOrder:              app.CreateCreateOrderCommandHandler(),
		AssignOrderToRoute:       app.CreateAssignOrderToRouteCommandHandler(),
		CreateConsolidationRoute: app.CreateCreateConsolidationRouteCommandHandler(),
		UpdateConsolidationRoute: app.CreateUpdateConsolidationRouteCommandHandler(),
		DeleteConsolidationRoute: app.CreateDeleteConsolidationRouteCommandHandler(),
		ConsolidateRoute:         app.CreateConsolidateRouteCommandHandler(),
		ConsolidateReadyRoutes:   app.CreateConsolidateReadyRoutesCommandHandler(),
		CreateBatch:              app.CreateCreateBatchCommandHandler(),
		AddOrdersToBatch:         app.CreateAddOrdersToBatchCommandHandler(),
		RemoveOrderFromBatch:     app.CreateRemoveOrderFromBatchCommandHandler(),
		AutoBatchOrders:          app.CreateAutoBatchOrdersCommandHandler(),
		SealBatch:                app.CreateSealBatchCommandHandler(),
		DepartBatch:              app.CreateDepartBatchCommandHandler(),
		ArriveBatch:              app.CreateArriveBatchCommandHandler(),
		DistributeBatch:          app.CreateDistributeBatchCommandHandler(),
		CancelBatch:              app.CreateCancelBatchCommandHandler(),
		CreateTransferRoute:      app.CreateCreateTransferRouteCommandHandler(),
		DisableRoute:             app.CreateDisableRouteCommandHandler(),
		EnableRoute:              app.CreateEnableRouteCommandHandler(),

		GetOrderTracking:          app.CreateGetOrderTrackingQueryHandler(),
		ComputeRoute:              app.CreateComputeRouteQueryHandler(),
		PreviewDisableImpact:      app.CreatePreviewDisableImpactQueryHandler(),
		GetActiveDisruptions:      app.CreateGetActiveDisruptionsQueryHandler(),
		GetRouteDisruptionHistory: app.CreateGetRouteDisruptionHistoryQueryHandler(),
		GetConsolidationBacklog:   app.CreateGetConsolidationBacklogQueryHandler(),
	})

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
