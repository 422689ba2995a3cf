package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"supplytrace/cmd"
	httpin "supplytrace/internal/adapters/in/http"
	"supplytrace/internal/adapters/out/kafka"
	pgadapter "supplytrace/internal/adapters/out/postgres"
	"supplytrace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	if err := pgadapter.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	serverPrivateKey := mustReadKey(configs.ServerPrivateKeyFile)
	serverPublicKey := mustReadKey(configs.ServerPublicKeyFile)

	producer := kafka.NewProducer([]string{configs.KafkaHost})
	defer func() {
		_ = producer.Close()
	}()

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		producer,
		serverPrivateKey,
		serverPublicKey,
	)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateDispatchOutboxCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:            goDotEnvVariable("KAFKA_HOST"),
		ServerPrivateKeyFile: goDotEnvVariable("SERVER_PRIVATE_KEY_FILE"),
		ServerPublicKeyFile:  goDotEnvVariable("SERVER_PUBLIC_KEY_FILE"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

// mustReadKey loads a PEM key at startup. The signing chain cannot operate
// without both server keys, so a missing file is fatal.
func mustReadKey(path string) string {
	key, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read key file %s: %v", path, err)
	}
	return string(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateApproveOrderCommandHandler(),
		app.CreateRejectOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateAcceptLegCommandHandler(),
		app.CreateRejectLegCommandHandler(),
		app.CreateShipOrderCommandHandler(),
		app.CreateShipForwardCommandHandler(),
		app.CreateConfirmReceiptCommandHandler(),
		app.CreateForwardOrderCommandHandler(),
		app.CreateReassignOrderCommandHandler(),
		app.CreateReassignLegCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateVerifyTokenCommandHandler(),
		app.CreateProvisionSupplierKeysCommandHandler(),
		app.CreateCreateTransporterCommandHandler(),
		app.CreateDeleteTransporterCommandHandler(),
		app.CreateGetOrderTrackingQueryHandler(),
		app.CreateGetOrderQrQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
