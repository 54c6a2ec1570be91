package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"parcels/cmd"
	httpserver "parcels/internal/adapters/in/http"
	"parcels/internal/adapters/out/postgres/deliverymanrepo"
	"parcels/internal/adapters/out/postgres/deliveryrepo"
	"parcels/internal/adapters/out/postgres/filerepo"
	"parcels/internal/adapters/out/postgres/problemrepo"
	"parcels/internal/adapters/out/postgres/recipientrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:    goDotEnvVariable("REDIS_ADDR"),
		SMTPHost:     goDotEnvVariable("SMTP_HOST"),
		SMTPPort:     goDotEnvIntVariable("SMTP_PORT"),
		SMTPUser:     goDotEnvVariable("SMTP_USER"),
		SMTPPassword: goDotEnvVariable("SMTP_PASSWORD"),
		MailFrom:     goDotEnvVariable("MAIL_FROM"),
		MailFromName: goDotEnvVariable("MAIL_FROM_NAME"),
		UploadDir:    goDotEnvVariable("UPLOAD_DIR"),
		BaseURL:      goDotEnvVariable("BASE_URL"),
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

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&recipientrepo.RecipientDTO{},
		&deliverymanrepo.DeliverymanDTO{},
		&deliveryrepo.DeliveryDTO{},
		&problemrepo.ProblemDTO{},
		&filerepo.FileDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := httpserver.NewServer(app.CreateServerHandlers(), configs.UploadDir, configs.BaseURL)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
