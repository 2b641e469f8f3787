package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"fleetops/internal/fleet/controller"
	"fleetops/internal/fleet/db"
	"fleetops/internal/fleet/events"
	"fleetops/internal/fleet/export"
	"fleetops/internal/fleet/handlers"
	"fleetops/internal/fleet/jobs"
	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config struct for YAML configuration
type Config struct {
	HTTPAddr       string   `yaml:"HTTP_ADDR"`
	DBHost         string   `yaml:"DB_HOST"`
	DBPort         int      `yaml:"DB_PORT"`
	DBUser         string   `yaml:"DB_USER"`
	DBPassword     string   `yaml:"DB_PASSWORD"`
	DBName         string   `yaml:"DB_NAME"`
	DBSSLMode      string   `yaml:"DB_SSLMODE"`
	KafkaBrokers   []string `yaml:"KAFKA_BROKERS"`
	JWTSecret      string   `yaml:"JWT_SECRET"`
	Topic          string   `yaml:"TOPIC"`
	ExportSchedule string   `yaml:"EXPORT_SCHEDULE"`
	ExportDir      string   `yaml:"EXPORT_DIR"`
}

func main() {
	logger := initLogger()
	defer func(logger *zap.Logger) {
		err := logger.Sync()
		if err != nil {
			logger.Error("failed to sync logger", zap.Error(err))
		}
	}(logger)

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// Bootstrap retry only; business operations never retry.
	var repo *db.Repository
	dbConf := initDatabase(cfg)
	err = backoff.Retry(func() error {
		var dialErr error
		repo, dialErr = db.NewRepository(dbConf)
		return dialErr
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5))
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	producer, err := events.NewProducer(cfg.KafkaBrokers, logger, cfg.Topic)
	if err != nil {
		logger.Fatal("failed to initialize Kafka producer", zap.Error(err))
	}
	defer producer.Close()

	fleetSvc := controller.NewService(repo, producer, logger)
	exporter := export.NewExporter(repo, logger)

	exportJob := jobs.NewExportJob(exporter, cfg.ExportSchedule, cfg.ExportDir, logger)
	if err := exportJob.Start(); err != nil {
		logger.Fatal("failed to start export job", zap.Error(err))
	}
	defer exportJob.Stop()

	server := handlers.NewServer(cfg.HTTPAddr, fleetSvc, exporter, cfg.JWTSecret, logger)
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	waitForShutdown(server, logger)
}

// initLogger initializes a Zap production logger.
func initLogger() *zap.Logger {
	logger, _ := zap.NewProduction()
	return logger
}

// loadConfig loads the YAML configuration; secrets can be overridden
// through the environment (a local .env file is honored).
func loadConfig() (*Config, error) {
	_ = godotenv.Load()

	configPath := filepath.Join("internal", "fleet", "config", "config.yaml")
	file, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = secret
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.DBPassword = password
	}
	if cfg.ExportSchedule == "" {
		cfg.ExportSchedule = "@daily"
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}
	return &cfg, nil
}

// initDatabase initializes the database connection config.
func initDatabase(cfg *Config) *db.Config {
	return &db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}
}

// waitForShutdown blocks until an interrupt or SIGTERM is received,
// then shuts down the server.
func waitForShutdown(server *handlers.Server, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	server.Stop()
	logger.Info("Server stopped properly")
}
