// Package db implements the persistence gateway for the fleet service
// on top of GORM. Every operation runs in its own short-lived call
// scope; reads are plain snapshot reads, writes commit or roll back
// before returning.
package db

import (
	"context"
	"fmt"

	"fleetops/internal/fleet/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func NewRepository(cfg *Config) (*Repository, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: db}, nil
}

// NewRepositoryWithDB wraps an already opened gorm handle. Used by
// tests running against in-memory SQLite.
func NewRepositoryWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the schema for all fleet tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Company{},
		&models.Client{},
		&models.Employee{},
		&models.DriverQualification{},
		&models.Vehicle{},
		&models.Transport{},
	)
}

func (r *Repository) WithTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) Close() error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
