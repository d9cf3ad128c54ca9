package database

import (
	"database/sql"
	"fmt"
	"time"

	"backend_tigo/config"
	"backend_tigo/models"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CreateDatabaseIfNotExists creates the configured postgres database when it is missing
func CreateDatabaseIfNotExists(cfg *config.Config, log *logrus.Logger) error {
	if cfg.Database.Type != "postgres" {
		return nil
	}

	db, err := sql.Open("postgres", cfg.GetDatabaseDSN("postgres"))
	if err != nil {
		return fmt.Errorf("failed to open postgres admin connection: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to reach postgres: %w", err)
	}

	var exists bool
	query := "SELECT EXISTS(SELECT datname FROM pg_catalog.pg_database WHERE datname = $1);"
	if err := db.QueryRow(query, cfg.Database.Name).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}

	if exists {
		log.WithField("database", cfg.Database.Name).Debug("database already exists")
		return nil
	}

	if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE %q;", cfg.Database.Name)); err != nil {
		return fmt.Errorf("failed to create database %q: %w", cfg.Database.Name, err)
	}

	log.WithField("database", cfg.Database.Name).Info("database created")
	return nil
}

// Connect opens the configured store and brings its schema up to date
func Connect(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Type {
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.Path)
	default:
		dialector = postgres.Open(cfg.GetDatabaseDSN(cfg.Database.Name))
	}

	level := logger.Warn
	if cfg.App.Debug {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Database.Type, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Database.Type == "sqlite" {
		// sqlite serializes writers; one connection avoids SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	log.WithField("type", cfg.Database.Type).Info("connected to database")

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("auto-migration failed: %w", err)
	}
	if err := CreatePerformanceIndexes(db, log); err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate creates the tables and the report views on top of them
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Cliente{},
		&models.Contrato{},
		&models.Instalacion{},
		&models.Pago{},
		&models.Incidencia{},
		&models.AccionPreventiva{},
		&models.ItemInventario{},
		&models.Usuario{},
	)
	if err != nil {
		return err
	}

	return CreateReportViews(db)
}
