package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/01moynul/eshop-catalog-golang/internal/config"
	"github.com/01moynul/eshop-catalog-golang/internal/models"
)

// OpenDB opens the connection pool for the configured driver, applies the
// pool settings and pings the server before returning.
func OpenDB(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	// 1. Pick the dialector for the configured driver.
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	// 2. Open a new connection pool.
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 NewGormLogger(log),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	// 3. Configure the connection pool settings.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// 4. Ping the database to verify the connection.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s database: %w", cfg.Driver, err)
	}

	log.Info("Database connection pool established", zap.String("driver", cfg.Driver))
	return db, nil
}

// Dialector picks the GORM dialector for the configured driver.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "postgres":
		return postgres.Open(cfg.URL), nil
	case "mysql":
		dsn, err := MySQLDSN(cfg.URL)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// MySQLDSN normalises a MySQL DSN. Timestamps must scan into time.Time, and
// UPDATE must report matched rows so an unchanged row still counts as found.
func MySQLDSN(raw string) (string, error) {
	raw = strings.TrimPrefix(raw, "mysql://")
	c, err := gomysql.ParseDSN(raw)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	c.ParseTime = true
	c.ClientFoundRows = true
	return c.FormatDSN(), nil
}

// Migrate creates or alters every catalog table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.Tables...)
}

// Close releases the underlying pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
