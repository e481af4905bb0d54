package config

import (
	"fmt"
	"time"

	"car-marketplace-api/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func dialectorFor(cfg DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "sqlite":
		return sqlite.Open(cfg.DSN), nil
	case "mysql":
		return mysql.Open(cfg.DSN), nil
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

const slowQueryThreshold = 200 * time.Millisecond

// gormWriter sends gorm's log lines to logrus at warn level
type gormWriter struct {
	log *logrus.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warnf(format, args...)
}

// newGormLogger reports slow queries and failures. Lookups that find no
// row are a normal outcome and are not logged.
func newGormLogger(log *logrus.Logger) logger.Interface {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return logger.New(gormWriter{log: log}, logger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// OpenDB connects to the configured store and migrates the User and Car
// collections, including the unique indexes on username and email.
// A nil log uses the logrus standard logger.
func OpenDB(cfg DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(log),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Driver, err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Car{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
