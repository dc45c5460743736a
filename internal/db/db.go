package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"blogapi/internal/config"
	"blogapi/internal/model"
)

const slowQueryThreshold = 200 * time.Millisecond

// Open returns a connected GORM DB for the configured driver. TranslateError is
// enabled so unique and foreign key violations surface as gorm.ErrDuplicatedKey
// and gorm.ErrForeignKeyViolated regardless of the backing database. GORM's own
// warnings and errors are written through log.
func Open(driver, dsn string, log zerolog.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(log),
	}

	var (
		gormDB *gorm.DB
		err    error
	)
	switch driver {
	case config.DriverMySQL:
		gormDB, err = NewMySQL(dsn, gormCfg)
	case config.DriverPostgres:
		gormDB, err = NewPostgres(dsn, gormCfg)
	case config.DriverSQLite:
		gormDB, err = NewSQLite(dsn, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("underlying sql.DB: %w", err)
	}
	if driver != config.DriverSQLite {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return gormDB, nil
}

// NewGormLogger adapts zerolog to GORM's logger. Missing rows are an expected
// outcome of lookups and are not logged.
func NewGormLogger(log zerolog.Logger) gormlogger.Interface {
	return gormlogger.New(gormWriter{log: log.With().Str("component", "gorm").Logger()}, gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warn().Msgf(format, args...)
}

// AutoMigrate creates the users, posts and comments tables. The production schema
// is managed outside this service; this exists for local development and tests.
func AutoMigrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(&model.User{}, &model.Post{}, &model.Comment{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	if ddl := emailCollationDDL(gormDB.Dialector.Name()); ddl != "" {
		if err := gormDB.Exec(ddl).Error; err != nil {
			return fmt.Errorf("auto-migrate: email collation: %w", err)
		}
	}
	return nil
}

// emailCollationDDL makes users.email compare byte-for-byte. MySQL's default
// collation is case-insensitive, which would fold "A@x.com" into "a@x.com" in
// both the unique index and lookups. PostgreSQL and SQLite already compare
// exactly.
func emailCollationDDL(dialect string) string {
	if dialect != config.DriverMySQL {
		return ""
	}
	return "ALTER TABLE users MODIFY email VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL"
}

// Close releases the connection pool.
func Close(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
