package db

import (
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL returns a connected GORM DB instance. parseTime is forced on so
// created_at columns scan into time.Time.
func NewMySQL(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	dsnCfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	dsnCfg.ParseTime = true

	db, err := gorm.Open(mysql.Open(dsnCfg.FormatDSN()), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}
