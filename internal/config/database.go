package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ConnectDatabase opens the process-wide connection pool.
// The caller owns the returned handle and must release it with CloseDatabase.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	dialector, err := buildDialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), gormLoggerConfig(cfg))

	// Open connection
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true, // Better performance
		TranslateError:         true, // unique violations become gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB for connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Connection pool settings
	if cfg.Database.Driver == DriverSQLite {
		// SQLite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("✅ Database connected successfully [%s %s]", cfg.Database.Driver, describe(cfg.Database))

	return db, nil
}

// gormLoggerConfig configures GORM logging based on mode.
// First() misses are expected lookups and stay out of the log.
func gormLoggerConfig(cfg *Config) logger.Config {
	lc := logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Error,
		IgnoreRecordNotFoundError: true,
	}
	if cfg.IsDev() {
		lc.LogLevel = logger.Info
		lc.Colorful = true
	}
	return lc
}

// buildDialector picks the GORM dialector for the configured driver
func buildDialector(d DatabaseConfig) (gorm.Dialector, error) {
	switch d.Driver {
	case DriverMySQL:
		return mysql.Open(buildMySQLDSN(d)), nil
	case DriverPostgres:
		return postgres.Open(buildPostgresDSN(d)), nil
	case DriverSQLite:
		return sqlite.Open(buildSQLiteDSN(d)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", d.Driver)
	}
}

// buildMySQLDSN returns the MySQL connection string
func buildMySQLDSN(d DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.DBName,
	)
}

// buildPostgresDSN returns the PostgreSQL (pgx) connection string
func buildPostgresDSN(d DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
	)
}

// buildSQLiteDSN returns the SQLite file DSN
func buildSQLiteDSN(d DatabaseConfig) string {
	return d.DBName + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}

func describe(d DatabaseConfig) string {
	if d.Driver == DriverSQLite {
		return d.DBName
	}
	return fmt.Sprintf("%s:%s/%s", d.Host, d.Port, d.DBName)
}

// CloseDatabase closes the database connection
func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// HealthCheck checks if database is healthy
func HealthCheck(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}
