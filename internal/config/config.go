package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultJWTSecret is only acceptable in dev mode
const DefaultJWTSecret = "default_secret"

// Config holds all configuration for the application
type Config struct {
	AppMode        string
	Port           string
	AllowedOrigins string
	RequestTimeout time.Duration
	Database       DatabaseConfig
	JWT            JWTConfig
	Security       SecurityConfig
	Digest         DigestConfig
	Locations      LocationsConfig
	Seed           SeedConfig
}

// DatabaseConfig holds database configuration.
// For the sqlite driver DBName is the database file path.
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// SecurityConfig holds password hashing, provisioning and rate limit settings.
// A rate limit of 0 disables that limiter.
type SecurityConfig struct {
	BcryptCost             int
	AllowAdminProvisioning bool
	RateLimitGeneral       int
	RateLimitAuth          int
	RateLimitStrict        int
}

// DigestConfig holds the lead digest cron settings; empty schedule disables it
type DigestConfig struct {
	Schedule string
}

// LocationsConfig holds the IBGE locality API settings
type LocationsConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// SeedConfig holds the optional dev admin account created at boot
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg, err := LoadFrom(viper.GetViper())
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", cfg.AppMode)
	return cfg, nil
}

// LoadFrom builds a Config from a viper instance with environment lookup enabled
func LoadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	// Trim spaces for Windows compatibility
	appMode := strings.TrimSpace(v.GetString("APP_MODE"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:        appMode,
		Port:           v.GetString("PORT"),
		AllowedOrigins: strings.TrimSpace(v.GetString("ALLOWED_ORIGINS")),
		RequestTimeout: time.Duration(v.GetInt("REQUEST_TIMEOUT_SECONDS")) * time.Second,
		Database:       loadDatabaseConfig(v, appMode),
		JWT:            loadJWTConfig(v, appMode),
		Security: SecurityConfig{
			BcryptCost:             v.GetInt("BCRYPT_COST"),
			AllowAdminProvisioning: v.GetBool("ALLOW_ADMIN_PROVISIONING"),
			RateLimitGeneral:       v.GetInt("RATE_LIMIT_GENERAL"),
			RateLimitAuth:          v.GetInt("RATE_LIMIT_AUTH"),
			RateLimitStrict:        v.GetInt("RATE_LIMIT_STRICT"),
		},
		Digest: DigestConfig{
			Schedule: strings.TrimSpace(v.GetString("DIGEST_SCHEDULE")),
		},
		Locations: LocationsConfig{
			BaseURL:  strings.TrimRight(v.GetString("IBGE_BASE_URL"), "/"),
			Timeout:  time.Duration(v.GetInt("IBGE_TIMEOUT_SECONDS")) * time.Second,
			CacheTTL: time.Duration(v.GetInt("IBGE_CACHE_MINUTES")) * time.Minute,
		},
		Seed: SeedConfig{
			AdminEmail:    v.GetString("SEED_ADMIN_EMAIL"),
			AdminPassword: v.GetString("SEED_ADMIN_PASSWORD"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_MODE", "dev")
	v.SetDefault("PORT", "3000")
	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("REQUEST_TIMEOUT_SECONDS", 10)
	v.SetDefault("ACCESS_TOKEN_MINUTES", 60)
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("ALLOW_ADMIN_PROVISIONING", true)
	v.SetDefault("RATE_LIMIT_GENERAL", 100)
	v.SetDefault("RATE_LIMIT_AUTH", 5)
	v.SetDefault("RATE_LIMIT_STRICT", 3)
	v.SetDefault("DIGEST_SCHEDULE", "")
	v.SetDefault("IBGE_BASE_URL", "https://servicodados.ibge.gov.br/api/v1/localidades")
	v.SetDefault("IBGE_TIMEOUT_SECONDS", 5)
	v.SetDefault("IBGE_CACHE_MINUTES", 60)

	for _, prefix := range []string{"DEV_", "PROD_"} {
		v.SetDefault(prefix+"DB_DRIVER", "mysql")
		v.SetDefault(prefix+"DB_HOST", "localhost")
		v.SetDefault(prefix+"DB_PORT", "3306")
		v.SetDefault(prefix+"DB_USER", "root")
		v.SetDefault(prefix+"DB_PASS", "")
		v.SetDefault(prefix+"DB_NAME", "cleanenergy")
		v.SetDefault(prefix+"JWT_SECRET", DefaultJWTSecret)
	}
}

// modePrefix returns the env prefix for mode-specific settings
func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(v *viper.Viper, mode string) DatabaseConfig {
	prefix := modePrefix(mode)

	return DatabaseConfig{
		Driver:   strings.ToLower(strings.TrimSpace(v.GetString(prefix + "DB_DRIVER"))),
		Host:     v.GetString(prefix + "DB_HOST"),
		Port:     v.GetString(prefix + "DB_PORT"),
		User:     v.GetString(prefix + "DB_USER"),
		Password: v.GetString(prefix + "DB_PASS"),
		DBName:   v.GetString(prefix + "DB_NAME"),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(v *viper.Viper, mode string) JWTConfig {
	prefix := modePrefix(mode)

	return JWTConfig{
		Secret:          v.GetString(prefix + "JWT_SECRET"),
		AccessTokenMins: v.GetInt("ACCESS_TOKEN_MINUTES"),
	}
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("invalid DB_DRIVER: '%s' (must be 'mysql', 'postgres' or 'sqlite')", c.Database.Driver)
	}
	if c.JWT.AccessTokenMins <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_MINUTES must be positive, got %d", c.JWT.AccessTokenMins)
	}
	if c.IsProd() && (c.JWT.Secret == "" || c.JWT.Secret == DefaultJWTSecret) {
		return fmt.Errorf("PROD_JWT_SECRET must be set in prod mode")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// TokenTTL returns the lifetime of issued access tokens
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.AccessTokenMins) * time.Minute
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	if c.AllowedOrigins == "" {
		if c.IsDev() {
			return "*"
		}
		// Default production origin
		return "https://cleanenergy.com.br"
	}
	return c.AllowedOrigins
}
