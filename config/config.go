package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const envFile = ".env"

type Config struct {
	App struct {
		Env             string        `mapstructure:"env"`
		Port            string        `mapstructure:"port"`
		FrontendURL     string        `mapstructure:"frontend_url"`
		LogLevel        string        `mapstructure:"log_level"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"app"`
	DB struct {
		URL            string `mapstructure:"url"`
		Host           string `mapstructure:"host"`
		Port           string `mapstructure:"port"`
		User           string `mapstructure:"user"`
		Password       string `mapstructure:"password"`
		Name           string `mapstructure:"name"`
		SSLMode        string `mapstructure:"sslmode"`
		MaxOpenConns   int    `mapstructure:"max_open_conns"`
		MaxIdleConns   int    `mapstructure:"max_idle_conns"`
		MigrateOnStart bool   `mapstructure:"migrate_on_start"`
	} `mapstructure:"db"`
	Supabase struct {
		URL       string `mapstructure:"url"`
		JWTSecret string `mapstructure:"jwt_secret"`
	} `mapstructure:"supabase"`
}

// envKeys maps config keys to the environment variables that feed them.
var envKeys = map[string]string{
	"app.env":              "APP_ENV",
	"app.port":             "PORT",
	"app.frontend_url":     "FRONTEND_URL",
	"app.log_level":        "LOG_LEVEL",
	"app.shutdown_timeout": "SHUTDOWN_TIMEOUT",
	"db.url":               "DATABASE_URL",
	"db.host":              "DB_HOST",
	"db.port":              "DB_PORT",
	"db.user":              "DB_USER",
	"db.password":          "DB_PASSWORD",
	"db.name":              "DB_NAME",
	"db.sslmode":           "DB_SSLMODE",
	"db.max_open_conns":    "DB_MAX_OPEN_CONNS",
	"db.max_idle_conns":    "DB_MAX_IDLE_CONNS",
	"db.migrate_on_start":  "DB_MIGRATE_ON_START",
	"supabase.url":         "SUPABASE_URL",
	"supabase.jwt_secret":  "SUPABASE_JWT_SECRET",
}

// IsDevelopment reports whether the app runs with development defaults
// (console logs, SQL logging).
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// Validate ensures the settings the server cannot start without are present.
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return errors.New("PORT is required")
	}
	if c.Supabase.JWTSecret == "" {
		return errors.New("SUPABASE_JWT_SECRET is required")
	}
	if c.DB.URL == "" && (c.DB.Host == "" || c.DB.Name == "") {
		return errors.New("DATABASE_URL or DB_HOST/DB_NAME is required")
	}
	return nil
}

// DSN returns the connection string for the hosted database. DATABASE_URL wins
// over the discrete DB_* settings.
func (c *Config) DSN() string {
	if c.DB.URL != "" {
		return c.DB.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DB.Host,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.Port,
		c.DB.SSLMode,
	)
}

// LoadConfig loads configuration from environment variables into the Config struct.
// A .env file is read first when present; variables already set in the process
// environment are never overridden by it.
func LoadConfig() (*Config, error) {
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v := viper.New()
	setDefaults(v)
	bindEnvs(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8088")
	v.SetDefault("app.frontend_url", "http://localhost:3000")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.shutdown_timeout", 5*time.Second)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "internhub")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 2)
	v.SetDefault("db.migrate_on_start", true)
}

func bindEnvs(v *viper.Viper) {
	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}
}

// ConnectDB opens the gorm connection pool against the hosted Postgres database.
func ConnectDB(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if cfg.IsDevelopment() {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	log.Info("connected to database", zap.Int("max_open_conns", cfg.DB.MaxOpenConns))
	return db, nil
}
