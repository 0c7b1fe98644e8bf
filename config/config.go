package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	SourceCSV   = "csv"
	SourceMySQL = "mysql"
)

type Config struct {
	Port        int      `envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`

	DataFile      string `envconfig:"DATA_FILE" default:"data/hotel_luxo_jan2000_dez2024.csv" validate:"required"`
	DataDelimiter string `envconfig:"DATA_DELIMITER" default:"," validate:"required"`
	DatasetSource string `envconfig:"DATASET_SOURCE" default:"csv" validate:"oneof=csv mysql"`

	RecentBookingsLimit int    `envconfig:"RECENT_BOOKINGS_LIMIT" default:"5" validate:"min=1"`
	AdminKeyHash        string `envconfig:"ADMIN_KEY_HASH"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json text"`

	MySQLURL    string `envconfig:"MYSQL_URL"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBUser      string `envconfig:"DB_USER" default:"root"`
	DBPass      string `envconfig:"DB_PASS"`
	DBHost      string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort      string `envconfig:"DB_PORT" default:"3306"`
	DBName      string `envconfig:"DB_NAME" default:"hotel_dashboard"`

	Server ServerConfig `envconfig:"SERVER"`
}

type ServerConfig struct {
	ReadTimeout       time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"5s"`
	WriteTimeout      time.Duration `envconfig:"WRITE_TIMEOUT" default:"20s"`
	IdleTimeout       time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// LoadDotEnv loads .env into the environment when present.
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if utf8.RuneCountInString(c.DataDelimiter) != 1 {
		return fmt.Errorf("invalid config: DATA_DELIMITER must be a single character, got %q", c.DataDelimiter)
	}
	return nil
}

// Delimiter returns DATA_DELIMITER as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.DataDelimiter)
	return r
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
