package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	Redis       RedisConfig
	Broker      BrokerConfig
	Reservation ReservationConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// RedisConfig configures the seat map cache. An empty Addr disables caching.
type RedisConfig struct {
	Addr       string        `envconfig:"REDIS_ADDR" default:""`
	Password   string        `envconfig:"REDIS_PASSWORD" default:""`
	DB         int           `envconfig:"REDIS_DB" default:"0"`
	SeatMapTTL time.Duration `envconfig:"REDIS_SEAT_MAP_TTL" default:"5s"`
}

// BrokerConfig configures the lifecycle event relay. An empty URL makes publishing a no-op.
type BrokerConfig struct {
	URL           string        `envconfig:"BROKER_URL" default:""`
	Exchange      string        `envconfig:"BROKER_EXCHANGE" default:"seat.lifecycle"`
	RelayInterval time.Duration `envconfig:"OUTBOX_RELAY_INTERVAL" default:"5s"`
	BatchSize     int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts   int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"5"`
}

type ReservationConfig struct {
	HoldWindow           time.Duration `envconfig:"HOLD_WINDOW" default:"10m"`
	PaymentStaleAfter    time.Duration `envconfig:"PAYMENT_STALE_AFTER" default:"5m"`
	HoldSweepInterval    time.Duration `envconfig:"HOLD_SWEEP_INTERVAL" default:"60s"`
	PaymentSweepInterval time.Duration `envconfig:"PAYMENT_SWEEP_INTERVAL" default:"120s"`
	PaymentSuccessRate   float64       `envconfig:"PAYMENT_SUCCESS_RATE" default:"0.7"`
	HoldSweepBatchLimit  int           `envconfig:"HOLD_SWEEP_BATCH_LIMIT" default:"1000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *ReservationConfig) Validate() error {
	if c.HoldWindow <= 0 {
		return errors.New("HOLD_WINDOW must be positive")
	}
	if c.PaymentStaleAfter <= 0 {
		return errors.New("PAYMENT_STALE_AFTER must be positive")
	}
	if c.HoldSweepInterval <= 0 || c.PaymentSweepInterval <= 0 {
		return errors.New("sweep intervals must be positive")
	}
	if c.HoldSweepBatchLimit <= 0 {
		return errors.New("HOLD_SWEEP_BATCH_LIMIT must be positive")
	}
	if c.PaymentSuccessRate < 0 || c.PaymentSuccessRate > 1 {
		return fmt.Errorf("PAYMENT_SUCCESS_RATE must be within [0,1], got %v", c.PaymentSuccessRate)
	}
	return nil
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Reservation.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid reservation config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Broker: BrokerConfig{
			Exchange:      "seat.lifecycle",
			RelayInterval: time.Second,
			BatchSize:     50,
			MaxAttempts:   5,
		},
		Reservation: ReservationConfig{
			HoldWindow:           10 * time.Minute,
			PaymentStaleAfter:    5 * time.Minute,
			HoldSweepInterval:    time.Minute,
			PaymentSweepInterval: 2 * time.Minute,
			PaymentSuccessRate:   0.7,
			HoldSweepBatchLimit:  1000,
		},
	}
}
