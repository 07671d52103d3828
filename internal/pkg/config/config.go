package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, tuning constants), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Scheduling SchedulingConfig
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
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// SchedulingConfig carries the alarm engine tuning constants. The grace window
// and immediate delay are product-tuning values, not correctness requirements,
// so they stay configurable.
type SchedulingConfig struct {
	GraceWindow        time.Duration `envconfig:"SCHED_GRACE_WINDOW" default:"60s"`
	ImmediateDelay     time.Duration `envconfig:"SCHED_IMMEDIATE_DELAY" default:"5s"`
	BurstDuration      time.Duration `envconfig:"SCHED_BURST_DURATION" default:"300s"`
	LongSoundInterval  time.Duration `envconfig:"SCHED_LONG_SOUND_INTERVAL" default:"3s"`
	ShortSoundInterval time.Duration `envconfig:"SCHED_SHORT_SOUND_INTERVAL" default:"2s"`
	MaxBurstItems      int           `envconfig:"SCHED_MAX_BURST_ITEMS" default:"50"`

	// ForegroundPresentation controls whether triggers announce themselves
	// while a client session is in the foreground.
	ForegroundPresentation bool `envconfig:"SCHED_FOREGROUND_PRESENTATION" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
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
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZone:       "UTC",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Scheduling: SchedulingConfig{
			GraceWindow:            60 * time.Second,
			ImmediateDelay:         5 * time.Second,
			BurstDuration:          300 * time.Second,
			LongSoundInterval:      3 * time.Second,
			ShortSoundInterval:     2 * time.Second,
			MaxBurstItems:          50,
			ForegroundPresentation: true,
		},
	}
}
