package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StorageDriverS3 = "s3"
	StorageDriverFS = "fs"

	SinkBlob = "blob"
	SinkAMQP = "amqp"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	Detection DetectionConfig
	AMQP      AMQPConfig
	Producer  ProducerConfig
}

type ServerConfig struct {
	Port               string
	Host               string
	Environment        string `validate:"oneof=development testing production"`
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	RateLimitPerSecond int `validate:"gte=1"`
	RateLimitBurst     int `validate:"gte=1"`
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
	AutoMigrate     bool
}

type StorageConfig struct {
	Driver          string `validate:"oneof=s3 fs"`
	Bucket          string `validate:"required_if=Driver s3"`
	Region          string
	Endpoint        string
	RootDir         string `validate:"required_if=Driver fs"`
	ChunkPrefix     string `validate:"required"`
	DetectionPrefix string `validate:"required"`
	ChunkSuffix     string
	ImportanceKey   string `validate:"required"`
}

type DetectionConfig struct {
	PollInterval       time.Duration `validate:"gt=0"`
	BatchSize          int           `validate:"gte=1"`
	Sink               string        `validate:"oneof=blob amqp"`
	RetryMaxAttempts   int           `validate:"gte=1"`
	RetryBaseDelay     time.Duration
	BreakerMaxFailures int           `validate:"gte=1"`
	BreakerReset       time.Duration `validate:"gt=0"`
}

type AMQPConfig struct {
	URL        string `validate:"required_if=Enabled true"`
	Exchange   string
	RoutingKey string
	Enabled    bool
}

type ProducerConfig struct {
	ChunkSize   int `validate:"gte=1"`
	UploadDelay time.Duration
}

// Load reads configuration from the environment, after merging a .env file
// from the working directory if one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", slog.String("error", err.Error()))
	}

	config := &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Host:               getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:        getEnv("APP_ENV", "development"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "bankpulse"),
			Password:        getEnv("DB_PASSWORD", "bankpulse"),
			Name:            getEnv("DB_NAME", "bankpulse"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			MigrationsPath:  getEnv("DB_MIGRATIONS_PATH", "db/migrations"),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", true),
		},
		Storage: StorageConfig{
			Driver:          getEnv("STORAGE_DRIVER", StorageDriverS3),
			Bucket:          getEnv("BUCKET_NAME", ""),
			Region:          getEnv("AWS_REGION", "ap-south-1"),
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			RootDir:         getEnv("STORAGE_ROOT_DIR", "./data"),
			ChunkPrefix:     getEnv("CHUNK_PREFIX", "bankpulse/chunks"),
			DetectionPrefix: getEnv("DETECTION_PREFIX", "bankpulse/detections"),
			ChunkSuffix:     getEnv("CHUNK_SUFFIX", ".csv"),
			ImportanceKey:   getEnv("IMPORTANCE_KEY", "bankpulse/reference/CustomerImportance.csv"),
		},
		Detection: DetectionConfig{
			PollInterval:       getDurationEnv("POLL_INTERVAL", time.Second),
			BatchSize:          getIntEnv("DETECTION_BATCH_SIZE", 50),
			Sink:               getEnv("DETECTION_SINK", SinkBlob),
			RetryMaxAttempts:   getIntEnv("RETRY_MAX_ATTEMPTS", 4),
			RetryBaseDelay:     getDurationEnv("RETRY_BASE_DELAY", 500*time.Millisecond),
			BreakerMaxFailures: getIntEnv("BREAKER_MAX_FAILURES", 5),
			BreakerReset:       getDurationEnv("BREAKER_RESET_TIMEOUT", 30*time.Second),
		},
		AMQP: AMQPConfig{
			URL:        getEnv("AMQP_URL", ""),
			Exchange:   getEnv("AMQP_EXCHANGE", "bankpulse"),
			RoutingKey: getEnv("AMQP_ROUTING_KEY", "detections"),
		},
		Producer: ProducerConfig{
			ChunkSize:   getIntEnv("PRODUCER_CHUNK_SIZE", 10000),
			UploadDelay: getDurationEnv("PRODUCER_UPLOAD_DELAY", time.Second),
		},
	}

	config.AMQP.Enabled = config.Detection.Sink == SinkAMQP
	config.Storage.ChunkPrefix = strings.TrimSuffix(config.Storage.ChunkPrefix, "/")
	config.Storage.DetectionPrefix = strings.TrimSuffix(config.Storage.DetectionPrefix, "/")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks cross-field constraints that environment defaults cannot express.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
