package common

import (
	"os"
	"strconv"
	"time"

	"github.com/fleetware/transport-ops/constants"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	AI       AIConfig
	Provider ProviderConfig
	Imaging  ImagingConfig
	Queues   QueueConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr  string
	FilesRoot string // root directory for uploaded and optimised artefacts
}

// AIConfig is the global switch plus provider family selector. It is
// snapshot into every job payload at enqueue time.
type AIConfig struct {
	Enabled bool
	Family  constants.ProviderFamily
}

// ProviderConfig holds the settings for the selected provider family.
type ProviderConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
	MaxRetries  int
	BaseDelay   time.Duration
}

// ImagingConfig holds optimiser knobs.
type ImagingConfig struct {
	TargetBytes  int64
	MaxDimension int // single-image path; PDF pages use PageMaxDimension
	PageMaxDim   int
	JPEGQuality  int
	PageDPI      float64
}

// QueueConfig holds worker-pool sizing and the toll_creation rate limit.
type QueueConfig struct {
	DefaultWorkers  int
	LongWorkers     int
	TollWorkers     int
	DefaultTimeout  time.Duration
	LongTimeout     time.Duration
	TollTimeout     time.Duration
	TollRatePerSec  float64
	TollRateBurst   int
	RasterTimeout   time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:  getEnv("GRPC_ADDR", ":8080"),
			FilesRoot: getEnv("FILES_ROOT", "./files"),
		},
		AI: AIConfig{
			Enabled: getEnvAsBool("AI_ENABLED", true),
			Family:  constants.ProviderFamily(getEnv("AI_PROVIDER_FAMILY", string(constants.FamilyOpenAI))),
		},
		Provider: ProviderConfig{
			BaseURL:     getEnv("PROVIDER_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("PROVIDER_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("PROVIDER_API_KEY", ""),
			Temperature: getEnvAsFloat32("PROVIDER_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("PROVIDER_TIMEOUT", 120*time.Second),
			MaxRetries:  getEnvAsInt("PROVIDER_MAX_RETRIES", 3),
			BaseDelay:   getEnvAsDuration("PROVIDER_BASE_DELAY", 1*time.Second),
		},
		Imaging: ImagingConfig{
			TargetBytes:  int64(getEnvAsInt("IMAGE_TARGET_BYTES", 1<<20)),
			MaxDimension: getEnvAsInt("IMAGE_MAX_DIMENSION", 1024),
			PageMaxDim:   getEnvAsInt("PAGE_MAX_DIMENSION", 1200),
			JPEGQuality:  getEnvAsInt("IMAGE_JPEG_QUALITY", 60),
			PageDPI:      float64(getEnvAsInt("PAGE_RASTER_DPI", 150)),
		},
		Queues: QueueConfig{
			DefaultWorkers: getEnvAsInt("QUEUE_DEFAULT_WORKERS", 4),
			LongWorkers:    getEnvAsInt("QUEUE_LONG_WORKERS", 4),
			TollWorkers:    getEnvAsInt("QUEUE_TOLL_WORKERS", 2),
			DefaultTimeout: getEnvAsDuration("QUEUE_DEFAULT_TIMEOUT", 10*time.Minute),
			LongTimeout:    getEnvAsDuration("QUEUE_LONG_TIMEOUT", 20*time.Minute),
			TollTimeout:    getEnvAsDuration("QUEUE_TOLL_TIMEOUT", 5*time.Minute),
			TollRatePerSec: getEnvAsFloat64("TOLL_RATE_PER_SEC", 1),
			TollRateBurst:  getEnvAsInt("TOLL_RATE_BURST", 2),
			RasterTimeout:  getEnvAsDuration("PAGE_RASTER_TIMEOUT", 180*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.AI.Enabled && c.Provider.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "PROVIDER_API_KEY is required when AI is enabled", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
