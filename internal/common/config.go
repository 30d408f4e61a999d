package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	LLM      LLMConfig
	Pipeline PipelineConfig
	Upload   UploadConfig
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
	GRPCAddr string
}

// LLMConfig holds reasoning-provider configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

// PipelineConfig holds per-run analysis pipeline knobs. Passed explicitly
// into the orchestrator so concurrent runs never share mutable settings.
type PipelineConfig struct {
	MaxChunkTokens  int           // token budget per provider call
	MaxConcurrency  int           // in-flight provider calls per run
	MaxAttempts     int           // attempts per chunk, transient errors only
	RetryBaseDelay  time.Duration // backoff base, doubled per attempt
	StaleAfter      time.Duration // pending results older than this are failed
	JanitorInterval time.Duration
}

// UploadConfig holds inbound document limits
type UploadConfig struct {
	MaxSizeBytes int64
	Dir          string
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
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		LLM: LLMConfig{
			Model:       getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
			APIKey:      getEnv("ANTHROPIC_API_KEY", ""),
			BaseURL:     getEnv("ANTHROPIC_BASE_URL", ""),
			MaxTokens:   getEnvAsInt("ANTHROPIC_MAX_TOKENS", 8000),
			Temperature: getEnvAsFloat32("ANTHROPIC_TEMPERATURE", 0.3),
			Timeout:     getEnvAsDuration("ANTHROPIC_TIMEOUT", 90*time.Second),
		},
		Pipeline: PipelineConfig{
			MaxChunkTokens:  getEnvAsInt("PIPELINE_MAX_CHUNK_TOKENS", 20000),
			MaxConcurrency:  getEnvAsInt("PIPELINE_MAX_CONCURRENCY", 4),
			MaxAttempts:     getEnvAsInt("PIPELINE_MAX_ATTEMPTS", 3),
			RetryBaseDelay:  getEnvAsDuration("PIPELINE_RETRY_BASE_DELAY", 2*time.Second),
			StaleAfter:      getEnvAsDuration("PIPELINE_STALE_AFTER", 10*time.Minute),
			JanitorInterval: getEnvAsDuration("PIPELINE_JANITOR_INTERVAL", time.Minute),
		},
		Upload: UploadConfig{
			MaxSizeBytes: getEnvAsInt64("UPLOAD_MAX_SIZE_BYTES", 100*1024*1024),
			Dir:          getEnv("UPLOAD_DIR", "./uploads"),
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

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
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
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "ANTHROPIC_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Pipeline.MaxChunkTokens <= 0 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_MAX_CHUNK_TOKENS must be positive", ErrInvalidInput)
	}
	return nil
}
