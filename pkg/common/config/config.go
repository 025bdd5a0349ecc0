package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	// Server
	ServerPort     string
	ServerHost     string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestBody int64

	// Data layout
	DataDir   string
	ModelsDir string
	LogsDir   string

	// Artifacts
	ModelPath      string
	MetaPath       string
	VocabularyPath string

	// Datasets
	RawDataPath      string
	BalancedDataPath string

	// Audit trail
	PredictionLogPath string
	AuditRecentLimit  int

	// Database
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	PostgresEnabled  bool

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisEnabled  bool

	// Kafka
	KafkaBrokers []string
	KafkaTopic   string
	KafkaEnabled bool

	// Dataset balancing
	BalanceRandSeed int64
}

func Load() *Config {
	dataDir := getEnv("DATA_DIR", "data")
	modelsDir := getEnv("MODELS_DIR", "models")
	logsDir := getEnv("LOGS_DIR", "logs")

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8000"),
		ServerHost:     getEnv("SERVER_HOST", "0.0.0.0"),
		ReadTimeout:    getDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout:   getDuration("WRITE_TIMEOUT", 30*time.Second),
		MaxRequestBody: int64(getIntEnv("MAX_REQUEST_BODY_BYTES", 1*1024*1024)),

		DataDir:   dataDir,
		ModelsDir: modelsDir,
		LogsDir:   logsDir,

		ModelPath:      getEnv("MODEL_PATH", filepath.Join(modelsDir, "decision_tree_bundle.json")),
		MetaPath:       getEnv("META_PATH", filepath.Join(modelsDir, "decision_tree_meta.json")),
		VocabularyPath: getEnv("VOCABULARY_PATH", ""),

		RawDataPath:      getEnv("RAW_DATA_PATH", filepath.Join(dataDir, "diabetes.csv")),
		BalancedDataPath: getEnv("BALANCED_DATA_PATH", filepath.Join(dataDir, "diabetes_balanced.csv")),

		PredictionLogPath: getEnv("PREDICTION_LOG_PATH", filepath.Join(logsDir, "prediction_logs.csv")),
		AuditRecentLimit:  getIntEnv("AUDIT_RECENT_LIMIT", 100),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "diabd"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "diabd123"),
		PostgresDB:       getEnv("POSTGRES_DB", "diabd"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresEnabled:  getBoolEnv("POSTGRES_ENABLED", false),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),
		RedisEnabled:  getBoolEnv("REDIS_ENABLED", false),

		KafkaBrokers: getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "diabd.predictions"),
		KafkaEnabled: getBoolEnv("KAFKA_ENABLED", false),

		BalanceRandSeed: int64(getIntEnv("BALANCE_RAND_SEED", 42)),
	}
}

// EnsureDirs creates the data, models and logs directories when absent.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.DataDir, c.ModelsDir, c.LogsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return []string{value}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
