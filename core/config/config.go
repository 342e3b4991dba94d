package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host      string
	Port      int
	PublicURL string // base URL used in confirmation links
	LogLevel  string
	DevMode   bool
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret           string
	AccessTokenTTL   int // minutes
	RefreshTokenTTL  int // minutes
}

type GoogleAPIConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type MailConfig struct {
	SenderEmail  string
	SenderName   string
	RefreshToken string // offline token for the sender's Gmail account
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Endpoint        string
}

type SchedulerConfig struct {
	SlotDurationMinutes int
	MaxRetries          int
	RetryBackoffMS      int
	ProviderTimeoutSec  int
}

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	GoogleAPI GoogleAPIConfig
	Mail      MailConfig
	AWS       AWSConfig
	Scheduler SchedulerConfig
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads .env (if present) and environment variables into the global config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("PUBLIC_URL", "http://localhost:7070")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEV_MODE", false)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "smarthire")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_ACCESS_TTL_MINUTES", 60)
	v.SetDefault("JWT_REFRESH_TTL_MINUTES", 10080)

	v.SetDefault("AWS_REGION", "ap-southeast-1")
	v.SetDefault("AWS_S3_BUCKET", "smarthire-resumes")

	v.SetDefault("SLOT_DURATION_MINUTES", 30)
	v.SetDefault("SCHEDULE_MAX_RETRIES", 3)
	v.SetDefault("SCHEDULE_RETRY_BACKOFF_MS", 500)
	v.SetDefault("PROVIDER_TIMEOUT_SECONDS", 30)

	cfg := &Config{
		Server: ServerConfig{
			Host:      v.GetString("SERVER_HOST"),
			Port:      v.GetInt("SERVER_PORT"),
			PublicURL: v.GetString("PUBLIC_URL"),
			LogLevel:  v.GetString("LOG_LEVEL"),
			DevMode:   v.GetBool("DEV_MODE"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:          v.GetString("JWT_SECRET"),
			AccessTokenTTL:  v.GetInt("JWT_ACCESS_TTL_MINUTES"),
			RefreshTokenTTL: v.GetInt("JWT_REFRESH_TTL_MINUTES"),
		},
		GoogleAPI: GoogleAPIConfig{
			ClientID:     v.GetString("GOOGLE_CLIENT_ID"),
			ClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  v.GetString("GOOGLE_REDIRECT_URL"),
		},
		Mail: MailConfig{
			SenderEmail:  v.GetString("MAIL_SENDER_EMAIL"),
			SenderName:   v.GetString("MAIL_SENDER_NAME"),
			RefreshToken: v.GetString("MAIL_REFRESH_TOKEN"),
		},
		AWS: AWSConfig{
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Bucket:          v.GetString("AWS_S3_BUCKET"),
			Endpoint:        v.GetString("AWS_S3_ENDPOINT"),
		},
		Scheduler: SchedulerConfig{
			SlotDurationMinutes: v.GetInt("SLOT_DURATION_MINUTES"),
			MaxRetries:          v.GetInt("SCHEDULE_MAX_RETRIES"),
			RetryBackoffMS:      v.GetInt("SCHEDULE_RETRY_BACKOFF_MS"),
			ProviderTimeoutSec:  v.GetInt("PROVIDER_TIMEOUT_SECONDS"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()

	return cfg, nil
}

// Get returns the loaded config. It panics if Load was never called.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("config: Get called before Load")
	}
	return instance
}

// GetSafe returns the loaded config and whether it has been initialized.
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}

// Set overrides the global config. Intended for tests.
func Set(cfg *Config) {
	mu.Lock()
	instance = cfg
	mu.Unlock()
}
