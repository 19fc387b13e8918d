package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	OTPStoreMemory = "memory"
	OTPStoreRedis  = "redis"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Пул PostgreSQL, общий для pgx и GORM
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"10"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`

	// Redis Config
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Кэш списка инцидентов
	IncidentCacheTTL time.Duration `env:"INCIDENT_CACHE_TTL" envDefault:"30s"`

	// OTP Config
	OTPStore           string        `env:"OTP_STORE" envDefault:"memory"`
	OTPTTL             time.Duration `env:"OTP_TTL" envDefault:"5m"`
	OTPFixedCode       string        `env:"OTP_FIXED_CODE"`
	OTPDevEcho         bool          `env:"OTP_DEV_ECHO" envDefault:"false"`
	OTPHashCost        int           `env:"OTP_HASH_COST" envDefault:"10"`
	OTPSweepSchedule   string        `env:"OTP_SWEEP_SCHEDULE" envDefault:"@every 1m"`
	OTPSweepGrace      time.Duration `env:"OTP_SWEEP_GRACE" envDefault:"10m"`
	DefaultCountryCode string        `env:"DEFAULT_COUNTRY_CODE" envDefault:"+44"`

	// SMS gateway (Twilio-совместимый REST API)
	TwilioAccountSID  string        `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string        `env:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber string        `env:"TWILIO_PHONE_NUMBER"`
	TwilioBaseURL     string        `env:"TWILIO_BASE_URL" envDefault:"https://api.twilio.com"`
	SMSTimeout        time.Duration `env:"SMS_TIMEOUT" envDefault:"10s"`

	// PTT Config
	PTTRetention     int   `env:"PTT_RETENTION" envDefault:"50"`
	PTTMaxAudioBytes int64 `env:"PTT_MAX_AUDIO_BYTES" envDefault:"5242880"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DBMaxConns:         getEnvAsInt("DB_MAX_CONNS", 10),
		DBConnMaxLifetime:  getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:      getEnvAsInt("REDIS_POOL_SIZE", 10),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		IncidentCacheTTL:   getEnvAsDuration("INCIDENT_CACHE_TTL", 30*time.Second),
		OTPStore:           strings.ToLower(getEnv("OTP_STORE", OTPStoreMemory)),
		OTPTTL:             getEnvAsDuration("OTP_TTL", 5*time.Minute),
		OTPFixedCode:       os.Getenv("OTP_FIXED_CODE"),
		OTPDevEcho:         getEnvAsBool("OTP_DEV_ECHO", false),
		OTPHashCost:        getEnvAsInt("OTP_HASH_COST", 10),
		OTPSweepSchedule:   getEnv("OTP_SWEEP_SCHEDULE", "@every 1m"),
		OTPSweepGrace:      getEnvAsDuration("OTP_SWEEP_GRACE", 10*time.Minute),
		DefaultCountryCode: getEnv("DEFAULT_COUNTRY_CODE", "+44"),
		TwilioAccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber:  os.Getenv("TWILIO_PHONE_NUMBER"),
		TwilioBaseURL:      getEnv("TWILIO_BASE_URL", "https://api.twilio.com"),
		SMSTimeout:         getEnvAsDuration("SMS_TIMEOUT", 10*time.Second),
		PTTRetention:       getEnvAsInt("PTT_RETENTION", 50),
		PTTMaxAudioBytes:   int64(getEnvAsInt("PTT_MAX_AUDIO_BYTES", 5<<20)),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.OTPStore != OTPStoreMemory && c.OTPStore != OTPStoreRedis {
		return fmt.Errorf("OTP_STORE must be %q or %q, got %q", OTPStoreMemory, OTPStoreRedis, c.OTPStore)
	}
	if c.OTPTTL <= 0 {
		return fmt.Errorf("OTP_TTL must be positive")
	}
	if c.PTTRetention < 1 {
		return fmt.Errorf("PTT_RETENTION must be at least 1")
	}
	return nil
}

// SMSConfigured сообщает, заданы ли учётные данные SMS-шлюза
func (c *Config) SMSConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioPhoneNumber != ""
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
