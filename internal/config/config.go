package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Backend    BackendConfig
	Dictionary DictionaryConfig
	Redis      RedisConfig
	RateLimit  RateLimitConfig
	Client     ClientConfig
	Providers  ProviderConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// BackendConfig points at the external game backend that owns all
// authoritative profile/mission/statistics state.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DictionaryConfig points at the external word-definition service.
type DictionaryConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled       bool
	RPS           float64
	Burst         int
	UseRedis      bool
	WindowSeconds int
}

// ClientConfig drives the gameapi client package defaults: per-attempt
// timeout plus the fixed-delay retry budget applied to timed-out calls.
type ClientConfig struct {
	Timeout     time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
}

// ProviderConfig carries API keys for boundary collaborators (transactional
// email, text-to-speech). The services themselves are not modeled here.
type ProviderConfig struct {
	EmailAPIKey  string
	SpeechAPIKey string
}

// defaultBackendURL is used when GAME_BACKEND_URL is unset so the site can
// run against production without any local configuration.
const defaultBackendURL = "https://api.wordgrid.app"

const defaultDictionaryURL = "https://dictionary.wordgrid.app"

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("GAME_BACKEND_URL", defaultBackendURL)
	viper.SetDefault("GAME_BACKEND_TIMEOUT", 15)
	viper.SetDefault("DICTIONARY_URL", defaultDictionaryURL)
	viper.SetDefault("DICTIONARY_TIMEOUT", 10)
	viper.SetDefault("CLIENT_TIMEOUT_MS", 8000)
	viper.SetDefault("CLIENT_MAX_ATTEMPTS", 3)
	viper.SetDefault("CLIENT_RETRY_DELAY_MS", 500)
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_USE_REDIS", false)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Backend: BackendConfig{
			BaseURL: viper.GetString("GAME_BACKEND_URL"),
			Timeout: time.Duration(viper.GetInt("GAME_BACKEND_TIMEOUT")) * time.Second,
		},
		Dictionary: DictionaryConfig{
			BaseURL: viper.GetString("DICTIONARY_URL"),
			Timeout: time.Duration(viper.GetInt("DICTIONARY_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		Client: ClientConfig{
			Timeout:     time.Duration(viper.GetInt("CLIENT_TIMEOUT_MS")) * time.Millisecond,
			MaxAttempts: viper.GetInt("CLIENT_MAX_ATTEMPTS"),
			RetryDelay:  time.Duration(viper.GetInt("CLIENT_RETRY_DELAY_MS")) * time.Millisecond,
		},
		Providers: ProviderConfig{
			EmailAPIKey:  os.Getenv("EMAIL_API_KEY"),
			SpeechAPIKey: os.Getenv("SPEECH_API_KEY"),
		},
	}

	// Basic validation
	if cfg.Backend.BaseURL == "" {
		log.Println("WARNING: GAME_BACKEND_URL resolved empty; proxy routes will fail")
	}

	return cfg, nil
}
