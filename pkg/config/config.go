package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config aggregates all runtime configuration for the portal API.
type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Redis   RedisConfig
	JWT     JWTConfig
	CORS    CORSConfig
	Log     LogConfig
	AI      AIConfig
	Cache   CacheConfig
	Login   LoginConfig
	Notices NoticesConfig
}

// RedisConfig describes the optional cache backend.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// JWTConfig holds token issuance parameters.
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// CORSConfig lists allowed browser origins.
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig tunes the zap logger.
type LogConfig struct {
	Level  string
	Format string
}

// AIConfig points at the external text-generation service. An empty APIKey
// keeps the portal fully functional on deterministic fallback content.
type AIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// CacheConfig tunes caching of AI-generated payloads.
type CacheConfig struct {
	AITTL time.Duration
}

// LoginConfig tunes the simulated login round-trips.
type LoginConfig struct {
	DispatchDelay time.Duration
	VerifyDelay   time.Duration
	FlowTTL       time.Duration
	StaffPassword string
}

// NoticesConfig tunes the notice broadcast worker.
type NoticesConfig struct {
	Workers int
}

// Load reads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("REDIS_ENABLED"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		Issuer:     v.GetString("JWT_ISSUER"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.AI = AIConfig{
		BaseURL: v.GetString("AI_BASE_URL"),
		APIKey:  v.GetString("AI_API_KEY"),
		Model:   v.GetString("AI_MODEL"),
		Timeout: parseDuration(v.GetString("AI_TIMEOUT"), 30*time.Second),
	}

	cfg.Cache = CacheConfig{
		AITTL: parseDuration(v.GetString("AI_CACHE_TTL"), 15*time.Minute),
	}

	cfg.Login = LoginConfig{
		DispatchDelay: parseDuration(v.GetString("LOGIN_DISPATCH_DELAY"), 800*time.Millisecond),
		VerifyDelay:   parseDuration(v.GetString("LOGIN_VERIFY_DELAY"), 1200*time.Millisecond),
		FlowTTL:       parseDuration(v.GetString("LOGIN_FLOW_TTL"), 15*time.Minute),
		StaffPassword: v.GetString("LOGIN_STAFF_PASSWORD"),
	}

	cfg.Notices = NoticesConfig{
		Workers: v.GetInt("NOTICE_WORKERS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("JWT_ISSUER", "edutrackr")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai")
	v.SetDefault("AI_API_KEY", "")
	v.SetDefault("AI_MODEL", "gemini-2.5-flash")
	v.SetDefault("AI_TIMEOUT", "30s")
	v.SetDefault("AI_CACHE_TTL", "15m")

	v.SetDefault("LOGIN_DISPATCH_DELAY", "800ms")
	v.SetDefault("LOGIN_VERIFY_DELAY", "1200ms")
	v.SetDefault("LOGIN_FLOW_TTL", "15m")
	v.SetDefault("LOGIN_STAFF_PASSWORD", "staffpass")

	v.SetDefault("NOTICE_WORKERS", 2)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
