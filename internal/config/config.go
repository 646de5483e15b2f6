package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Gemini   GeminiConfig
	Cache    CacheConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host          string
	Port          int
	User          string
	Password      string
	DBName        string
	SSLMode       string
	RunMigrations bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiryDay int
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
}

type CacheConfig struct {
	NarrativeTTL time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_RUN_MIGRATIONS", true)
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("JWT_ACCESS_EXPIRY_DAY", 7)
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-pro")
	v.SetDefault("GEMINI_TEMPERATURE", 0.7)
	v.SetDefault("NARRATIVE_CACHE_TTL", "6h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Load loads configuration from environment variables or .env file
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	// Try to read from .env file, but don't fail if it doesn't exist
	_ = v.ReadInConfig()

	return FromViper(v)
}

// FromViper builds and validates a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Host:         v.GetString("SERVER_HOST"),
			Port:         v.GetInt("SERVER_PORT"),
			Env:          v.GetString("ENV"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Host:          v.GetString("DB_HOST"),
			Port:          v.GetInt("DB_PORT"),
			User:          v.GetString("DB_USER"),
			Password:      v.GetString("DB_PASSWORD"),
			DBName:        v.GetString("DB_NAME"),
			SSLMode:       v.GetString("DB_SSL_MODE"),
			RunMigrations: v.GetBool("DB_RUN_MIGRATIONS"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			AccessSecret:    v.GetString("JWT_ACCESS_SECRET"),
			AccessExpiryDay: v.GetInt("JWT_ACCESS_EXPIRY_DAY"),
		},
		Gemini: GeminiConfig{
			APIKey:      v.GetString("GEMINI_API_KEY"),
			Model:       v.GetString("GEMINI_MODEL"),
			Temperature: float32(v.GetFloat64("GEMINI_TEMPERATURE")),
		},
		Cache: CacheConfig{
			NarrativeTTL: v.GetDuration("NARRATIVE_CACHE_TTL"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if c.JWT.AccessSecret == "" {
		return fmt.Errorf("JWT access secret is required")
	}
	if len(c.JWT.AccessSecret) < 32 {
		return fmt.Errorf("JWT access secret must be at least 32 characters")
	}
	if c.JWT.AccessExpiryDay <= 0 {
		return fmt.Errorf("JWT access expiry must be positive")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d is out of range", c.Server.Port)
	}
	return nil
}

// RedisEnabled reports whether a Redis host is configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetAddr returns Redis address
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AccessTTL returns the lifetime of an issued session token.
func (c *JWTConfig) AccessTTL() time.Duration {
	return time.Duration(c.AccessExpiryDay) * 24 * time.Hour
}
