// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds application configuration values loaded from file or environment variables.
// It is loaded once at startup and treated as read-only afterwards.
type Config struct {
	Port           string        `mapstructure:"PORT"`
	Env            string        `mapstructure:"APP_ENV"`
	DBDriver       string        `mapstructure:"DB_DRIVER"`
	DBHost         string        `mapstructure:"DB_HOST"`
	DBPort         string        `mapstructure:"DB_PORT"`
	DBUser         string        `mapstructure:"DB_USER"`
	DBPassword     string        `mapstructure:"DB_PASSWORD"`
	DBName         string        `mapstructure:"DB_NAME"`
	DBSSLMode      string        `mapstructure:"DB_SSLMODE"`
	DBDSN          string        `mapstructure:"DB_DSN"`
	JWTSecret      string        `mapstructure:"JWT_SECRET"`
	JWTIssuer      string        `mapstructure:"JWT_ISSUER"`
	TokenTTL       time.Duration `mapstructure:"TOKEN_TTL"`
	BcryptCost     int           `mapstructure:"BCRYPT_COST"`
	HashWorkers    int           `mapstructure:"HASH_WORKERS"`
	RedisURL       string        `mapstructure:"REDIS_URL"`
	AllowedOrigins string        `mapstructure:"ALLOWED_ORIGINS"`
	RateLimitMax   int           `mapstructure:"RATE_LIMIT_MAX"`
	TracingEnabled bool          `mapstructure:"TRACING_ENABLED"`
	TracingExport  string        `mapstructure:"TRACING_EXPORTER"`
	OTLPEndpoint   string        `mapstructure:"OTLP_ENDPOINT"`
}

// LoadConfig loads application configuration from .env, config files and environment variables.
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	v.AddConfigPath("../..")
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AutomaticEnv()

	// The base config file is optional; defaults and env vars cover everything.
	_ = v.ReadInConfig()

	env := v.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env != "development" && env != "test" {
		v.SetConfigName("config." + env)
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read profile config 'config.%s.yml': %w", env, err)
			}
		} else {
			log.Printf("Loaded profile-specific configuration: config.%s.yml", env)
		}
	}

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.DBSSLMode = strings.ToLower(strings.TrimSpace(cfg.DBSSLMode))
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "9090")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "user")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "nc_games")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "gamereviews-api")
	v.SetDefault("TOKEN_TTL", "1h")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("HASH_WORKERS", 4)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_EXPORTER", "stdout")
	v.SetDefault("OTLP_ENDPOINT", "localhost:4318")
}

// IsProduction reports whether the config targets a production-like environment.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Env))
	return env == "production" || env == "prod"
}

// Validate ensures that required configuration values are present and meet security standards.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be a positive duration")
	}
	if c.HashWorkers < 1 {
		return errors.New("HASH_WORKERS must be at least 1")
	}
	switch c.DBDriver {
	case "postgres":
	case "sqlite":
		if c.DBDSN == "" {
			return errors.New("DB_DSN is required when DB_DRIVER=sqlite")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if c.IsProduction() {
		if c.JWTSecret == defaultJWTSecret {
			return errors.New("JWT_SECRET must be changed from the default value in production")
		}
		if len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters in production")
		}
		if c.DBDriver == "postgres" && (c.DBPassword == "password" || c.DBPassword == "") {
			return errors.New("a strong DB_PASSWORD is required in production")
		}
		if c.DBSSLMode == "disable" || c.DBSSLMode == "" {
			log.Println("WARNING: DB_SSLMODE is 'disable' in production. It is highly recommended to use SSL for database connections.")
		}
		if c.AllowedOrigins == "*" {
			log.Println("WARNING: ALLOWED_ORIGINS is set to '*' in production. This is insecure.")
		}
	} else if len(c.JWTSecret) < 32 {
		log.Println("WARNING: JWT_SECRET is shorter than 32 characters. Consider using a stronger secret for production.")
	}

	return nil
}
