package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreS3       = "s3"
	StoreFirebase = "firebase"
)

const (
	defaultAdminEmail    = "admin@agtechsummit.in"
	defaultAdminPassword = "admin123"
	defaultJWTSecret     = "dev-secret-change-me"
)

// StoreConfig selects and configures the state backend.
type StoreConfig struct {
	Driver         string
	Path           string // file directory or sqlite database path
	DatabaseURL    string
	DatabaseDriver string // postgres or pgx
	S3Bucket       string
	S3Region       string
	S3Endpoint     string
	S3PathStyle    bool
	FirebaseKey    string
	FirebaseURL    string
}

// AuthConfig holds the single admin account and token settings.
type AuthConfig struct {
	AdminEmail    string
	AdminPassword string
	JWTSecret     string
	JWTExpiry     time.Duration
}

// CheckoutConfig holds currency detection and payment settings.
type CheckoutConfig struct {
	GeoLookupURL    string
	DefaultCurrency string
	PaymentDelay    time.Duration
	PaymentSecret   string
}

// EmailConfig configures outbound mail. Provider is "ses" or "noop".
type EmailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// ImageConfig bounds admin image uploads.
type ImageConfig struct {
	MaxSizeBytes int64
	MaxWidth     int
	Quality      float64
}

// Config holds all configuration for the application
type Config struct {
	Environment        string
	Port               string
	LogLevel           string
	CORSAllowedOrigins []string
	Store              StoreConfig
	Auth               AuthConfig
	Checkout           CheckoutConfig
	Email              EmailConfig
	Image              ImageConfig
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the environment is authoritative and .env is usually absent.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	var errs []error
	cfg := &Config{
		Environment:        env,
		Port:               envOr("PORT", "8080"),
		LogLevel:           envOr("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitList(envOr("CORS_ALLOWED_ORIGINS", "*")),
		Store: StoreConfig{
			Driver:         strings.ToLower(envOr("STORE_DRIVER", StoreMemory)),
			Path:           os.Getenv("STORE_PATH"),
			DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
			DatabaseDriver: envOr("DATABASE_DRIVER", "postgres"),
			S3Bucket:       os.Getenv("STORE_S3_BUCKET"),
			S3Region:       envOr("STORE_S3_REGION", envOr("AWS_REGION", "us-east-1")),
			S3Endpoint:     os.Getenv("STORE_S3_ENDPOINT"),
			S3PathStyle:    envBool("STORE_S3_PATH_STYLE", &errs),
			FirebaseKey:    os.Getenv("FIREBASE_SERVICE_ACCOUNT_KEY_PATH"),
			FirebaseURL:    os.Getenv("FIREBASE_DATABASE_URL"),
		},
		Auth: AuthConfig{
			AdminEmail:    envOr("ADMIN_EMAIL", defaultAdminEmail),
			AdminPassword: envOr("ADMIN_PASSWORD", defaultAdminPassword),
			JWTSecret:     envOr("JWT_SECRET", defaultJWTSecret),
			JWTExpiry:     envDuration("JWT_EXPIRY", 24*time.Hour, &errs),
		},
		Checkout: CheckoutConfig{
			GeoLookupURL:    envOr("GEO_LOOKUP_URL", "https://ipapi.co/json/"),
			DefaultCurrency: strings.ToUpper(envOr("DEFAULT_CURRENCY", "INR")),
			PaymentDelay:    envDuration("PAYMENT_DELAY", 1500*time.Millisecond, &errs),
			PaymentSecret:   envOr("PAYMENT_SECRET", envOr("JWT_SECRET", defaultJWTSecret)),
		},
		Email: EmailConfig{
			Provider:           strings.ToLower(envOr("EMAIL_PROVIDER", "noop")),
			FromAddress:        envOr("EMAIL_FROM_ADDRESS", "noreply@agtechsummit.in"),
			FromName:           envOr("EMAIL_FROM_NAME", "AgTech Summit"),
			AWSRegion:          envOr("AWS_REGION", "us-east-1"),
			AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
		Image: ImageConfig{
			MaxSizeBytes: int64(envInt("IMAGE_MAX_SIZE_MB", 5, &errs)) << 20,
			MaxWidth:     envInt("IMAGE_MAX_WIDTH", 1200, &errs),
			Quality:      envFloat("IMAGE_QUALITY", 0.82, &errs),
		},
	}

	if cfg.Store.Path == "" {
		switch cfg.Store.Driver {
		case StoreFile:
			cfg.Store.Path = "data"
		case StoreSQLite:
			cfg.Store.Path = "agtechsummit.db"
		}
	}

	errs = append(errs, cfg.validate()...)
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() []error {
	var errs []error
	switch c.Store.Driver {
	case StoreMemory, StoreFile, StoreSQLite:
	case StorePostgres:
		if c.Store.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres store"))
		}
	case StoreS3:
		if c.Store.S3Bucket == "" {
			errs = append(errs, errors.New("STORE_S3_BUCKET is required for the s3 store"))
		}
	case StoreFirebase:
		if c.Store.FirebaseURL == "" {
			errs = append(errs, errors.New("FIREBASE_DATABASE_URL is required for the firebase store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver))
	}
	if c.Environment == "production" && c.Auth.JWTSecret == defaultJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	if c.Environment == "production" && c.Auth.AdminPassword == defaultAdminPassword {
		errs = append(errs, errors.New("ADMIN_PASSWORD must be set in production"))
	}
	return errs
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64, errs *[]error) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return f
}

func envBool(key string, errs *[]error) bool {
	v := os.Getenv(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
	}
	return b
}

func envDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
