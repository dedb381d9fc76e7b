package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Pagination PaginationConfig
	Recency    RecencyConfig
	Images     ImagesConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// PaginationConfig controls server-side paging defaults.
type PaginationConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

// RecencyConfig drives the NEW/UPDATED tagging of employee records.
// Windows are injectable rather than hard-coded so the classification
// rules can be tuned without a redeploy.
type RecencyConfig struct {
	NewWindow      time.Duration
	UpdatedWindow  time.Duration
	MeaningfulEdit time.Duration
}

// ImagesConfig holds the external image services (AI avatar generation
// and unsigned uploads).
type ImagesConfig struct {
	GeneratorBaseURL string
	CloudName        string
	UploadPreset     string
}

func Load() (*Config, error) {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "employee_creator"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	defaultPageSize, err := strconv.Atoi(getEnv("PAGE_SIZE_DEFAULT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAGE_SIZE_DEFAULT: %w", err)
	}
	// The max must admit the single oversized page filtered searches
	// request, or matches beyond the clamp become unreachable.
	maxPageSize, err := strconv.Atoi(getEnv("PAGE_SIZE_MAX", "500"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAGE_SIZE_MAX: %w", err)
	}
	config.Pagination = PaginationConfig{
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,
	}

	newWindow, err := getEnvDuration("RECENCY_NEW_WINDOW", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}
	updatedWindow, err := getEnvDuration("RECENCY_UPDATED_WINDOW", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}
	meaningfulEdit, err := getEnvDuration("RECENCY_MEANINGFUL_EDIT", time.Hour)
	if err != nil {
		return nil, err
	}
	config.Recency = RecencyConfig{
		NewWindow:      newWindow,
		UpdatedWindow:  updatedWindow,
		MeaningfulEdit: meaningfulEdit,
	}

	config.Images = ImagesConfig{
		GeneratorBaseURL: getEnv("IMAGE_GENERATOR_URL", "https://image.pollinations.ai"),
		CloudName:        getEnv("CLOUDINARY_CLOUD_NAME", ""),
		UploadPreset:     getEnv("CLOUDINARY_UPLOAD_PRESET", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Pagination.DefaultPageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE_DEFAULT must be positive")
	}
	if c.Pagination.MaxPageSize < c.Pagination.DefaultPageSize {
		return fmt.Errorf("PAGE_SIZE_MAX must be at least PAGE_SIZE_DEFAULT")
	}
	if c.Recency.NewWindow <= 0 || c.Recency.UpdatedWindow <= 0 {
		return fmt.Errorf("recency windows must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
