package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultContactTimeout bounds the outbound request to the contact endpoint
	DefaultContactTimeout = 10 * time.Second
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Email (Resend)
	ResendAPIKey     string
	EmailFrom        string
	EmailFromName    string
	EmailTestMode    bool // When true, emails are logged to console instead of sent
	ContactRecipient string
	// Contact form submission
	ContactEndpointURL string // Empty means submit in-process through the mail service
	ContactTimeout     time.Duration
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Landing page content override (YAML)
	ContentPath string
	// Headless Chrome for social preview capture
	ChromePath string
	StaticDir  string
	OGImageURL string // Empty means APP_URL/static/og/landing.png
	// Cron schedule for re-capturing the og:image, e.g. "0 4 * * *". Empty disables it.
	OGRefreshSchedule string
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	emailFrom := getEnv("EMAIL_FROM", "noreply@digitalanalytics.dev")

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		AppURL:             strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		EmailFrom:          emailFrom,
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "Digital Analytics"),
		EmailTestMode:      getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		ContactRecipient:   getEnv("CONTACT_RECIPIENT", emailFrom),
		ContactEndpointURL: getEnv("CONTACT_ENDPOINT_URL", ""),
		ContactTimeout:     getEnvDuration("CONTACT_TIMEOUT", DefaultContactTimeout),
		TurnstileSiteKey:   getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		ContentPath:        getEnv("CONTENT_PATH", ""),
		ChromePath:         getEnv("CHROME_PATH", ""),
		StaticDir:          getEnv("STATIC_DIR", "static"),
		OGImageURL:         getEnv("OG_IMAGE_URL", ""),
		OGRefreshSchedule:  getEnv("OG_REFRESH_SCHEDULE", ""),
		R2AccountID:        getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:      getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:  getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:       getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:        getEnv("R2_PUBLIC_URL", ""),
	}
}

// IsProduction reports whether the site runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SocialImageURL is the absolute og:image URL of the landing page
func (c *Config) SocialImageURL() string {
	if c.OGImageURL != "" {
		return c.OGImageURL
	}
	return c.AppURL + "/static/og/landing.png"
}

// TurnstileEnabled reports whether both Turnstile keys are configured
func (c *Config) TurnstileEnabled() bool {
	return c.TurnstileSiteKey != "" && c.TurnstileSecretKey != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// getEnvDuration parses Go duration strings ("10s", "1m"); invalid or non-positive values use the default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
