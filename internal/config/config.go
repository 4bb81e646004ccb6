package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds every setting the dashboard needs. It is built once at startup
// and handed to the services that need it.
type Config struct {
	Port     string
	BasePath string
	LogLevel string

	Vonage    VonageConfig
	Scraper   ScraperConfig
	Groq      GroqConfig
	Database  DatabaseConfig
	RabbitMQ  RabbitMQConfig
	Dashboard DashboardConfig

	SentryDSN               string
	ExportsDir              string
	ActivityRetentionDays   int
	ActivityCleanupInterval time.Duration
}

// VonageConfig holds Vonage Voice API credentials
type VonageConfig struct {
	APIURL         string
	ApplicationID  string
	PrivateKeyPath string
	VirtualNumber  string
	AnswerURL      string
	Timeout        time.Duration
}

// ScraperConfig holds the scraping backend settings
type ScraperConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// GroqConfig holds the chat completions API settings
type GroqConfig struct {
	APIURL  string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// DatabaseConfig holds postgres connection parameters
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Enabled reports whether enough parameters are set to open a connection
func (d DatabaseConfig) Enabled() bool {
	return d.Host != "" && d.Port != "" && d.User != "" && d.Name != ""
}

// DSN builds the postgres connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// RabbitMQConfig holds broker connection parameters
type RabbitMQConfig struct {
	Host  string
	Port  string
	User  string
	Pass  string
	Queue string
}

// URL builds the AMQP connection URL (guest user automatically uses / vhost)
func (r RabbitMQConfig) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", r.User, r.Pass, r.Host, r.Port)
}

// DashboardConfig holds credentials protecting the dashboard and the JSON API.
// Empty values disable the corresponding check.
type DashboardConfig struct {
	User         string
	PasswordHash string
	APIKey       string
}

// Load builds the configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		BasePath: getEnv("BASE_PATH", ""),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		Vonage: VonageConfig{
			APIURL:         getEnv("VONAGE_API_URL", "https://api.nexmo.com"),
			ApplicationID:  getEnv("VONAGE_APPLICATION_ID", ""),
			PrivateKeyPath: getEnv("VONAGE_PRIVATE_KEY_PATH", ""),
			VirtualNumber:  getEnv("VONAGE_VIRTUAL_NUMBER", ""),
			AnswerURL:      getEnv("VOICE_ANSWER_URL", ""),
			Timeout:        getEnvAsSeconds("VONAGE_TIMEOUT_SECONDS", 30),
		},
		Scraper: ScraperConfig{
			Endpoint: getEnv("SCRAPER_API_URL", "http://192.168.0.171:8000/scrape"),
			Timeout:  getEnvAsSeconds("SCRAPER_TIMEOUT_SECONDS", 300),
		},
		Groq: GroqConfig{
			APIURL:  getEnv("GROQ_API_URL", "https://api.groq.com/openai/v1/chat/completions"),
			APIKey:  getEnv("GROQ_API_KEY", ""),
			Model:   getEnv("GROQ_MODEL", "openai/gpt-oss-20b"),
			Timeout: getEnvAsSeconds("BLOG_TIMEOUT_SECONDS", 60),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", ""),
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", ""),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RabbitMQ: RabbitMQConfig{
			Host:  getEnv("RABBITMQ_HOST", ""),
			Port:  getEnv("RABBITMQ_PORT", "5672"),
			User:  getEnv("RABBITMQ_USER", "guest"),
			Pass:  getEnv("RABBITMQ_PASS", "guest"),
			Queue: getEnv("ACTIVITY_QUEUE", "dashboard_activity"),
		},
		Dashboard: DashboardConfig{
			User:         getEnv("DASHBOARD_USER", ""),
			PasswordHash: getEnv("DASHBOARD_PASSWORD_HASH", ""),
			APIKey:       getEnv("API_KEY", ""),
		},

		SentryDSN:               getEnv("SENTRY_DSN", ""),
		ExportsDir:              getEnv("EXPORTS_DIR", "./exports"),
		ActivityRetentionDays:   getEnvAsInt("ACTIVITY_RETENTION_DAYS", 7),
		ActivityCleanupInterval: 6 * time.Hour,
	}
}

// getEnv gets environment variable with fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvAsSeconds(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvAsInt(key, defaultSeconds)) * time.Second
}
