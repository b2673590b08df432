package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ShipXApiConfig struct {
	BaseUri        string
	ApiToken       string
	OrganizationId string
	SkipTlsVerify  bool
}

type PollConfig struct {
	Interval     time.Duration
	MaxAttempts  int
	FailStatuses []string
}

type Config struct {
	DSN              string
	LogsDirectory    string
	OutputDirectory  string
	DispatchSchedule string
	ShipXApi         *ShipXApiConfig
	Poll             *PollConfig
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return &Config{
		DSN:              os.Getenv("DATABASE_DSN"),
		LogsDirectory:    getEnv("LOGS_DIRECTORY", "logs"),
		OutputDirectory:  getEnv("OUTPUT_DIRECTORY", "output"),
		DispatchSchedule: getEnv("DISPATCH_SCHEDULE", "0 8 * * *"),
		ShipXApi: &ShipXApiConfig{
			BaseUri:        getEnv("SHIPX_API_BASE_URI", "https://sandbox-api-shipx-pl.easypack24.net/v1"),
			ApiToken:       os.Getenv("SHIPX_API_TOKEN"),
			OrganizationId: os.Getenv("SHIPX_ORGANIZATION_ID"),
			SkipTlsVerify:  getEnvBool("SHIPX_TLS_SKIP_VERIFY", false),
		},
		Poll: &PollConfig{
			Interval:     getEnvDuration("POLL_INTERVAL", time.Second),
			MaxAttempts:  getEnvInt("POLL_MAX_ATTEMPTS", 120),
			FailStatuses: splitList(os.Getenv("POLL_FAIL_STATUSES")),
		},
	}
}

// Validate checks the credentials required before any API call can be made.
func (c *Config) Validate() error {
	if c.ShipXApi.ApiToken == "" {
		return errors.New("SHIPX_API_TOKEN is not set")
	}
	if c.ShipXApi.OrganizationId == "" {
		return errors.New("SHIPX_ORGANIZATION_ID is not set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid value %q for %s, using default", value, key)
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value %q for %s, using default", value, key)
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid value %q for %s, using default", value, key)
		return fallback
	}
	return parsed
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
