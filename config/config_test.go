package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		ShipXApi: &ShipXApiConfig{
			ApiToken:       "token",
			OrganizationId: "42",
		},
	}
}

func TestValidate_MissingToken(t *testing.T) {
	cfg := validConfig()
	cfg.ShipXApi.ApiToken = ""

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHIPX_API_TOKEN")
}

func TestValidate_MissingOrganizationId(t *testing.T) {
	cfg := validConfig()
	cfg.ShipXApi.OrganizationId = ""

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHIPX_ORGANIZATION_ID")
}

func TestValidate_Ok(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SHIPX_API_TOKEN", "token")
	t.Setenv("SHIPX_ORGANIZATION_ID", "42")
	for _, key := range []string{
		"SHIPX_API_BASE_URI", "LOGS_DIRECTORY", "OUTPUT_DIRECTORY",
		"POLL_INTERVAL", "POLL_MAX_ATTEMPTS", "POLL_FAIL_STATUSES",
		"SHIPX_TLS_SKIP_VERIFY",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "https://sandbox-api-shipx-pl.easypack24.net/v1", cfg.ShipXApi.BaseUri)
	assert.Equal(t, "logs", cfg.LogsDirectory)
	assert.Equal(t, "output", cfg.OutputDirectory)
	assert.Equal(t, time.Second, cfg.Poll.Interval)
	assert.Equal(t, 120, cfg.Poll.MaxAttempts)
	assert.Empty(t, cfg.Poll.FailStatuses)
	assert.False(t, cfg.ShipXApi.SkipTlsVerify)
}

func TestLoadConfig_PollOverrides(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "250ms")
	t.Setenv("POLL_MAX_ATTEMPTS", "5")
	t.Setenv("POLL_FAIL_STATUSES", "cancelled, rejected,oversized")

	cfg := LoadConfig()

	assert.Equal(t, 250*time.Millisecond, cfg.Poll.Interval)
	assert.Equal(t, 5, cfg.Poll.MaxAttempts)
	assert.Equal(t, []string{"cancelled", "rejected", "oversized"}, cfg.Poll.FailStatuses)
}

func TestLoadConfig_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "soon")
	t.Setenv("POLL_MAX_ATTEMPTS", "many")
	t.Setenv("SHIPX_TLS_SKIP_VERIFY", "yep")

	cfg := LoadConfig()

	assert.Equal(t, time.Second, cfg.Poll.Interval)
	assert.Equal(t, 120, cfg.Poll.MaxAttempts)
	assert.False(t, cfg.ShipXApi.SkipTlsVerify)
}
