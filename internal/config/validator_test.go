package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/crimson/internal/domain"
)

func TestValidateEnv_MissingRequired(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvDatabaseURL, "postgres://localhost/nephthys")

	err := ValidateEnv()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.NotContains(t, err.Error(), EnvDatabaseURL)
	assert.Contains(t, err.Error(), EnvDirectoryAPIKey)
}

func TestValidateEnv_AllSet(t *testing.T) {
	clearEnvVars(t)
	setRequired(t)

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnvWithWarnings_PlaceholderValues(t *testing.T) {
	clearEnvVars(t)
	setRequired(t)
	t.Setenv(EnvDirectoryAPIKey, "your_flavortown_api_key")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], EnvDirectoryAPIKey)
}

func TestValidateEnvWithWarnings_NoWarnings(t *testing.T) {
	clearEnvVars(t)
	setRequired(t)

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
