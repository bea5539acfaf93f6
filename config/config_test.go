package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadWithNoEnvFileUsesDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://candileasing.netlify.app/", c.BaseURL)
	assert.Equal(t, BrowserChromium, c.Browser)
	assert.Equal(t, time.Second*30, c.ElementTimeout)
	assert.Equal(t, 3, c.RetryAttempts)
	assert.Equal(t, "GLOBUS BANK", c.Data.BankName)
	assert.False(t, c.AllowMutations)
	assert.False(t, c.HasCredentials())
}

func TestLoadDerivesSelfServiceURLsFromBaseURL(t *testing.T) {
	path := writeEnvFile(t, "BASE_URL=https://staging.example.com\n")
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com/", c.BaseURL)
	assert.Equal(t, "https://staging.example.com/personal/self-service", c.SelfServiceURL)
	assert.Equal(t, "https://staging.example.com/personal/self-service/personal-data/edit", c.EditPersonalDataURL)
	assert.Equal(t, "https://staging.example.com/personal/self-service/bank-details/add", c.AddBankDetailURL)
}

func TestLoadReadsValuesFromEnvFile(t *testing.T) {
	path := writeEnvFile(t, `
# test account
TEST_USERNAME=qa@example.com
TEST_PASSWORD="s3cret value"
BROWSER=firefox
HEADLESS=false
EXPLICIT_WAIT=45
RETRY_INTERVAL_MS=250
ALLOW_MUTATIONS=true
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "qa@example.com", c.Username)
	assert.Equal(t, "s3cret value", c.Password, "quotes should be stripped")
	assert.Equal(t, BrowserFirefox, c.Browser)
	assert.False(t, c.Headless)
	assert.Equal(t, time.Second*45, c.ElementTimeout)
	assert.Equal(t, time.Millisecond*250, c.RetryInterval)
	assert.True(t, c.AllowMutations)
	assert.True(t, c.HasCredentials())
}

func TestEnvironmentVariablesBeatEnvFile(t *testing.T) {
	path := writeEnvFile(t, "TEST_USERNAME=file@example.com\n")
	t.Setenv("TEST_USERNAME", "env@example.com")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env@example.com", c.Username)
}

func TestLoadRejectsUnsupportedBrowser(t *testing.T) {
	path := writeEnvFile(t, "BROWSER=edge\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported browser")
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	path := writeEnvFile(t, "HEADLESS=definitely\nEXPLICIT_WAIT=soon\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HEADLESS")
	assert.Contains(t, err.Error(), "EXPLICIT_WAIT")
}

func TestLoadRejectsMalformedEnvFileLine(t *testing.T) {
	path := writeEnvFile(t, "NOT A KEY VALUE LINE\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KEY=VALUE")
}

func TestLoadMissingExplicitEnvFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
}

func TestValidateRejectsRelativeBaseURL(t *testing.T) {
	c := Default()
	c.BaseURL = "candileasing.netlify.app"
	assert.Error(t, c.Validate())
}

func TestValidateRejectsZeroRetryAttempts(t *testing.T) {
	c := Default()
	c.RetryAttempts = 0
	assert.Error(t, c.Validate())
}
