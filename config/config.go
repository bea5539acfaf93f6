// Package config loads the harness configuration from defaults, an optional .env
// file, and environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Supported browser engine names.
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// Config holds all settings for a test run.
type Config struct {
	// Application URLs. The derived URLs are computed from BaseURL when not set
	// explicitly.
	BaseURL             string
	SelfServiceURL      string
	EditPersonalDataURL string
	AddBankDetailURL    string

	// Credentials for the account used by the test run. The wrong-credential values
	// are deliberately invalid; they are used by the negative login tests.
	Username      string
	Password      string
	WrongUsername string
	WrongPassword string

	// Default form data for the self-service flows.
	Data TestData

	// Browser settings.
	Browser        string
	Headless       bool
	SlowMo         time.Duration
	ViewportWidth  int
	ViewportHeight int

	// Timeouts and retry behavior for element interaction.
	ElementTimeout    time.Duration
	NavigationTimeout time.Duration
	SettleTimeout     time.Duration
	RetryAttempts     int
	RetryInterval     time.Duration

	// Artifact settings.
	ArtifactsDir        string
	ScreenshotOnFailure bool
	RecordVideo         bool
	VideoDir            string

	// AllowMutations enables the tests that create or modify records in the target
	// application. These are off by default because the suite historically ran
	// against a shared deployment.
	AllowMutations bool
}

// TestData is the default form data used by the self-service flows. Fields that a test
// needs to vary per run (emergency contact names, for instance) are generated by the
// testdata package instead.
type TestData struct {
	BankName     string
	BankID       string
	SortCode     string
	BVN          string
	AlternateBVN string
	IdentityType string
	IdentityID   string
	IssuedDate   string
	ExpiryDate   string
	OtherName    string
	JobTitle     string
}

// Default returns the built-in configuration, before .env and environment overrides.
func Default() Config {
	return Config{
		BaseURL:       "https://candileasing.netlify.app/",
		WrongUsername: "bonduu001@yahoo.com",
		WrongPassword: "Bat165474@@",
		Data: TestData{
			BankName:     "GLOBUS BANK",
			BankID:       "UNAFNGLA228",
			SortCode:     "033",
			BVN:          "22857690875",
			AlternateBVN: "22857690432",
			IdentityType: "DRIVERS LICENSE",
			IdentityID:   "FRN-2381-AA-23",
			IssuedDate:   "2022-01-10",
			ExpiryDate:   "2027-01-10",
			OtherName:    "OLADEJO",
			JobTitle:     "HEAD OF IT",
		},
		Browser:             BrowserChromium,
		Headless:            true,
		ViewportWidth:       1920,
		ViewportHeight:      1080,
		ElementTimeout:      time.Second * 30,
		NavigationTimeout:   time.Second * 60,
		SettleTimeout:       time.Second * 10,
		RetryAttempts:       3,
		RetryInterval:       time.Millisecond * 500,
		ArtifactsDir:        "test-results",
		ScreenshotOnFailure: true,
		VideoDir:            "test-results/videos",
	}
}

// Load builds the configuration from defaults, the .env file at the given path (if
// any), and the process environment. Derived URLs are filled in and the result is
// validated.
func Load(envFile string) (*Config, error) {
	vars, err := newEnvSource(envFile)
	if err != nil {
		return nil, err
	}

	c := Default()
	vars.str("BASE_URL", &c.BaseURL)
	vars.str("SELF_SERVICE_URL", &c.SelfServiceURL)
	vars.str("EDIT_SELF_SERVICE_URL", &c.EditPersonalDataURL)
	vars.str("ADD_BANK_DETAILS_URL", &c.AddBankDetailURL)

	vars.str("TEST_USERNAME", &c.Username)
	vars.str("TEST_PASSWORD", &c.Password)
	vars.str("TEST_WRONG_USERNAME", &c.WrongUsername)
	vars.str("TEST_WRONG_PASSWORD", &c.WrongPassword)

	vars.str("BANK_NAME", &c.Data.BankName)
	vars.str("BANK_ID", &c.Data.BankID)
	vars.str("SORT_CODE", &c.Data.SortCode)
	vars.str("TEST_BVN_NUMBER", &c.Data.BVN)
	vars.str("TEST_BVN_NUMBER_ALT", &c.Data.AlternateBVN)
	vars.str("TEST_IDENTITY_TYPE", &c.Data.IdentityType)
	vars.str("TEST_IDENTITY_ID", &c.Data.IdentityID)
	vars.str("TEST_ISSUED_DATE", &c.Data.IssuedDate)
	vars.str("TEST_EXPIRY_DATE", &c.Data.ExpiryDate)
	vars.str("TEST_OTHER_NAME", &c.Data.OtherName)
	vars.str("TEST_JOB_TITLE", &c.Data.JobTitle)

	vars.str("BROWSER", &c.Browser)
	vars.boolean("HEADLESS", &c.Headless)
	vars.millis("SLOW_MO_MS", &c.SlowMo)
	vars.integer("WINDOW_WIDTH", &c.ViewportWidth)
	vars.integer("WINDOW_HEIGHT", &c.ViewportHeight)

	vars.seconds("EXPLICIT_WAIT", &c.ElementTimeout)
	vars.seconds("PAGE_LOAD_TIMEOUT", &c.NavigationTimeout)
	vars.seconds("SETTLE_TIMEOUT", &c.SettleTimeout)
	vars.integer("RETRY_ATTEMPTS", &c.RetryAttempts)
	vars.millis("RETRY_INTERVAL_MS", &c.RetryInterval)

	vars.str("ARTIFACTS_DIR", &c.ArtifactsDir)
	vars.boolean("SCREENSHOT_ON_FAILURE", &c.ScreenshotOnFailure)
	vars.boolean("RECORD_VIDEO", &c.RecordVideo)
	vars.str("VIDEO_DIR", &c.VideoDir)
	vars.boolean("ALLOW_MUTATIONS", &c.AllowMutations)

	if err := vars.err(); err != nil {
		return nil, err
	}

	c.deriveURLs()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) deriveURLs() {
	base := strings.TrimSuffix(c.BaseURL, "/") + "/"
	c.BaseURL = base
	if c.SelfServiceURL == "" {
		c.SelfServiceURL = base + "personal/self-service"
	}
	if c.EditPersonalDataURL == "" {
		c.EditPersonalDataURL = base + "personal/self-service/personal-data/edit"
	}
	if c.AddBankDetailURL == "" {
		c.AddBankDetailURL = base + "personal/self-service/bank-details/add"
	}
}

// SetBaseURL replaces the base URL and recomputes the derived self-service URLs
// from it, discarding any previously configured values for them.
func (c *Config) SetBaseURL(url string) {
	c.BaseURL = url
	c.SelfServiceURL = ""
	c.EditPersonalDataURL = ""
	c.AddBankDetailURL = ""
	c.deriveURLs()
}

// Validate checks settings that would otherwise fail in confusing ways mid-run.
func (c *Config) Validate() error {
	switch c.Browser {
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
	default:
		return fmt.Errorf("unsupported browser %q (supported: %s, %s, %s)",
			c.Browser, BrowserChromium, BrowserFirefox, BrowserWebKit)
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base URL %q is not an absolute http(s) URL", c.BaseURL)
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got %d", c.RetryAttempts)
	}
	return nil
}

// HasCredentials reports whether a real account is configured. Tests that need to log
// in are skipped when it returns false.
func (c *Config) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}
