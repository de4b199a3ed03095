// Package config holds the suite-wide configuration for the livescore
// widget probes. Values come from defaults overridden by SCOREWATCH_*
// environment variables.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/mstoykov/envconfig"
)

// EnvPrefix is the prefix for all environment overrides,
// e.g. SCOREWATCH_TARGET_URL.
const EnvPrefix = "SCOREWATCH"

// Config configures the browser session, the probed page and the output
// artifacts. All fields can be overridden from the environment.
type Config struct {
	// TargetURL is the public page hosting the live-sports widget.
	TargetURL string `envconfig:"TARGET_URL"`

	// Headless controls whether Chrome runs without a visible window.
	Headless bool `envconfig:"HEADLESS"`

	// NavTimeout bounds a single navigation, including the wait for the
	// load milestone. On expiry the navigation error propagates and fails
	// only the calling test.
	NavTimeout time.Duration `envconfig:"NAV_TIMEOUT"`

	// PreTestDelay and PostTestDelay are fixed sleeps around each page
	// lifetime. They throttle the request rate against the target site;
	// there is no reactive backoff anywhere in the suite.
	PreTestDelay  time.Duration `envconfig:"PRE_TEST_DELAY"`
	PostTestDelay time.Duration `envconfig:"POST_TEST_DELAY"`

	// ReportPath is where the HTML network report is written.
	ReportPath string `envconfig:"REPORT_PATH"`

	// ScreenshotPath is where the mobile-viewport screenshot is written.
	// Writing it is best-effort; failures never fail a test.
	ScreenshotPath string `envconfig:"SCREENSHOT_PATH"`

	// MobileWidth and MobileHeight define the emulated mobile viewport.
	MobileWidth  int `envconfig:"MOBILE_WIDTH"`
	MobileHeight int `envconfig:"MOBILE_HEIGHT"`
}

// DefaultConfig returns the defaults used when no environment overrides
// are present.
func DefaultConfig() Config {
	return Config{
		TargetURL:      "https://www.onefootball.example/matches/live",
		Headless:       true,
		NavTimeout:     30 * time.Second,
		PreTestDelay:   2 * time.Second,
		PostTestDelay:  time.Second,
		ReportPath:     "reports/network-report.html",
		ScreenshotPath: "reports/widget-mobile.png",
		MobileWidth:    390,
		MobileHeight:   844,
	}
}

// Load builds the configuration from defaults plus SCOREWATCH_* overrides.
func Load() (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that would make every probe fail in a
// confusing way (bad URL, non-positive timeout).
func (c Config) Validate() error {
	u, err := url.Parse(c.TargetURL)
	if err != nil {
		return fmt.Errorf("invalid target URL %q: %w", c.TargetURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("target URL %q must be http or https", c.TargetURL)
	}
	if c.NavTimeout <= 0 {
		return fmt.Errorf("navigation timeout must be positive, got %v", c.NavTimeout)
	}
	if c.PreTestDelay < 0 || c.PostTestDelay < 0 {
		return fmt.Errorf("test delays must be non-negative")
	}
	return nil
}
