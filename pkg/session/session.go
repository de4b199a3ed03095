// Package session owns the browser process shared by the whole probe
// suite and the per-test page lifecycle around it.
//
// One Session is opened in suite setup and closed in teardown. Each test
// gets its own page via NewPage/ClosePage; fixed delays around the page
// lifetime throttle the request rate against the target site.
package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/sirupsen/logrus"

	"github.com/scorewatch/livescore-e2e/pkg/config"
)

// Session wraps a single Chrome process for the lifetime of the suite.
type Session struct {
	browser *rod.Browser
	cfg     config.Config
	log     *logrus.Logger
}

// New launches Chrome and connects to it.
// Always pair with Close (via defer) to avoid orphaned Chrome processes.
func New(cfg config.Config, log *logrus.Logger) (*Session, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	l := launcher.New().
		Headless(cfg.Headless).
		Set("no-sandbox").
		Set("disable-gpu")

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch Chrome: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to Chrome: %w", err)
	}

	log.WithField("headless", cfg.Headless).Info("browser session started")

	return &Session{browser: browser, cfg: cfg, log: log}, nil
}

// NewPage creates a fresh page after the configured pre-test delay.
// The delay is a fixed proactive throttle, not a wait for anything.
func (s *Session) NewPage(ctx context.Context) (*rod.Page, error) {
	if err := sleep(ctx, s.cfg.PreTestDelay); err != nil {
		return nil, err
	}

	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return page, nil
}

// ClosePage closes the page and applies the post-test delay. Close errors
// are logged, not returned; a page that failed to close cleanly must not
// fail the test that used it.
func (s *Session) ClosePage(ctx context.Context, page *rod.Page) {
	if page != nil {
		if err := page.Close(); err != nil {
			s.log.WithError(err).Warn("failed to close page")
		}
	}
	_ = sleep(ctx, s.cfg.PostTestDelay)
}

// Navigate opens the URL and waits for the load milestone, both bounded
// by the configured navigation timeout. A timeout here propagates to the
// caller and fails only the current test.
func (s *Session) Navigate(page *rod.Page, url string) error {
	p := page.Timeout(s.cfg.NavTimeout)
	if err := p.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := p.WaitLoad(); err != nil {
		return fmt.Errorf("failed to load %s: %w", url, err)
	}
	s.log.WithField("url", url).Debug("navigation complete")
	return nil
}

// SetMobileViewport applies the configured mobile device metrics.
func (s *Session) SetMobileViewport(page *rod.Page) error {
	err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             s.cfg.MobileWidth,
		Height:            s.cfg.MobileHeight,
		DeviceScaleFactor: 2,
		Mobile:            true,
	})
	if err != nil {
		return fmt.Errorf("failed to set mobile viewport: %w", err)
	}
	return nil
}

// CaptureScreenshot writes a full-page PNG to path, creating parent
// directories. Callers in the suite treat a returned error as
// best-effort and only log it.
func (s *Session) CaptureScreenshot(page *rod.Page, path string) error {
	bin, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create screenshot directory: %w", err)
	}
	if err := os.WriteFile(path, bin, 0o644); err != nil {
		return fmt.Errorf("failed to write screenshot: %w", err)
	}

	s.log.WithField("path", path).Info("saved screenshot")
	return nil
}

// Close shuts the browser down. Safe to call on a partially constructed
// session.
func (s *Session) Close() error {
	if s == nil || s.browser == nil {
		return nil
	}
	return s.browser.Close()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
