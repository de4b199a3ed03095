//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"testing"

	"github.com/go-rod/rod"
	"github.com/sirupsen/logrus"

	"github.com/scorewatch/livescore-e2e/pkg/config"
	"github.com/scorewatch/livescore-e2e/pkg/session"
)

// Shared across the suite: one browser process, opened once here and
// closed after the last test. Pages are per-test, see newProbePage.
var (
	suiteCfg     config.Config
	suiteSession *session.Session
)

func TestMain(m *testing.M) {
	code := run(m)

	// Cleanup: kill any orphaned Chrome processes. This is a safety net
	// for test failures/panics where the deferred Close didn't run.
	cleanupOrphanedBrowsers()

	os.Exit(code)
}

func run(m *testing.M) int {
	var err error
	suiteCfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	suiteSession, err = session.New(suiteCfg, logrus.StandardLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start browser session: %v\n", err)
		return 1
	}
	defer func() {
		if err := suiteSession.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "browser close error: %v\n", err)
		}
	}()

	return m.Run()
}

// newProbePage opens a throttled per-test page and registers its
// teardown. The pre/post delays come from the suite config.
func newProbePage(t *testing.T) *rod.Page {
	t.Helper()

	ctx := context.Background()
	page, err := suiteSession.NewPage(ctx)
	if err != nil {
		t.Fatalf("failed to open page: %v", err)
	}
	t.Cleanup(func() {
		suiteSession.ClosePage(ctx, page)
	})
	return page
}

// cleanupOrphanedBrowsers attempts to kill Chrome processes that may
// have been left behind by failed tests. Best-effort.
func cleanupOrphanedBrowsers() {
	switch runtime.GOOS {
	case "darwin", "linux":
		// pkill returns non-zero if no processes matched, ignore error.
		_ = exec.Command("pkill", "-f", "chromium|chrome").Run()
	case "windows":
		_ = exec.Command("taskkill", "/F", "/IM", "chrome.exe").Run()
		_ = exec.Command("taskkill", "/F", "/IM", "chromium.exe").Run()
	}
}
