// Widgetprobe runs a single manual probe of the live-sports widget page
// outside the test harness: navigate, scrape, record traffic, summarize.
//
// Usage:
//
//	go run ./cmd/widgetprobe --url https://example.com/live
//	go run ./cmd/widgetprobe --filter network.byMethod
//	go run ./cmd/widgetprobe --report reports/network-report.html
//
// The probe prints a JSON document with the extracted matches and the
// network summary. --filter applies a gjson path to that document,
// which is handy when eyeballing one dimension of a noisy page.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/scorewatch/livescore-e2e/pkg/config"
	"github.com/scorewatch/livescore-e2e/pkg/netwatch"
	"github.com/scorewatch/livescore-e2e/pkg/session"
	"github.com/scorewatch/livescore-e2e/pkg/widget"
)

const settleDelay = 3 * time.Second

// probeResult is the printed output document.
type probeResult struct {
	Target   string            `json:"target"`
	Strategy string            `json:"strategy"`
	Matches  []widget.Match    `json:"matches"`
	Network  netwatch.Report   `json:"network"`
	Records  []netwatch.Record `json:"records,omitempty"`
}

func main() {
	log := logrus.New()

	var (
		url        string
		headless   bool
		timeout    time.Duration
		reportPath string
		shotPath   string
		filter     string
		withRaw    bool
		verbose    bool
	)

	root := &cobra.Command{
		Use:          "widgetprobe",
		Short:        "One-off probe of the live-sports widget page",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if url != "" {
				cfg.TargetURL = url
			}
			cfg.Headless = headless
			if timeout > 0 {
				cfg.NavTimeout = timeout
			}
			// No throttling needed for a single manual run.
			cfg.PreTestDelay = 0
			cfg.PostTestDelay = 0
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runProbe(cmd.Context(), cfg, log, reportPath, shotPath, filter, withRaw)
		},
	}

	root.Flags().StringVar(&url, "url", "", "target page URL (default from SCOREWATCH_TARGET_URL)")
	root.Flags().BoolVar(&headless, "headless", true, "run Chrome headless")
	root.Flags().DurationVar(&timeout, "timeout", 0, "navigation timeout override")
	root.Flags().StringVar(&reportPath, "report", "", "write the HTML network report to this path")
	root.Flags().StringVar(&shotPath, "screenshot", "", "write a full-page screenshot to this path")
	root.Flags().StringVar(&filter, "filter", "", "gjson path applied to the JSON output")
	root.Flags().BoolVar(&withRaw, "raw-records", false, "include every recorded request in the output")
	root.Flags().BoolVar(&verbose, "verbose", false, "debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runProbe(ctx context.Context, cfg config.Config, log *logrus.Logger,
	reportPath, shotPath, filter string, withRaw bool) error {

	sess, err := session.New(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.WithError(err).Warn("browser close error")
		}
	}()

	page, err := sess.NewPage(ctx)
	if err != nil {
		return err
	}
	defer sess.ClosePage(ctx, page)

	obs := netwatch.NewObserver(nil, log)
	obs.Attach(page)

	if err := sess.Navigate(page, cfg.TargetURL); err != nil {
		return err
	}
	time.Sleep(settleDelay)

	matches, strategy, err := widget.Extract(page, widget.DefaultStrategies())
	if err != nil {
		return err
	}
	if strategy == "" {
		log.Warn("no strategy matched any elements on the page")
	}

	records := obs.Records()
	result := probeResult{
		Target:   cfg.TargetURL,
		Strategy: strategy,
		Matches:  matches,
		Network:  netwatch.Summarize(records),
	}
	if withRaw {
		result.Records = records
	}

	if reportPath != "" {
		if err := netwatch.WriteHTML(result.Network, reportPath); err != nil {
			return err
		}
		log.WithField("path", reportPath).Info("report written")
	}
	if shotPath != "" {
		// Best-effort, same as the suite.
		if err := sess.CaptureScreenshot(page, shotPath); err != nil {
			log.WithError(err).Warn("screenshot not captured")
		}
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode probe result: %w", err)
	}
	if filter != "" {
		fmt.Println(gjson.GetBytes(out, filter).String())
		return nil
	}
	fmt.Println(string(out))
	return nil
}
