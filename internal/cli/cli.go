package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/nfl-odds/internal/browser"
	"github.com/pfrederiksen/nfl-odds/internal/config"
	"github.com/pfrederiksen/nfl-odds/internal/export"
	"github.com/pfrederiksen/nfl-odds/internal/logger"
	"github.com/pfrederiksen/nfl-odds/internal/runner"
	"github.com/pfrederiksen/nfl-odds/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagStartWeek string
	flagEndWeek   string
	flagConfig    string
	flagHeadful   bool
	flagVerbose   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nfl-odds",
		Short: "Export weekly NFL odds tables to spreadsheets",
		Long: `A CLI tool that scrapes weekly NFL odds tables from the configured
website and exports each week to its own xlsx file. Ctrl-C stops the run
after the current week finishes.`,
		RunE: runExport,
	}

	// Define flags
	cmd.Flags().StringVar(&flagStartWeek, "start-week", "", "First week to scrape, 1-18 (required)")
	cmd.Flags().StringVar(&flagEndWeek, "end-week", "", "Last week to scrape, 1-18 (required)")
	cmd.Flags().StringVar(&flagConfig, "config", "config.ini", "Path to the configuration file")
	cmd.Flags().BoolVar(&flagHeadful, "headful", false, "Run Chrome with a visible window (debugging)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.MarkFlagRequired("start-week")
	cmd.MarkFlagRequired("end-week")

	return cmd
}

// runExport is the main command logic
func runExport(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	// Validate the week range before touching the browser
	weeks, err := runner.ParseWeekRange(flagStartWeek, flagEndWeek)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded", logger.Fields{
		"web_url":     cfg.WebURL,
		"timeout":     cfg.Timeout.String(),
		"output_path": cfg.OutputPath,
	})

	writer, err := export.New(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("initializing exporter: %w", err)
	}

	session := browser.New(browser.Options{
		Headless: !flagHeadful,
		Timeout:  cfg.Timeout,
		ExecPath: os.Getenv("CHROME_PATH"),
	})
	defer session.Close()

	run := runner.New(scraper.New(session, cfg.WebURL), writer, NewStatusReporter(os.Stdout))
	if err := run.Start(context.Background(), weeks); err != nil {
		return err
	}

	waitForRun(run, session)

	session.Close()
	if run.State() == runner.StateFailed {
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
	return nil
}

// waitForRun blocks until the worker exits, translating SIGINT/SIGTERM into
// a cooperative stop. A second signal closes the browser and exits without
// waiting for the current week.
func waitForRun(run *runner.Runner, session *browser.Session) {
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	done := make(chan struct{})
	go func() {
		run.Wait()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-sigCh:
		fmt.Println("Stopping...")
		run.Stop()
	}

	select {
	case <-done:
	case <-sigCh:
		session.Close()
		os.Exit(ExitError)
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
