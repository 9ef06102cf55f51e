package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pfrederiksen/nfl-odds/internal/logger"
	"github.com/pfrederiksen/nfl-odds/internal/odds"
)

// ErrAlreadyRunning is returned by Start while a previous run is still active.
var ErrAlreadyRunning = errors.New("a run is already active")

// State describes where a run is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopping
	StateCompleted
	StateFailed
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PageFetcher loads one week's rendered odds page. *scraper.Scraper
// satisfies it.
type PageFetcher interface {
	FetchWeek(ctx context.Context, week int) (string, error)
}

// Exporter persists one week's normalized sheet. *export.Writer satisfies it.
type Exporter interface {
	ExportWeek(year, week int, sheet *odds.Sheet) (string, error)
}

// Reporter receives run notifications. Progress and Error carry user-facing
// status text; Finished fires exactly once per run, after the terminal state
// is set, on every path.
type Reporter interface {
	Progress(message string)
	Error(message string)
	Finished()
}

// Runner executes one scrape-extract-export run at a time on a background
// worker goroutine.
type Runner struct {
	fetcher  PageFetcher
	exporter Exporter
	reporter Reporter
	now      func() time.Time

	stop atomic.Bool

	mu    sync.Mutex
	state State
	done  chan struct{}
}

// New creates an idle Runner.
func New(fetcher PageFetcher, exporter Exporter, reporter Reporter) *Runner {
	return &Runner{
		fetcher:  fetcher,
		exporter: exporter,
		reporter: reporter,
		now:      time.Now,
		state:    StateIdle,
	}
}

// Start spawns the worker for the given week range. It returns immediately;
// callers observe the run through the Reporter and Wait. Starting while a
// run is active fails with ErrAlreadyRunning.
func (r *Runner) Start(ctx context.Context, weeks WeekRange) error {
	r.mu.Lock()
	if r.state == StateRunning || r.state == StateStopping {
		r.mu.Unlock()
		return ErrAlreadyRunning
	}
	r.stop.Store(false)
	r.state = StateRunning
	done := make(chan struct{})
	r.done = done
	r.mu.Unlock()

	logger.Info("run started", logger.Fields{
		"start_week": weeks.Start,
		"end_week":   weeks.End,
	})

	go r.run(ctx, weeks, done)
	return nil
}

// Stop requests a cooperative stop. The flag is checked only at the top of
// each week's iteration; the current week is never interrupted mid-step.
// No-op unless a run is active.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateRunning {
		return
	}
	r.stop.Store(true)
	r.state = StateStopping
}

// Wait blocks until the current run's worker has exited. Returns
// immediately if no run was started.
func (r *Runner) Wait() {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()
	if done != nil {
		<-done
	}
}

// State reports the run's current state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Runner) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

// run is the worker. The terminal state is set before Finished fires.
func (r *Runner) run(ctx context.Context, weeks WeekRange, done chan struct{}) {
	final := r.runWeeks(ctx, weeks)

	r.setState(final)
	logger.Debug("run finished", logger.Fields{
		"state":   final.String(),
		"metrics": logger.GetMetricsSnapshot(),
	})
	r.reporter.Finished()
	close(done)
}

func (r *Runner) runWeeks(ctx context.Context, weeks WeekRange) State {
	year := r.now().Year()

	for week := weeks.Start; week <= weeks.End; week++ {
		if r.stop.Load() {
			r.reporter.Progress("Scraping stopped by user.")
			return StateCompleted
		}

		if err := r.processWeek(ctx, year, week); err != nil {
			logger.Error("week failed", logger.Fields{"week": week}, err)
			r.reporter.Error(fmt.Sprintf("An error occurred: %v", err))
			return StateFailed
		}

		r.reporter.Progress(fmt.Sprintf("Week %d data scraped successfully.", week))
	}

	return StateCompleted
}

// processWeek runs the fetch, extract, export sequence for one week.
func (r *Runner) processWeek(ctx context.Context, year, week int) error {
	start := time.Now()

	html, err := r.fetcher.FetchWeek(ctx, week)
	if err != nil {
		return err
	}

	sheet, err := odds.Extract(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("extracting week %d tables: %w", week, err)
	}

	path, err := r.exporter.ExportWeek(year, week, sheet)
	if err != nil {
		return fmt.Errorf("exporting week %d: %w", week, err)
	}

	logger.IncrCounter("weeks.exported")
	logger.RecordTiming("week.scrape", time.Since(start))
	logger.Info("week exported", logger.Fields{
		"week": week,
		"rows": len(sheet.Rows),
		"path": path,
	})

	return nil
}
