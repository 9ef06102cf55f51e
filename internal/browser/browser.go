package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/pfrederiksen/nfl-odds/internal/logger"
)

// DefaultUserAgent mimics a desktop browser so the odds site serves the full
// table markup instead of a bot page.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

// DefaultTimeout bounds a page load when Options leaves Timeout unset.
const DefaultTimeout = 30 * time.Second

// blockedResourcePatterns keeps page loads lean; the odds tables render fine
// without styling, imagery, or webfonts.
var blockedResourcePatterns = []string{
	"*.css",
	"*.png",
	"*.jpg",
	"*.jpeg",
	"*.gif",
	"*.svg",
	"*.webp",
	"*.woff",
	"*.woff2",
	"*.ttf",
	"*.ico",
}

// Options configures a Session.
type Options struct {
	// Headless runs Chrome without a window. Turn off for debugging.
	Headless bool

	// UserAgent overrides DefaultUserAgent when non-empty.
	UserAgent string

	// Timeout bounds each page load, including the wait for the target
	// selector to appear.
	Timeout time.Duration

	// ExecPath points at a specific Chrome binary, e.g. from CHROME_PATH.
	ExecPath string
}

// Session owns one browser process. The process launches lazily on the
// first page load, so constructing a Session is cheap and cannot fail;
// launch errors surface from the first HTML call.
type Session struct {
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
}

// New builds the allocator and browser contexts for a session.
func New(opts Options) *Session {
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("blink-settings", "imagesEnabled=false"),
		chromedp.UserAgent(userAgent),
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	return &Session{
		ctx: browserCtx,
		cancel: func() {
			browserCancel()
			allocCancel()
		},
		timeout: timeout,
	}
}

// HTML loads url, blocks until waitSelector matches in the rendered page,
// and returns the page's outer HTML. Each call gets its own timeout; a
// cancelled caller context aborts the load.
func (s *Session) HTML(ctx context.Context, url, waitSelector string) (string, error) {
	loadCtx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	// Propagate caller cancellation into the page-load context
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	start := time.Now()

	var html string
	err := chromedp.Run(loadCtx,
		network.Enable(),
		network.SetBlockedURLS(blockedResourcePatterns),
		chromedp.Navigate(url),
		chromedp.WaitReady(waitSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("loading %s: %w", url, ctxErr)
		}
		return "", fmt.Errorf("loading %s: %w", url, err)
	}

	logger.Debug("page loaded", logger.Fields{
		"url":      url,
		"duration": time.Since(start).String(),
		"bytes":    len(html),
	})

	return html, nil
}

// Close shuts the browser down gracefully and releases both contexts. Safe
// to call more than once and when Chrome never launched.
func (s *Session) Close() {
	if err := chromedp.Cancel(s.ctx); err != nil {
		logger.Debug("browser shutdown", logger.Fields{"error": err.Error()})
	}
	s.cancel()
}
