// Package browser manages the headless Chrome session used to render odds pages.
//
// A Session wraps a chromedp browser context configured for scraping: headless,
// images and stylesheets blocked, a desktop user agent, and a per-load timeout.
// The browser process launches lazily on the first page load and is torn down
// by Close. A Session belongs to one worker; it is not safe for concurrent use.
package browser
