// Package scraper fetches rendered weekly odds pages.
//
// The scraper builds per-week page URLs from the configured base URL and
// loads them through a browser session, blocking until the page has rendered
// at least one data table. Parsing the returned HTML is the odds package's
// job; the scraper only gets the page into hand.
package scraper
