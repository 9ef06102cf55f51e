// Package runner drives the per-week scrape, extract, and export cycle.
//
// A Runner owns one background worker goroutine per run. The worker walks an
// inclusive week range, calling the fetcher, extractor, and exporter for each
// week and reporting progress through a Reporter. Stopping is cooperative: a
// stop request raises a flag that the worker checks at the top of each week's
// iteration, so an in-flight week always finishes or fails on its own. Any
// fetch, parse, or export failure ends the run; remaining weeks are never
// attempted. The Reporter's Finished fires on every path.
package runner
