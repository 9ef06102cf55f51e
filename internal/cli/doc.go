// Package cli implements the nfl-odds command line interface.
//
// The root command validates the requested week range, loads the INI
// configuration, wires the browser session, scraper, exporter, and runner
// together, and starts the run. Status notifications print to stdout one
// line at a time; the first SIGINT requests a cooperative stop and a second
// one tears the browser down and exits. The browser session is closed on
// every exit path.
package cli
