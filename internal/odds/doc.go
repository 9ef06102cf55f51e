// Package odds parses rendered odds pages into export-ready tables.
//
// The odds package extracts every HTML table on a week's page into one merged
// grid, renames the leading column to Matchup, strips kickoff-time prefixes,
// pulls spread and total numbers out of their surrounding text, normalizes
// minus-sign glyphs, and coerces the odds columns to numbers. A week either
// normalizes completely or fails with the offending value.
package odds
