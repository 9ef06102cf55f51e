// Package export writes normalized odds sheets to per-week spreadsheet files.
//
// Each week becomes a single-sheet xlsx workbook named by two-digit year and
// two-digit week ({YY}{WW}.xlsx) under the configured output directory.
// Files are overwritten on rerun; there are no merge or append semantics.
package export
