package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pfrederiksen/nfl-odds/internal/odds"
)

// sheetName is the single worksheet every export writes to.
const sheetName = "Sheet1"

// Writer persists odds sheets as xlsx files under a base directory.
type Writer struct {
	dir string
}

// New creates a Writer rooted at dir. A leading ~ expands to the home
// directory. The directory itself is created on first export.
func New(dir string) (*Writer, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}

	return &Writer{dir: dir}, nil
}

// Filename returns the deterministic spreadsheet name for a week: two-digit
// year then two-digit week, e.g. 2605.xlsx for week 5 of 2026.
func Filename(year, week int) string {
	return fmt.Sprintf("%02d%02d.xlsx", year-2000, week)
}

// WeekPath returns the full output path for a week's spreadsheet.
func (w *Writer) WeekPath(year, week int) string {
	return filepath.Join(w.dir, Filename(year, week))
}

// ExportWeek writes one week's sheet to its deterministic path, creating the
// output directory if missing and overwriting any previous file. The header
// row is written first; numeric cells keep their float64 typing.
func (w *Writer) ExportWeek(year, week int, sheet *odds.Sheet) (string, error) {
	path := w.WeekPath(year, week)

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	file := excelize.NewFile()
	defer file.Close() // nolint:errcheck

	sw, err := file.NewStreamWriter(sheetName)
	if err != nil {
		return "", fmt.Errorf("creating stream writer: %w", err)
	}

	header := make([]interface{}, len(sheet.Columns))
	for i, name := range sheet.Columns {
		header[i] = name
	}
	if err := sw.SetRow("A1", header); err != nil {
		return "", fmt.Errorf("writing header row: %w", err)
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("computing cell name: %w", err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return "", fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return "", fmt.Errorf("flushing sheet: %w", err)
	}
	if err := file.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}

	return path, nil
}
