package odds

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoTables is returned when a page contains no data tables.
var ErrNoTables = errors.New("no tables found on page")

// ParseTables extracts every <table> on the page into one merged Table.
// The first row of a table is its header and the first column is renamed
// Matchup. Tables after the first must repeat the same header; their rows
// are appended in page order. Rows are padded or truncated to the header
// width.
func ParseTables(r io.Reader) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	merged := &Table{}
	var tableErr error

	doc.Find("table").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		header, rows := parseGrid(sel)
		if header == nil {
			// A table without rows carries no data
			return true
		}
		header[0] = ColMatchup

		if merged.Columns == nil {
			merged.Columns = header
		} else if !columnsEqual(header, merged.Columns) {
			tableErr = fmt.Errorf("table %d columns %v do not match %v", i+1, header, merged.Columns)
			return false
		}

		for _, row := range rows {
			merged.Rows = append(merged.Rows, fitRow(row, len(merged.Columns)))
		}
		return true
	})

	if tableErr != nil {
		return nil, tableErr
	}
	if merged.Columns == nil {
		return nil, ErrNoTables
	}
	return merged, nil
}

// parseGrid reads a table element as a header row plus data rows of
// condensed cell text.
func parseGrid(table *goquery.Selection) ([]string, [][]string) {
	var header []string
	var rows [][]string

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, condense(cell.Text()))
		})
		if len(cells) == 0 {
			return
		}
		if header == nil {
			header = cells
			return
		}
		rows = append(rows, cells)
	})

	return header, rows
}

// condense collapses whitespace runs to single spaces and trims the ends.
func condense(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// fitRow pads or truncates a row to the header width.
func fitRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	fitted := make([]string, width)
	copy(fitted, row)
	return fitted
}

func columnsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
