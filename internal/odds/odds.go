package odds

import "io"

// Canonical column names an odds page must carry once the leading column
// has been renamed to Matchup.
const (
	ColMatchup   = "Matchup"
	ColSpread    = "Spread"
	ColTotal     = "Total"
	ColMoneyline = "Moneyline"
)

// Table is the merged grid of every odds table on one week's page.
// Cells hold raw text; rows preserve page order.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Sheet is a normalized table ready for spreadsheet export. Spread, Total,
// and Moneyline cells are float64; every other cell stays a string.
type Sheet struct {
	Columns []string
	Rows    [][]interface{}
}

// Extract parses an odds page and returns its normalized sheet. It is the
// one-shot used per week: ParseTables followed by Normalize.
func Extract(r io.Reader) (*Sheet, error) {
	table, err := ParseTables(r)
	if err != nil {
		return nil, err
	}
	return table.Normalize()
}
