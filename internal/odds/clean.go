package odds

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Cleaning patterns, mirroring the odds site's cell formats.
var (
	// Leading kickoff time and timezone abbreviation, e.g. "8:20PMEST ".
	timePrefixPattern = regexp.MustCompile(`^\d{1,2}:\d{2}[AP]M\w{2,3}\s*`)

	// First signed decimal number, e.g. "-3.5" in "-3.5 (-110)".
	signedNumberPattern = regexp.MustCompile(`[-+]?\d+(\.\d+)?`)

	// First unsigned decimal number, e.g. "47.5" in "47.5u".
	unsignedNumberPattern = regexp.MustCompile(`\d+(\.\d+)?`)
)

// ErrMissingColumn is returned when a parsed page lacks one of the
// canonical odds columns.
var ErrMissingColumn = errors.New("missing column")

// Normalize cleans cell text and coerces the odds columns to numbers.
// All canonical columns must be present. A Spread, Total, or Moneyline cell
// that is still not numeric after cleaning fails the whole table; there is
// no partial result.
func (t *Table) Normalize() (*Sheet, error) {
	indexes := make(map[string]int, len(t.Columns))
	for i, name := range t.Columns {
		if _, ok := indexes[name]; !ok {
			indexes[name] = i
		}
	}
	for _, name := range []string{ColMatchup, ColSpread, ColTotal, ColMoneyline} {
		if _, ok := indexes[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	cleaners := map[int]func(string) string{
		indexes[ColMatchup]:   stripTimePrefix,
		indexes[ColSpread]:    firstSignedNumber,
		indexes[ColTotal]:     firstUnsignedNumber,
		indexes[ColMoneyline]: normalizeMinus,
	}
	numeric := map[int]string{
		indexes[ColSpread]:    ColSpread,
		indexes[ColTotal]:     ColTotal,
		indexes[ColMoneyline]: ColMoneyline,
	}

	sheet := &Sheet{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]interface{}, len(t.Rows)),
	}

	for ri, row := range t.Rows {
		out := make([]interface{}, len(row))
		for ci, cell := range row {
			if clean, ok := cleaners[ci]; ok {
				cell = clean(cell)
			}
			name, isNumeric := numeric[ci]
			if !isNumeric {
				out[ci] = cell
				continue
			}
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%s value %q in row %d is not numeric", name, cell, ri+1)
			}
			out[ci] = value
		}
		sheet.Rows[ri] = out
	}

	return sheet, nil
}

// stripTimePrefix removes one leading kickoff-time prefix from a matchup,
// "8:20PMEST Chiefs at Jaguars" becoming "Chiefs at Jaguars". Values with
// no prefix pass through unchanged, so cleaning is idempotent.
func stripTimePrefix(s string) string {
	return timePrefixPattern.ReplaceAllString(s, "")
}

// firstSignedNumber extracts the first signed decimal substring. Text with
// no number in it passes through unchanged and fails coercion later.
func firstSignedNumber(s string) string {
	if match := signedNumberPattern.FindString(s); match != "" {
		return match
	}
	return s
}

// firstUnsignedNumber extracts the first unsigned decimal substring, with
// the same fallback as firstSignedNumber.
func firstUnsignedNumber(s string) string {
	if match := unsignedNumberPattern.FindString(s); match != "" {
		return match
	}
	return s
}

// normalizeMinus replaces the typographic minus sign (U+2212) with ASCII
// hyphen-minus so negative moneylines parse as numbers.
func normalizeMinus(s string) string {
	return strings.ReplaceAll(s, "−", "-")
}
