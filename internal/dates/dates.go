// Package dates reads statement dates and renders them the way the ledger
// import expects.
package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/bankconv/bankconv/internal/model"
)

var isoLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05.999999999",
	"2006/01/02",
	"2006/01/02 15:04:05",
}

var dayFirstLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"2.1.2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02-01-2006 15:04:05",
	"02-01-2006 15:04",
	"02/01/06",
	"2/1/06",
	"02-01-06",
}

var monthFirstLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"01/02/06",
	"1/2/06",
}

// Parse reads a date cell. Text is tried against day-first layouts before
// ISO layouts when dayFirst is set, and ISO before month-first otherwise.
// Numbers are spreadsheet serial dates.
func Parse(v model.Value, dayFirst bool) (time.Time, bool) {
	switch v.Kind {
	case model.ValueTime:
		return v.Time, true
	case model.ValueNumber:
		return fromSerial(v.Number)
	case model.ValueText:
		return parseText(strings.TrimSpace(v.Text), dayFirst)
	default:
		return time.Time{}, false
	}
}

func parseText(s string, dayFirst bool) (time.Time, bool) {
	var layouts [][]string
	if dayFirst {
		layouts = [][]string{dayFirstLayouts, isoLayouts}
	} else {
		layouts = [][]string{isoLayouts, monthFirstLayouts}
	}
	for _, set := range layouts {
		for _, layout := range set {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func fromSerial(d decimal.Decimal) (time.Time, bool) {
	f, _ := d.Float64()
	if f <= 0 {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(f, false)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Format renders t as M/D/YYYY with no zero padding.
func Format(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// Canonical parses v and formats it, returning "" when v is not a date.
func Canonical(v model.Value, dayFirst bool) string {
	t, ok := Parse(v, dayFirst)
	if !ok {
		return ""
	}
	return Format(t)
}
