package statement

import (
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/extrame/xls"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/bankconv/bankconv/internal/model"
)

// ReadXLSX parses the first sheet of an Office Open XML workbook. Numeric
// cells stay numeric so they are never run through text separator rules.
func ReadXLSX(r io.Reader, layout Layout) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("no sheets found in Excel file")
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading Excel rows: %w", err)
	}

	grid := make([][]model.Value, len(rows))
	for i, row := range rows {
		values := make([]model.Value, len(row))
		for j, raw := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			typ, err := f.GetCellType(sheet, cell)
			if err != nil {
				return nil, fmt.Errorf("reading cell %s: %w", cell, err)
			}
			values[j] = xlsxValue(raw, typ)
		}
		grid[i] = values
	}
	return buildTable(grid, layout)
}

func xlsxValue(raw string, typ excelize.CellType) model.Value {
	if strings.TrimSpace(raw) == "" {
		return model.Value{}
	}
	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if d, ok := parseNumber(raw); ok {
			return model.Number(d)
		}
	case excelize.CellTypeDate:
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return model.Time(t)
			}
		}
	}
	return model.Text(raw)
}

// parseNumber reads a stored spreadsheet number. Workbooks keep doubles at
// 17 significant digits (-45.299999999999997), so the value goes through
// float64 to get back the shortest form the cell displays.
func parseNumber(raw string) (decimal.Decimal, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}

// xlsNumber matches how the legacy reader prints numeric cells.
var xlsNumber = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][-+]?\d+)?$`)

// ReadXLS parses the first sheet of a legacy BIFF workbook. The reader only
// exposes display strings, so plain machine-formatted numbers are taken as
// numeric cells and everything else as text.
func ReadXLS(r io.ReadSeeker, layout Layout) (*Table, error) {
	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening XLS file: %w", err)
	}
	if wb == nil || wb.NumSheets() == 0 {
		return nil, errors.New("no sheets found in XLS file")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("could not get first sheet")
	}

	// ReadAllCells walks sheets in order and stops once max rows are
	// collected, so limiting it to the first sheet's rows reads only that
	// sheet. Rows the file does not store come back nil.
	cells := wb.ReadAllCells(int(sheet.MaxRow) + 1)

	grid := make([][]model.Value, len(cells))
	for i, row := range cells {
		values := make([]model.Value, len(row))
		for j, s := range row {
			values[j] = xlsValue(s)
		}
		grid[i] = values
	}
	return buildTable(grid, layout)
}

func xlsValue(s string) model.Value {
	s = strings.TrimSpace(s)
	if xlsNumber.MatchString(s) {
		if d, ok := parseNumber(s); ok {
			return model.Number(d)
		}
	}
	return model.Text(s)
}
