package statement

import (
	"fmt"
	"strings"

	"github.com/bankconv/bankconv/internal/model"
)

// buildTable turns a grid of cells into canonical rows. The header sits at
// layout.HeaderRow; spreadsheet layouts name cells by position and delimited
// layouts resolve header names through aliases.
func buildTable(grid [][]model.Value, layout Layout) (*Table, error) {
	if layout.HeaderRow < 0 {
		return nil, fmt.Errorf("invalid header row %d", layout.HeaderRow)
	}
	if layout.HeaderRow >= len(grid) {
		return nil, fmt.Errorf("header row %d not found: file has %d rows", layout.HeaderRow+1, len(grid))
	}

	header := make([]string, len(grid[layout.HeaderRow]))
	for i, v := range grid[layout.HeaderRow] {
		header[i] = strings.TrimSpace(v.String())
	}

	var (
		names   []string
		indexOf map[string]int
	)
	switch layout.Kind {
	case Delimited:
		cols, err := Resolve(header, layout.Fields)
		if err != nil {
			return nil, err
		}
		names, indexOf = resolvedNames(layout.Fields, cols), cols
	default:
		width := 0
		for _, row := range grid[layout.HeaderRow:] {
			width = max(width, len(row))
		}
		if width < len(layout.Columns) {
			return nil, fmt.Errorf("expected %d columns, found %d", len(layout.Columns), width)
		}
		indexOf = make(map[string]int, len(layout.Columns))
		for i, name := range layout.Columns {
			indexOf[name] = i
		}
		names = layout.Columns
	}

	table := &Table{Columns: names, Source: header}
	for i := layout.HeaderRow + 1; i < len(grid); i++ {
		cells := grid[i]
		row := model.Row{Line: i + 1, Values: make(map[string]model.Value, len(names))}
		for _, name := range names {
			if idx := indexOf[name]; idx < len(cells) {
				row.Values[name] = cells[idx]
			}
		}
		if row.Blank() {
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// resolvedNames lists the resolved canonical names in layout order.
func resolvedNames(fields []Field, cols map[string]int) []string {
	var names []string
	for _, f := range fields {
		if _, ok := cols[f.Name]; ok {
			names = append(names, f.Name)
		}
	}
	return names
}
