// Package statement reads bank statement exports into rows keyed by
// canonical field name.
package statement

import "github.com/bankconv/bankconv/internal/model"

// Kind is the physical shape of a statement export.
type Kind int

const (
	// Spreadsheet sources are mapped to canonical names by position.
	Spreadsheet Kind = iota
	// Delimited sources are mapped by matching header names against aliases.
	Delimited
)

func (k Kind) String() string {
	if k == Delimited {
		return "delimited"
	}
	return "spreadsheet"
}

// Field is a canonical field and the source column names accepted for it,
// in lookup order.
type Field struct {
	Name     string
	Aliases  []string
	Required bool
}

// Layout describes where the data lives in a statement file.
type Layout struct {
	Kind       Kind
	Extensions []string // accepted file extensions, lower case with dot
	HeaderRow  int      // 0-based index of the header line; earlier lines are skipped

	Columns []string // Spreadsheet: canonical names, by position
	Fields  []Field  // Delimited: canonical names, by header alias
	Comma   rune     // separator for text sources, defaults to ','
}

// Table is a parsed statement.
type Table struct {
	Columns []string    // canonical names present in the table
	Source  []string    // header as found in the file
	Rows    []model.Row // source order
}
