package ledger

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bankconv/bankconv/internal/model"
	"github.com/bankconv/bankconv/internal/money"
)

// Header holds the column labels the ledger importer expects, verbatim.
var Header = []string{
	"(1)Type",
	"(2)Date",
	"(3)Item or Payee",
	"(4)Amount",
	"(5)Parent Category",
	"(6)Category",
	"(7)Account Type",
	"(8)Account",
	"(9)Notes",
	"(10) Label",
	"(11) Status",
	"(12) Split",
}

const (
	numFields      = 12
	colType        = 0
	colDate        = 1
	colPayee       = 2
	colAmount      = 3
	colParentCat   = 4
	colCategory    = 5
	colAccountType = 6
	colAccount     = 7
	colNotes       = 8
	colLabel       = 9
	colStatus      = 10
	colSplit       = 11
)

// WriteRecords writes the header and one line per record.
func WriteRecords(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRecord converts a Record to a CSV row.
func MarshalRecord(rec model.Record) []string {
	row := make([]string, numFields)
	row[colType] = string(rec.Type)
	row[colDate] = rec.Date
	row[colPayee] = rec.Payee
	row[colAmount] = money.Format(rec.Amount)
	row[colParentCat] = rec.ParentCategory
	row[colCategory] = rec.Category
	row[colAccountType] = rec.AccountType
	row[colAccount] = rec.Account
	row[colNotes] = rec.Notes
	row[colLabel] = rec.Label
	row[colStatus] = rec.Status
	row[colSplit] = rec.Split
	return row
}
