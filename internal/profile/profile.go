// Package profile describes each supported bank export: where its columns
// live and how they map onto a ledger record.
package profile

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bankconv/bankconv/internal/money"
	"github.com/bankconv/bankconv/internal/statement"
)

// NotePart is one segment of the notes column.
type NotePart struct {
	Field    string
	Label    string // prefix, e.g. "Ref: "
	Numeric  bool   // clean with the profile locale before rendering
	OmitZero bool   // drop the segment when the cleaned value is zero
}

// Profile is the complete description of one bank's statement export.
type Profile struct {
	Key    string // command and config key, lower case
	Name   string // display name, used for the default account name
	Layout statement.Layout
	Locale money.Locale

	DateField   string
	DayFirst    bool
	AmountField string
	PayeeFields []string // joined with " - "
	Notes       []NotePart

	OutputDirRequired bool
	DatedOutput       bool   // append _YYYY-MM-DD to the output name
	OutputName        string // default base name of the output file
}

// Validate checks that a profile is usable before it is registered.
func (p Profile) Validate() error {
	var errs []error
	if p.Key == "" {
		errs = append(errs, errors.New("key is required"))
	}
	if p.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if len(p.Layout.Extensions) == 0 {
		errs = append(errs, errors.New("at least one file extension is required"))
	}
	if p.OutputName == "" {
		errs = append(errs, errors.New("output name is required"))
	}
	if p.Layout.HeaderRow < 0 {
		errs = append(errs, fmt.Errorf("header row %d must not be negative", p.Layout.HeaderRow))
	}

	known := p.fieldNames()
	if p.Layout.Kind == statement.Delimited && len(p.Layout.Fields) == 0 {
		errs = append(errs, errors.New("delimited layout needs fields"))
	}
	if p.Layout.Kind == statement.Spreadsheet && len(p.Layout.Columns) == 0 {
		errs = append(errs, errors.New("spreadsheet layout needs columns"))
	}
	for _, name := range []string{p.DateField, p.AmountField} {
		if !slices.Contains(known, name) {
			errs = append(errs, fmt.Errorf("field %q is not defined by the layout", name))
		}
	}
	for _, name := range p.PayeeFields {
		if !slices.Contains(known, name) {
			errs = append(errs, fmt.Errorf("payee field %q is not defined by the layout", name))
		}
	}
	for _, n := range p.Notes {
		if !slices.Contains(known, n.Field) {
			errs = append(errs, fmt.Errorf("notes field %q is not defined by the layout", n.Field))
		}
	}
	if p.Layout.Kind == statement.Delimited {
		for _, f := range p.Layout.Fields {
			if (f.Name == p.DateField || f.Name == p.AmountField) && !f.Required {
				errs = append(errs, fmt.Errorf("field %q must be required", f.Name))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("profile %q: %w", p.Key, errors.Join(errs...))
	}
	return nil
}

func (p Profile) fieldNames() []string {
	if p.Layout.Kind == statement.Spreadsheet {
		return p.Layout.Columns
	}
	names := make([]string, len(p.Layout.Fields))
	for i, f := range p.Layout.Fields {
		names[i] = f.Name
	}
	return names
}
