package profile

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/bankconv/bankconv/internal/money"
	"github.com/bankconv/bankconv/internal/statement"
)

// File is the on-disk form of a set of custom bank profiles.
type File struct {
	Banks []BankConfig `yaml:"banks"`
}

// BankConfig is one bank in a profiles file.
type BankConfig struct {
	Key               string        `yaml:"key"`
	Name              string        `yaml:"name"`
	Source            string        `yaml:"source"` // "spreadsheet" or "delimited"
	Extensions        []string      `yaml:"extensions"`
	HeaderRow         int           `yaml:"header_row,omitempty"`
	Columns           []string      `yaml:"columns,omitempty"`
	Fields            []FieldConfig `yaml:"fields,omitempty"`
	Delimiter         string        `yaml:"delimiter,omitempty"`
	Locale            string        `yaml:"locale"` // "eu" or "us"
	DateField         string        `yaml:"date_field"`
	DayFirst          bool          `yaml:"day_first,omitempty"`
	AmountField       string        `yaml:"amount_field"`
	PayeeFields       []string      `yaml:"payee_fields,omitempty"`
	Notes             []NoteConfig  `yaml:"notes,omitempty"`
	OutputDirRequired bool          `yaml:"output_dir_required,omitempty"`
	DatedOutput       bool          `yaml:"dated_output,omitempty"`
	OutputName        string        `yaml:"output_name"`
}

// FieldConfig is a canonical field and its header aliases.
type FieldConfig struct {
	Name     string   `yaml:"name"`
	Aliases  []string `yaml:"aliases"`
	Required bool     `yaml:"required,omitempty"`
}

// NoteConfig is one notes segment.
type NoteConfig struct {
	Field    string `yaml:"field"`
	Label    string `yaml:"label,omitempty"`
	Numeric  bool   `yaml:"numeric,omitempty"`
	OmitZero bool   `yaml:"omit_zero,omitempty"`
}

// LoadFile reads and validates the profiles in a YAML file.
func LoadFile(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profiles: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}

	profiles := make([]Profile, 0, len(f.Banks))
	for i, bc := range f.Banks {
		p, err := bc.Profile()
		if err != nil {
			return nil, fmt.Errorf("bank %d: %w", i+1, err)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// SaveFile writes profiles as YAML, e.g. as a starting point for a custom bank.
func SaveFile(path string, profiles []Profile) error {
	f := File{Banks: make([]BankConfig, len(profiles))}
	for i, p := range profiles {
		f.Banks[i] = NewBankConfig(p)
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling profiles: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing profiles: %w", err)
	}
	return nil
}

// Profile converts the YAML form into a Profile.
func (bc BankConfig) Profile() (Profile, error) {
	p := Profile{
		Key:               strings.ToLower(bc.Key),
		Name:              bc.Name,
		DateField:         bc.DateField,
		DayFirst:          bc.DayFirst,
		AmountField:       bc.AmountField,
		PayeeFields:       bc.PayeeFields,
		OutputDirRequired: bc.OutputDirRequired,
		DatedOutput:       bc.DatedOutput,
		OutputName:        bc.OutputName,
	}

	switch strings.ToLower(bc.Source) {
	case "spreadsheet":
		p.Layout.Kind = statement.Spreadsheet
	case "delimited", "csv":
		p.Layout.Kind = statement.Delimited
	default:
		return Profile{}, fmt.Errorf("unknown source %q (want spreadsheet or delimited)", bc.Source)
	}

	loc, err := money.ParseLocale(bc.Locale)
	if err != nil {
		return Profile{}, err
	}
	p.Locale = loc

	p.Layout.HeaderRow = bc.HeaderRow
	p.Layout.Columns = bc.Columns
	for _, ext := range bc.Extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		p.Layout.Extensions = append(p.Layout.Extensions, ext)
	}
	for _, fc := range bc.Fields {
		p.Layout.Fields = append(p.Layout.Fields, statement.Field{Name: fc.Name, Aliases: fc.Aliases, Required: fc.Required})
	}
	if bc.Delimiter != "" {
		r, size := utf8.DecodeRuneInString(bc.Delimiter)
		if size != len(bc.Delimiter) {
			return Profile{}, fmt.Errorf("delimiter %q must be a single character", bc.Delimiter)
		}
		p.Layout.Comma = r
	}
	for _, nc := range bc.Notes {
		p.Notes = append(p.Notes, NotePart(nc))
	}
	return p, nil
}

// NewBankConfig converts a Profile to its YAML form.
func NewBankConfig(p Profile) BankConfig {
	bc := BankConfig{
		Key:               p.Key,
		Name:              p.Name,
		Source:            p.Layout.Kind.String(),
		Extensions:        p.Layout.Extensions,
		HeaderRow:         p.Layout.HeaderRow,
		Columns:           p.Layout.Columns,
		Locale:            p.Locale.String(),
		DateField:         p.DateField,
		DayFirst:          p.DayFirst,
		AmountField:       p.AmountField,
		PayeeFields:       p.PayeeFields,
		OutputDirRequired: p.OutputDirRequired,
		DatedOutput:       p.DatedOutput,
		OutputName:        p.OutputName,
	}
	if p.Layout.Comma != 0 {
		bc.Delimiter = string(p.Layout.Comma)
	}
	for _, f := range p.Layout.Fields {
		bc.Fields = append(bc.Fields, FieldConfig{Name: f.Name, Aliases: f.Aliases, Required: f.Required})
	}
	for _, n := range p.Notes {
		bc.Notes = append(bc.Notes, NoteConfig(n))
	}
	return bc
}
