// Package convert runs one statement-to-ledger conversion.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bankconv/bankconv/internal/config"
	"github.com/bankconv/bankconv/internal/ledger"
	"github.com/bankconv/bankconv/internal/profile"
	"github.com/bankconv/bankconv/internal/statement"
)

// ErrOutputDirRequired is returned when a bank needs an explicit output directory.
var ErrOutputDirRequired = errors.New("output directory is required")

// Reader loads a statement file into a table.
//
//go:generate mockgen -destination=mocks/mock_reader.go -source=convert.go Reader
type Reader interface {
	Read(path string, layout statement.Layout) (*statement.Table, error)
}

// Request describes a single conversion.
type Request struct {
	Profile    profile.Profile
	Account    config.Account
	Input      string
	OutputDir  string // "" means the input file's directory
	OutputName string // base name; "" means Profile.OutputName
}

// Result summarizes a finished conversion.
type Result struct {
	OutputPath string
	Stats      ledger.Stats
}

// Service converts statements.
type Service struct {
	reader Reader
	log    *log.Logger
	now    func() time.Time
}

// NewService creates a Service. A nil logger discards output.
func NewService(reader Reader, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{reader: reader, log: logger, now: time.Now}
}

// Run validates the input, builds the records and writes the output file.
// The output file is only created once every record has been built.
func (s *Service) Run(req Request) (*Result, error) {
	if err := Check(req); err != nil {
		return nil, err
	}
	p := req.Profile

	table, err := s.reader.Read(req.Input, p.Layout)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(req.Input), err)
	}
	s.log.Debug("statement read", "bank", p.Key, "rows", len(table.Rows), "columns", table.Columns)

	records, stats := ledger.NewNormalizer(p, req.Account, s.log).Normalize(table)
	if stats.Dropped > 0 {
		s.log.Debug("skipped rows without a valid amount", "count", stats.Dropped)
	}

	base := req.OutputName
	if base == "" {
		base = p.OutputName
	}
	out := OutputPath(p, req.Input, req.OutputDir, base, s.now())

	f, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("error saving CSV: %w", err)
	}
	if err := ledger.WriteRecords(f, records); err != nil {
		f.Close()
		return nil, fmt.Errorf("error saving CSV: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("error saving CSV: %w", err)
	}

	return &Result{OutputPath: out, Stats: stats}, nil
}

// Check validates the input path and output directory of req without
// reading the statement.
func Check(req Request) error {
	p := req.Profile
	if err := statement.Validate(req.Input, p.Layout); err != nil {
		return err
	}
	if p.OutputDirRequired && req.OutputDir == "" {
		return fmt.Errorf("%s: %w", p.Name, ErrOutputDirRequired)
	}
	return nil
}

// OutputPath picks where the CSV goes. Dated profiles get _YYYY-MM-DD
// appended so reruns on different days do not collide.
func OutputPath(p profile.Profile, input, outputDir, base string, now time.Time) string {
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}

	name := strings.TrimSuffix(base, ".csv")
	if p.DatedOutput {
		name = fmt.Sprintf("%s_%s", name, now.Format("2006-01-02"))
	}
	return filepath.Join(dir, name+".csv")
}
