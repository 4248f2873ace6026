// Package ledger builds ledger import records from statement rows and
// writes them in the import CSV format.
package ledger

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bankconv/bankconv/internal/config"
	"github.com/bankconv/bankconv/internal/dates"
	"github.com/bankconv/bankconv/internal/model"
	"github.com/bankconv/bankconv/internal/money"
	"github.com/bankconv/bankconv/internal/profile"
	"github.com/bankconv/bankconv/internal/statement"
)

const (
	payeeSeparator   = " - "
	notesSeparator   = " | "
	payeePlaceholder = "Transaction"
)

// Stats counts what happened to the rows of one statement.
type Stats struct {
	Read    int
	Written int
	Dropped int
}

// Normalizer maps statement rows onto ledger records for one bank and account.
type Normalizer struct {
	profile profile.Profile
	account config.Account
	log     *log.Logger
}

// NewNormalizer creates a Normalizer. A nil logger discards debug output.
func NewNormalizer(p profile.Profile, acct config.Account, logger *log.Logger) *Normalizer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Normalizer{profile: p, account: acct, log: logger}
}

// Normalize converts every row whose amount parses; other rows are headers,
// footers or summaries and are skipped.
func (n *Normalizer) Normalize(table *statement.Table) ([]model.Record, Stats) {
	stats := Stats{Read: len(table.Rows)}
	records := make([]model.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		rec, ok := n.record(row)
		if !ok {
			stats.Dropped++
			n.log.Debug("dropping row without amount", "line", row.Line, "amount", row.Get(n.profile.AmountField).String())
			continue
		}
		records = append(records, rec)
	}
	stats.Written = len(records)
	return records, stats
}

func (n *Normalizer) record(row model.Row) (model.Record, bool) {
	amount := money.Clean(row.Get(n.profile.AmountField), n.profile.Locale)
	if !amount.Valid {
		return model.Record{}, false
	}

	// Zero amounts count as income.
	typ := model.TypeIncome
	if amount.Decimal.IsNegative() {
		typ = model.TypeExpense
	}

	return model.Record{
		Type:        typ,
		Date:        dates.Canonical(row.Get(n.profile.DateField), n.profile.DayFirst),
		Payee:       n.payee(row),
		Amount:      amount.Decimal.Abs(),
		AccountType: n.account.Type,
		Account:     n.account.Name,
		Notes:       n.notes(row),
	}, true
}

func (n *Normalizer) payee(row model.Row) string {
	var parts []string
	for _, field := range n.profile.PayeeFields {
		if s := row.Get(field).String(); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return payeePlaceholder
	}
	return strings.Join(parts, payeeSeparator)
}

func (n *Normalizer) notes(row model.Row) string {
	var parts []string
	for _, np := range n.profile.Notes {
		if s, ok := n.note(row.Get(np.Field), np); ok {
			parts = append(parts, np.Label+s)
		}
	}
	return strings.Join(parts, notesSeparator)
}

func (n *Normalizer) note(v model.Value, np profile.NotePart) (string, bool) {
	if !np.Numeric {
		s := v.String()
		return s, s != ""
	}
	d := money.Clean(v, n.profile.Locale)
	if !d.Valid || (np.OmitZero && d.Decimal.IsZero()) {
		return "", false
	}
	return money.Format(d.Decimal), true
}
