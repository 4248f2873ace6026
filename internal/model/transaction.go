package model

import "github.com/shopspring/decimal"

// TransactionType is the income/expense flag of a ledger record.
type TransactionType string

const (
	TypeExpense TransactionType = "e"
	TypeIncome  TransactionType = "i"
)

// Record is one row of the ledger import CSV.
type Record struct {
	Type           TransactionType
	Date           string // M/D/YYYY without padding, "" when the source date was unreadable
	Payee          string
	Amount         decimal.Decimal // unsigned; Type carries the sign
	ParentCategory string
	Category       string
	AccountType    string
	Account        string
	Notes          string
	Label          string
	Status         string
	Split          string
}
