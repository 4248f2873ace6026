package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ValueKind says what a statement cell held when it was read.
type ValueKind int

const (
	ValueEmpty ValueKind = iota
	ValueText
	ValueNumber
	ValueTime
)

// Value is a single untyped statement cell. Delimited sources only produce
// text; spreadsheets may also produce numbers and timestamps.
type Value struct {
	Kind   ValueKind
	Text   string
	Number decimal.Decimal
	Time   time.Time
}

// Text returns a text Value. Blank strings become ValueEmpty.
func Text(s string) Value {
	if strings.TrimSpace(s) == "" {
		return Value{}
	}
	return Value{Kind: ValueText, Text: s}
}

// Number returns a numeric Value.
func Number(d decimal.Decimal) Value {
	return Value{Kind: ValueNumber, Number: d}
}

// Time returns a timestamp Value.
func Time(t time.Time) Value {
	return Value{Kind: ValueTime, Time: t}
}

// IsEmpty reports whether the cell was missing or blank.
func (v Value) IsEmpty() bool { return v.Kind == ValueEmpty }

// String renders the cell as it should appear in free text.
func (v Value) String() string {
	switch v.Kind {
	case ValueText:
		return strings.TrimSpace(v.Text)
	case ValueNumber:
		return v.Number.String()
	case ValueTime:
		return v.Time.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// Row is one statement line keyed by canonical field name.
type Row struct {
	Line   int // 1-based line (or sheet row) in the source file
	Values map[string]Value
}

// Get returns the value for field, or an empty Value when the field is absent.
func (r Row) Get(field string) Value {
	return r.Values[field]
}

// Blank reports whether every cell in the row is empty.
func (r Row) Blank() bool {
	for _, v := range r.Values {
		if !v.IsEmpty() {
			return false
		}
	}
	return true
}
