package profile

import (
	"github.com/bankconv/bankconv/internal/money"
	"github.com/bankconv/bankconv/internal/statement"
)

// Ibercaja exports movements as a workbook with four lines of account
// details above the header.
func Ibercaja() Profile {
	return Profile{
		Key:  "ibercaja",
		Name: "Ibercaja",
		Layout: statement.Layout{
			Kind:       statement.Spreadsheet,
			Extensions: []string{".xlsx", ".xls"},
			HeaderRow:  4,
			Columns: []string{
				"order",
				"oper_date",
				"value_date",
				"concept",
				"description",
				"reference",
				"amount",
				"balance",
			},
		},
		Locale:      money.LocaleA,
		DateField:   "oper_date",
		DayFirst:    true,
		AmountField: "amount",
		PayeeFields: []string{"concept", "description"},
		Notes: []NotePart{
			{Field: "reference", Label: "Ref: "},
			{Field: "balance", Label: "Balance: ", Numeric: true},
		},
		OutputName: "ibercaja_bluecoins.csv",
	}
}

// Revolut exports a CSV whose header language follows the app language.
func Revolut() Profile {
	return Profile{
		Key:  "revolut",
		Name: "Revolut",
		Layout: statement.Layout{
			Kind:       statement.Delimited,
			Extensions: []string{".csv"},
			Fields: []statement.Field{
				{Name: "tipo", Aliases: []string{"Tipo", "Type"}},
				{Name: "producto", Aliases: []string{"Producto", "Product"}},
				{Name: "fecha_inicio", Aliases: []string{"Fecha de inicio", "Started Date"}, Required: true},
				{Name: "fecha_fin", Aliases: []string{"Fecha de finalización", "Completed Date"}},
				{Name: "descripcion", Aliases: []string{"Descripción", "Description"}},
				{Name: "importe", Aliases: []string{"Importe", "Amount"}, Required: true},
				{Name: "comision", Aliases: []string{"Comisión", "Fee"}},
				{Name: "divisa", Aliases: []string{"Divisa", "Currency"}},
				{Name: "estado", Aliases: []string{"State", "Status"}},
				{Name: "saldo", Aliases: []string{"Saldo", "Balance"}},
			},
		},
		Locale:      money.LocaleB,
		DateField:   "fecha_inicio",
		AmountField: "importe",
		PayeeFields: []string{"tipo", "descripcion"},
		Notes: []NotePart{
			{Field: "producto", Label: "Producto: "},
			{Field: "comision", Label: "Comisión: ", Numeric: true, OmitZero: true},
			{Field: "saldo", Label: "Saldo: ", Numeric: true},
			{Field: "estado", Label: "Estado: "},
		},
		OutputDirRequired: true,
		DatedOutput:       true,
		OutputName:        "revolut_bluecoins",
	}
}
