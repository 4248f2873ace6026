package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func runBankconv(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Execute(args, &stdout, &stderr)
	return stdout.String(), err
}

func writeIbercaja(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{
		{"Consulta de movimientos"},
		{"Cuenta", "ES00 2085 0000 0000 0000 0000"},
		{},
		{"Periodo", "01/01/2026 - 31/01/2026"},
		{"Nº Orden", "Fecha Oper", "Fecha Valor", "Concepto", "Descripción", "Referencia", "Importe", "Saldo"},
		{1, "05/01/2026", "05/01/2026", "COMPRA TARJETA", "MERCADONA", "REF001", "-45,30€", "1.200,00"},
		{2, "13/01/2026", "13/01/2026", "NOMINA", "ACME SL", "REF002", 1500.5, 2700.5},
		{},
		{"", "", "", "Saldo final", "", "", "", ""},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestIbercaja_WritesNextToInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "movimientos.xlsx")
	env := filepath.Join(dir, ".env")
	writeIbercaja(t, input)

	out, err := runBankconv(t, "--env", env, "ibercaja", input)
	require.NoError(t, err)

	outPath := filepath.Join(dir, "ibercaja_bluecoins.csv")
	assert.Contains(t, out, "CSV generated correctly: "+outPath)
	assert.Contains(t, out, "Total transactions: 2")

	lines := strings.Split(strings.TrimSpace(readFile(t, outPath)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "e,1/5/2026,COMPRA TARJETA - MERCADONA,45.3,,,Bank,Ibercaja Account,Ref: REF001 | Balance: 1200,,,", lines[1])
	assert.Equal(t, "i,1/13/2026,NOMINA - ACME SL,1500.5,,,Bank,Ibercaja Account,Ref: REF002 | Balance: 2700.5,,,", lines[2])

	assert.Contains(t, readFile(t, env), "ACCOUNT_NAME_IBERCAJA=")
}

func TestIbercaja_UsesConfiguredAccount(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "movimientos.xlsx")
	env := filepath.Join(dir, ".env")
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))
	require.NoError(t, os.WriteFile(env, []byte("ACCOUNT_NAME_IBERCAJA=\"Nómina\"\nACCOUNT_TYPE_IBERCAJA=Cash\n"), 0o644))
	writeIbercaja(t, input)

	_, err := runBankconv(t, "--env", env, "ibercaja", input, outDir)
	require.NoError(t, err)

	csv := readFile(t, filepath.Join(outDir, "ibercaja_bluecoins.csv"))
	assert.Contains(t, csv, ",Cash,Nómina,")
}

func TestIbercaja_RejectsWrongExtension(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "movimientos.txt")
	require.NoError(t, os.WriteFile(input, []byte("x"), 0o644))

	env := filepath.Join(dir, ".env")

	_, err := runBankconv(t, "--env", env, "ibercaja", input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid Excel")
	assert.NoFileExists(t, filepath.Join(dir, "ibercaja_bluecoins.csv"))
	assert.NoFileExists(t, env)

	_, err = runBankconv(t, "--env", env, "ibercaja", filepath.Join(dir, "missing.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "the file does not exist")
	assert.NoFileExists(t, env)
}

func TestIbercaja_LegacyWorkbook(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join("..", "..", "testdata", "ibercaja.xls")

	out, err := runBankconv(t, "--env", filepath.Join(dir, ".env"), "ibercaja", input, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Total transactions: 2")

	lines := strings.Split(strings.TrimSpace(readFile(t, filepath.Join(dir, "ibercaja_bluecoins.csv"))), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "e,1/5/2026,COMPRA TARJETA - MERCADONA,45.3,,,Bank,Ibercaja Account,Ref: REF001 | Balance: 1200,,,", lines[1])
	assert.Equal(t, "i,1/13/2026,NOMINA - ACME SL,1500.5,,,Bank,Ibercaja Account,Ref: REF002 | Balance: 2700.5,,,", lines[2])
}

func TestRevolut_DatedOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join("..", "..", "testdata", "revolut_en.csv")

	out, err := runBankconv(t, "--env", filepath.Join(dir, ".env"), "revolut", input, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Total transactions: 3")

	// The date is taken when the command runs; tolerate a midnight rollover.
	today := filepath.Join(dir, "revolut_bluecoins_"+time.Now().Format("2006-01-02")+".csv")
	if _, err := os.Stat(today); err != nil {
		matches, _ := filepath.Glob(filepath.Join(dir, "revolut_bluecoins_*.csv"))
		require.Len(t, matches, 1)
		today = matches[0]
	}
	assert.Contains(t, readFile(t, today), "e,1/5/2026,CARD_PAYMENT - Mercadona,23.4,,,Bank,Revolut Account,")
}

func TestRevolut_RequiresOutputDir(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join("..", "..", "testdata", "revolut_es.csv")

	_, err := runBankconv(t, "--env", filepath.Join(dir, ".env"), "revolut", input)
	require.Error(t, err)
	assert.Equal(t, "usage: bankconv revolut <input> <output_dir>", err.Error())
}

func TestRevolut_MissingColumns(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "revolut.csv")
	require.NoError(t, os.WriteFile(input, []byte("Type,Description\nTOPUP,x\n"), 0o644))

	_, err := runBankconv(t, "--env", filepath.Join(dir, ".env"), "revolut", input, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not find essential columns")
	assert.Contains(t, err.Error(), "Type, Description")
}

func TestConvert_ByBankFlag(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join("..", "..", "testdata", "revolut_es.csv")

	out, err := runBankconv(t, "--env", filepath.Join(dir, ".env"), "convert", "--bank", "Revolut", input, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Total transactions: 3")

	_, err = runBankconv(t, "--env", filepath.Join(dir, ".env"), "convert", "--bank", "chase", input, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown bank "chase"`)
}

func TestBanks_ListAndExport(t *testing.T) {
	out, err := runBankconv(t, "banks")
	require.NoError(t, err)
	assert.Contains(t, out, "ibercaja")
	assert.Contains(t, out, "revolut")
	assert.Contains(t, out, ".xlsx,.xls")

	path := filepath.Join(t.TempDir(), "banks.yaml")
	_, err = runBankconv(t, "banks", "--export", path)
	require.NoError(t, err)
	assert.Contains(t, readFile(t, path), "key: ibercaja")
}

const n26Profiles = `banks:
  - key: n26
    name: N26
    source: delimited
    extensions: [.csv]
    delimiter: ";"
    fields:
      - name: date
        aliases: [Booking Date]
        required: true
      - name: payee
        aliases: [Partner Name]
      - name: amount
        aliases: [Amount (EUR)]
        required: true
    locale: us
    date_field: date
    amount_field: amount
    payee_fields: [payee]
    output_name: n26_bluecoins.csv
`

func TestCustomProfile(t *testing.T) {
	dir := t.TempDir()
	profiles := filepath.Join(dir, "banks.yaml")
	require.NoError(t, os.WriteFile(profiles, []byte(n26Profiles), 0o644))
	input := filepath.Join(dir, "n26.csv")
	require.NoError(t, os.WriteFile(input, []byte("Booking Date;Partner Name;Amount (EUR)\n2026-02-03;Lidl;-12.5\n"), 0o644))

	out, err := runBankconv(t, "--profiles", profiles, "--env", filepath.Join(dir, ".env"), "n26", input)
	require.NoError(t, err)
	assert.Contains(t, out, "Total transactions: 1")
	assert.Contains(t, readFile(t, filepath.Join(dir, "n26_bluecoins.csv")), "e,2/3/2026,Lidl,12.5,,,Bank,N26 Account,,,,")
}

func TestCustomProfile_DuplicateKey(t *testing.T) {
	profiles := filepath.Join(t.TempDir(), "banks.yaml")
	require.NoError(t, os.WriteFile(profiles, []byte(strings.Replace(n26Profiles, "key: n26", "key: revolut", 1)), 0o644))

	_, err := runBankconv(t, "--profiles="+profiles, "banks")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `bank "revolut" is already defined`)
}

func TestAccount_SetAndShow(t *testing.T) {
	env := filepath.Join(t.TempDir(), ".env")

	out, err := runBankconv(t, "--env", env, "account", "revolut")
	require.NoError(t, err)
	assert.Equal(t, "Revolut: Revolut Account (Bank)\n", out)

	out, err = runBankconv(t, "--env", env, "account", "revolut", "--name", "Revolut EUR", "--type", "Credit Card")
	require.NoError(t, err)
	assert.Equal(t, "Revolut: Revolut EUR (Credit Card)\n", out)
	assert.Contains(t, readFile(t, env), "ACCOUNT_TYPE_REVOLUT=")
}

func TestScanProfilesFlag(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"banks"}, ""},
		{[]string{"--profiles", "a.yaml", "banks"}, "a.yaml"},
		{[]string{"banks", "--profiles=b.yaml"}, "b.yaml"},
		{[]string{"--profiles"}, ""},
		{[]string{"--", "--profiles", "c.yaml"}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scanProfilesFlag(tt.args), "%v", tt.args)
	}
}
