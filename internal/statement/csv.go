package statement

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/bankconv/bankconv/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadDelimited parses a delimited export. A leading UTF-8 BOM is dropped
// and every cell is text.
func ReadDelimited(r io.Reader, layout Layout) (*Table, error) {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(b, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if layout.Comma != 0 {
		cr.Comma = layout.Comma
	}

	var grid [][]model.Value
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		values := make([]model.Value, len(rec))
		for i, s := range rec {
			values[i] = model.Text(s)
		}
		grid = append(grid, values)
	}
	if len(grid) == 0 {
		return nil, errors.New("reading CSV header: file is empty")
	}
	return buildTable(grid, layout)
}
