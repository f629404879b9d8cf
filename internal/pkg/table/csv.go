package table

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/shopspring/decimal"
)

// utf8BOM keeps Excel from mangling Korean headers when the download is
// opened directly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV renders the table as UTF-8 CSV with a byte-order mark.
func (t *Table) CSV() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(utf8BOM)

	w := csv.NewWriter(buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, c := range t.Columns {
			record[i] = cellString(row[c])
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case decimal.Decimal:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}
