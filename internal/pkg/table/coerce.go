package table

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeDate rewrites 8-digit provider dates (YYYYMMDD) to the
// hyphenated YYYY-MM-DD form. Anything else passes through unchanged.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) != 8 {
		return s
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return s
		}
	}
	return s[:4] + "-" + s[4:6] + "-" + s[6:]
}

// CoerceDate is the cell-valued variant of NormalizeDate. nil stays nil.
func CoerceDate(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return NormalizeDate(s)
}

// ParseNumber parses a provider numeric string, tolerating thousands
// separators and surrounding whitespace.
func ParseNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || s == "-" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// CoerceNumber converts a string cell to a decimal cell. Unparsable
// values become the missing marker rather than failing the row.
func CoerceNumber(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if d, ok := ParseNumber(s); ok {
		return d
	}
	return nil
}
