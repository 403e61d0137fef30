// Package amount normalizes Brazilian-formatted monetary text into decimal
// values: "." is a thousands separator, "," the decimal separator.
package amount

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseBrazilian converts a raw numeric substring such as "1.234,56" or
// "45,90" into a decimal value. Extraction is best-effort, so malformed
// input reports ok=false instead of an error. The result is always the
// absolute value; sign markers in notification text are noise.
func ParseBrazilian(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Decimal{}, false
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d.Abs(), true
}
