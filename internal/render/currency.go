package render

import (
	"fmt"
	"strconv"
)

// FormatCents renders an amount in cents as a signed, comma-grouped
// dollar string: 1234567 -> "$12,345.67", -300000 -> "-$3,000.00".
//
// Negative amounts carry a leading minus immediately before the dollar
// sign, never accountant's parentheses. The PDF form filler uses the
// parenthesized convention; the two renderings are intentionally not
// interchangeable.
func FormatCents(amountCents int64) string {
	sign := ""
	if amountCents < 0 {
		sign = "-"
		amountCents = -amountCents
	}

	dollars := groupThousands(amountCents / 100)
	return fmt.Sprintf("%s$%s.%02d", sign, dollars, amountCents%100)
}

// groupThousands renders a non-negative integer with comma separators.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	// Walk from the right, inserting a comma every three digits.
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
