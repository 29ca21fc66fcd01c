package helpers

import (
	"fmt"
	"strconv"
	"time"
)

// FormatEURCents formats an amount in euro cents using German conventions,
// e.g. 123400 -> "1.234,00 €".
func FormatEURCents(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	euros := cents / 100
	remainder := cents % 100

	grouped := groupThousands(strconv.FormatInt(euros, 10))

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%s,%02d €", sign, grouped, remainder)
}

// FormatGermanDate formats a date the way German reminder letters write it,
// e.g. "07.03.2026".
func FormatGermanDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// groupThousands inserts '.' separators into a plain digit string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	// First group may be shorter than three digits.
	head := n % 3
	out := make([]byte, 0, n+n/3)
	if head > 0 {
		out = append(out, digits[:head]...)
	}
	for i := head; i < n; i += 3 {
		if len(out) > 0 {
			out = append(out, '.')
		}
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}
