package shop

import (
	"strconv"
	"strings"
	"time"
)

// FormatPrice renders an amount in VND the way the shop prints it:
// dot-grouped digits followed by the currency sign, e.g. "15.000 ₫".
func FormatPrice(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + groupDigits(strconv.FormatInt(amount, 10)) + " ₫"
}

// FormatDateTime renders a timestamp in the dd/MM/yyyy HH:mm form used on
// receipts and the order list.
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// FormatInputNumber strips non-digits from raw operator input and regroups
// what remains, so "12a3.45" becomes "12.345". Empty input stays empty.
func FormatInputNumber(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimLeft(b.String(), "0")
	if digits == "" {
		if b.Len() > 0 {
			return "0"
		}
		return ""
	}
	return groupDigits(digits)
}

func groupDigits(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
