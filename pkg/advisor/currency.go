package advisor

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders an amount with Indian digit grouping and no fraction,
// e.g. 1500000 -> "15,00,000". The rupee sign is left to the caller.
func FormatINR(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	negative := rounded.IsNegative()
	digits := rounded.Abs().String()

	var grouped string
	if len(digits) <= 3 {
		grouped = digits
	} else {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		grouped = strings.Join(parts, ",") + "," + tail
	}

	if negative {
		return "-" + grouped
	}
	return grouped
}

// Rupees is FormatINR with the ₹ prefix.
func Rupees(amount decimal.Decimal) string {
	return "₹" + FormatINR(amount)
}
