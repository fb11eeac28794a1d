package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds an amount to 2 decimal places, half up.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// Display renders an amount with exactly 2 decimal places, no grouping.
func Display(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// Format renders an amount with 2 decimal places and Indian digit grouping
// (last three digits, then groups of two): 8300000 -> "83,00,000.00".
func Format(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	grouped := groupIndian(intPart)
	if negative {
		grouped = "-" + grouped
	}

	return grouped + "." + fracPart
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	groups := []string{}
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}

	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}
