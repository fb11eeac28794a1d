package money_test

import (
	"adbook/shared/money"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no rounding needed", input: "1000", expected: "1000.00"},
		{name: "half rounds up", input: "10.005", expected: "10.01"},
		{name: "rounds down", input: "10.004", expected: "10.00"},
		{name: "already two places", input: "83000.00", expected: "83000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := decimal.RequireFromString(tt.input)

			assert.Equal(t, tt.expected, money.Display(money.Round2(input)))
		})
	}
}

func TestFormat_IndianGrouping(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "below one thousand", input: "500", expected: "500.00"},
		{name: "thousands", input: "83000", expected: "83,000.00"},
		{name: "lakhs", input: "8300000", expected: "83,00,000.00"},
		{name: "crores", input: "123456789.5", expected: "12,34,56,789.50"},
		{name: "negative amount", input: "-15000", expected: "-15,000.00"},
		{name: "zero", input: "0", expected: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := decimal.RequireFromString(tt.input)

			assert.Equal(t, tt.expected, money.Format(input))
		})
	}
}
