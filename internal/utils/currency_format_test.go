package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/katysh-aa/family-budget/internal/utils"
)

func TestFormatRubles(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1 000"},
		{"1234567.8", "1 234 568"},
		{"-45000", "-45 000"},
		{"500000", "500 000"},
	}
	for _, tt := range tests {
		got := utils.FormatRubles(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got, "input %s", tt.in)
	}
}

func TestFormatShort(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12340", "12.3k"},
		{"1000", "1k"},
		{"500", "0.5k"},
		{"0", "0k"},
	}
	for _, tt := range tests {
		got := utils.FormatShort(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got, "input %s", tt.in)
	}
}
