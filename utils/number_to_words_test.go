package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	cases := []struct {
		num  int
		want string
	}{
		{0, ""},
		{7, "Seven"},
		{15, "Fifteen"},
		{40, "Forty"},
		{99, "Ninety Nine"},
		{100, "One Hundred"},
		{305, "Three Hundred Five"},
		{1000, "One Thousand"},
		{18300, "Eighteen Thousand Three Hundred"},
		{100000, "One Lakh"},
		{2550000, "Twenty Five Lakh Fifty Thousand"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NumberToWords(tc.num), "num=%d", tc.num)
	}
}

func TestNumberToCurrencyWords(t *testing.T) {
	assert.Equal(t, "Eighteen Thousand Three Hundred Rupees Only", NumberToCurrencyWords(18300))
	assert.Equal(t, "One Hundred Rupees and Fifty Paise Only", NumberToCurrencyWords(100.50))
	assert.Equal(t, "Fifty Paise Only", NumberToCurrencyWords(0.50))
	assert.Equal(t, "Zero Rupees Only", NumberToCurrencyWords(0))
}
