package domain

import (
	"strconv"
	"strings"
)

// CurrencySymbol символ валюты цен на сайте
const CurrencySymbol = "₦"

// FormatPrice форматирует сумму с разделителями тысяч: 45500 -> "₦45,500"
func FormatPrice(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(CurrencySymbol)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}
