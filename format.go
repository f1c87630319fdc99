package gauge

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatValue formats a gauge value for display with locale-aware grouping
// and decimal separators. decimals < 0 keeps up to six significant fraction
// digits. An unknown language tag falls back to English.
func FormatValue(value float64, decimals int, lang string) string {
	if math.IsNaN(value) {
		return "-"
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}

	opts := []number.Option{number.MaxFractionDigits(6)}
	if decimals >= 0 {
		opts = []number.Option{number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)}
	}
	return message.NewPrinter(tag).Sprintf("%v", number.Decimal(value, opts...))
}
