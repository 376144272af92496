package helpers

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	indianTag = language.MustParse("en-IN")
	// lakh/crore grouping: 3 digits, then groups of 2
	indianGrouping = number.PatternOverrides(map[string]string{"en-IN": "#,##,##0.###"})
	indianPrinter  = message.NewPrinter(indianTag)
)

// FormatNumber renders num with Indian digit grouping, e.g. 1234567 -> "12,34,567".
func FormatNumber(num float64) string {
	return indianPrinter.Sprint(number.Decimal(num, indianGrouping))
}

// CalculateAverageRating returns the mean of ratings rounded to one decimal place, or 0 when empty.
func CalculateAverageRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return math.Round(sum/float64(len(ratings))*10) / 10
}
