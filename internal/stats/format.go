package stats

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatValue renders a value for display: millions as "1.5M", thousands
// as "45.0K", smaller numbers with grouping, text unchanged.
func FormatValue(v Value) string {
	f, ok := v.Float()
	if !ok {
		return v.String()
	}
	switch {
	case f >= 1_000_000:
		return strconv.FormatFloat(f/1_000_000, 'f', 1, 64) + "M"
	case f >= 1_000:
		return strconv.FormatFloat(f/1_000, 'f', 1, 64) + "K"
	}
	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(3)))
}

// FormatChange renders a percentage change, signed when positive.
func FormatChange(p float64) string {
	if p > 0 {
		return fmt.Sprintf("+%s%%", formatNumber(p))
	}
	return formatNumber(p) + "%"
}
