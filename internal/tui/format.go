package tui

import (
	"fmt"

	"github.com/akyairhashvil/wagetrack/internal/models"
	"github.com/akyairhashvil/wagetrack/internal/timeutil"
)

// CurrencySymbol maps a currency code to its display glyph.
func CurrencySymbol(c models.Currency) string {
	switch c {
	case models.CurrencyUSD:
		return "$"
	case models.CurrencyGBP:
		return "£"
	default:
		return "€"
	}
}

// FormatMoney renders an amount with its currency symbol (e.g., "€12.50").
func FormatMoney(amount float64, c models.Currency) string {
	return fmt.Sprintf("%s%.2f", CurrencySymbol(c), amount)
}

// FormatHours renders decimal hours for display (e.g., "2h 15m").
func FormatHours(hours float64) string {
	return timeutil.FormatHours(hours)
}

// FormatSpan renders a session's clock range ("09:00 - 17:30", or
// "09:00 - now" while it is still open).
func FormatSpan(start string, end *string) string {
	if end == nil {
		return fmt.Sprintf("%s - now", start)
	}
	return fmt.Sprintf("%s - %s", start, *end)
}
