package hotel

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount as dollars with two decimals.
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// PrettyRoom formats a room for inventory tables.
func PrettyRoom(r *Room) string {
	status := "Available"
	if !r.Available {
		status = "Reserved"
	}
	return fmt.Sprintf("%-8d %-12s %10s  %s", r.Number, r.Category, FormatMoney(r.Price), status)
}
