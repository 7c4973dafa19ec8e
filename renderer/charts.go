package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/etnz/dashboard"
)

// chartWidth is the width, in cells, of a fully filled chart bar.
const chartWidth = 24

// Charts renders the income/expense pie and bar charts with unicode block
// characters. Charts are a best-effort enhancement: with nothing to draw
// (both totals zero) it returns the empty string and the caller skips the
// section entirely.
func Charts(t dashboard.Totals) string {
	income := t.Income.Decimal().InexactFloat64()
	expense := t.Expense.Decimal().InexactFloat64()
	if income <= 0 && expense <= 0 {
		return ""
	}
	total := income + expense

	var b strings.Builder
	b.WriteString("income vs expense\n")
	fmt.Fprintf(&b, "  income   %s %3.0f%%\n", slice(income/total), 100*income/total)
	fmt.Fprintf(&b, "  expense  %s %3.0f%%\n", slice(expense/total), 100*expense/total)

	scale := math.Max(income, expense)
	b.WriteString("amounts\n")
	fmt.Fprintf(&b, "  income   %s %s\n", bar(income/scale), t.Income)
	fmt.Fprintf(&b, "  expense  %s %s", bar(expense/scale), t.Expense)
	return b.String()
}

// slice draws a share of a fully filled bar, padding the rest with shade.
func slice(share float64) string {
	filled := int(math.Round(share * chartWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > chartWidth {
		filled = chartWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", chartWidth-filled)
}

// bar draws a bar proportional to frac of the chart width. A non-zero value
// always gets at least one cell.
func bar(frac float64) string {
	n := int(math.Round(frac * chartWidth))
	if n == 0 && frac > 0 {
		n = 1
	}
	if n < 0 {
		n = 0
	}
	if n > chartWidth {
		n = chartWidth
	}
	return strings.Repeat("█", n)
}
