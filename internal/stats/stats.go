// Package stats holds the pure aggregation helpers behind the
// dashboard figures. Everything operates on collections already loaded
// from the store and is recomputed per request; collection sizes are
// small (hundreds of rows), so nothing here is pushed down to queries.
package stats

import (
	"math"

	"church_admin/internal/models"
)

// Breakdown is one row of a grouped summary table.
type Breakdown struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// Total sums transaction amounts.
func Total(txs []models.Transaction) float64 {
	var sum float64
	for _, t := range txs {
		sum += t.Amount
	}
	return sum
}

// GroupByType breaks transactions down per payment type.
func GroupByType(txs []models.Transaction) map[string]Breakdown {
	return groupBy(txs, func(t models.Transaction) string { return t.Type })
}

// GroupByMethod breaks transactions down per payment method.
func GroupByMethod(txs []models.Transaction) map[string]Breakdown {
	return groupBy(txs, func(t models.Transaction) string { return t.Method })
}

func groupBy(txs []models.Transaction, key func(models.Transaction) string) map[string]Breakdown {
	out := make(map[string]Breakdown)
	for _, t := range txs {
		b := out[key(t)]
		b.Count++
		b.Total += t.Amount
		out[key(t)] = b
	}
	return out
}

// FilterByStatus keeps transactions with the given status.
func FilterByStatus(txs []models.Transaction, status string) []models.Transaction {
	return filter(txs, func(t models.Transaction) bool { return t.Status == status })
}

// FilterByType keeps transactions with the given payment type.
func FilterByType(txs []models.Transaction, paymentType string) []models.Transaction {
	return filter(txs, func(t models.Transaction) bool { return t.Type == paymentType })
}

// FilterByMethod keeps transactions with the given payment method.
func FilterByMethod(txs []models.Transaction, method string) []models.Transaction {
	return filter(txs, func(t models.Transaction) bool { return t.Method == method })
}

// FilterByDateRange keeps transactions whose date falls in [from, to].
// Dates are YYYY-MM-DD strings, so plain string comparison orders them.
// An empty bound is open.
func FilterByDateRange(txs []models.Transaction, from, to string) []models.Transaction {
	return filter(txs, func(t models.Transaction) bool {
		if from != "" && t.Date < from {
			return false
		}
		if to != "" && t.Date > to {
			return false
		}
		return true
	})
}

func filter(txs []models.Transaction, keep func(models.Transaction) bool) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// PercentOfTotal returns part as a percentage of total, rounded to two
// decimals. A zero total yields 0 rather than NaN.
func PercentOfTotal(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return Round2(part / total * 100)
}

// Growth returns the period-over-period percentage change. A zero
// previous period reads as 100% growth when anything happened at all.
func Growth(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return Round2((current - previous) / previous * 100)
}

// Round2 rounds to two decimal places for currency display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TotalQuantity sums asset quantities.
func TotalQuantity(assets []models.Asset) int {
	var n int
	for _, a := range assets {
		n += a.Quantity
	}
	return n
}

// TotalCurrentValue sums current value weighted by quantity.
func TotalCurrentValue(assets []models.Asset) float64 {
	var sum float64
	for _, a := range assets {
		sum += a.CurrentValue * float64(a.Quantity)
	}
	return sum
}

// TotalPurchaseValue sums purchase value weighted by quantity.
func TotalPurchaseValue(assets []models.Asset) float64 {
	var sum float64
	for _, a := range assets {
		sum += a.PurchaseValue * float64(a.Quantity)
	}
	return sum
}

// CountByCondition tallies assets per condition rating.
func CountByCondition(assets []models.Asset) map[string]int {
	out := make(map[string]int)
	for _, a := range assets {
		out[a.Condition] += a.Quantity
	}
	return out
}

// RecentAdditions counts assets purchased on or after the given date
// (YYYY-MM-DD).
func RecentAdditions(assets []models.Asset, since string) int {
	var n int
	for _, a := range assets {
		if a.PurchaseDate >= since {
			n++
		}
	}
	return n
}

// AttendanceInRange counts check-ins whose date falls in [from, to].
func AttendanceInRange(recs []models.Attendance, from, to string) int {
	var n int
	for _, r := range recs {
		if from != "" && r.Date < from {
			continue
		}
		if to != "" && r.Date > to {
			continue
		}
		n++
	}
	return n
}
