package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"church_admin/internal/models"
)

func TestTotalAndGroupByType(t *testing.T) {
	txs := []models.Transaction{
		{Type: "A", Amount: 100},
		{Type: "B", Amount: 200},
		{Type: "A", Amount: 50},
	}

	assert.Equal(t, 350.0, Total(txs))

	byType := GroupByType(txs)
	assert.Equal(t, Breakdown{Count: 2, Total: 150}, byType["A"])
	assert.Equal(t, Breakdown{Count: 1, Total: 200}, byType["B"])
}

func TestGroupByMethod(t *testing.T) {
	txs := []models.Transaction{
		{Method: "MoMo", Amount: 20},
		{Method: "Cash", Amount: 10},
		{Method: "MoMo", Amount: 5},
	}
	byMethod := GroupByMethod(txs)
	assert.Equal(t, Breakdown{Count: 2, Total: 25}, byMethod["MoMo"])
	assert.Equal(t, Breakdown{Count: 1, Total: 10}, byMethod["Cash"])
}

func TestFilters(t *testing.T) {
	txs := []models.Transaction{
		{Status: "Completed", Type: "Tithe", Method: "Cash", Date: "2026-01-10", Amount: 10},
		{Status: "Pending", Type: "First Fruit", Method: "MoMo", Date: "2026-02-05", Amount: 20},
		{Status: "Completed", Type: "First Fruit", Method: "Bank", Date: "2026-03-01", Amount: 30},
	}

	assert.Len(t, FilterByStatus(txs, "Completed"), 2)
	assert.Len(t, FilterByType(txs, "First Fruit"), 2)
	assert.Len(t, FilterByMethod(txs, "MoMo"), 1)

	inRange := FilterByDateRange(txs, "2026-02-01", "2026-02-28")
	if assert.Len(t, inRange, 1) {
		assert.Equal(t, 20.0, inRange[0].Amount)
	}

	// open bounds
	assert.Len(t, FilterByDateRange(txs, "", ""), 3)
	assert.Len(t, FilterByDateRange(txs, "2026-02-05", ""), 2)
}

func TestPercentOfTotal(t *testing.T) {
	assert.Equal(t, 42.86, PercentOfTotal(150, 350))
	assert.Equal(t, 0.0, PercentOfTotal(10, 0))
}

func TestGrowth(t *testing.T) {
	assert.Equal(t, 50.0, Growth(150, 100))
	assert.Equal(t, -25.0, Growth(75, 100))
	assert.Equal(t, 100.0, Growth(10, 0))
	assert.Equal(t, 0.0, Growth(0, 0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.2345))
	assert.Equal(t, 1.24, Round2(1.236))
	assert.Equal(t, 120.0, Round2(119.99999999999997))
}

func TestAssetRollups(t *testing.T) {
	assets := []models.Asset{
		{Quantity: 2, CurrentValue: 100, PurchaseValue: 150, Condition: "Good", PurchaseDate: "2026-08-20"},
		{Quantity: 1, CurrentValue: 50, PurchaseValue: 50, Condition: "Poor", PurchaseDate: "2025-01-01"},
	}

	assert.Equal(t, 3, TotalQuantity(assets))
	assert.Equal(t, 250.0, TotalCurrentValue(assets))
	assert.Equal(t, 350.0, TotalPurchaseValue(assets))
	assert.Equal(t, map[string]int{"Good": 2, "Poor": 1}, CountByCondition(assets))
	assert.Equal(t, 1, RecentAdditions(assets, "2026-08-01"))
}

func TestAttendanceInRange(t *testing.T) {
	recs := []models.Attendance{
		{Date: "2026-08-23"},
		{Date: "2026-08-25"},
		{Date: "2026-08-10"},
	}
	assert.Equal(t, 2, AttendanceInRange(recs, "2026-08-20", "2026-08-26"))
	assert.Equal(t, 3, AttendanceInRange(recs, "", ""))
}
