package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"church_admin/internal/stats"
	"church_admin/internal/store"
)

// FinancialStats aggregates the recorded transactions for the
// financial dashboard. Everything is recomputed from the full
// collection on each call.
func FinancialStats(c *gin.Context) {
	txs, err := store.Current().ListTransactions()
	if err != nil {
		logrus.WithError(err).Error("could not load transactions for stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch"})
		return
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevStart := monthStart.AddDate(0, -1, 0)
	prevEnd := monthStart.AddDate(0, 0, -1)

	thisMonth := stats.Total(stats.FilterByDateRange(txs, monthStart.Format("2006-01-02"), ""))
	lastMonth := stats.Total(stats.FilterByDateRange(txs, prevStart.Format("2006-01-02"), prevEnd.Format("2006-01-02")))

	c.JSON(http.StatusOK, gin.H{
		"total":         stats.Round2(stats.Total(txs)),
		"count":         len(txs),
		"byType":        stats.GroupByType(txs),
		"byMethod":      stats.GroupByMethod(txs),
		"thisMonth":     stats.Round2(thisMonth),
		"lastMonth":     stats.Round2(lastMonth),
		"monthlyGrowth": stats.Growth(thisMonth, lastMonth),
	})
}

// AssetStats aggregates the asset register.
func AssetStats(c *gin.Context) {
	assets, err := store.Current().ListAssets()
	if err != nil {
		logrus.WithError(err).Error("could not load assets for stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch"})
		return
	}

	since := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	c.JSON(http.StatusOK, gin.H{
		"totalQuantity":   stats.TotalQuantity(assets),
		"currentValue":    stats.Round2(stats.TotalCurrentValue(assets)),
		"purchaseValue":   stats.Round2(stats.TotalPurchaseValue(assets)),
		"byCondition":     stats.CountByCondition(assets),
		"recentAdditions": stats.RecentAdditions(assets, since),
	})
}

// AttendanceStats compares this week's check-ins with last week's.
func AttendanceStats(c *gin.Context) {
	recs, err := store.Current().ListAttendance()
	if err != nil {
		logrus.WithError(err).Error("could not load attendance for stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch"})
		return
	}

	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	thisWeek := stats.AttendanceInRange(recs, weekAgo.Format("2006-01-02"), now.Format("2006-01-02"))
	lastWeek := stats.AttendanceInRange(recs, twoWeeksAgo.Format("2006-01-02"), weekAgo.AddDate(0, 0, -1).Format("2006-01-02"))

	c.JSON(http.StatusOK, gin.H{
		"total":      len(recs),
		"thisWeek":   thisWeek,
		"lastWeek":   lastWeek,
		"growthRate": stats.Growth(float64(thisWeek), float64(lastWeek)),
	})
}
