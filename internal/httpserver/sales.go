package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"buildmart/internal/service/sales"

	"github.com/gin-gonic/gin"
)

func salesHistoryHandler(svc SalesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q sales.HistoryQuery
		if raw := c.Query("from"); raw != "" {
			from, err := time.Parse("2006-01-02", raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
				return
			}
			q.From = &from
		}
		if raw := c.Query("to"); raw != "" {
			to, err := time.Parse("2006-01-02", raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
				return
			}
			// Treat the bound as inclusive of the named day.
			to = to.AddDate(0, 0, 1)
			q.To = &to
		}
		if raw := c.Query("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
				return
			}
			q.Limit = limit
		}

		txs, err := svc.History(c.Request.Context(), q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"transactions": txs})
	}
}

func salesSummaryHandler(svc SalesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, err := svc.WeeklySummary(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"days": days})
	}
}

func getSaleHandler(svc SalesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tx, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, tx)
	}
}
