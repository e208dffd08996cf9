package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	app "oficina/internal/application/finance"
)

type FinanceHandler struct {
	svc *app.Service
}

func NewFinanceHandler(svc *app.Service) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

func (h *FinanceHandler) Register(c *gin.Context) {
	var cmd app.RegisterTransactionCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.svc.Register(c.Request.Context(), cmd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// List returns transactions between from and to (RFC 3339 dates, to
// exclusive). Missing bounds default to the current month.
func (h *FinanceHandler) List(c *gin.Context) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be RFC 3339"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be RFC 3339"})
			return
		}
		to = parsed
	}

	txs, err := h.svc.ListPeriod(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": txs})
}

// MonthlySummary reports the month containing ref (RFC 3339, default now).
func (h *FinanceHandler) MonthlySummary(c *gin.Context) {
	ref := time.Now().UTC()
	if raw := c.Query("ref"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ref must be RFC 3339"})
			return
		}
		ref = parsed
	}

	summary, err := h.svc.MonthlySummary(c.Request.Context(), ref)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
