package api

import (
	"encoding/csv"
	"net/http"

	"github.com/gin-gonic/gin"

	"cochera-backend/internal/model"
)

// GetWithdrawals handles GET /api/withdrawals: a preview of the export
// queue, newest exit first.
func (h *Handler) GetWithdrawals(c *gin.Context) {
	records, err := h.store.ListWithdrawals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list withdrawals"})
		return
	}
	if records == nil {
		records = []model.WithdrawalRecord{}
	}
	c.JSON(http.StatusOK, records)
}

var exportColumns = []string{
	"plate_number",
	"entered_at",
	"exited_at",
	"tariff_class",
	"tariff_label",
	"day_rate",
	"night_rate",
	"advance_payment",
	"total_fare",
	"amount_due",
}

// ExportWithdrawals handles POST /api/withdrawals/export: streams the
// export queue as CSV and clears it. The queue is snapshotted and
// cleared in one transaction before any byte is written, so a failed
// download can lose at most this one export, never corrupt the queue.
func (h *Handler) ExportWithdrawals(c *gin.Context) {
	records, err := h.store.DrainWithdrawals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export withdrawals"})
		return
	}
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no withdrawals to export"})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="retiros.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	w.Write(exportColumns)
	for _, r := range records {
		w.Write([]string{
			r.PlateNumber,
			r.EnteredAt.In(h.loc).Format(timeFormat),
			r.ExitedAt.In(h.loc).Format(timeFormat),
			r.TariffClass,
			r.TariffLabel,
			formatMoney(r.DayRate),
			formatMoney(r.NightRate),
			formatMoney(r.AdvancePayment),
			formatMoney(r.TotalFare),
			formatMoney(r.AmountDue),
		})
	}
	w.Flush()
}
