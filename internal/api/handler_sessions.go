package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cochera-backend/internal/fare"
	"cochera-backend/internal/model"
	"cochera-backend/internal/store"
)

type createSessionRequest struct {
	PlateNumber    string  `json:"plate_number" binding:"required"`
	TariffClass    string  `json:"tariff_class" binding:"required"`
	AdvancePayment float64 `json:"advance_payment"`
	EnteredAt      string  `json:"entered_at"`
}

// PostSession handles POST /api/sessions: a vehicle entering the lot.
// Rates are snapshotted from the catalog so later catalog edits never
// change this session's price.
func (h *Handler) PostSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	plate := store.NormalizePlate(req.PlateNumber)
	if plate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plate_number is required"})
		return
	}

	enteredAt, err := h.parseTimestamp(req.EnteredAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entered_at timestamp, use RFC3339"})
		return
	}

	advance := req.AdvancePayment
	if advance < 0 {
		advance = 0
	}

	class := h.catalog.Lookup(req.TariffClass)
	session := model.ParkingSession{
		PlateNumber:    plate,
		TariffClass:    class.Key,
		TariffLabel:    class.Label,
		DayRate:        class.DayRate,
		NightRate:      class.NightRate,
		AdvancePayment: advance,
		EnteredAt:      enteredAt,
	}

	if err := h.store.CreateSession(c.Request.Context(), &session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register entry"})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSessions handles GET /api/sessions: the active list, optionally
// narrowed by the live-search plate filter.
func (h *Handler) GetSessions(c *gin.Context) {
	sessions, err := h.store.ListSessions(c.Request.Context(), c.Query("plate"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sessions"})
		return
	}
	if sessions == nil {
		sessions = []model.ParkingSession{}
	}
	c.JSON(http.StatusOK, sessions)
}

// quoteResponse carries a fare preview. The caller shows it, then
// confirms by posting the withdrawal; nothing is pending server-side.
type quoteResponse struct {
	SessionID      int64   `json:"session_id"`
	PlateNumber    string  `json:"plate_number"`
	ExitedAt       string  `json:"exited_at"`
	TotalFare      float64 `json:"total_fare"`
	AdvancePayment float64 `json:"advance_payment"`
	AmountDue      float64 `json:"amount_due"`
}

// GetQuote handles GET /api/sessions/:id/quote: a fare preview at the
// given exit time (default now). Read-only.
func (h *Handler) GetQuote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	exitedAt, err := h.parseTimestamp(c.Query("at"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'at' timestamp, use RFC3339"})
		return
	}

	session, err := h.store.GetSession(c.Request.Context(), id)
	if errors.Is(err, store.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}

	session.EnteredAt = session.EnteredAt.In(h.loc)
	record := fare.Finalize(session, exitedAt)

	c.JSON(http.StatusOK, quoteResponse{
		SessionID:      session.ID,
		PlateNumber:    session.PlateNumber,
		ExitedAt:       record.ExitedAt.Format(timeFormat),
		TotalFare:      record.TotalFare,
		AdvancePayment: record.AdvancePayment,
		AmountDue:      record.AmountDue,
	})
}

type withdrawRequest struct {
	ExitedAt string `json:"exited_at"`
}

// PostWithdraw handles POST /api/sessions/:id/withdraw: the confirmed
// withdrawal. The record is created and the session deleted in one
// transaction; a repeated submit finds no session and gets a 404, never
// a duplicate record.
func (h *Handler) PostWithdraw(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	var req withdrawRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
	}

	exitedAt, err := h.parseTimestamp(req.ExitedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exited_at timestamp, use RFC3339"})
		return
	}

	record, err := h.store.FinalizeSession(c.Request.Context(), id, exitedAt)
	if errors.Is(err, store.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process withdrawal"})
		return
	}

	c.JSON(http.StatusOK, record)
}
