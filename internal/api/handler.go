package api

import (
	"strconv"
	"time"

	"cochera-backend/internal/store"
	"cochera-backend/internal/tariff"
)

// timeFormat is the wire format for all timestamps.
const timeFormat = time.RFC3339

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store   store.Store
	catalog *tariff.Catalog
	loc     *time.Location
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, catalog *tariff.Catalog, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		store:   s,
		catalog: catalog,
		loc:     loc,
	}
}

// formatMoney renders a monetary amount with exactly two decimals, the
// contract of the CSV export.
func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// parseTimestamp reads an optional RFC3339 timestamp, defaulting to now.
// The returned time is in the lot's timezone, which the fare thresholds
// are defined in.
func (h *Handler) parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().In(h.loc), nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return ts.In(h.loc), nil
}
