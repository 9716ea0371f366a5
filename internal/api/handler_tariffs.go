package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTariffs handles GET /api/tariffs: the rate catalog, for the entry
// form's class selector and quick buttons. The catalog is fixed after
// startup, so the route sits behind the response cache.
func (h *Handler) GetTariffs(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Classes())
}
