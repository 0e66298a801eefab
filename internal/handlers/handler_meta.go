package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/iso4217/internal/core/ports/services"
	"github.com/SscSPs/iso4217/internal/dto"
	"github.com/SscSPs/iso4217/internal/middleware"
	"github.com/gin-gonic/gin"
)

type metaHandler struct {
	catalogService portssvc.DatasetSvc
	unitsService   portssvc.UnitsSvc
}

// RegisterMetaRoutes registers the dataset description route.
func RegisterMetaRoutes(rg *gin.RouterGroup, catalogService portssvc.DatasetSvc, unitsService portssvc.UnitsSvc) {
	h := &metaHandler{catalogService: catalogService, unitsService: unitsService}
	rg.GET("/meta", h.getMeta)
}

// getMeta godoc
// @Summary Describe the loaded dataset
// @Description Publication date, dataset version and record counts of the currency table
// @Tags meta
// @Produce  json
// @Success 200 {object} dto.MetaResponse
// @Failure 500 {object} map[string]string "Currency dataset unavailable"
// @Router /meta [get]
func (h *metaHandler) getMeta(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	info, err := h.catalogService.DatasetInfo(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Currency dataset unavailable")
		return
	}

	unitsEnabled := h.unitsService != nil && h.unitsService.Enabled()
	c.JSON(http.StatusOK, dto.ToMetaResponse(info, unitsEnabled))
}

// getHealth reports OK once the currency dataset has been built.
func (h *metaHandler) getHealth(c *gin.Context) {
	if _, err := h.catalogService.Dataset(c.Request.Context()); err != nil {
		c.String(http.StatusServiceUnavailable, "Unavailable")
		return
	}
	c.String(http.StatusOK, "OK")
}
