package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/iso4217/internal/core/ports/services"
	"github.com/SscSPs/iso4217/internal/dto"
	"github.com/SscSPs/iso4217/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type unitsHandler struct {
	unitsService portssvc.UnitsSvc
}

// RegisterUnitsRoutes registers routes related to currency units.
func RegisterUnitsRoutes(rg *gin.RouterGroup, unitsService portssvc.UnitsSvc) {
	h := &unitsHandler{unitsService: unitsService}

	u := rg.Group("/units")
	{
		u.GET("/convert", h.convert)
	}
}

// convert godoc
// @Summary Convert between units of one currency
// @Description Expresses an amount in another unit of the same currency, e.g. 500 USDs in USD. Units are currency codes, CODEs minor units, or display names with underscores.
// @Tags units
// @Produce  json
// @Param   amount query string true "Decimal amount" example(500)
// @Param   from   query string true "Source unit" example(USDs)
// @Param   to     query string true "Target unit" example(USD)
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid amount or parameters"
// @Failure 404 {object} map[string]string "Unknown unit"
// @Failure 422 {object} map[string]string "Units belong to different currencies"
// @Failure 503 {object} map[string]string "Units support is disabled"
// @Router /units/convert [get]
func (h *unitsHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount: " + params.Amount})
		return
	}

	q, err := h.unitsService.Convert(c.Request.Context(), amount, params.From, params.To)
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(amount, params.From, q))
}
