package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/iso4217/internal/core/domain"
	portssvc "github.com/SscSPs/iso4217/internal/core/ports/services"
	"github.com/SscSPs/iso4217/internal/dto"
	"github.com/SscSPs/iso4217/internal/middleware"
	"github.com/SscSPs/iso4217/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	catalogService portssvc.CatalogReaderSvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CatalogReaderSvc) *currencyHandler {
	return &currencyHandler{
		catalogService: cs,
	}
}

// RegisterCurrencyRoutes registers routes related to currencies.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogReaderSvc) {
	h := newCurrencyHandler(catalogService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
		currencies.GET("/number/:number", h.getCurrenciesByNumber)
	}
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves a currency by its 3-letter code, active or withdrawn
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve currency"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("currency_code", c.Param("code")))

	currency, err := h.catalogService.GetCurrency(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve currency")
		return
	}

	logger.Debug("Currency retrieved successfully")
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List currencies
// @Description Retrieves all currencies ordered by code, optionally filtered
// @Tags currencies
// @Produce  json
// @Param   status query string false "Only active or only historic currencies" Enums(active, historic)
// @Param   fund   query bool   false "Only funds (true) or only non-funds (false)"
// @Param   entity query string false "Case-insensitive substring of a current or former entity"
// @Param   limit  query int    false "Page size, 0 for everything" minimum(0) maximum(500)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListCurrenciesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ListCurrenciesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	currencies, err := h.catalogService.ListCurrencies(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list currencies")
		return
	}

	page, next, err := pagination.Page(currencies, func(r domain.CurrencyRecord) string { return r.Code }, params.NextToken, params.Limit)
	if err != nil {
		logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := dto.ListCurrenciesResponse{
		Total:      len(currencies),
		Count:      len(page),
		Currencies: dto.ToListCurrencyResponse(page),
	}
	if next != "" {
		resp.NextToken = &next
	}

	logger.Debug("Currencies listed successfully", slog.Int("count", resp.Count), slog.Int("total", resp.Total))
	c.JSON(http.StatusOK, resp)
}

// getCurrenciesByNumber godoc
// @Summary Get currencies by numeric code
// @Description Retrieves every currency that carries a numeric code. Withdrawn currencies often share numbers.
// @Tags currencies
// @Produce  json
// @Param   number path int true "Numeric code" minimum(0) maximum(999)
// @Success 200 {array} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid numeric code"
// @Failure 404 {object} map[string]string "No currency carries the number"
// @Failure 500 {object} map[string]string "Failed to retrieve currencies"
// @Router /currencies/number/{number} [get]
func (h *currencyHandler) getCurrenciesByNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("numeric_code", c.Param("number")))

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Numeric code must be an integer"})
		return
	}

	currencies, err := h.catalogService.FindByNumber(c.Request.Context(), number)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve currencies")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}
