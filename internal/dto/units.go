package dto

import (
	"github.com/SscSPs/iso4217/internal/units"
	"github.com/shopspring/decimal"
)

// ConvertParams defines the query parameters for a unit conversion.
type ConvertParams struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from" binding:"required"`
	To     string `form:"to" binding:"required"`
}

// ConversionResponse defines the result of a unit conversion.
type ConversionResponse struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"500"`
	From   string          `json:"from" example:"USDs"`
	Result decimal.Decimal `json:"result" swaggertype:"string" example:"5"`
	Unit   string          `json:"unit" example:"USD"`
	Text   string          `json:"text" example:"5 USD"`
}

// ToConversionResponse converts a converted quantity to ConversionResponse DTO
func ToConversionResponse(amount decimal.Decimal, from string, q *units.Quantity) ConversionResponse {
	return ConversionResponse{
		Amount: amount,
		From:   from,
		Result: q.Magnitude,
		Unit:   q.Unit.Name,
		Text:   q.String(),
	}
}
