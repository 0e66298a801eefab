package dto

import (
	"time"

	"github.com/SscSPs/iso4217/internal/core/domain"
)

// ListCurrenciesParams defines the query parameters for listing currencies.
type ListCurrenciesParams struct {
	Status    string `form:"status" binding:"omitempty,oneof=active historic"`
	Fund      *bool  `form:"fund"`
	Entity    string `form:"entity"`
	Limit     int    `form:"limit,default=0" binding:"min=0,max=500"`
	NextToken string `form:"nextToken"`
}

// ToFilter converts the query parameters to a domain filter.
func (p ListCurrenciesParams) ToFilter() domain.CurrencyFilter {
	return domain.CurrencyFilter{
		Status: domain.CurrencyStatus(p.Status),
		Fund:   p.Fund,
		Entity: p.Entity,
	}
}

// WithdrawalResponse describes one entity that stopped using a currency.
type WithdrawalResponse struct {
	Entity      string `json:"entity"`
	DisplayName string `json:"displayName"`
	Withdrawn   string `json:"withdrawn" example:"1989 to 1990"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code              string               `json:"code" example:"UAH"`
	DisplayName       string               `json:"displayName" example:"Hryvnia"`
	NumericCode       *int                 `json:"numericCode,omitempty" example:"980"`
	SubunitExponent   *int                 `json:"subunitExponent,omitempty" example:"2"`
	IsFund            bool                 `json:"isFund"`
	Active            bool                 `json:"active"`
	Entities          []string             `json:"entities"`
	WithdrawalHistory []WithdrawalResponse `json:"withdrawalHistory"`
}

// ToCurrencyResponse converts a domain.CurrencyRecord to CurrencyResponse DTO
func ToCurrencyResponse(rec *domain.CurrencyRecord) CurrencyResponse {
	history := make([]WithdrawalResponse, len(rec.WithdrawalHistory))
	for i, h := range rec.WithdrawalHistory {
		history[i] = WithdrawalResponse{
			Entity:      h.Entity,
			DisplayName: h.DisplayName,
			Withdrawn:   h.Period.String(),
		}
	}
	entities := rec.Entities
	if entities == nil {
		entities = []string{}
	}
	return CurrencyResponse{
		Code:              rec.Code,
		DisplayName:       rec.DisplayName,
		NumericCode:       rec.NumericCode,
		SubunitExponent:   rec.SubunitExponent,
		IsFund:            rec.IsFund,
		Active:            rec.IsActive(),
		Entities:          entities,
		WithdrawalHistory: history,
	}
}

// ToListCurrencyResponse converts a slice of domain.CurrencyRecord to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(records []domain.CurrencyRecord) []CurrencyResponse {
	res := make([]CurrencyResponse, len(records))
	for i := range records {
		res[i] = ToCurrencyResponse(&records[i])
	}
	return res
}

// ListCurrenciesResponse wraps one page of a filtered currency listing.
type ListCurrenciesResponse struct {
	Total      int                `json:"total"` // matches across all pages
	Count      int                `json:"count"`
	Currencies []CurrencyResponse `json:"currencies"`
	NextToken  *string            `json:"nextToken,omitempty"`
}

// MetaResponse describes the loaded dataset.
type MetaResponse struct {
	Published     time.Time `json:"published"`
	Version       string    `json:"version" example:"0.6.240625"`
	Total         int       `json:"total"`
	Active        int       `json:"active"`
	Historic      int       `json:"historic"`
	UnitsEnabled  bool      `json:"unitsEnabled"`
	PublishedDate string    `json:"publishedDate" example:"2024-06-25"`
}

// ToMetaResponse converts dataset info to MetaResponse DTO
func ToMetaResponse(info *domain.DatasetInfo, unitsEnabled bool) MetaResponse {
	return MetaResponse{
		Published:     info.Published,
		Version:       info.Version,
		Total:         info.Total,
		Active:        info.Active,
		Historic:      info.Historic,
		UnitsEnabled:  unitsEnabled,
		PublishedDate: info.Published.Format(time.DateOnly),
	}
}
