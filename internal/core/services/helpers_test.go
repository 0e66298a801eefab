package services_test

import (
	"github.com/SscSPs/iso4217/internal/core/domain"
)

func intPtr(v int) *int {
	return &v
}

func span(text string) *domain.ApproxTimeSpan {
	s, err := domain.ParseApproxTimeSpan(text)
	if err != nil {
		panic(err)
	}
	return &s
}

func activeRow(code, entity, name string, number, exp int) domain.RawRow {
	return domain.RawRow{
		Code:            code,
		NumericCode:     intPtr(number),
		DisplayName:     name,
		SubunitExponent: intPtr(exp),
		EntityName:      entity,
		List:            domain.ActiveList,
	}
}

func historicRow(code, entity, name string, number *int, withdrawn string) domain.RawRow {
	return domain.RawRow{
		Code:             code,
		NumericCode:      number,
		DisplayName:      name,
		EntityName:       entity,
		WithdrawalPeriod: span(withdrawn),
		List:             domain.HistoricList,
	}
}
