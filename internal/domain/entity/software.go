package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Software é um item do catálogo de produtos vendáveis, com as tabelas
// de preço por modalidade.
type Software struct {
	ID               string
	Name             string
	Version          string
	PriceUnitary     decimal.Decimal
	PriceNetwork     decimal.Decimal
	PriceCloud       decimal.Decimal
	UpdatePrice      decimal.Decimal
	CloudUpdatePrice decimal.Decimal
	MonthlyFee       decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PriceFor devolve o preço de tabela para a modalidade informada.
// Web usa a tabela Cloud.
func (s *Software) PriceFor(licenseType string) decimal.Decimal {
	switch licenseType {
	case LicenseTypeNetwork:
		return s.PriceNetwork
	case LicenseTypeCloud, LicenseTypeWeb:
		return s.PriceCloud
	default:
		return s.PriceUnitary
	}
}
