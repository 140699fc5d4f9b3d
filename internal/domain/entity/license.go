package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modalidades de venda de uma licença.
const (
	LicenseTypeUnitary = "Unitary"
	LicenseTypeNetwork = "Network"
	LicenseTypeCloud   = "Cloud"
	LicenseTypeWeb     = "Web"
)

// ValidLicenseType informa se a modalidade é uma das aceitas.
func ValidLicenseType(t string) bool {
	switch t {
	case LicenseTypeUnitary, LicenseTypeNetwork, LicenseTypeCloud, LicenseTypeWeb:
		return true
	}
	return false
}

// SoftwareLicense é uma licença vendida a um cliente.
//
// Invariante mantido pelo caso de uso de licenciamento: enquanto
// Returned for false existe exatamente um FinancialEntry de receita com
// LicenseID apontando para esta licença; após devolução ou exclusão,
// nenhum.
type SoftwareLicense struct {
	ID              string
	ClientID        string
	SoftwareID      string
	SoftwareName    string
	Type            string
	AcquisitionDate time.Time
	Price           decimal.Decimal
	Returned        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
