package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SellLicenseRequest corpo de POST /api/clients/:id/licenses.
// Price zero usa o preço de tabela do software para a modalidade.
type SellLicenseRequest struct {
	SoftwareID      string          `json:"software_id"`
	Type            string          `json:"type"` // Unitary | Network | Cloud | Web
	AcquisitionDate time.Time       `json:"acquisition_date"`
	Price           decimal.Decimal `json:"price"`
}

// UpdateLicenseRequest atualização parcial tipada. Alterar o preço não
// reajusta o lançamento de receita já registrado.
type UpdateLicenseRequest struct {
	SoftwareID   *string          `json:"software_id"`
	SoftwareName *string          `json:"software_name"`
	Type         *string          `json:"type"`
	Price        *decimal.Decimal `json:"price"`
}

// LicenseResponse licença vendida.
type LicenseResponse struct {
	ID              string          `json:"id"`
	ClientID        string          `json:"client_id"`
	SoftwareID      string          `json:"software_id"`
	SoftwareName    string          `json:"software_name"`
	Type            string          `json:"type"`
	AcquisitionDate time.Time       `json:"acquisition_date"`
	Price           decimal.Decimal `json:"price"`
	Returned        bool            `json:"returned"`
}
