package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFinancialEntryRequest corpo de POST /api/financials.
type CreateFinancialEntryRequest struct {
	Type          string          `json:"type"` // receita | despesa
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Value         decimal.Decimal `json:"value"`
	Date          time.Time       `json:"date"`
	DueDate       *time.Time      `json:"due_date"`
	ClientID      string          `json:"client_id"`
	SupplierID    string          `json:"supplier_id"`
	PaymentMethod string          `json:"payment_method"`
	Observation   string          `json:"observation"`
}

// UpdateFinancialEntryRequest atualização parcial tipada. Tipo e vínculo
// com licença não são editáveis.
type UpdateFinancialEntryRequest struct {
	Description   *string          `json:"description"`
	Category      *string          `json:"category"`
	Value         *decimal.Decimal `json:"value"`
	Date          *time.Time       `json:"date"`
	DueDate       *time.Time       `json:"due_date"`
	SupplierID    *string          `json:"supplier_id"`
	PaymentMethod *string          `json:"payment_method"`
	Observation   *string          `json:"observation"`
}

// FinancialEntryResponse lançamento do livro-caixa.
type FinancialEntryResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Value         decimal.Decimal `json:"value"`
	Date          time.Time       `json:"date"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
	ClientID      string          `json:"client_id,omitempty"`
	ClientName    string          `json:"client_name,omitempty"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	LicenseID     string          `json:"license_id,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Observation   string          `json:"observation,omitempty"`
}
