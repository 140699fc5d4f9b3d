package dto

import "github.com/shopspring/decimal"

// CreateMonthlyFeeRequest corpo de POST /api/clients/:id/fees.
type CreateMonthlyFeeRequest struct {
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	DueDay      int             `json:"due_day"`
	Active      bool            `json:"active"`
}

// UpdateMonthlyFeeRequest atualização parcial tipada.
type UpdateMonthlyFeeRequest struct {
	Description *string          `json:"description"`
	Value       *decimal.Decimal `json:"value"`
	DueDay      *int             `json:"due_day"`
	Active      *bool            `json:"active"`
}

// MonthlyFeeResponse mensalidade de um cliente.
type MonthlyFeeResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	DueDay      int             `json:"due_day"`
	Active      bool            `json:"active"`
}
