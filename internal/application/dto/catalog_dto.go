package dto

import "github.com/shopspring/decimal"

// CreateSoftwareRequest corpo de POST /api/softwares.
type CreateSoftwareRequest struct {
	Name             string          `json:"name"`
	Version          string          `json:"version"`
	PriceUnitary     decimal.Decimal `json:"price_unitary"`
	PriceNetwork     decimal.Decimal `json:"price_network"`
	PriceCloud       decimal.Decimal `json:"price_cloud"`
	UpdatePrice      decimal.Decimal `json:"update_price"`
	CloudUpdatePrice decimal.Decimal `json:"cloud_update_price"`
	MonthlyFee       decimal.Decimal `json:"monthly_fee"`
}

// UpdateSoftwareRequest atualização parcial tipada.
type UpdateSoftwareRequest struct {
	Name             *string          `json:"name"`
	Version          *string          `json:"version"`
	PriceUnitary     *decimal.Decimal `json:"price_unitary"`
	PriceNetwork     *decimal.Decimal `json:"price_network"`
	PriceCloud       *decimal.Decimal `json:"price_cloud"`
	UpdatePrice      *decimal.Decimal `json:"update_price"`
	CloudUpdatePrice *decimal.Decimal `json:"cloud_update_price"`
	MonthlyFee       *decimal.Decimal `json:"monthly_fee"`
}

// SoftwareResponse item do catálogo de softwares.
type SoftwareResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Version          string          `json:"version"`
	PriceUnitary     decimal.Decimal `json:"price_unitary"`
	PriceNetwork     decimal.Decimal `json:"price_network"`
	PriceCloud       decimal.Decimal `json:"price_cloud"`
	UpdatePrice      decimal.Decimal `json:"update_price"`
	CloudUpdatePrice decimal.Decimal `json:"cloud_update_price"`
	MonthlyFee       decimal.Decimal `json:"monthly_fee"`
}

// CreateServiceRequest corpo de POST /api/services.
type CreateServiceRequest struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	PriceClient    decimal.Decimal `json:"price_client"`
	PriceNonClient decimal.Decimal `json:"price_non_client"`
}

// UpdateServiceRequest atualização parcial tipada.
type UpdateServiceRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	PriceClient    *decimal.Decimal `json:"price_client"`
	PriceNonClient *decimal.Decimal `json:"price_non_client"`
}

// ServiceResponse item do catálogo de serviços.
type ServiceResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	PriceClient    decimal.Decimal `json:"price_client"`
	PriceNonClient decimal.Decimal `json:"price_non_client"`
}

// ExpenseCategoryRequest criação/edição de categoria de despesa.
type ExpenseCategoryRequest struct {
	Name string `json:"name"`
}

// ExpenseCategoryResponse categoria de despesa.
type ExpenseCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SupplierRequest criação de fornecedor.
type SupplierRequest struct {
	Name  string `json:"name"`
	CNPJ  string `json:"cnpj"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateSupplierRequest atualização parcial tipada.
type UpdateSupplierRequest struct {
	Name  *string `json:"name"`
	CNPJ  *string `json:"cnpj"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// SupplierResponse fornecedor.
type SupplierResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	CNPJ  string `json:"cnpj"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
