package dto

import "time"

// CreateClientRequest corpo de POST /api/clients.
type CreateClientRequest struct {
	Name        string `json:"name"`
	CNPJ        string `json:"cnpj"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	WhatsApp    string `json:"whatsapp"`
	Address     string `json:"address"`
	Active      bool   `json:"active"`
}

// UpdateClientRequest atualização parcial tipada: campos nil não são
// alterados. Zero explícito (ex: active=false) é valor válido.
type UpdateClientRequest struct {
	Name        *string `json:"name"`
	CNPJ        *string `json:"cnpj"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email"`
	WhatsApp    *string `json:"whatsapp"`
	Address     *string `json:"address"`
	Active      *bool   `json:"active"`
}

// ClientResponse cliente com licenças e mensalidades aninhadas.
type ClientResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	CNPJ        string               `json:"cnpj"`
	ContactName string               `json:"contact_name"`
	Email       string               `json:"email"`
	WhatsApp    string               `json:"whatsapp"`
	Address     string               `json:"address"`
	Active      bool                 `json:"active"`
	Licenses    []LicenseResponse    `json:"software_licenses"`
	MonthlyFees []MonthlyFeeResponse `json:"monthly_fees"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
