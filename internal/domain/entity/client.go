package entity

import "time"

// Client representa um cliente da empresa. As licenças de software e as
// mensalidades pertencem ao cliente (1-N).
type Client struct {
	ID          string
	Name        string
	CNPJ        string
	ContactName string
	Email       string
	WhatsApp    string
	Address     string
	Active      bool
	Licenses    []*SoftwareLicense
	MonthlyFees []*MonthlyFee
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
