package entity

import "time"

// CompanyInfo são os dados da própria empresa (registro único).
type CompanyInfo struct {
	ID        string
	Name      string
	CNPJ      string
	Address   string
	Phone     string
	Email     string
	LogoURL   string
	UpdatedAt time.Time
}
