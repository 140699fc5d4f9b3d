package entity

import "time"

// Supplier é um fornecedor usado nos lançamentos de despesa.
type Supplier struct {
	ID        string
	Name      string
	CNPJ      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
