package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de lançamento financeiro.
const (
	EntryTypeRevenue = "receita"
	EntryTypeExpense = "despesa"
)

// Formas de pagamento aceitas nos lançamentos.
var PaymentMethods = []string{
	"Nubank Fisica",
	"Nubank Jurídica",
	"Caixa",
	"Mercado Pago",
	"Dinheiro",
	"Crédito",
}

// ValidPaymentMethod informa se a forma de pagamento é uma das aceitas.
func ValidPaymentMethod(m string) bool {
	for _, pm := range PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

// FinancialEntry é uma linha do livro-caixa: receita ou despesa.
// LicenseID, quando preenchido, indica que o lançamento foi gerado pela
// venda de uma licença e será removido junto com ela.
type FinancialEntry struct {
	ID            string
	Type          string
	Description   string
	Category      string
	Value         decimal.Decimal
	Date          time.Time
	DueDate       *time.Time
	ClientID      string
	ClientName    string
	SupplierID    string
	SupplierName  string
	LicenseID     string
	PaymentMethod string
	Observation   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
