package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyFee é uma mensalidade recorrente de um cliente. Registro
// informativo de cobrança: não gera lançamento automático no financeiro.
type MonthlyFee struct {
	ID          string
	ClientID    string
	Description string
	Value       decimal.Decimal
	DueDay      int // dia do vencimento (1..31)
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
