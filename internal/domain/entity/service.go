package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service é um serviço do catálogo, com preço para cliente e não cliente.
type Service struct {
	ID             string
	Name           string
	Description    string
	PriceClient    decimal.Decimal
	PriceNonClient decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
