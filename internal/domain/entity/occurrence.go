package entity

import "time"

// Status possíveis de uma ocorrência (chamado de suporte).
const (
	OccurrenceOpen           = "aberta"
	OccurrenceInProgress     = "em_andamento"
	OccurrenceAwaitingClient = "aguardando_cliente"
	OccurrenceResolved       = "resolvida"
	OccurrenceCancelled      = "cancelada"
)

// ValidOccurrenceStatus informa se o status é um dos aceitos.
func ValidOccurrenceStatus(s string) bool {
	switch s {
	case OccurrenceOpen, OccurrenceInProgress, OccurrenceAwaitingClient,
		OccurrenceResolved, OccurrenceCancelled:
		return true
	}
	return false
}

// Occurrence é um chamado de suporte aberto para um cliente.
//
// ClosingDate e ClosedBy são carimbados na transição para "resolvida" e
// nunca são limpos depois; reabrir o chamado preserva o carimbo como
// trilha de auditoria.
type Occurrence struct {
	ID          string
	ClientID    string
	ClientName  string
	Solicitor   string
	Title       string
	Description string
	Status      string
	OpeningDate time.Time
	Deadline    time.Time
	ClosingDate *time.Time
	ClosedBy    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Overdue é derivado, nunca persistido: chamado não finalizado com prazo
// vencido.
func (o *Occurrence) Overdue(now time.Time) bool {
	if o.Status == OccurrenceResolved || o.Status == OccurrenceCancelled {
		return false
	}
	return !o.Deadline.IsZero() && o.Deadline.Before(now)
}
