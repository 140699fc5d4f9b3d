package dto

import "time"

// CreateOccurrenceRequest corpo de POST /api/occurrences. Status e data
// de abertura são definidos pelo servidor.
type CreateOccurrenceRequest struct {
	ClientID    string    `json:"client_id"`
	Solicitor   string    `json:"solicitor"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
}

// UpdateOccurrenceRequest atualização parcial tipada. A transição de
// status para "resolvida" carimba closing_date/closed_by no servidor.
type UpdateOccurrenceRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Deadline    *time.Time `json:"deadline"`
}

// OccurrenceResponse ocorrência com o campo derivado overdue.
type OccurrenceResponse struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"client_id"`
	ClientName  string     `json:"client_name"`
	Solicitor   string     `json:"solicitor"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	OpeningDate time.Time  `json:"opening_date"`
	Deadline    time.Time  `json:"deadline"`
	ClosingDate *time.Time `json:"closing_date,omitempty"`
	ClosedBy    string     `json:"closed_by,omitempty"`
	Overdue     bool       `json:"overdue"`
}
