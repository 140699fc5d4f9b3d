package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

var _ repository.OccurrenceRepository = (*OccurrenceRepo)(nil)

// OccurrenceRepo implementação de OccurrenceRepository.
type OccurrenceRepo struct {
	q Querier
}

// NewOccurrenceRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewOccurrenceRepository(q Querier) *OccurrenceRepo {
	return &OccurrenceRepo{q: q}
}

const occurrenceColumns = `id, client_id, client_name, solicitor, title, description, status,
	opening_date, deadline, closing_date, closed_by, created_at, updated_at`

// Create persiste uma nova ocorrência.
func (r *OccurrenceRepo) Create(occ *entity.Occurrence) error {
	query := `
		INSERT INTO occurrences (` + occurrenceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		occ.ID, occ.ClientID, occ.ClientName, occ.Solicitor, occ.Title, occ.Description, occ.Status,
		occ.OpeningDate, occ.Deadline, occ.ClosingDate, occ.ClosedBy, occ.CreatedAt, occ.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert occurrence: %w", err)
	}
	return nil
}

// GetByID obtém uma ocorrência por ID.
func (r *OccurrenceRepo) GetByID(id string) (*entity.Occurrence, error) {
	query := `SELECT ` + occurrenceColumns + ` FROM occurrences WHERE id = $1`
	var o entity.Occurrence
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ClientID, &o.ClientName, &o.Solicitor, &o.Title, &o.Description, &o.Status,
		&o.OpeningDate, &o.Deadline, &o.ClosingDate, &o.ClosedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get occurrence: %w", err)
	}
	return &o, nil
}

// List lista ocorrências com paginação, mais recentes primeiro.
func (r *OccurrenceRepo) List(limit, offset int) ([]*entity.Occurrence, error) {
	query := `SELECT ` + occurrenceColumns + ` FROM occurrences ORDER BY opening_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list occurrences: %w", err)
	}
	return scanOccurrences(rows)
}

// ListAll lista todas as ocorrências (agregações do dashboard).
func (r *OccurrenceRepo) ListAll() ([]*entity.Occurrence, error) {
	query := `SELECT ` + occurrenceColumns + ` FROM occurrences ORDER BY opening_date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all occurrences: %w", err)
	}
	return scanOccurrences(rows)
}

// Update atualiza uma ocorrência.
func (r *OccurrenceRepo) Update(occ *entity.Occurrence) error {
	query := `
		UPDATE occurrences SET client_id = $2, client_name = $3, solicitor = $4, title = $5,
			description = $6, status = $7, deadline = $8, closing_date = $9, closed_by = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		occ.ID, occ.ClientID, occ.ClientName, occ.Solicitor, occ.Title,
		occ.Description, occ.Status, occ.Deadline, occ.ClosingDate, occ.ClosedBy, occ.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update occurrence: %w", err)
	}
	return nil
}

// Delete remove uma ocorrência.
func (r *OccurrenceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM occurrences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete occurrence: %w", err)
	}
	return nil
}

func scanOccurrences(rows pgx.Rows) ([]*entity.Occurrence, error) {
	defer rows.Close()
	var list []*entity.Occurrence
	for rows.Next() {
		var o entity.Occurrence
		if err := rows.Scan(&o.ID, &o.ClientID, &o.ClientName, &o.Solicitor, &o.Title, &o.Description,
			&o.Status, &o.OpeningDate, &o.Deadline, &o.ClosingDate, &o.ClosedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan occurrence: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
