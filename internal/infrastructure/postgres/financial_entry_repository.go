package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

var _ repository.FinancialEntryRepository = (*FinancialEntryRepo)(nil)

// FinancialEntryRepo implementação de FinancialEntryRepository.
type FinancialEntryRepo struct {
	q Querier
}

// NewFinancialEntryRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFinancialEntryRepository(q Querier) *FinancialEntryRepo {
	return &FinancialEntryRepo{q: q}
}

const entryColumns = `id, type, description, category, value, date, due_date, client_id, client_name,
	supplier_id, supplier_name, license_id, payment_method, observation, created_at, updated_at`

// Create persiste um novo lançamento.
func (r *FinancialEntryRepo) Create(entry *entity.FinancialEntry) error {
	query := `
		INSERT INTO financial_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Type, entry.Description, entry.Category, entry.Value, entry.Date, entry.DueDate,
		entry.ClientID, entry.ClientName, entry.SupplierID, entry.SupplierName, entry.LicenseID,
		entry.PaymentMethod, entry.Observation, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert financial entry: %w", err)
	}
	return nil
}

// GetByID obtém um lançamento por ID.
func (r *FinancialEntryRepo) GetByID(id string) (*entity.FinancialEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM financial_entries WHERE id = $1`
	var e entity.FinancialEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Type, &e.Description, &e.Category, &e.Value, &e.Date, &e.DueDate,
		&e.ClientID, &e.ClientName, &e.SupplierID, &e.SupplierName, &e.LicenseID,
		&e.PaymentMethod, &e.Observation, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get financial entry: %w", err)
	}
	return &e, nil
}

// List lista lançamentos com paginação, mais recentes primeiro.
func (r *FinancialEntryRepo) List(limit, offset int) ([]*entity.FinancialEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM financial_entries ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list financial entries: %w", err)
	}
	return scanEntries(rows)
}

// ListAll lista todos os lançamentos (agregações e relatórios).
func (r *FinancialEntryRepo) ListAll() ([]*entity.FinancialEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM financial_entries ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all financial entries: %w", err)
	}
	return scanEntries(rows)
}

// ListByLicense lista os lançamentos gerados por uma licença.
func (r *FinancialEntryRepo) ListByLicense(licenseID string) ([]*entity.FinancialEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM financial_entries WHERE license_id = $1`
	rows, err := r.q.Query(context.Background(), query, licenseID)
	if err != nil {
		return nil, fmt.Errorf("list entries by license: %w", err)
	}
	return scanEntries(rows)
}

// Update atualiza um lançamento.
func (r *FinancialEntryRepo) Update(entry *entity.FinancialEntry) error {
	query := `
		UPDATE financial_entries SET description = $2, category = $3, value = $4, date = $5, due_date = $6,
			client_id = $7, client_name = $8, supplier_id = $9, supplier_name = $10,
			payment_method = $11, observation = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Description, entry.Category, entry.Value, entry.Date, entry.DueDate,
		entry.ClientID, entry.ClientName, entry.SupplierID, entry.SupplierName,
		entry.PaymentMethod, entry.Observation, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update financial entry: %w", err)
	}
	return nil
}

// Delete remove um lançamento.
func (r *FinancialEntryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM financial_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete financial entry: %w", err)
	}
	return nil
}

// DeleteByLicense remove os lançamentos gerados pela licença. Sem linhas
// correspondentes, é no-op.
func (r *FinancialEntryRepo) DeleteByLicense(licenseID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM financial_entries WHERE license_id = $1`, licenseID)
	if err != nil {
		return fmt.Errorf("delete entries by license: %w", err)
	}
	return nil
}

func scanEntries(rows pgx.Rows) ([]*entity.FinancialEntry, error) {
	defer rows.Close()
	var list []*entity.FinancialEntry
	for rows.Next() {
		var e entity.FinancialEntry
		if err := rows.Scan(&e.ID, &e.Type, &e.Description, &e.Category, &e.Value, &e.Date, &e.DueDate,
			&e.ClientID, &e.ClientName, &e.SupplierID, &e.SupplierName, &e.LicenseID,
			&e.PaymentMethod, &e.Observation, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan financial entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
