package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

var _ repository.LicenseRepository = (*LicenseRepo)(nil)

// LicenseRepo implementação de LicenseRepository (usável com pool ou tx).
type LicenseRepo struct {
	q Querier
}

// NewLicenseRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewLicenseRepository(q Querier) *LicenseRepo {
	return &LicenseRepo{q: q}
}

// Create persiste uma nova licença.
func (r *LicenseRepo) Create(license *entity.SoftwareLicense) error {
	query := `
		INSERT INTO client_software_licenses
			(id, client_id, software_id, software_name, type, acquisition_date, price, returned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		license.ID, license.ClientID, license.SoftwareID, license.SoftwareName, license.Type,
		license.AcquisitionDate, license.Price, license.Returned, license.CreatedAt, license.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert license: %w", err)
	}
	return nil
}

// GetByID obtém uma licença por ID.
func (r *LicenseRepo) GetByID(id string) (*entity.SoftwareLicense, error) {
	query := `
		SELECT id, client_id, software_id, software_name, type, acquisition_date, price, returned, created_at, updated_at
		FROM client_software_licenses WHERE id = $1`
	var l entity.SoftwareLicense
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.ClientID, &l.SoftwareID, &l.SoftwareName, &l.Type,
		&l.AcquisitionDate, &l.Price, &l.Returned, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get license: %w", err)
	}
	return &l, nil
}

// ListByClient lista as licenças do cliente, mais recentes primeiro.
func (r *LicenseRepo) ListByClient(clientID string) ([]*entity.SoftwareLicense, error) {
	query := `
		SELECT id, client_id, software_id, software_name, type, acquisition_date, price, returned, created_at, updated_at
		FROM client_software_licenses WHERE client_id = $1 ORDER BY acquisition_date DESC`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.SoftwareLicense
	for rows.Next() {
		var l entity.SoftwareLicense
		if err := rows.Scan(&l.ID, &l.ClientID, &l.SoftwareID, &l.SoftwareName, &l.Type,
			&l.AcquisitionDate, &l.Price, &l.Returned, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan license: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update atualiza uma licença.
func (r *LicenseRepo) Update(license *entity.SoftwareLicense) error {
	query := `
		UPDATE client_software_licenses
		SET software_id = $2, software_name = $3, type = $4, acquisition_date = $5, price = $6,
			returned = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		license.ID, license.SoftwareID, license.SoftwareName, license.Type, license.AcquisitionDate,
		license.Price, license.Returned, license.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update license: %w", err)
	}
	return nil
}

// Delete remove uma licença.
func (r *LicenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM client_software_licenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete license: %w", err)
	}
	return nil
}
