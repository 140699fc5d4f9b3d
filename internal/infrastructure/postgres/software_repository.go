package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

var _ repository.SoftwareRepository = (*SoftwareRepo)(nil)

// SoftwareRepo implementação de SoftwareRepository.
type SoftwareRepo struct {
	q Querier
}

// NewSoftwareRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSoftwareRepository(q Querier) *SoftwareRepo {
	return &SoftwareRepo{q: q}
}

const softwareColumns = `id, name, version, price_unitary, price_network, price_cloud,
	update_price, cloud_update_price, monthly_fee, created_at, updated_at`

// Create persiste um novo software do catálogo.
func (r *SoftwareRepo) Create(software *entity.Software) error {
	query := `
		INSERT INTO softwares (` + softwareColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		software.ID, software.Name, software.Version, software.PriceUnitary, software.PriceNetwork,
		software.PriceCloud, software.UpdatePrice, software.CloudUpdatePrice, software.MonthlyFee,
		software.CreatedAt, software.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert software: %w", err)
	}
	return nil
}

// GetByID obtém um software por ID.
func (r *SoftwareRepo) GetByID(id string) (*entity.Software, error) {
	query := `SELECT ` + softwareColumns + ` FROM softwares WHERE id = $1`
	var s entity.Software
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Version, &s.PriceUnitary, &s.PriceNetwork, &s.PriceCloud,
		&s.UpdatePrice, &s.CloudUpdatePrice, &s.MonthlyFee, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get software: %w", err)
	}
	return &s, nil
}

// List lista o catálogo ordenado por nome.
func (r *SoftwareRepo) List() ([]*entity.Software, error) {
	query := `SELECT ` + softwareColumns + ` FROM softwares ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list softwares: %w", err)
	}
	defer rows.Close()
	var list []*entity.Software
	for rows.Next() {
		var s entity.Software
		if err := rows.Scan(&s.ID, &s.Name, &s.Version, &s.PriceUnitary, &s.PriceNetwork, &s.PriceCloud,
			&s.UpdatePrice, &s.CloudUpdatePrice, &s.MonthlyFee, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan software: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update atualiza um software.
func (r *SoftwareRepo) Update(software *entity.Software) error {
	query := `
		UPDATE softwares SET name = $2, version = $3, price_unitary = $4, price_network = $5,
			price_cloud = $6, update_price = $7, cloud_update_price = $8, monthly_fee = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		software.ID, software.Name, software.Version, software.PriceUnitary, software.PriceNetwork,
		software.PriceCloud, software.UpdatePrice, software.CloudUpdatePrice, software.MonthlyFee,
		software.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update software: %w", err)
	}
	return nil
}

// Delete remove um software do catálogo.
func (r *SoftwareRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM softwares WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete software: %w", err)
	}
	return nil
}
