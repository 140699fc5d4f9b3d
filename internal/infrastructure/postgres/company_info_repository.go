package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

var _ repository.CompanyInfoRepository = (*CompanyInfoRepo)(nil)

// CompanyInfoRepo implementação de CompanyInfoRepository. A tabela tem
// uma única linha, criada pela migração inicial.
type CompanyInfoRepo struct {
	q Querier
}

// NewCompanyInfoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCompanyInfoRepository(q Querier) *CompanyInfoRepo {
	return &CompanyInfoRepo{q: q}
}

// Get obtém os dados da empresa.
func (r *CompanyInfoRepo) Get() (*entity.CompanyInfo, error) {
	query := `SELECT id, name, cnpj, address, phone, email, logo_url, updated_at FROM company_info LIMIT 1`
	var info entity.CompanyInfo
	err := r.q.QueryRow(context.Background(), query).Scan(
		&info.ID, &info.Name, &info.CNPJ, &info.Address, &info.Phone, &info.Email,
		&info.LogoURL, &info.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company info: %w", err)
	}
	return &info, nil
}

// Update substitui os dados da empresa.
func (r *CompanyInfoRepo) Update(info *entity.CompanyInfo) error {
	query := `
		UPDATE company_info SET name = $2, cnpj = $3, address = $4, phone = $5, email = $6,
			logo_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		info.ID, info.Name, info.CNPJ, info.Address, info.Phone, info.Email, info.LogoURL, info.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company info: %w", err)
	}
	return nil
}
