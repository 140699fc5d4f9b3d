package repository

import "github.com/ast7/gestao-api/internal/domain/entity"

// CompanyInfoRepository porta de persistência dos dados da empresa
// (registro único).
type CompanyInfoRepository interface {
	Get() (*entity.CompanyInfo, error)
	Update(info *entity.CompanyInfo) error
}
