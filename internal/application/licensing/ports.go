package licensing

import (
	"context"

	"github.com/ast7/gestao-api/internal/domain/repository"
)

// TxRunner executa o callback com repositórios atados a uma transação
// única: a venda grava licença + lançamento de receita e a devolução ou
// exclusão remove ambos, tudo ou nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		licenseRepo repository.LicenseRepository,
		entryRepo repository.FinancialEntryRepository,
	) error) error
}
