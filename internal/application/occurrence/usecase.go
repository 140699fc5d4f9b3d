// Package occurrence implementa os chamados de suporte e a máquina de
// status deles. Qualquer status pode ir para qualquer outro; entrar em
// "resolvida" carimba data de fechamento e usuário.
package occurrence

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ast7/gestao-api/internal/application/dto"
	"github.com/ast7/gestao-api/internal/domain"
	"github.com/ast7/gestao-api/internal/domain/entity"
	"github.com/ast7/gestao-api/internal/domain/repository"
)

// UseCase casos de uso de ocorrências.
type UseCase struct {
	occRepo    repository.OccurrenceRepository
	clientRepo repository.ClientRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(occRepo repository.OccurrenceRepository, clientRepo repository.ClientRepository) *UseCase {
	return &UseCase{occRepo: occRepo, clientRepo: clientRepo}
}

// Create abre uma ocorrência: status inicial "aberta" e data de abertura
// definidos no servidor.
func (uc *UseCase) Create(in dto.CreateOccurrenceRequest) (*dto.OccurrenceResponse, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	occ := &entity.Occurrence{
		ID:          uuid.New().String(),
		ClientID:    client.ID,
		ClientName:  client.Name,
		Solicitor:   in.Solicitor,
		Title:       in.Title,
		Description: in.Description,
		Status:      entity.OccurrenceOpen,
		OpeningDate: now,
		Deadline:    in.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.occRepo.Create(occ); err != nil {
		return nil, err
	}
	return toResponse(occ, now), nil
}

// Update aplica uma atualização parcial. A transição para "resolvida"
// vinda de qualquer outro status carimba ClosingDate=now e
// ClosedBy=userID; sair de "resolvida" não limpa o carimbo (trilha de
// auditoria preservada).
func (uc *UseCase) Update(id, userID string, in dto.UpdateOccurrenceRequest) (*dto.OccurrenceResponse, error) {
	occ, err := uc.occRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if occ == nil {
		return nil, domain.ErrNotFound
	}

	if in.Title != nil {
		if len(*in.Title) < 5 {
			return nil, fmt.Errorf("%w: título muito curto", domain.ErrInvalidInput)
		}
		occ.Title = *in.Title
	}
	if in.Description != nil {
		if len(*in.Description) < 10 {
			return nil, fmt.Errorf("%w: descrição detalhada necessária", domain.ErrInvalidInput)
		}
		occ.Description = *in.Description
	}
	if in.Deadline != nil {
		if in.Deadline.IsZero() {
			return nil, fmt.Errorf("%w: prazo obrigatório", domain.ErrInvalidInput)
		}
		occ.Deadline = *in.Deadline
	}
	now := time.Now()
	if in.Status != nil {
		if !entity.ValidOccurrenceStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status desconhecido", domain.ErrInvalidInput)
		}
		if *in.Status == entity.OccurrenceResolved && occ.Status != entity.OccurrenceResolved {
			closed := now
			occ.ClosingDate = &closed
			occ.ClosedBy = userID
		}
		occ.Status = *in.Status
	}
	occ.UpdatedAt = now

	if err := uc.occRepo.Update(occ); err != nil {
		return nil, err
	}
	return toResponse(occ, now), nil
}

// Delete exclui uma ocorrência.
func (uc *UseCase) Delete(id string) error {
	occ, err := uc.occRepo.GetByID(id)
	if err != nil {
		return err
	}
	if occ == nil {
		return domain.ErrNotFound
	}
	return uc.occRepo.Delete(id)
}

// GetByID devolve uma ocorrência.
func (uc *UseCase) GetByID(id string) (*dto.OccurrenceResponse, error) {
	occ, err := uc.occRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if occ == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(occ, time.Now()), nil
}

// List lista ocorrências com paginação.
func (uc *UseCase) List(limit, offset int) ([]dto.OccurrenceResponse, error) {
	occs, err := uc.occRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]dto.OccurrenceResponse, 0, len(occs))
	for _, o := range occs {
		out = append(out, *toResponse(o, now))
	}
	return out, nil
}

func validateCreate(in dto.CreateOccurrenceRequest) error {
	switch {
	case in.ClientID == "":
		return fmt.Errorf("%w: selecione um cliente", domain.ErrInvalidInput)
	case len(in.Solicitor) < 2:
		return fmt.Errorf("%w: solicitante obrigatório", domain.ErrInvalidInput)
	case len(in.Title) < 5:
		return fmt.Errorf("%w: título muito curto", domain.ErrInvalidInput)
	case len(in.Description) < 10:
		return fmt.Errorf("%w: descrição detalhada necessária", domain.ErrInvalidInput)
	case in.Deadline.IsZero():
		return fmt.Errorf("%w: prazo obrigatório", domain.ErrInvalidInput)
	}
	return nil
}

func toResponse(o *entity.Occurrence, now time.Time) *dto.OccurrenceResponse {
	return &dto.OccurrenceResponse{
		ID:          o.ID,
		ClientID:    o.ClientID,
		ClientName:  o.ClientName,
		Solicitor:   o.Solicitor,
		Title:       o.Title,
		Description: o.Description,
		Status:      o.Status,
		OpeningDate: o.OpeningDate,
		Deadline:    o.Deadline,
		ClosingDate: o.ClosingDate,
		ClosedBy:    o.ClosedBy,
		Overdue:     o.Overdue(now),
	}
}
