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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementação de ClientRepository (usável com pool ou tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste um novo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, cnpj, contact_name, email, whatsapp, address, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.CNPJ, client.ContactName, client.Email, client.WhatsApp,
		client.Address, client.Active, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `
		SELECT id, name, cnpj, contact_name, email, whatsapp, address, active, created_at, updated_at
		FROM clients WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get client")
}

// GetByCNPJ obtém um cliente pelo CNPJ.
func (r *ClientRepo) GetByCNPJ(cnpj string) (*entity.Client, error) {
	query := `
		SELECT id, name, cnpj, contact_name, email, whatsapp, address, active, created_at, updated_at
		FROM clients WHERE cnpj = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, cnpj), "get client by cnpj")
}

// List lista clientes com paginação, ordenados por nome.
func (r *ClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT id, name, cnpj, contact_name, email, whatsapp, address, active, created_at, updated_at
		FROM clients ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return scanClients(rows)
}

// ListAll lista todos os clientes (agregações do dashboard).
func (r *ClientRepo) ListAll() ([]*entity.Client, error) {
	query := `
		SELECT id, name, cnpj, contact_name, email, whatsapp, address, active, created_at, updated_at
		FROM clients ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all clients: %w", err)
	}
	return scanClients(rows)
}

// Update atualiza um cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, cnpj = $3, contact_name = $4, email = $5, whatsapp = $6,
			address = $7, active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.CNPJ, client.ContactName, client.Email, client.WhatsApp,
		client.Address, client.Active, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete remove um cliente. Licenças e mensalidades caem em cascata
// (FK ON DELETE CASCADE).
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func (r *ClientRepo) scanOne(row pgx.Row, op string) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.Name, &c.CNPJ, &c.ContactName, &c.Email, &c.WhatsApp,
		&c.Address, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func scanClients(rows pgx.Rows) ([]*entity.Client, error) {
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.CNPJ, &c.ContactName, &c.Email, &c.WhatsApp,
			&c.Address, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
