package entity

import "time"

// Papéis de usuário.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User é um perfil de acesso ao sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
