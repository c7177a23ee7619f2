package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RolePlanner = "planner"
)

// User representa un usuario del sistema con acceso a los análisis de traslado.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, planner
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
