package entity

import "time"

// Roles válidos para User.
const (
	RoleHR       = "HR"
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

// User representa una cuenta del sistema (acceso a la API, no un empleado).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // HR, Admin, Employee
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
