package dto

import "time"

// UpdateEmployeeRequest actualización parcial con punteros: nil = sin cambio,
// puntero a vacío = limpiar. Así "borrar" y "omitir" no se confunden.
type UpdateEmployeeRequest struct {
	Name       *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Email      *string    `json:"email" validate:"omitempty,email"`
	Phone      *string    `json:"phone"`
	Position   *string    `json:"position"`
	Department *string    `json:"department"`
	Status     *string    `json:"status" validate:"omitempty,oneof=Active Inactive"`
	JoinDate   *time.Time `json:"join_date"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	Status     string    `json:"status"`
	Resume     string    `json:"resume"`
	JoinDate   time.Time `json:"join_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// EmployeeSummaryResponse resumen del empleado embebido en listados con join.
type EmployeeSummaryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Position string `json:"position"`
}
