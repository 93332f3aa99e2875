package dto

import "time"

// CreateCandidateRequest entrada para crear candidato (multipart; el archivo llega aparte).
type CreateCandidateRequest struct {
	Name       string `json:"name" form:"name" validate:"required,min=1,max=200"`
	Email      string `json:"email" form:"email" validate:"required,email"`
	Phone      string `json:"phone" form:"phone" validate:"required"`
	Position   string `json:"position" form:"position" validate:"required"`
	Experience string `json:"experience" form:"experience"`
	Status     string `json:"status" form:"status" validate:"omitempty,oneof=New Scheduled Ongoing Selected Rejected"`
}

// UpdateCandidateStatusRequest entrada para actualizar estado (sobrescritura sin validar transición).
type UpdateCandidateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CandidateResponse salida de un candidato.
type CandidateResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Position   string    `json:"position"`
	Experience string    `json:"experience"`
	Status     string    `json:"status"`
	Resume     string    `json:"resume"`
	CreatedAt  time.Time `json:"created_at"`
}
