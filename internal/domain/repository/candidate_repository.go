package repository

import "github.com/jhoicas/RRHH-api/internal/domain/entity"

// CandidateRepository define el puerto de persistencia para Candidate.
// Los getters devuelven (nil, nil) cuando no existe el registro.
type CandidateRepository interface {
	Create(candidate *entity.Candidate) error
	GetByID(id string) (*entity.Candidate, error)
	GetByEmail(email string) (*entity.Candidate, error)
	List() ([]*entity.Candidate, error)
	Update(candidate *entity.Candidate) error
	Delete(id string) error
}
