package repository

import "github.com/jhoicas/RRHH-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los getters devuelven (nil, nil) cuando no existe el registro.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
