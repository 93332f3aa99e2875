package repository

import "github.com/jhoicas/RRHH-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
// Los getters devuelven (nil, nil) cuando no existe el registro.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByEmail(email string) (*entity.Employee, error)
	List() ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	// Delete elimina el empleado; asistencias y permisos asociados caen en cascada (FK).
	Delete(id string) error
}
