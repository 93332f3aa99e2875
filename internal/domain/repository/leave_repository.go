package repository

import "github.com/jhoicas/RRHH-api/internal/domain/entity"

// LeaveRepository define el puerto de persistencia para Leave.
// Los getters devuelven (nil, nil) cuando no existe el registro.
type LeaveRepository interface {
	Create(leave *entity.Leave) error
	GetByID(id string) (*entity.Leave, error)
	// GetByIDWithEmployee devuelve la solicitud con el resumen del empleado (join).
	GetByIDWithEmployee(id string) (*entity.LeaveWithEmployee, error)
	// List devuelve todas las solicitudes con join, creación descendente.
	List() ([]*entity.LeaveWithEmployee, error)
	// ListApproved devuelve las aprobadas con join, fecha de inicio ascendente.
	ListApproved() ([]*entity.LeaveWithEmployee, error)
	// ListByEmployee devuelve las solicitudes de un empleado, creación descendente.
	ListByEmployee(employeeID string) ([]*entity.Leave, error)
	Update(leave *entity.Leave) error
	Delete(id string) error
}
