package repository

import (
	"time"

	"github.com/jhoicas/RRHH-api/internal/domain/entity"
)

// AttendanceRepository define el puerto de persistencia para Attendance.
// Los getters devuelven (nil, nil) cuando no existe el registro.
type AttendanceRepository interface {
	// Create persiste el registro. Si ya existe uno para (employee, date) devuelve
	// domain.ErrAttendanceExists (el constraint único de la store es el árbitro final).
	Create(attendance *entity.Attendance) error
	GetByID(id string) (*entity.Attendance, error)
	// ExistsForDate indica si ya hay registro para ese empleado en ese día calendario.
	ExistsForDate(employeeID string, date time.Time) (bool, error)
	// HasPresent indica si el empleado tiene al menos una asistencia Present (cualquier fecha).
	HasPresent(employeeID string) (bool, error)
	// List devuelve todas las asistencias con el resumen del empleado, fecha descendente.
	List() ([]*entity.AttendanceWithEmployee, error)
	// ListByEmployee devuelve las asistencias de un empleado, fecha descendente.
	ListByEmployee(employeeID string) ([]*entity.Attendance, error)
	Update(attendance *entity.Attendance) error
	Delete(id string) error
}
