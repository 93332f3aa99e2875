package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/RRHH-api/internal/domain"
	"github.com/jhoicas/RRHH-api/internal/domain/entity"
	"github.com/jhoicas/RRHH-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo implementación del puerto AttendanceRepository sobre PostgreSQL.
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador de persistencia para asistencias. Pasar pool o tx (Querier).
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

// Create persiste un registro de asistencia. El constraint único (employee_id, date)
// es el árbitro final bajo concurrencia: su violación se devuelve como ErrAttendanceExists.
func (r *AttendanceRepo) Create(a *entity.Attendance) error {
	query := `
		INSERT INTO attendance (id, employee_id, date, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.EmployeeID, a.Date, a.Status, a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAttendanceExists
		}
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *AttendanceRepo) GetByID(id string) (*entity.Attendance, error) {
	query := `
		SELECT id, employee_id, date, status, created_at
		FROM attendance WHERE id = $1`
	var a entity.Attendance
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance by id: %w", err)
	}
	return &a, nil
}

// ExistsForDate indica si ya hay asistencia para (empleado, día calendario).
func (r *AttendanceRepo) ExistsForDate(employeeID string, date time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM attendance WHERE employee_id = $1 AND date = $2)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, employeeID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("attendance exists for date: %w", err)
	}
	return exists, nil
}

// HasPresent indica si el empleado tiene al menos una asistencia Present, cualquier fecha.
func (r *AttendanceRepo) HasPresent(employeeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM attendance WHERE employee_id = $1 AND status = $2)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, employeeID, entity.AttendancePresent).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("attendance has present: %w", err)
	}
	return exists, nil
}

// List devuelve todas las asistencias con el resumen del empleado, fecha descendente.
func (r *AttendanceRepo) List() ([]*entity.AttendanceWithEmployee, error) {
	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at,
		       e.id, e.name, e.email, e.position
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		ORDER BY a.date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()
	var list []*entity.AttendanceWithEmployee
	for rows.Next() {
		var a entity.AttendanceWithEmployee
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CreatedAt,
			&a.Employee.ID, &a.Employee.Name, &a.Employee.Email, &a.Employee.Position,
		); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ListByEmployee devuelve las asistencias de un empleado, fecha descendente.
func (r *AttendanceRepo) ListByEmployee(employeeID string) ([]*entity.Attendance, error) {
	query := `
		SELECT id, employee_id, date, status, created_at
		FROM attendance WHERE employee_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list attendance by employee: %w", err)
	}
	defer rows.Close()
	var list []*entity.Attendance
	for rows.Next() {
		var a entity.Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza el estado de un registro.
func (r *AttendanceRepo) Update(a *entity.Attendance) error {
	query := `UPDATE attendance SET status = $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, a.ID, a.Status)
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	return nil
}

// Delete elimina un registro por ID.
func (r *AttendanceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	return nil
}
