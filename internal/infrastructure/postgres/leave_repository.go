package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/RRHH-api/internal/domain/entity"
	"github.com/jhoicas/RRHH-api/internal/domain/repository"
)

var _ repository.LeaveRepository = (*LeaveRepo)(nil)

const leaveJoinQuery = `
	SELECT l.id, l.employee_id, l.start_date, l.end_date, l.reason, l.status, l.document, l.created_at,
	       e.id, e.name, e.email, e.position
	FROM leaves l
	JOIN employees e ON e.id = l.employee_id`

// LeaveRepo implementación del puerto LeaveRepository sobre PostgreSQL.
type LeaveRepo struct {
	q Querier
}

// NewLeaveRepository construye el adaptador de persistencia para permisos. Pasar pool o tx (Querier).
func NewLeaveRepository(q Querier) *LeaveRepo {
	return &LeaveRepo{q: q}
}

// Create persiste una nueva solicitud de permiso.
func (r *LeaveRepo) Create(l *entity.Leave) error {
	query := `
		INSERT INTO leaves (id, employee_id, start_date, end_date, reason, status, document, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.EmployeeID, l.StartDate, l.EndDate, l.Reason, l.Status, l.Document, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert leave: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *LeaveRepo) GetByID(id string) (*entity.Leave, error) {
	query := `
		SELECT id, employee_id, start_date, end_date, reason, status, document, created_at
		FROM leaves WHERE id = $1`
	var l entity.Leave
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.Reason, &l.Status, &l.Document, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get leave by id: %w", err)
	}
	return &l, nil
}

// GetByIDWithEmployee obtiene una solicitud con el resumen del empleado.
func (r *LeaveRepo) GetByIDWithEmployee(id string) (*entity.LeaveWithEmployee, error) {
	query := leaveJoinQuery + ` WHERE l.id = $1`
	var l entity.LeaveWithEmployee
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.Reason, &l.Status, &l.Document, &l.CreatedAt,
		&l.Employee.ID, &l.Employee.Name, &l.Employee.Email, &l.Employee.Position,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get leave with employee: %w", err)
	}
	return &l, nil
}

// List devuelve todas las solicitudes con join, creación descendente.
func (r *LeaveRepo) List() ([]*entity.LeaveWithEmployee, error) {
	return r.listJoined(leaveJoinQuery + ` ORDER BY l.created_at DESC`)
}

// ListApproved devuelve las aprobadas con join, fecha de inicio ascendente.
func (r *LeaveRepo) ListApproved() ([]*entity.LeaveWithEmployee, error) {
	return r.listJoined(leaveJoinQuery+` WHERE l.status = $1 ORDER BY l.start_date ASC`, entity.LeaveApproved)
}

func (r *LeaveRepo) listJoined(query string, args ...any) ([]*entity.LeaveWithEmployee, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leaves: %w", err)
	}
	defer rows.Close()
	var list []*entity.LeaveWithEmployee
	for rows.Next() {
		var l entity.LeaveWithEmployee
		if err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.Reason, &l.Status, &l.Document, &l.CreatedAt,
			&l.Employee.ID, &l.Employee.Name, &l.Employee.Email, &l.Employee.Position,
		); err != nil {
			return nil, fmt.Errorf("scan leave: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListByEmployee devuelve las solicitudes de un empleado, creación descendente.
func (r *LeaveRepo) ListByEmployee(employeeID string) ([]*entity.Leave, error) {
	query := `
		SELECT id, employee_id, start_date, end_date, reason, status, document, created_at
		FROM leaves WHERE employee_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list leaves by employee: %w", err)
	}
	defer rows.Close()
	var list []*entity.Leave
	for rows.Next() {
		var l entity.Leave
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.Reason, &l.Status, &l.Document, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan leave: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza el estado de una solicitud.
func (r *LeaveRepo) Update(l *entity.Leave) error {
	query := `UPDATE leaves SET status = $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, l.ID, l.Status)
	if err != nil {
		return fmt.Errorf("update leave: %w", err)
	}
	return nil
}

// Delete elimina una solicitud por ID. El documento asociado no se borra del disco.
func (r *LeaveRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete leave: %w", err)
	}
	return nil
}
