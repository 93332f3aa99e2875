package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/RRHH-api/internal/application/dto"
	"github.com/jhoicas/RRHH-api/internal/domain"
	"github.com/jhoicas/RRHH-api/internal/domain/entity"
	"github.com/jhoicas/RRHH-api/internal/domain/repository"
)

// AttendanceUseCase registro diario de asistencia por empleado.
type AttendanceUseCase struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
}

// NewAttendanceUseCase construye el caso de uso.
func NewAttendanceUseCase(attendanceRepo repository.AttendanceRepository, employeeRepo repository.EmployeeRepository) *AttendanceUseCase {
	return &AttendanceUseCase{attendanceRepo: attendanceRepo, employeeRepo: employeeRepo}
}

// Create registra asistencia para un empleado Active. La fecha se trunca a día
// calendario; a lo sumo un registro por (empleado, día). El chequeo previo es
// best-effort: bajo concurrencia decide el constraint único de la store.
func (uc *AttendanceUseCase) Create(in dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error) {
	employee, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if employee.Status != entity.EmployeeActive {
		return nil, domain.ErrEmployeeInactive
	}

	day := truncateToDay(in.Date)
	exists, err := uc.attendanceRepo.ExistsForDate(in.EmployeeID, day)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAttendanceExists
	}

	status := in.Status
	if status == "" {
		status = entity.AttendancePresent
	}
	attendance := &entity.Attendance{
		ID:         uuid.New().String(),
		EmployeeID: in.EmployeeID,
		Date:       day,
		Status:     status,
		CreatedAt:  time.Now(),
	}
	if err := uc.attendanceRepo.Create(attendance); err != nil {
		return nil, err
	}
	return toAttendanceResponse(attendance), nil
}

// List devuelve todas las asistencias con el resumen del empleado, fecha descendente.
func (uc *AttendanceUseCase) List() ([]dto.AttendanceWithEmployeeResponse, error) {
	records, err := uc.attendanceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttendanceWithEmployeeResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.AttendanceWithEmployeeResponse{
			AttendanceResponse: *toAttendanceResponse(&r.Attendance),
			Employee:           toEmployeeSummaryResponse(r.Employee),
		})
	}
	return out, nil
}

// ListByEmployee devuelve las asistencias de un empleado, fecha descendente.
func (uc *AttendanceUseCase) ListByEmployee(employeeID string) ([]dto.AttendanceResponse, error) {
	employee, err := uc.employeeRepo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	records, err := uc.attendanceRepo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttendanceResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *toAttendanceResponse(r))
	}
	return out, nil
}

// UpdateStatus sobrescribe el estado si viene un valor; vacío = sin cambio.
func (uc *AttendanceUseCase) UpdateStatus(id, status string) (*dto.AttendanceResponse, error) {
	attendance, err := uc.attendanceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if attendance == nil {
		return nil, domain.ErrNotFound
	}
	if status != "" {
		attendance.Status = status
		if err := uc.attendanceRepo.Update(attendance); err != nil {
			return nil, err
		}
	}
	return toAttendanceResponse(attendance), nil
}

// Delete elimina un registro por ID.
func (uc *AttendanceUseCase) Delete(id string) error {
	attendance, err := uc.attendanceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if attendance == nil {
		return domain.ErrNotFound
	}
	return uc.attendanceRepo.Delete(id)
}

// truncateToDay descarta la hora: dos peticiones del mismo día calendario
// cuentan como duplicado aunque lleguen con horas distintas.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toAttendanceResponse(a *entity.Attendance) *dto.AttendanceResponse {
	if a == nil {
		return nil
	}
	return &dto.AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
	}
}
