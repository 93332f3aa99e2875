package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/RRHH-api/internal/application/dto"
	"github.com/jhoicas/RRHH-api/internal/domain"
	"github.com/jhoicas/RRHH-api/internal/domain/entity"
	"github.com/jhoicas/RRHH-api/internal/domain/repository"
)

// LeaveUseCase solicitudes de permiso: CRUD con elegibilidad basada en asistencia.
type LeaveUseCase struct {
	leaveRepo      repository.LeaveRepository
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
	store          FileStore
	reportGen      LeaveReportGenerator
}

// NewLeaveUseCase construye el caso de uso.
func NewLeaveUseCase(
	leaveRepo repository.LeaveRepository,
	employeeRepo repository.EmployeeRepository,
	attendanceRepo repository.AttendanceRepository,
	store FileStore,
	reportGen LeaveReportGenerator,
) *LeaveUseCase {
	return &LeaveUseCase{
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		store:          store,
		reportGen:      reportGen,
	}
}

// Create registra una solicitud. Requiere empleado Active y al menos una asistencia
// Present de ese empleado (cualquier fecha). Estado por defecto Pending.
func (uc *LeaveUseCase) Create(in dto.CreateLeaveRequest, document *FileUpload) (*dto.LeaveWithEmployeeResponse, error) {
	if in.EmployeeID == "" || in.StartDate == "" || in.EndDate == "" || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	startDate, err := parseDate(in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	endDate, err := parseDate(in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

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

	hasPresent, err := uc.attendanceRepo.HasPresent(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !hasPresent {
		return nil, domain.ErrLeaveNotEligible
	}

	documentPath := ""
	if document != nil {
		path, err := uc.store.SaveDocument(document.Name, document.Content, document.Size)
		if err != nil {
			return nil, err
		}
		documentPath = path
	}

	status := in.Status
	if status == "" {
		status = entity.LeavePending
	}
	leave := &entity.Leave{
		ID:         uuid.New().String(),
		EmployeeID: in.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     in.Reason,
		Status:     status,
		Document:   documentPath,
		CreatedAt:  time.Now(),
	}
	if err := uc.leaveRepo.Create(leave); err != nil {
		return nil, err
	}

	joined, err := uc.leaveRepo.GetByIDWithEmployee(leave.ID)
	if err != nil {
		return nil, err
	}
	if joined == nil {
		// Recién insertado; si no aparece en el join algo está muy mal en la store.
		return nil, fmt.Errorf("leave %s no encontrado tras crear", leave.ID)
	}
	return toLeaveWithEmployeeResponse(joined), nil
}

// List devuelve todas las solicitudes con join, creación descendente.
func (uc *LeaveUseCase) List() ([]dto.LeaveWithEmployeeResponse, error) {
	leaves, err := uc.leaveRepo.List()
	if err != nil {
		return nil, err
	}
	return toLeaveWithEmployeeResponses(leaves), nil
}

// ListApproved devuelve las aprobadas con join, fecha de inicio ascendente.
func (uc *LeaveUseCase) ListApproved() ([]dto.LeaveWithEmployeeResponse, error) {
	leaves, err := uc.leaveRepo.ListApproved()
	if err != nil {
		return nil, err
	}
	return toLeaveWithEmployeeResponses(leaves), nil
}

// ApprovedReport genera el PDF de permisos aprobados.
func (uc *LeaveUseCase) ApprovedReport() ([]byte, error) {
	leaves, err := uc.leaveRepo.ListApproved()
	if err != nil {
		return nil, err
	}
	return uc.reportGen.GenerateApprovedLeavesPDF(leaves)
}

// ListByEmployee devuelve las solicitudes de un empleado, creación descendente.
func (uc *LeaveUseCase) ListByEmployee(employeeID string) ([]dto.LeaveResponse, error) {
	employee, err := uc.employeeRepo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	leaves, err := uc.leaveRepo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, *toLeaveResponse(l))
	}
	return out, nil
}

// UpdateStatus sobrescribe el estado y devuelve el resultado con join.
func (uc *LeaveUseCase) UpdateStatus(id, status string) (*dto.LeaveWithEmployeeResponse, error) {
	leave, err := uc.leaveRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if leave == nil {
		return nil, domain.ErrNotFound
	}
	leave.Status = status
	if err := uc.leaveRepo.Update(leave); err != nil {
		return nil, err
	}
	joined, err := uc.leaveRepo.GetByIDWithEmployee(id)
	if err != nil {
		return nil, err
	}
	if joined == nil {
		return nil, domain.ErrNotFound
	}
	return toLeaveWithEmployeeResponse(joined), nil
}

// Delete elimina la solicitud. El documento asociado se conserva en disco.
func (uc *LeaveUseCase) Delete(id string) error {
	leave, err := uc.leaveRepo.GetByID(id)
	if err != nil {
		return err
	}
	if leave == nil {
		return domain.ErrNotFound
	}
	return uc.leaveRepo.Delete(id)
}

// parseDate acepta fecha sola o timestamp RFC3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func toLeaveResponse(l *entity.Leave) *dto.LeaveResponse {
	if l == nil {
		return nil
	}
	return &dto.LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		StartDate:  l.StartDate,
		EndDate:    l.EndDate,
		Reason:     l.Reason,
		Status:     l.Status,
		Document:   l.Document,
		CreatedAt:  l.CreatedAt,
	}
}

func toLeaveWithEmployeeResponse(l *entity.LeaveWithEmployee) *dto.LeaveWithEmployeeResponse {
	return &dto.LeaveWithEmployeeResponse{
		LeaveResponse: *toLeaveResponse(&l.Leave),
		Employee:      toEmployeeSummaryResponse(l.Employee),
	}
}

func toLeaveWithEmployeeResponses(leaves []*entity.LeaveWithEmployee) []dto.LeaveWithEmployeeResponse {
	out := make([]dto.LeaveWithEmployeeResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, *toLeaveWithEmployeeResponse(l))
	}
	return out
}
