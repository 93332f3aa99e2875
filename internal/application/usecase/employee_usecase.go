package usecase

import (
	"github.com/jhoicas/RRHH-api/internal/application/dto"
	"github.com/jhoicas/RRHH-api/internal/domain"
	"github.com/jhoicas/RRHH-api/internal/domain/entity"
	"github.com/jhoicas/RRHH-api/internal/domain/repository"
)

// EmployeeUseCase CRUD de empleados. El alta directa ocurre vía contratación de candidatos.
type EmployeeUseCase struct {
	repo  repository.EmployeeRepository
	store FileStore
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, store FileStore) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, store: store}
}

// List devuelve todos los empleados.
func (uc *EmployeeUseCase) List() ([]dto.EmployeeResponse, error) {
	employees, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, *toEmployeeResponse(e))
	}
	return out, nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Update aplica una actualización parcial: nil = sin cambio, puntero a vacío = limpiar.
// Si viene un currículum nuevo se guarda y reemplaza la referencia.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest, resume *FileUpload) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		employee.Name = *in.Name
	}
	if in.Email != nil {
		employee.Email = *in.Email
	}
	if in.Phone != nil {
		employee.Phone = *in.Phone
	}
	if in.Position != nil {
		employee.Position = *in.Position
	}
	if in.Department != nil {
		employee.Department = *in.Department
	}
	if in.Status != nil {
		employee.Status = *in.Status
	}
	if in.JoinDate != nil {
		employee.JoinDate = *in.JoinDate
	}
	if resume != nil {
		path, err := uc.store.SaveResume(resume.Name, resume.Content, resume.Size)
		if err != nil {
			return nil, err
		}
		employee.Resume = path
	}
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina el empleado. Asistencias y permisos asociados caen en cascada (FK).
func (uc *EmployeeUseCase) Delete(id string) error {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Department: e.Department,
		Status:     e.Status,
		Resume:     e.Resume,
		JoinDate:   e.JoinDate,
		CreatedAt:  e.CreatedAt,
	}
}

func toEmployeeSummaryResponse(s entity.EmployeeSummary) dto.EmployeeSummaryResponse {
	return dto.EmployeeSummaryResponse{
		ID:       s.ID,
		Name:     s.Name,
		Email:    s.Email,
		Position: s.Position,
	}
}
