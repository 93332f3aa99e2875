package usecase

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/RRHH-api/internal/application/dto"
	"github.com/jhoicas/RRHH-api/internal/domain"
	"github.com/jhoicas/RRHH-api/internal/domain/entity"
	"github.com/jhoicas/RRHH-api/internal/domain/repository"
)

// CandidateUseCase ciclo de vida del candidato: CRUD, contratación y currículum.
type CandidateUseCase struct {
	candidateRepo repository.CandidateRepository
	employeeRepo  repository.EmployeeRepository
	store         FileStore
	// removeOnHire: eliminar el registro del candidato tras contratarlo (configurable).
	removeOnHire bool
}

// NewCandidateUseCase construye el caso de uso.
func NewCandidateUseCase(
	candidateRepo repository.CandidateRepository,
	employeeRepo repository.EmployeeRepository,
	store FileStore,
	removeOnHire bool,
) *CandidateUseCase {
	return &CandidateUseCase{
		candidateRepo: candidateRepo,
		employeeRepo:  employeeRepo,
		store:         store,
		removeOnHire:  removeOnHire,
	}
}

// Create crea un candidato; guarda el currículum si viene adjunto. Estado por defecto New.
func (uc *CandidateUseCase) Create(in dto.CreateCandidateRequest, resume *FileUpload) (*dto.CandidateResponse, error) {
	existing, _ := uc.candidateRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	resumePath := ""
	if resume != nil {
		path, err := uc.store.SaveResume(resume.Name, resume.Content, resume.Size)
		if err != nil {
			return nil, err
		}
		resumePath = path
	}

	status := in.Status
	if status == "" {
		status = entity.CandidateNew
	}
	candidate := &entity.Candidate{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Position:   in.Position,
		Experience: in.Experience,
		Status:     status,
		Resume:     resumePath,
		CreatedAt:  time.Now(),
	}
	if err := uc.candidateRepo.Create(candidate); err != nil {
		return nil, err
	}
	return toCandidateResponse(candidate), nil
}

// List devuelve todos los candidatos.
func (uc *CandidateUseCase) List() ([]dto.CandidateResponse, error) {
	candidates, err := uc.candidateRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, *toCandidateResponse(c))
	}
	return out, nil
}

// GetByID obtiene un candidato por ID.
func (uc *CandidateUseCase) GetByID(id string) (*dto.CandidateResponse, error) {
	candidate, err := uc.candidateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, domain.ErrNotFound
	}
	return toCandidateResponse(candidate), nil
}

// UpdateStatus sobrescribe el estado con el valor dado, sin validar la transición.
func (uc *CandidateUseCase) UpdateStatus(id, status string) (*dto.CandidateResponse, error) {
	candidate, err := uc.candidateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, domain.ErrNotFound
	}
	candidate.Status = status
	if err := uc.candidateRepo.Update(candidate); err != nil {
		return nil, err
	}
	return toCandidateResponse(candidate), nil
}

// Delete elimina el candidato y, si tiene currículum, borra el archivo del disco (best-effort).
func (uc *CandidateUseCase) Delete(id string) error {
	candidate, err := uc.candidateRepo.GetByID(id)
	if err != nil {
		return err
	}
	if candidate == nil {
		return domain.ErrNotFound
	}
	if candidate.Resume != "" {
		if err := uc.store.Remove(candidate.Resume); err != nil {
			return err
		}
	}
	return uc.candidateRepo.Delete(id)
}

// Hire promueve un candidato Selected a empleado. Copia name/email/phone/position/resume;
// department y status toman los defaults de Employee. Si removeOnHire está activo, el
// registro del candidato se elimina (solo el registro: el currículum ahora lo referencia
// el empleado, así que el archivo se conserva).
func (uc *CandidateUseCase) Hire(id string) (*dto.EmployeeResponse, error) {
	candidate, err := uc.candidateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, domain.ErrNotFound
	}
	if candidate.Status != entity.CandidateSelected {
		return nil, domain.ErrCandidateNotSelected
	}
	existing, _ := uc.employeeRepo.GetByEmail(candidate.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	employee := &entity.Employee{
		ID:         uuid.New().String(),
		Name:       candidate.Name,
		Email:      candidate.Email,
		Phone:      candidate.Phone,
		Position:   candidate.Position,
		Department: entity.DefaultDepartment,
		Status:     entity.EmployeeActive,
		Resume:     candidate.Resume,
		JoinDate:   now,
		CreatedAt:  now,
	}
	if err := uc.employeeRepo.Create(employee); err != nil {
		return nil, err
	}

	if uc.removeOnHire {
		if err := uc.candidateRepo.Delete(candidate.ID); err != nil {
			return nil, err
		}
	}
	return toEmployeeResponse(employee), nil
}

// DownloadResume devuelve la ruta en disco y el nombre del archivo para streaming.
func (uc *CandidateUseCase) DownloadResume(id string) (path, filename string, err error) {
	candidate, err := uc.candidateRepo.GetByID(id)
	if err != nil {
		return "", "", err
	}
	if candidate == nil {
		return "", "", domain.ErrNotFound
	}
	if candidate.Resume == "" || !uc.store.Exists(candidate.Resume) {
		return "", "", domain.ErrFileNotFound
	}
	return candidate.Resume, filepath.Base(candidate.Resume), nil
}

func toCandidateResponse(c *entity.Candidate) *dto.CandidateResponse {
	if c == nil {
		return nil
	}
	return &dto.CandidateResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Position:   c.Position,
		Experience: c.Experience,
		Status:     c.Status,
		Resume:     c.Resume,
		CreatedAt:  c.CreatedAt,
	}
}
