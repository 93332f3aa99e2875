package usecase_test

import (
	"fmt"
	"io"
	"time"

	"github.com/jhoicas/RRHH-api/internal/application/usecase"
	"github.com/jhoicas/RRHH-api/internal/domain"
	"github.com/jhoicas/RRHH-api/internal/domain/entity"
	"github.com/jhoicas/RRHH-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de repositorio y storage.
// Replican el contrato de los adaptadores de postgres: getters (nil, nil)
// cuando no existe el registro, y errores de conflicto en los constraints.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCandidateRepo struct {
	items map[string]*entity.Candidate
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{items: map[string]*entity.Candidate{}}
}

func (r *fakeCandidateRepo) Create(c *entity.Candidate) error {
	for _, existing := range r.items {
		if existing.Email == c.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCandidateRepo) GetByID(id string) (*entity.Candidate, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCandidateRepo) GetByEmail(email string) (*entity.Candidate, error) {
	for _, c := range r.items {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCandidateRepo) List() ([]*entity.Candidate, error) {
	out := make([]*entity.Candidate, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCandidateRepo) Update(c *entity.Candidate) error {
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCandidateRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeEmployeeRepo struct {
	items map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{items: map[string]*entity.Employee{}}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	for _, existing := range r.items {
		if existing.Email == e.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmployeeRepo) GetByEmail(email string) (*entity.Employee, error) {
	for _, e := range r.items {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) List() ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(r.items))
	for _, e := range r.items {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(e *entity.Employee) error {
	if _, ok := r.items[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeAttendanceRepo struct {
	items map[string]*entity.Attendance
	// employees permite resolver el join de List().
	employees *fakeEmployeeRepo
}

func newFakeAttendanceRepo(employees *fakeEmployeeRepo) *fakeAttendanceRepo {
	return &fakeAttendanceRepo{items: map[string]*entity.Attendance{}, employees: employees}
}

func (r *fakeAttendanceRepo) Create(a *entity.Attendance) error {
	for _, existing := range r.items {
		if existing.EmployeeID == a.EmployeeID && existing.Date.Equal(a.Date) {
			return domain.ErrAttendanceExists
		}
	}
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAttendanceRepo) GetByID(id string) (*entity.Attendance, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAttendanceRepo) ExistsForDate(employeeID string, date time.Time) (bool, error) {
	for _, a := range r.items {
		if a.EmployeeID == employeeID && a.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAttendanceRepo) HasPresent(employeeID string) (bool, error) {
	for _, a := range r.items {
		if a.EmployeeID == employeeID && a.Status == entity.AttendancePresent {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAttendanceRepo) List() ([]*entity.AttendanceWithEmployee, error) {
	out := make([]*entity.AttendanceWithEmployee, 0, len(r.items))
	for _, a := range r.items {
		joined := &entity.AttendanceWithEmployee{Attendance: *a}
		if e, ok := r.employees.items[a.EmployeeID]; ok {
			joined.Employee = e.Summary()
		}
		out = append(out, joined)
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListByEmployee(employeeID string) ([]*entity.Attendance, error) {
	out := []*entity.Attendance{}
	for _, a := range r.items {
		if a.EmployeeID == employeeID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) Update(a *entity.Attendance) error {
	if _, ok := r.items[a.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAttendanceRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeLeaveRepo struct {
	items     map[string]*entity.Leave
	employees *fakeEmployeeRepo
}

func newFakeLeaveRepo(employees *fakeEmployeeRepo) *fakeLeaveRepo {
	return &fakeLeaveRepo{items: map[string]*entity.Leave{}, employees: employees}
}

func (r *fakeLeaveRepo) Create(l *entity.Leave) error {
	cp := *l
	r.items[l.ID] = &cp
	return nil
}

func (r *fakeLeaveRepo) GetByID(id string) (*entity.Leave, error) {
	l, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLeaveRepo) GetByIDWithEmployee(id string) (*entity.LeaveWithEmployee, error) {
	l, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	joined := &entity.LeaveWithEmployee{Leave: *l}
	if e, ok := r.employees.items[l.EmployeeID]; ok {
		joined.Employee = e.Summary()
	}
	return joined, nil
}

func (r *fakeLeaveRepo) List() ([]*entity.LeaveWithEmployee, error) {
	out := make([]*entity.LeaveWithEmployee, 0, len(r.items))
	for id := range r.items {
		joined, _ := r.GetByIDWithEmployee(id)
		out = append(out, joined)
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListApproved() ([]*entity.LeaveWithEmployee, error) {
	out := []*entity.LeaveWithEmployee{}
	for id, l := range r.items {
		if l.Status == entity.LeaveApproved {
			joined, _ := r.GetByIDWithEmployee(id)
			out = append(out, joined)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListByEmployee(employeeID string) ([]*entity.Leave, error) {
	out := []*entity.Leave{}
	for _, l := range r.items {
		if l.EmployeeID == employeeID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) Update(l *entity.Leave) error {
	if _, ok := r.items[l.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *l
	r.items[l.ID] = &cp
	return nil
}

func (r *fakeLeaveRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// fakeFileStore registra los archivos "guardados" y los borrados.
type fakeFileStore struct {
	saved   map[string]bool
	removed []string
	nextID  int
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{saved: map[string]bool{}}
}

func (s *fakeFileStore) save(kind, originalName string) (string, error) {
	s.nextID++
	path := fmt.Sprintf("uploads/%s/%d-%s", kind, s.nextID, originalName)
	s.saved[path] = true
	return path, nil
}

func (s *fakeFileStore) SaveResume(originalName string, src io.Reader, size int64) (string, error) {
	return s.save("resumes", originalName)
}

func (s *fakeFileStore) SaveDocument(originalName string, src io.Reader, size int64) (string, error) {
	return s.save("documents", originalName)
}

func (s *fakeFileStore) Remove(path string) error {
	delete(s.saved, path)
	s.removed = append(s.removed, path)
	return nil
}

func (s *fakeFileStore) Exists(path string) bool {
	return s.saved[path]
}

// fakeReportGenerator devuelve bytes fijos y recuerda cuántas filas recibió.
type fakeReportGenerator struct {
	rows int
}

func (g *fakeReportGenerator) GenerateApprovedLeavesPDF(leaves []*entity.LeaveWithEmployee) ([]byte, error) {
	g.rows = len(leaves)
	return []byte("%PDF-fake"), nil
}

var (
	_ usecase.FileStore               = (*fakeFileStore)(nil)
	_ usecase.LeaveReportGenerator    = (*fakeReportGenerator)(nil)
	_ repository.CandidateRepository  = (*fakeCandidateRepo)(nil)
	_ repository.EmployeeRepository   = (*fakeEmployeeRepo)(nil)
	_ repository.AttendanceRepository = (*fakeAttendanceRepo)(nil)
	_ repository.LeaveRepository      = (*fakeLeaveRepo)(nil)
)
