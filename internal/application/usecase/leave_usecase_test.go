package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/RRHH-api/internal/application/dto"
	"github.com/jhoicas/RRHH-api/internal/application/usecase"
	"github.com/jhoicas/RRHH-api/internal/domain"
	"github.com/jhoicas/RRHH-api/internal/domain/entity"
)

type leaveFixture struct {
	uc         *usecase.LeaveUseCase
	leaves     *fakeLeaveRepo
	employees  *fakeEmployeeRepo
	attendance *fakeAttendanceRepo
	store      *fakeFileStore
	reportGen  *fakeReportGenerator
}

func newLeaveFixture() *leaveFixture {
	employees := newFakeEmployeeRepo()
	attendance := newFakeAttendanceRepo(employees)
	leaves := newFakeLeaveRepo(employees)
	store := newFakeFileStore()
	reportGen := &fakeReportGenerator{}
	return &leaveFixture{
		uc:         usecase.NewLeaveUseCase(leaves, employees, attendance, store, reportGen),
		leaves:     leaves,
		employees:  employees,
		attendance: attendance,
		store:      store,
		reportGen:  reportGen,
	}
}

// seedPresent registra una asistencia Present para que el empleado sea elegible.
func seedPresent(t *testing.T, repo *fakeAttendanceRepo, employeeID string) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.Attendance{
		ID:         "att-" + employeeID,
		EmployeeID: employeeID,
		Date:       time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		Status:     entity.AttendancePresent,
	}))
}

func validLeaveRequest(employeeID string) dto.CreateLeaveRequest {
	return dto.CreateLeaveRequest{
		EmployeeID: employeeID,
		StartDate:  "2026-04-01",
		EndDate:    "2026-04-05",
		Reason:     "Vacaciones familiares",
	}
}

func TestLeaveCreate_CamposRequeridos(t *testing.T) {
	f := newLeaveFixture()
	seedEmployee(t, f.employees, "emp-1", entity.EmployeeActive)

	in := validLeaveRequest("emp-1")
	in.Reason = ""
	_, err := f.uc.Create(in, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLeaveCreate_FechaInvalida(t *testing.T) {
	f := newLeaveFixture()
	seedEmployee(t, f.employees, "emp-1", entity.EmployeeActive)

	in := validLeaveRequest("emp-1")
	in.StartDate = "01/04/2026"
	_, err := f.uc.Create(in, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLeaveCreate_EmpleadoNoExiste(t *testing.T) {
	f := newLeaveFixture()
	_, err := f.uc.Create(validLeaveRequest("no-existe"), nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLeaveCreate_EmpleadoInactivo(t *testing.T) {
	f := newLeaveFixture()
	seedEmployee(t, f.employees, "emp-1", entity.EmployeeInactive)
	seedPresent(t, f.attendance, "emp-1")

	_, err := f.uc.Create(validLeaveRequest("emp-1"), nil)
	assert.ErrorIs(t, err, domain.ErrEmployeeInactive)
}

func TestLeaveCreate_SinAsistenciaPresent_NoElegible(t *testing.T) {
	f := newLeaveFixture()
	seedEmployee(t, f.employees, "emp-1", entity.EmployeeActive)

	_, err := f.uc.Create(validLeaveRequest("emp-1"), nil)
	assert.ErrorIs(t, err, domain.ErrLeaveNotEligible)
}

func TestLeaveCreate_AsistenciaAbsentNoCuenta(t *testing.T) {
	f := newLeaveFixture()
	seedEmployee(t, f.employees, "emp-1", entity.EmployeeActive)
	require.NoError(t, f.attendance.Create(&entity.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Date:       time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		Status:     entity.AttendanceAbsent,
	}))

	_, err := f.uc.Create(validLeaveRequest("emp-1"), nil)
	assert.ErrorIs(t, err, domain.ErrLeaveNotEligible,
		"solo asistencias Present hacen elegible al empleado")
}

func TestLeaveCreate_EstadoPorDefectoPendingYJoin(t *testing.T) {
	f := newLeaveFixture()
	seedEmployee(t, f.employees, "emp-1", entity.EmployeeActive)
	seedPresent(t, f.attendance, "emp-1")

	out, err := f.uc.Create(validLeaveRequest("emp-1"), nil)
	require.NoError(t, err)

	assert.Equal(t, entity.LeavePending, out.Status)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), out.StartDate)
	assert.Equal(t, "emp-1", out.Employee.ID, "la respuesta incluye el resumen del empleado")
	assert.Equal(t, "Carlos Mora", out.Employee.Name)
}

func TestLeaveCreate_GuardaDocumento(t *testing.T) {
	f := newLeaveFixture()
	seedEmployee(t, f.employees, "emp-1", entity.EmployeeActive)
	seedPresent(t, f.attendance, "emp-1")

	out, err := f.uc.Create(validLeaveRequest("emp-1"), &usecase.FileUpload{
		Name:    "incapacidad.pdf",
		Size:    2048,
		Content: strings.NewReader("contenido"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Document)
	assert.True(t, f.store.Exists(out.Document))
}

func TestLeaveUpdateStatus_DevuelveJoin(t *testing.T) {
	f := newLeaveFixture()
	seedEmployee(t, f.employees, "emp-1", entity.EmployeeActive)
	seedPresent(t, f.attendance, "emp-1")

	created, err := f.uc.Create(validLeaveRequest("emp-1"), nil)
	require.NoError(t, err)

	out, err := f.uc.UpdateStatus(created.ID, entity.LeaveApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.LeaveApproved, out.Status)
	assert.Equal(t, "emp-1", out.Employee.ID)
}

func TestLeaveListApproved_SoloAprobadas(t *testing.T) {
	f := newLeaveFixture()
	seedEmployee(t, f.employees, "emp-1", entity.EmployeeActive)
	seedPresent(t, f.attendance, "emp-1")

	first, err := f.uc.Create(validLeaveRequest("emp-1"), nil)
	require.NoError(t, err)
	second, err := f.uc.Create(validLeaveRequest("emp-1"), nil)
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(first.ID, entity.LeaveApproved)
	require.NoError(t, err)
	_, err = f.uc.UpdateStatus(second.ID, entity.LeaveRejected)
	require.NoError(t, err)

	out, err := f.uc.ListApproved()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, first.ID, out[0].ID)
}

func TestLeaveApprovedReport_GeneraPDFConFilas(t *testing.T) {
	f := newLeaveFixture()
	seedEmployee(t, f.employees, "emp-1", entity.EmployeeActive)
	seedPresent(t, f.attendance, "emp-1")

	created, err := f.uc.Create(validLeaveRequest("emp-1"), nil)
	require.NoError(t, err)
	_, err = f.uc.UpdateStatus(created.ID, entity.LeaveApproved)
	require.NoError(t, err)

	pdfBytes, err := f.uc.ApprovedReport()
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, 1, f.reportGen.rows, "el reporte debe recibir solo las aprobadas")
}

func TestLeaveListByEmployee_EmpleadoNoExiste(t *testing.T) {
	f := newLeaveFixture()
	_, err := f.uc.ListByEmployee("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLeaveDelete_ConservaElDocumento(t *testing.T) {
	f := newLeaveFixture()
	seedEmployee(t, f.employees, "emp-1", entity.EmployeeActive)
	seedPresent(t, f.attendance, "emp-1")

	created, err := f.uc.Create(validLeaveRequest("emp-1"), &usecase.FileUpload{
		Name:    "soporte.pdf",
		Size:    100,
		Content: strings.NewReader("x"),
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(created.ID))
	assert.True(t, f.store.Exists(created.Document),
		"borrar la solicitud no elimina el documento del storage")
}

func TestLeaveDelete_NoExiste(t *testing.T) {
	f := newLeaveFixture()
	err := f.uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
