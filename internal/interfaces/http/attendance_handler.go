package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/RRHH-api/internal/application/dto"
	"github.com/jhoicas/RRHH-api/internal/application/usecase"
	"github.com/jhoicas/RRHH-api/internal/domain"
)

// AttendanceHandler maneja las peticiones HTTP para Attendance (protegido, RRHH).
type AttendanceHandler struct {
	uc *usecase.AttendanceUseCase
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *usecase.AttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar asistencia
// @Tags         attendance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAttendanceRequest  true  "employee, date, status"
// @Success      201  {object}  dto.AttendanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/attendance [post]
func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.EmployeeID == "" || in.Date.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employee y date son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		case domain.ErrEmployeeInactive:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPLOYEE_INACTIVE", Message: "solo empleados activos registran asistencia"})
		case domain.ErrAttendanceExists:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ATTENDANCE_EXISTS", Message: "ya existe asistencia para esa fecha"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar asistencias (con datos del empleado)
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AttendanceWithEmployeeResponse
// @Router       /api/attendance [get]
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// ListByEmployee godoc
// @Summary      Listar asistencias de un empleado
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      200  {array}  dto.AttendanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attendance/employee/{id} [get]
func (h *AttendanceHandler) ListByEmployee(c *fiber.Ctx) error {
	out, err := h.uc.ListByEmployee(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Actualizar estado de una asistencia
// @Tags         attendance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.UpdateAttendanceStatusRequest  true  "Nuevo estado (vacío = sin cambio)"
// @Success      200  {object}  dto.AttendanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attendance/{id} [put]
func (h *AttendanceHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateAttendanceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro de asistencia no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un registro de asistencia
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attendance/{id} [delete]
func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro de asistencia no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "registro de asistencia eliminado"})
}
