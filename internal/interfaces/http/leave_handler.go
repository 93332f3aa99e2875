package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/RRHH-api/internal/application/dto"
	"github.com/jhoicas/RRHH-api/internal/application/usecase"
	"github.com/jhoicas/RRHH-api/internal/domain"
)

// LeaveHandler maneja las peticiones HTTP para solicitudes de permiso.
type LeaveHandler struct {
	uc *usecase.LeaveUseCase
}

// NewLeaveHandler construye el handler.
func NewLeaveHandler(uc *usecase.LeaveUseCase) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar solicitud de permiso
// @Description  multipart/form-data con campos employee, start_date, end_date, reason, status y archivo "document" opcional
// @Tags         leaves
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.LeaveWithEmployeeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leaves [post]
func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeaveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	upload, file, err := formUpload(c, "document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el documento"})
	}
	if file != nil {
		defer file.Close()
	}

	out, err := h.uc.Create(in, upload)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employee, start_date, end_date y reason son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		case domain.ErrEmployeeInactive:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPLOYEE_INACTIVE", Message: "solo empleados activos pueden solicitar permisos"})
		case domain.ErrLeaveNotEligible:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_ELIGIBLE", Message: "el empleado no tiene asistencias Present registradas"})
		}
		return uploadError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar solicitudes de permiso (con datos del empleado)
// @Tags         leaves
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LeaveWithEmployeeResponse
// @Router       /api/leaves [get]
func (h *LeaveHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// ListApproved godoc
// @Summary      Listar permisos aprobados
// @Tags         leaves
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LeaveWithEmployeeResponse
// @Router       /api/leaves/approved [get]
func (h *LeaveHandler) ListApproved(c *fiber.Ctx) error {
	out, err := h.uc.ListApproved()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de permisos aprobados
// @Tags         leaves
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/leaves/report [get]
func (h *LeaveHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ApprovedReport()
	if err != nil {
		return internalError(c, err)
	}
	filename := fmt.Sprintf("permisos-aprobados-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// ListByEmployee godoc
// @Summary      Listar permisos de un empleado
// @Tags         leaves
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      200  {array}  dto.LeaveResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leaves/employee/{id} [get]
func (h *LeaveHandler) ListByEmployee(c *fiber.Ctx) error {
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
// @Summary      Actualizar estado de una solicitud
// @Tags         leaves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.UpdateLeaveStatusRequest  true  "Nuevo estado"
// @Success      200  {object}  dto.LeaveWithEmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leaves/{id} [put]
func (h *LeaveHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateLeaveStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una solicitud de permiso
// @Tags         leaves
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leaves/{id} [delete]
func (h *LeaveHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "solicitud eliminada"})
}
