package http

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/RRHH-api/internal/application/dto"
	"github.com/jhoicas/RRHH-api/internal/application/usecase"
	"github.com/jhoicas/RRHH-api/internal/domain"
	"github.com/jhoicas/RRHH-api/internal/infrastructure/storage"
	"github.com/rs/zerolog/log"
)

// CandidateHandler maneja las peticiones HTTP para Candidate (protegido, RRHH).
type CandidateHandler struct {
	uc *usecase.CandidateUseCase
}

// NewCandidateHandler construye el handler.
func NewCandidateHandler(uc *usecase.CandidateUseCase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

// formUpload abre el archivo de un form multipart; (nil, nil) si el campo no vino.
func formUpload(c *fiber.Ctx, field string) (*usecase.FileUpload, multipart.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil, nil // campo ausente: subida opcional
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &usecase.FileUpload{Name: fh.Filename, Size: fh.Size, Content: f}, f, nil
}

// uploadError mapea errores de validación de archivos a 400.
func uploadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, storage.ErrTypeNotAllowed) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE_TYPE", Message: "tipo de archivo no permitido"})
	}
	if errors.Is(err, storage.ErrFileTooLarge) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo supera el tamaño máximo"})
	}
	return internalError(c, err)
}

// internalError registra la causa y responde 500 con cuerpo genérico.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

// Create godoc
// @Summary      Crear candidato
// @Tags         candidates
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  false  "Currículum (pdf/doc/docx, máx 10MB)"
// @Success      201  {object}  dto.CandidateResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/candidates [post]
func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCandidateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Position == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email, phone y position son requeridos"})
	}
	upload, f, err := formUpload(c, "resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	if f != nil {
		defer f.Close()
	}
	out, err := h.uc.Create(in, upload)
	if err != nil {
		if err == domain.ErrEmailAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "ya existe un candidato con ese email"})
		}
		return uploadError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar candidatos
// @Tags         candidates
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CandidateResponse
// @Router       /api/candidates [get]
func (h *CandidateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener candidato por ID
// @Tags         candidates
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del candidato"
// @Success      200  {object}  dto.CandidateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/candidates/{id} [get]
func (h *CandidateHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "candidato no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Actualizar estado del candidato
// @Tags         candidates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del candidato"
// @Param        body  body  dto.UpdateCandidateStatusRequest  true  "Nuevo estado"
// @Success      200  {object}  dto.CandidateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/candidates/{id} [put]
func (h *CandidateHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateCandidateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "candidato no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar candidato (y su currículum del disco)
// @Tags         candidates
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del candidato"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "candidato no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "candidato eliminado"})
}

// Hire godoc
// @Summary      Contratar candidato (promover a empleado)
// @Tags         candidates
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del candidato"
// @Success      201  {object}  dto.EmployeeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/candidates/{id}/hire [post]
func (h *CandidateHandler) Hire(c *fiber.Ctx) error {
	out, err := h.uc.Hire(c.Params("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "candidato no encontrado"})
		case domain.ErrCandidateNotSelected:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_SELECTED", Message: "solo candidatos Selected pueden contratarse"})
		case domain.ErrEmailAlreadyExists:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "ya existe un empleado con ese email"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DownloadResume godoc
// @Summary      Descargar currículum del candidato
// @Tags         candidates
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        id  path  string  true  "ID del candidato"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/candidates/{id}/resume [get]
func (h *CandidateHandler) DownloadResume(c *fiber.Ctx) error {
	path, filename, err := h.uc.DownloadResume(c.Params("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "candidato no encontrado"})
		case domain.ErrFileNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "currículum no encontrado"})
		}
		return internalError(c, err)
	}
	return c.Download(path, filename)
}
