package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrAttendanceExists: ya hay un registro de asistencia para ese empleado y fecha.
	ErrAttendanceExists = errors.New("ya existe asistencia para esa fecha")
	// ErrEmployeeInactive: la operación requiere un empleado con estado Active.
	ErrEmployeeInactive = errors.New("el empleado no está activo")
	// ErrCandidateNotSelected: solo candidatos en estado Selected pueden contratarse.
	ErrCandidateNotSelected = errors.New("el candidato no está seleccionado")
	// ErrLeaveNotEligible: el empleado no tiene ninguna asistencia Present registrada.
	ErrLeaveNotEligible = errors.New("el empleado no tiene asistencia presente registrada")
	// ErrFileNotFound: la entidad no tiene archivo asociado o el archivo no está en disco.
	ErrFileNotFound = errors.New("archivo no encontrado")
)
