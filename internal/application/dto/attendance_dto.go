package dto

import "time"

// CreateAttendanceRequest entrada para registrar asistencia.
type CreateAttendanceRequest struct {
	EmployeeID string    `json:"employee" validate:"required"`
	Date       time.Time `json:"date" validate:"required"`
	Status     string    `json:"status" validate:"omitempty,oneof=Present Absent Leave"`
}

// UpdateAttendanceStatusRequest actualización de estado; vacío = sin cambio.
type UpdateAttendanceStatusRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=Present Absent Leave"`
}

// AttendanceResponse salida de un registro de asistencia.
type AttendanceResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// AttendanceWithEmployeeResponse asistencia con el resumen del empleado (join).
type AttendanceWithEmployeeResponse struct {
	AttendanceResponse
	Employee EmployeeSummaryResponse `json:"employee_detail"`
}
