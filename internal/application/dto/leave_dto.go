package dto

import "time"

// CreateLeaveRequest entrada para solicitar permiso (multipart; el archivo llega aparte).
type CreateLeaveRequest struct {
	EmployeeID string `json:"employee" form:"employee" validate:"required"`
	StartDate  string `json:"startDate" form:"startDate" validate:"required"`
	EndDate    string `json:"endDate" form:"endDate" validate:"required"`
	Reason     string `json:"reason" form:"reason" validate:"required"`
	Status     string `json:"status" form:"status" validate:"omitempty,oneof=Pending Approved Rejected"`
}

// UpdateLeaveStatusRequest entrada para actualizar estado.
type UpdateLeaveStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Approved Rejected"`
}

// LeaveResponse salida de una solicitud de permiso.
type LeaveResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	Document   string    `json:"document"`
	CreatedAt  time.Time `json:"created_at"`
}

// LeaveWithEmployeeResponse solicitud con el resumen del empleado (join).
type LeaveWithEmployeeResponse struct {
	LeaveResponse
	Employee EmployeeSummaryResponse `json:"employee_detail"`
}
