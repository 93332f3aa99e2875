package entity

import "time"

// Estados válidos para Leave.
const (
	LeavePending  = "Pending"
	LeaveApproved = "Approved"
	LeaveRejected = "Rejected"
)

// Leave solicitud de permiso/vacaciones de un empleado.
type Leave struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     string // Pending, Approved, Rejected
	Document   string // ruta del archivo en el storage local; vacío si no hay
	CreatedAt  time.Time
}

// LeaveWithEmployee solicitud con el resumen del empleado (join para presentación).
type LeaveWithEmployee struct {
	Leave
	Employee EmployeeSummary
}
