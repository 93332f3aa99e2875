package entity

import "time"

// Estados válidos para Attendance.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceLeave   = "Leave"
)

// Attendance registro diario de asistencia de un empleado.
// Invariante: a lo sumo un registro por (EmployeeID, Date); Date se trunca a día calendario.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     string // Present, Absent, Leave
	CreatedAt  time.Time
}

// AttendanceWithEmployee asistencia con el resumen del empleado (join para presentación).
type AttendanceWithEmployee struct {
	Attendance
	Employee EmployeeSummary
}
