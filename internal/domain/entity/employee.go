package entity

import "time"

// Estados válidos para Employee.
const (
	EmployeeActive   = "Active"
	EmployeeInactive = "Inactive"
)

// DefaultDepartment departamento asignado cuando no se indica uno.
const DefaultDepartment = "Designer"

// Employee representa un empleado activo o inactivo de la organización.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Position   string
	Department string
	Status     string // Active, Inactive
	Resume     string // ruta del archivo en el storage local; vacío si no hay
	JoinDate   time.Time
	CreatedAt  time.Time
}

// EmployeeSummary campos mínimos del empleado para listados con join (populate).
type EmployeeSummary struct {
	ID       string
	Name     string
	Email    string
	Position string
}

// Summary devuelve la vista resumida del empleado.
func (e *Employee) Summary() EmployeeSummary {
	return EmployeeSummary{ID: e.ID, Name: e.Name, Email: e.Email, Position: e.Position}
}
