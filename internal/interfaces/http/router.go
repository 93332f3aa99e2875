package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/RRHH-api/internal/application/auth"
	"github.com/jhoicas/RRHH-api/internal/application/usecase"
	"github.com/jhoicas/RRHH-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CandidateUC  *usecase.CandidateUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	AttendanceUC *usecase.AttendanceUseCase
	LeaveUC      *usecase.LeaveUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Users (registro y login públicos; perfil requiere token)
	users := api.Group("/users")
	authHandler := NewAuthHandler(deps.AuthUC)
	users.Post("/register", authHandler.Register)
	users.Post("/login", authHandler.Login)
	users.Get("/profile", AuthMiddleware(deps.JWTSecret), authHandler.Profile)

	// Rutas protegidas (requieren Bearer Token con rol de RRHH)
	protected := api.Group("/",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleHR, entity.RoleAdmin),
	)

	// Candidates (protegido)
	candidates := protected.Group("/candidates")
	candidateHandler := NewCandidateHandler(deps.CandidateUC)
	candidates.Post("/", candidateHandler.Create)
	candidates.Get("/", candidateHandler.List)
	candidates.Get("/:id/resume", candidateHandler.DownloadResume)
	candidates.Post("/:id/hire", candidateHandler.Hire)
	candidates.Get("/:id", candidateHandler.GetByID)
	candidates.Put("/:id", candidateHandler.UpdateStatus)
	candidates.Delete("/:id", candidateHandler.Delete)

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Attendance (protegido)
	attendance := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	attendance.Post("/", attendanceHandler.Create)
	attendance.Get("/", attendanceHandler.List)
	attendance.Get("/employee/:id", attendanceHandler.ListByEmployee)
	attendance.Put("/:id", attendanceHandler.UpdateStatus)
	attendance.Delete("/:id", attendanceHandler.Delete)

	// Leaves (protegido)
	leaves := protected.Group("/leaves")
	leaveHandler := NewLeaveHandler(deps.LeaveUC)
	leaves.Post("/", leaveHandler.Create)
	leaves.Get("/", leaveHandler.List)
	leaves.Get("/approved", leaveHandler.ListApproved)
	leaves.Get("/report", leaveHandler.Report)
	leaves.Get("/employee/:id", leaveHandler.ListByEmployee)
	leaves.Put("/:id", leaveHandler.UpdateStatus)
	leaves.Delete("/:id", leaveHandler.Delete)
}
