package usecase

import (
	"io"

	"github.com/jhoicas/RRHH-api/internal/domain/entity"
)

// FileStore puerto de almacenamiento de archivos subidos (lo implementa storage.LocalStore).
// Los métodos Save devuelven la ruta almacenada, que es lo que las entidades referencian.
type FileStore interface {
	SaveResume(originalName string, src io.Reader, size int64) (string, error)
	SaveDocument(originalName string, src io.Reader, size int64) (string, error)
	// Remove es best-effort: un archivo ya ausente no es error.
	Remove(path string) error
	Exists(path string) bool
}

// FileUpload archivo recibido en una petición multipart.
type FileUpload struct {
	Name    string
	Size    int64
	Content io.Reader
}

// LeaveReportGenerator puerto del generador del reporte PDF de permisos aprobados.
type LeaveReportGenerator interface {
	GenerateApprovedLeavesPDF(leaves []*entity.LeaveWithEmployee) ([]byte, error)
}
