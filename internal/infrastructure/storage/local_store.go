package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Subdirectorios de uploads por tipo de archivo.
const (
	KindResume   = "resumes"
	KindDocument = "documents"
)

// Errores de validación de archivos subidos.
var (
	ErrTypeNotAllowed = errors.New("storage: tipo de archivo no permitido")
	ErrFileTooLarge   = errors.New("storage: archivo demasiado grande")
)

// Extensiones permitidas por tipo, en minúsculas.
var allowedExts = map[string][]string{
	KindResume:   {".pdf", ".doc", ".docx"},
	KindDocument: {".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png"},
}

// LocalStore guarda archivos subidos en disco local bajo un directorio raíz.
// Los nombres se prefijan con milisegundos unix para evitar colisiones; la ruta
// relativa resultante es lo que las entidades referencian.
type LocalStore struct {
	root    string
	maxSize int64
}

// NewLocalStore crea el store y asegura que existan root, resumes/ y documents/.
func NewLocalStore(root string, maxSize int64) (*LocalStore, error) {
	for _, dir := range []string{root, filepath.Join(root, KindResume), filepath.Join(root, KindDocument)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}
	return &LocalStore{root: root, maxSize: maxSize}, nil
}

// Root devuelve el directorio raíz de uploads (para servirlo estático).
func (s *LocalStore) Root() string {
	return s.root
}

// Save valida extensión y tamaño, y escribe el archivo bajo <root>/<kind>/.
// Devuelve la ruta almacenada (relativa al directorio de trabajo).
func (s *LocalStore) Save(kind, originalName string, src io.Reader, size int64) (string, error) {
	if !extAllowed(kind, originalName) {
		return "", ErrTypeNotAllowed
	}
	if s.maxSize > 0 && size > s.maxSize {
		return "", ErrFileTooLarge
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitize(originalName))
	path := filepath.Join(s.root, kind, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("crear archivo %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("escribir archivo %s: %w", path, err)
	}
	return path, nil
}

// SaveResume guarda un currículum bajo resumes/ (pdf/doc/docx).
func (s *LocalStore) SaveResume(originalName string, src io.Reader, size int64) (string, error) {
	return s.Save(KindResume, originalName, src, size)
}

// SaveDocument guarda un soporte de permiso bajo documents/ (pdf/doc/docx/jpg/jpeg/png).
func (s *LocalStore) SaveDocument(originalName string, src io.Reader, size int64) (string, error) {
	return s.Save(KindDocument, originalName, src, size)
}

// Remove borra el archivo referenciado. Best-effort: si ya no existe, no es error.
func (s *LocalStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("eliminar archivo %s: %w", path, err)
	}
	return nil
}

// Exists indica si el archivo referenciado sigue en disco.
func (s *LocalStore) Exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func extAllowed(kind, name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range allowedExts[kind] {
		if ext == allowed {
			return true
		}
	}
	return false
}

// sanitize limpia el nombre original: solo el base name, sin separadores raros.
func sanitize(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "_")
	return base
}
