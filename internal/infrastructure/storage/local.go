// Package storage implementa el FileStore sobre el disco local, igual que el
// resto del despliegue: un directorio raíz con subdirectorios por tipo de
// archivo (employee_documents, ticket_updates).
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jhoicas/empleados-api/internal/application/usecase"
)

var _ usecase.FileStore = (*LocalStore)(nil)

// LocalStore guarda archivos bajo un directorio raíz configurable.
type LocalStore struct {
	root string
}

// NewLocalStore construye el store y garantiza que el raíz exista.
func NewLocalStore(root string) (*LocalStore, error) {
	if root == "" {
		return nil, fmt.Errorf("storage: raíz vacía")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear raíz: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// Save escribe el archivo bajo dir con un prefijo aleatorio (dos subidas con
// el mismo nombre nunca chocan) y devuelve la ruta relativa persistible.
// El nombre recibido se reduce a su base: nada de la ruta del cliente toca
// el filesystem.
func (s *LocalStore) Save(_ context.Context, dir, filename string, r io.Reader) (string, error) {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("storage: nombre de archivo inválido: %q", filename)
	}
	rel := filepath.Join(dir, uuid.New().String()+"_"+base)
	abs := filepath.Join(s.root, rel)

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("storage: crear directorio: %w", err)
	}
	f, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("storage: crear archivo: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(abs)
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	return rel, nil
}

// Remove borra un archivo por su ruta relativa. No es error que ya no exista.
func (s *LocalStore) Remove(_ context.Context, path string) error {
	if err := os.Remove(filepath.Join(s.root, path)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: borrar archivo: %w", err)
	}
	return nil
}
