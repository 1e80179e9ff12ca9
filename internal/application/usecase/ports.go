package usecase

import (
	"context"
	"io"

	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Lo implementa el adaptador de PostgreSQL; la creación de un empleado
// (usuario + perfil inicial) es todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		profiles repository.ProfileRepository,
	) error) error
}

// FileStore puerto del almacenamiento de archivos subidos (documentos y
// capturas de tickets). Save devuelve la ruta relativa persistible.
type FileStore interface {
	Save(ctx context.Context, dir, filename string, r io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}
