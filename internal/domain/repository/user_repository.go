package repository

import (
	"context"

	"github.com/jhoicas/empleados-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// Delete elimina el usuario; el esquema cascadea perfil, documentos,
	// asistencia, work updates y tickets creados.
	Delete(ctx context.Context, id string) error
}
