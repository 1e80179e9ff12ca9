package repository

import (
	"context"

	"github.com/jhoicas/empleados-api/internal/domain/entity"
)

// TokenRepository puerto de persistencia para los bearer tokens opacos.
type TokenRepository interface {
	Create(ctx context.Context, token *entity.AuthToken) error
	// GetByUser devuelve el token vigente del usuario, (nil, nil) si aún no
	// inició sesión nunca.
	GetByUser(ctx context.Context, userID string) (*entity.AuthToken, error)
	// GetByKey resuelve un token a su registro, (nil, nil) si no existe.
	GetByKey(ctx context.Context, key string) (*entity.AuthToken, error)
}
