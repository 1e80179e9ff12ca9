package repository

import (
	"context"

	"github.com/jhoicas/empleados-api/internal/domain/entity"
)

// ProfileRepository puerto de persistencia para Profile (relación 1:1
// opcional con User: GetByUserID devuelve (nil, nil) si no existe).
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
}
