package repository

import (
	"context"

	"github.com/jhoicas/empleados-api/internal/domain/entity"
)

// WorkUpdateRepository puerto de persistencia para WorkUpdate.
type WorkUpdateRepository interface {
	Create(ctx context.Context, wu *entity.WorkUpdate) error
	GetByID(ctx context.Context, id string) (*entity.WorkUpdate, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.WorkUpdate, error)
	ListAll(ctx context.Context) ([]*entity.WorkUpdate, error)
	Update(ctx context.Context, wu *entity.WorkUpdate) error
	Delete(ctx context.Context, id string) error
}
