package repository

import (
	"context"

	"github.com/jhoicas/empleados-api/internal/domain/entity"
)

// DocumentRepository puerto de persistencia para Document.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Document, error)
	ListAll(ctx context.Context) ([]*entity.Document, error)
	Delete(ctx context.Context, id string) error
}
