package repository

import (
	"context"

	"github.com/jhoicas/empleados-api/internal/domain/entity"
)

// TicketRepository puerto de persistencia para Ticket y su hilo de updates.
type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)
	// ListAll devuelve todos los tickets, created_at descendente.
	ListAll(ctx context.Context) ([]*entity.Ticket, error)
	// ListByAssignee devuelve los tickets asignados al usuario, created_at
	// descendente ("my tickets").
	ListByAssignee(ctx context.Context, userID string) ([]*entity.Ticket, error)
	Update(ctx context.Context, ticket *entity.Ticket) error
	Delete(ctx context.Context, id string) error

	// Hilo append-only de un ticket.
	CreateUpdate(ctx context.Context, upd *entity.TicketUpdate) error
	ListUpdates(ctx context.Context, ticketID string) ([]*entity.TicketUpdate, error)
}
