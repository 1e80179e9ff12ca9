package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

const (
	ticketColumns       = `id, title, description, status, assignee_id, created_by, month, year, created_at, updated_at`
	ticketUpdateColumns = `id, ticket_id, user_id, update_text, screenshot, created_at`
)

// TicketRepo implementación del puerto TicketRepository sobre PostgreSQL.
type TicketRepo struct {
	db Querier
}

// NewTicketRepository construye el adaptador de persistencia de tickets.
func NewTicketRepository(db Querier) *TicketRepo {
	return &TicketRepo{db: db}
}

// Create persiste un ticket.
func (r *TicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.Title, t.Description, t.Status, t.AssigneeID, t.CreatedBy,
		t.Month, t.Year, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket; (nil, nil) si no existe.
func (r *TicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`
	var t entity.Ticket
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.AssigneeID, &t.CreatedBy,
		&t.Month, &t.Year, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &t, nil
}

// ListAll lista todos los tickets, más reciente primero.
func (r *TicketRepo) ListAll(ctx context.Context) ([]*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return collectTickets(rows)
}

// ListByAssignee lista los tickets asignados a un usuario, más reciente primero.
func (r *TicketRepo) ListByAssignee(ctx context.Context, userID string) ([]*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE assignee_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tickets by assignee: %w", err)
	}
	return collectTickets(rows)
}

// Update actualiza un ticket (created_by nunca cambia).
func (r *TicketRepo) Update(ctx context.Context, t *entity.Ticket) error {
	query := `
		UPDATE tickets
		SET title = $2, description = $3, status = $4, assignee_id = $5,
		    month = $6, year = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.Title, t.Description, t.Status, t.AssigneeID, t.Month, t.Year, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	return nil
}

// Delete elimina un ticket; el esquema cascadea su hilo.
func (r *TicketRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}

// CreateUpdate agrega un comentario al hilo (append-only).
func (r *TicketRepo) CreateUpdate(ctx context.Context, upd *entity.TicketUpdate) error {
	query := `
		INSERT INTO ticket_updates (` + ticketUpdateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		upd.ID, upd.TicketID, upd.UserID, upd.UpdateText, upd.Screenshot, upd.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket update: %w", err)
	}
	return nil
}

// ListUpdates devuelve el hilo de un ticket, más antiguo primero.
func (r *TicketRepo) ListUpdates(ctx context.Context, ticketID string) ([]*entity.TicketUpdate, error) {
	query := `SELECT ` + ticketUpdateColumns + ` FROM ticket_updates WHERE ticket_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("list ticket updates: %w", err)
	}
	defer rows.Close()
	var list []*entity.TicketUpdate
	for rows.Next() {
		var u entity.TicketUpdate
		if err := rows.Scan(&u.ID, &u.TicketID, &u.UserID, &u.UpdateText, &u.Screenshot, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket update: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func collectTickets(rows pgx.Rows) ([]*entity.Ticket, error) {
	defer rows.Close()
	var list []*entity.Ticket
	for rows.Next() {
		var t entity.Ticket
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.Status, &t.AssigneeID, &t.CreatedBy,
			&t.Month, &t.Year, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
