package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

const screenshotsDir = "ticket_updates"

// TicketUseCase tablero de tickets: CRUD, vista "my tickets" y el hilo
// append-only de comentarios con captura opcional.
type TicketUseCase struct {
	tickets repository.TicketRepository
	store   FileStore
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(tickets repository.TicketRepository, store FileStore) *TicketUseCase {
	return &TicketUseCase{tickets: tickets, store: store}
}

// Create abre un ticket; el creador es siempre el caller y queda inmutable.
func (uc *TicketUseCase) Create(ctx context.Context, callerID string, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if in.Title == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.TicketOpen
	}
	if !validTicketStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ticket := &entity.Ticket{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		AssigneeID:  in.AssigneeID,
		CreatedBy:   callerID,
		Month:       in.Month,
		Year:        in.Year,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return toTicketResponse(ticket), nil
}

// List devuelve todos los tickets, más reciente primero. El reparto
// pool/asignados es asunto del frontend sobre estos mismos datos.
func (uc *TicketUseCase) List(ctx context.Context) ([]dto.TicketResponse, error) {
	tickets, err := uc.tickets.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toTicketResponses(tickets), nil
}

// ListMine devuelve los tickets asignados al caller, más reciente primero.
func (uc *TicketUseCase) ListMine(ctx context.Context, callerID string) ([]dto.TicketResponse, error) {
	tickets, err := uc.tickets.ListByAssignee(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return toTicketResponses(tickets), nil
}

// Patch edita un ticket. El status acepta cualquier valor del enum en
// cualquier orden (sin workflow) y la reasignación es libre, incluida la
// desasignación con null explícito. Toda edición refresca updated_at.
func (uc *TicketUseCase) Patch(ctx context.Context, id string, in dto.PatchTicketRequest) (*dto.TicketResponse, error) {
	ticket, err := uc.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}

	if in.Title != nil {
		ticket.Title = *in.Title
	}
	if in.Description != nil {
		ticket.Description = *in.Description
	}
	if in.Status != nil {
		if !validTicketStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		ticket.Status = *in.Status
	}
	assignee, touched, err := in.Assignee()
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if touched {
		ticket.AssigneeID = assignee
	}
	if in.Month != nil {
		ticket.Month = *in.Month
	}
	if in.Year != nil {
		ticket.Year = *in.Year
	}
	ticket.UpdatedAt = time.Now()

	if err := uc.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return toTicketResponse(ticket), nil
}

// Delete borra un ticket y, por cascada, su hilo.
func (uc *TicketUseCase) Delete(ctx context.Context, id string) error {
	ticket, err := uc.tickets.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return domain.ErrNotFound
	}
	return uc.tickets.Delete(ctx, id)
}

// AddUpdate agrega un comentario al hilo del ticket, con captura opcional,
// y refresca el updated_at del ticket padre.
func (uc *TicketUseCase) AddUpdate(ctx context.Context, callerID, ticketID, text, screenshotName string, screenshot io.Reader) (*dto.TicketUpdateResponse, error) {
	if ticketID == "" || text == "" {
		return nil, domain.ErrInvalidInput
	}
	ticket, err := uc.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}

	var screenshotPath *string
	if screenshot != nil && screenshotName != "" {
		path, err := uc.store.Save(ctx, screenshotsDir, screenshotName, screenshot)
		if err != nil {
			return nil, err
		}
		screenshotPath = &path
	}

	upd := &entity.TicketUpdate{
		ID:         uuid.New().String(),
		TicketID:   ticketID,
		UserID:     callerID,
		UpdateText: text,
		Screenshot: screenshotPath,
		CreatedAt:  time.Now(),
	}
	if err := uc.tickets.CreateUpdate(ctx, upd); err != nil {
		return nil, err
	}

	ticket.UpdatedAt = upd.CreatedAt
	if err := uc.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return toTicketUpdateResponse(upd), nil
}

// ListUpdates devuelve el hilo de un ticket, más antiguo primero.
func (uc *TicketUseCase) ListUpdates(ctx context.Context, ticketID string) ([]dto.TicketUpdateResponse, error) {
	if ticketID == "" {
		return nil, domain.ErrInvalidInput
	}
	ticket, err := uc.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	updates, err := uc.tickets.ListUpdates(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TicketUpdateResponse, 0, len(updates))
	for _, u := range updates {
		out = append(out, *toTicketUpdateResponse(u))
	}
	return out, nil
}

func validTicketStatus(s string) bool {
	switch s {
	case entity.TicketOpen, entity.TicketInProgress, entity.TicketReview, entity.TicketCompleted:
		return true
	}
	return false
}

func toTicketResponse(t *entity.Ticket) *dto.TicketResponse {
	return &dto.TicketResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		AssigneeID:  t.AssigneeID,
		CreatedBy:   t.CreatedBy,
		Month:       t.Month,
		Year:        t.Year,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTicketResponses(tickets []*entity.Ticket) []dto.TicketResponse {
	out := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, *toTicketResponse(t))
	}
	return out
}

func toTicketUpdateResponse(u *entity.TicketUpdate) *dto.TicketUpdateResponse {
	return &dto.TicketUpdateResponse{
		ID:         u.ID,
		TicketID:   u.TicketID,
		UserID:     u.UserID,
		UpdateText: u.UpdateText,
		Screenshot: u.Screenshot,
		CreatedAt:  u.CreatedAt,
	}
}
