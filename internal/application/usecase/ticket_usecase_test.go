package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTicketRepo struct {
	tickets map[string]*entity.Ticket
	updates []*entity.TicketUpdate
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: map[string]*entity.Ticket{}}
}

func (r *fakeTicketRepo) Create(_ context.Context, t *entity.Ticket) error {
	r.tickets[t.ID] = t
	return nil
}
func (r *fakeTicketRepo) GetByID(_ context.Context, id string) (*entity.Ticket, error) {
	return r.tickets[id], nil
}
func (r *fakeTicketRepo) ListAll(context.Context) ([]*entity.Ticket, error) {
	out := make([]*entity.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
func (r *fakeTicketRepo) ListByAssignee(_ context.Context, userID string) ([]*entity.Ticket, error) {
	var out []*entity.Ticket
	for _, t := range r.tickets {
		if t.AssigneeID != nil && *t.AssigneeID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
func (r *fakeTicketRepo) Update(_ context.Context, t *entity.Ticket) error {
	r.tickets[t.ID] = t
	return nil
}
func (r *fakeTicketRepo) Delete(_ context.Context, id string) error {
	delete(r.tickets, id)
	return nil
}
func (r *fakeTicketRepo) CreateUpdate(_ context.Context, u *entity.TicketUpdate) error {
	r.updates = append(r.updates, u)
	return nil
}
func (r *fakeTicketRepo) ListUpdates(_ context.Context, ticketID string) ([]*entity.TicketUpdate, error) {
	var out []*entity.TicketUpdate
	for _, u := range r.updates {
		if u.TicketID == ticketID {
			out = append(out, u)
		}
	}
	return out, nil
}

// fakeFileStore guarda rutas sintéticas sin tocar disco.
type fakeFileStore struct{ saved []string }

func (s *fakeFileStore) Save(_ context.Context, dir, filename string, _ io.Reader) (string, error) {
	path := dir + "/" + filename
	s.saved = append(s.saved, path)
	return path, nil
}
func (s *fakeFileStore) Remove(context.Context, string) error { return nil }

func patchAssignee(t *testing.T, raw string) dto.PatchTicketRequest {
	t.Helper()
	var in dto.PatchTicketRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &in))
	return in
}

func createTicket(t *testing.T, uc *TicketUseCase, callerID string) *dto.TicketResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), callerID, dto.CreateTicketRequest{
		Title:       "VPN caído",
		Description: "El túnel no levanta desde ayer",
		Month:       "January",
		Year:        2026,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestTicketCreate_DefaultsYCreador(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo(), &fakeFileStore{})
	out := createTicket(t, uc, "u-creator")

	assert.Equal(t, entity.TicketOpen, out.Status, "sin status explícito el ticket abre en Open")
	assert.Equal(t, "u-creator", out.CreatedBy)
	assert.Nil(t, out.AssigneeID)
}

func TestTicketCreate_StatusInvalido(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo(), &fakeFileStore{})
	_, err := uc.Create(context.Background(), "u-creator", dto.CreateTicketRequest{
		Title:       "x",
		Description: "y",
		Status:      "Cerrado",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El campo assignee del PATCH distingue tres estados: ausente (no tocar),
// null explícito (desasignar) y valor (asignar).
func TestTicketPatch_AssigneeTriEstado(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo(), &fakeFileStore{})
	ticket := createTicket(t, uc, "u-creator")

	// Asignar
	out, err := uc.Patch(context.Background(), ticket.ID, patchAssignee(t, `{"assignee":"u-worker"}`))
	require.NoError(t, err)
	require.NotNil(t, out.AssigneeID)
	assert.Equal(t, "u-worker", *out.AssigneeID)

	// Body sin el campo: la asignación no se toca
	out, err = uc.Patch(context.Background(), ticket.ID, patchAssignee(t, `{"title":"VPN caído (prod)"}`))
	require.NoError(t, err)
	require.NotNil(t, out.AssigneeID)
	assert.Equal(t, "u-worker", *out.AssigneeID)
	assert.Equal(t, "VPN caído (prod)", out.Title)

	// Null explícito: desasignar
	out, err = uc.Patch(context.Background(), ticket.ID, patchAssignee(t, `{"assignee":null}`))
	require.NoError(t, err)
	assert.Nil(t, out.AssigneeID)
}

// El enum de status no impone orden: Completed puede volver a Open.
func TestTicketPatch_StatusSinWorkflow(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo(), &fakeFileStore{})
	ticket := createTicket(t, uc, "u-creator")

	for _, status := range []string{entity.TicketCompleted, entity.TicketOpen, entity.TicketReview} {
		out, err := uc.Patch(context.Background(), ticket.ID, patchAssignee(t, `{"status":"`+status+`"}`))
		require.NoError(t, err)
		assert.Equal(t, status, out.Status)
	}
}

func TestTicketPatch_Inexistente(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo(), &fakeFileStore{})
	_, err := uc.Patch(context.Background(), "no-existe", patchAssignee(t, `{"title":"x"}`))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTicketListMine_SoloAsignados(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo(), &fakeFileStore{})
	mine := createTicket(t, uc, "u-creator")
	createTicket(t, uc, "u-creator") // queda sin asignar

	_, err := uc.Patch(context.Background(), mine.ID, patchAssignee(t, `{"assignee":"u-worker"}`))
	require.NoError(t, err)

	out, err := uc.ListMine(context.Background(), "u-worker")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, mine.ID, out[0].ID)
}

// Comentar el hilo refresca el updated_at del ticket padre.
func TestTicketAddUpdate_RefrescaTicket(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo(), &fakeFileStore{})
	ticket := createTicket(t, uc, "u-creator")
	before := ticket.UpdatedAt

	upd, err := uc.AddUpdate(context.Background(), "u-worker", ticket.ID, "Reiniciado el concentrador", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Reiniciado el concentrador", upd.UpdateText)
	assert.Nil(t, upd.Screenshot)

	thread, err := uc.ListUpdates(context.Background(), ticket.ID)
	require.NoError(t, err)
	require.Len(t, thread, 1)

	refreshed, err := uc.Patch(context.Background(), ticket.ID, patchAssignee(t, `{}`))
	require.NoError(t, err)
	assert.False(t, refreshed.UpdatedAt.Before(before))
}

func TestTicketAddUpdate_ConCaptura(t *testing.T) {
	store := &fakeFileStore{}
	uc := NewTicketUseCase(newFakeTicketRepo(), store)
	ticket := createTicket(t, uc, "u-creator")

	upd, err := uc.AddUpdate(context.Background(), "u-worker", ticket.ID, "Adjunto evidencia",
		"error.png", bytes.NewBufferString("png-bytes"))
	require.NoError(t, err)
	require.NotNil(t, upd.Screenshot)
	assert.Equal(t, "ticket_updates/error.png", *upd.Screenshot)
	assert.Len(t, store.saved, 1)
}

func TestTicketDelete(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo(), &fakeFileStore{})
	ticket := createTicket(t, uc, "u-creator")

	require.NoError(t, uc.Delete(context.Background(), ticket.ID))
	assert.ErrorIs(t, uc.Delete(context.Background(), ticket.ID), domain.ErrNotFound)
}
