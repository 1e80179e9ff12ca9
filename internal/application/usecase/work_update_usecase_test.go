package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeWorkUpdateRepo struct {
	items map[string]*entity.WorkUpdate
	order []string
}

func newFakeWorkUpdateRepo() *fakeWorkUpdateRepo {
	return &fakeWorkUpdateRepo{items: map[string]*entity.WorkUpdate{}}
}

func (r *fakeWorkUpdateRepo) Create(_ context.Context, wu *entity.WorkUpdate) error {
	r.items[wu.ID] = wu
	r.order = append(r.order, wu.ID)
	return nil
}
func (r *fakeWorkUpdateRepo) GetByID(_ context.Context, id string) (*entity.WorkUpdate, error) {
	return r.items[id], nil
}
func (r *fakeWorkUpdateRepo) ListByUser(_ context.Context, userID string) ([]*entity.WorkUpdate, error) {
	var out []*entity.WorkUpdate
	for _, id := range r.order {
		if wu, ok := r.items[id]; ok && wu.UserID == userID {
			out = append(out, wu)
		}
	}
	return out, nil
}
func (r *fakeWorkUpdateRepo) ListAll(context.Context) ([]*entity.WorkUpdate, error) {
	var out []*entity.WorkUpdate
	for _, id := range r.order {
		if wu, ok := r.items[id]; ok {
			out = append(out, wu)
		}
	}
	return out, nil
}
func (r *fakeWorkUpdateRepo) Update(_ context.Context, wu *entity.WorkUpdate) error {
	r.items[wu.ID] = wu
	return nil
}
func (r *fakeWorkUpdateRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

var (
	admin    = &entity.User{ID: "u-admin", Role: entity.RoleAdmin}
	employee = &entity.User{ID: "u-emp", Role: entity.RoleEmployee}
	coworker = &entity.User{ID: "u-other", Role: entity.RoleEmployee}
)

func seedWorkUpdates(t *testing.T, uc *WorkUpdateUseCase) {
	t.Helper()
	for _, owner := range []string{employee.ID, employee.ID, coworker.ID} {
		_, err := uc.Create(context.Background(), owner, dto.CreateWorkUpdateRequest{
			ProjectName: "Intranet",
			Description: "Avance del día",
		})
		require.NoError(t, err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de alcance por rol
// ──────────────────────────────────────────────────────────────────────────────

// Un empleado lista solo sus entradas aunque pida las de otro.
func TestWorkUpdateList_EmpleadoSoloLoSuyo(t *testing.T) {
	uc := NewWorkUpdateUseCase(newFakeWorkUpdateRepo())
	seedWorkUpdates(t, uc)

	out, err := uc.List(context.Background(), employee, coworker.ID)
	require.NoError(t, err)
	require.Len(t, out, 2, "el filtro user_id se ignora para no-admins")
	for _, wu := range out {
		assert.Equal(t, employee.ID, wu.UserID)
	}
}

// El admin lista todo, o filtra por user_id.
func TestWorkUpdateList_AdminTodoYFiltrado(t *testing.T) {
	uc := NewWorkUpdateUseCase(newFakeWorkUpdateRepo())
	seedWorkUpdates(t, uc)

	all, err := uc.List(context.Background(), admin, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := uc.List(context.Background(), admin, coworker.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, coworker.ID, filtered[0].UserID)
}

func TestWorkUpdateCreate_DefaultsYValidacion(t *testing.T) {
	uc := NewWorkUpdateUseCase(newFakeWorkUpdateRepo())

	out, err := uc.Create(context.Background(), employee.ID, dto.CreateWorkUpdateRequest{
		ProjectName: "Intranet",
		Description: "Primer avance",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.WorkStatusInProgress, out.Status, "sin status explícito arranca In Progress")
	assert.Equal(t, employee.ID, out.UserID)

	_, err = uc.Create(context.Background(), employee.ID, dto.CreateWorkUpdateRequest{
		ProjectName: "Intranet",
		Description: "x",
		Status:      "Pausado",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Editar o borrar entradas ajenas exige ser admin.
func TestWorkUpdatePatchDelete_DuenoOAdmin(t *testing.T) {
	uc := NewWorkUpdateUseCase(newFakeWorkUpdateRepo())
	mine, err := uc.Create(context.Background(), employee.ID, dto.CreateWorkUpdateRequest{
		ProjectName: "Intranet",
		Description: "Avance",
	})
	require.NoError(t, err)

	done := entity.WorkStatusCompleted
	_, err = uc.Patch(context.Background(), coworker, mine.ID, dto.PatchWorkUpdateRequest{Status: &done})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Patch(context.Background(), admin, mine.ID, dto.PatchWorkUpdateRequest{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, entity.WorkStatusCompleted, out.Status)

	assert.ErrorIs(t, uc.Delete(context.Background(), coworker, mine.ID), domain.ErrForbidden)
	require.NoError(t, uc.Delete(context.Background(), employee, mine.ID))
	assert.ErrorIs(t, uc.Delete(context.Background(), employee, mine.ID), domain.ErrNotFound)
}
