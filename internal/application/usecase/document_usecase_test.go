package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeDocumentRepo struct {
	items map[string]*entity.Document
	order []string
	fail  bool // fuerza el fallo del insert para el test de huérfanos
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{items: map[string]*entity.Document{}}
}

func (r *fakeDocumentRepo) Create(_ context.Context, d *entity.Document) error {
	if r.fail {
		return domain.ErrDuplicate
	}
	r.items[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}
func (r *fakeDocumentRepo) GetByID(_ context.Context, id string) (*entity.Document, error) {
	return r.items[id], nil
}
func (r *fakeDocumentRepo) ListByUser(_ context.Context, userID string) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, id := range r.order {
		if d, ok := r.items[id]; ok && d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}
func (r *fakeDocumentRepo) ListAll(context.Context) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, id := range r.order {
		if d, ok := r.items[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}
func (r *fakeDocumentRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func uploadDoc(t *testing.T, uc *DocumentUseCase, ownerID, name string) string {
	t.Helper()
	out, err := uc.Upload(context.Background(), ownerID, "contract", name, bytes.NewBufferString("pdf"))
	require.NoError(t, err)
	return out.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El dueño de la subida es siempre el caller autenticado.
func TestDocumentUpload_DuenoEsElCaller(t *testing.T) {
	uc := NewDocumentUseCase(newFakeDocumentRepo(), &fakeFileStore{}, logger.Nop())

	out, err := uc.Upload(context.Background(), employee.ID, "contract", "contrato.pdf", bytes.NewBufferString("pdf"))
	require.NoError(t, err)
	assert.Equal(t, employee.ID, out.UserID)
	assert.Equal(t, "employee_documents/contrato.pdf", out.File)
}

func TestDocumentUpload_Validacion(t *testing.T) {
	uc := NewDocumentUseCase(newFakeDocumentRepo(), &fakeFileStore{}, logger.Nop())

	_, err := uc.Upload(context.Background(), employee.ID, "", "contrato.pdf", bytes.NewBufferString("pdf"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Upload(context.Background(), employee.ID, "contract", "contrato.pdf", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si el insert falla después de escribir el archivo, la subida devuelve el
// error y no deja documento listado.
func TestDocumentUpload_InsertFallido(t *testing.T) {
	repo := newFakeDocumentRepo()
	repo.fail = true
	uc := NewDocumentUseCase(repo, &fakeFileStore{}, logger.Nop())

	_, err := uc.Upload(context.Background(), employee.ID, "contract", "contrato.pdf", bytes.NewBufferString("pdf"))
	require.Error(t, err)

	repo.fail = false
	docs, err := uc.List(context.Background(), admin, "")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

// Alcance por rol del listado: empleado solo lo suyo, admin todo o filtrado.
func TestDocumentList_AlcancePorRol(t *testing.T) {
	uc := NewDocumentUseCase(newFakeDocumentRepo(), &fakeFileStore{}, logger.Nop())
	uploadDoc(t, uc, employee.ID, "contrato.pdf")
	uploadDoc(t, uc, employee.ID, "cedula.pdf")
	uploadDoc(t, uc, coworker.ID, "contrato.pdf")

	own, err := uc.List(context.Background(), employee, coworker.ID)
	require.NoError(t, err)
	require.Len(t, own, 2, "el filtro user_id se ignora para no-admins")
	for _, d := range own {
		assert.Equal(t, employee.ID, d.UserID)
	}

	all, err := uc.List(context.Background(), admin, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := uc.List(context.Background(), admin, coworker.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, coworker.ID, filtered[0].UserID)
}

// Borrar documentos ajenos exige ser admin; el borrado retira fila y archivo.
func TestDocumentDelete_DuenoOAdmin(t *testing.T) {
	store := &fakeFileStore{}
	uc := NewDocumentUseCase(newFakeDocumentRepo(), store, logger.Nop())
	id := uploadDoc(t, uc, employee.ID, "contrato.pdf")

	assert.ErrorIs(t, uc.Delete(context.Background(), coworker, id), domain.ErrForbidden)
	require.NoError(t, uc.Delete(context.Background(), employee, id))
	assert.ErrorIs(t, uc.Delete(context.Background(), employee, id), domain.ErrNotFound)
}
