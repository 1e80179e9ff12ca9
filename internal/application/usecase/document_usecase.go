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
	"github.com/jhoicas/empleados-api/pkg/logger"
)

const documentsDir = "employee_documents"

// DocumentUseCase subida, listado y borrado de documentos de empleados.
// El dueño de una subida es SIEMPRE el usuario autenticado, sin importar
// qué venga en el body.
type DocumentUseCase struct {
	docs  repository.DocumentRepository
	store FileStore
	log   *logger.Logger
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(docs repository.DocumentRepository, store FileStore, log *logger.Logger) *DocumentUseCase {
	return &DocumentUseCase{docs: docs, store: store, log: log}
}

// Upload guarda el archivo en el storage y registra el documento a nombre
// del caller.
func (uc *DocumentUseCase) Upload(ctx context.Context, callerID, documentType, fileName string, file io.Reader) (*dto.DocumentResponse, error) {
	if documentType == "" || fileName == "" || file == nil {
		return nil, domain.ErrInvalidInput
	}
	path, err := uc.store.Save(ctx, documentsDir, fileName, file)
	if err != nil {
		return nil, err
	}
	doc := &entity.Document{
		ID:           uuid.New().String(),
		UserID:       callerID,
		DocumentType: documentType,
		FilePath:     path,
		FileName:     fileName,
		UploadedAt:   time.Now(),
	}
	if err := uc.docs.Create(ctx, doc); err != nil {
		// La fila no quedó: retirar el archivo ya escrito.
		if rmErr := uc.store.Remove(ctx, path); rmErr != nil {
			uc.log.Warn().Err(rmErr).Str("path", path).Msg("no se pudo retirar el archivo huérfano")
		}
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// List aplica el alcance por rol: un empleado solo ve lo suyo; un admin ve
// todo, u opcionalmente filtra por targetUserID.
func (uc *DocumentUseCase) List(ctx context.Context, caller *entity.User, targetUserID string) ([]dto.DocumentResponse, error) {
	var (
		docs []*entity.Document
		err  error
	)
	switch {
	case caller.IsAdmin() && targetUserID != "":
		docs, err = uc.docs.ListByUser(ctx, targetUserID)
	case caller.IsAdmin():
		docs, err = uc.docs.ListAll(ctx)
	default:
		docs, err = uc.docs.ListByUser(ctx, caller.ID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, *toDocumentResponse(d))
	}
	return out, nil
}

// Delete borra un documento propio (o cualquiera si el caller es admin).
// El archivo físico se retira best-effort: si falla queda registrado pero la
// fila ya no existe.
func (uc *DocumentUseCase) Delete(ctx context.Context, caller *entity.User, id string) error {
	doc, err := uc.docs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if !caller.IsAdmin() && doc.UserID != caller.ID {
		return domain.ErrForbidden
	}
	if err := uc.docs.Delete(ctx, id); err != nil {
		return err
	}
	if err := uc.store.Remove(ctx, doc.FilePath); err != nil {
		uc.log.Warn().Err(err).Str("path", doc.FilePath).Msg("no se pudo borrar el archivo del documento")
	}
	return nil
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:           d.ID,
		UserID:       d.UserID,
		DocumentType: d.DocumentType,
		File:         d.FilePath,
		FileName:     d.FileName,
		UploadedAt:   d.UploadedAt,
	}
}
