package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

// WorkUpdateUseCase bitácora diaria de trabajo, con alcance por rol.
type WorkUpdateUseCase struct {
	updates repository.WorkUpdateRepository
}

// NewWorkUpdateUseCase construye el caso de uso.
func NewWorkUpdateUseCase(updates repository.WorkUpdateRepository) *WorkUpdateUseCase {
	return &WorkUpdateUseCase{updates: updates}
}

// Create registra una entrada a nombre del caller, fechada hoy.
func (uc *WorkUpdateUseCase) Create(ctx context.Context, callerID string, in dto.CreateWorkUpdateRequest) (*dto.WorkUpdateResponse, error) {
	if in.ProjectName == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.WorkStatusInProgress
	}
	if !validWorkStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	wu := &entity.WorkUpdate{
		ID:          uuid.New().String(),
		UserID:      callerID,
		Date:        time.Now(),
		ProjectName: in.ProjectName,
		Description: in.Description,
		Status:      status,
	}
	if err := uc.updates.Create(ctx, wu); err != nil {
		return nil, err
	}
	return toWorkUpdateResponse(wu), nil
}

// List aplica el alcance por rol: empleado → solo lo suyo; admin → todo, o
// filtrado por targetUserID.
func (uc *WorkUpdateUseCase) List(ctx context.Context, caller *entity.User, targetUserID string) ([]dto.WorkUpdateResponse, error) {
	var (
		list []*entity.WorkUpdate
		err  error
	)
	switch {
	case caller.IsAdmin() && targetUserID != "":
		list, err = uc.updates.ListByUser(ctx, targetUserID)
	case caller.IsAdmin():
		list, err = uc.updates.ListAll(ctx)
	default:
		list, err = uc.updates.ListByUser(ctx, caller.ID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkUpdateResponse, 0, len(list))
	for _, wu := range list {
		out = append(out, *toWorkUpdateResponse(wu))
	}
	return out, nil
}

// Patch edita una entrada propia (o cualquiera si el caller es admin).
func (uc *WorkUpdateUseCase) Patch(ctx context.Context, caller *entity.User, id string, in dto.PatchWorkUpdateRequest) (*dto.WorkUpdateResponse, error) {
	wu, err := uc.ownedUpdate(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if in.ProjectName != nil {
		wu.ProjectName = *in.ProjectName
	}
	if in.Description != nil {
		wu.Description = *in.Description
	}
	if in.Status != nil {
		if !validWorkStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		wu.Status = *in.Status
	}
	if err := uc.updates.Update(ctx, wu); err != nil {
		return nil, err
	}
	return toWorkUpdateResponse(wu), nil
}

// Delete borra una entrada propia (o cualquiera si el caller es admin).
func (uc *WorkUpdateUseCase) Delete(ctx context.Context, caller *entity.User, id string) error {
	if _, err := uc.ownedUpdate(ctx, caller, id); err != nil {
		return err
	}
	return uc.updates.Delete(ctx, id)
}

func (uc *WorkUpdateUseCase) ownedUpdate(ctx context.Context, caller *entity.User, id string) (*entity.WorkUpdate, error) {
	wu, err := uc.updates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wu == nil {
		return nil, domain.ErrNotFound
	}
	if !caller.IsAdmin() && wu.UserID != caller.ID {
		return nil, domain.ErrForbidden
	}
	return wu, nil
}

func validWorkStatus(s string) bool {
	switch s {
	case entity.WorkStatusInProgress, entity.WorkStatusCompleted, entity.WorkStatusOnHold:
		return true
	}
	return false
}

func toWorkUpdateResponse(wu *entity.WorkUpdate) *dto.WorkUpdateResponse {
	return &dto.WorkUpdateResponse{
		ID:          wu.ID,
		UserID:      wu.UserID,
		Date:        wu.Date.Format(dto.DateLayout),
		ProjectName: wu.ProjectName,
		Description: wu.Description,
		Status:      wu.Status,
	}
}
